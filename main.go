// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/mtreilly/arc-recall/internal/catalog"
	"github.com/mtreilly/arc-recall/internal/cmd"
	"github.com/mtreilly/arc-recall/internal/config"
	"github.com/mtreilly/arc-recall/internal/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "arc-recall: failed to load config: %v\n", err)
		os.Exit(1)
	}

	// A missing or broken catalog degrades to an empty one so the tool can
	// still print help and explain what to fix.
	var modules []schedule.Module
	if _, statErr := os.Stat(cfg.Catalog); statErr == nil {
		modules, err = catalog.Load(cfg.Catalog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cannot load catalog %s: %v\n", cfg.Catalog, err)
			fmt.Fprintln(os.Stderr, "         continuing with an empty catalog")
			modules = nil
		}
	} else {
		fmt.Fprintf(os.Stderr, "WARNING: catalog %s not found; continuing with an empty catalog\n", cfg.Catalog)
	}

	root := cmd.NewRootCmd(cfg, modules)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
