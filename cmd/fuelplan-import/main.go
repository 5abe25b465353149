package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/claude/fuelplan/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to YAML catalog file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into the catalog")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fuelplan-import -config config.yaml -file catalog.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	cat, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		log.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer cat.Close()

	if *dryRun {
		log.Info("DRY RUN mode, nothing will be written to the catalog")
	}

	ctx := context.Background()
	stats, err := cat.ImportFile(ctx, *filePath, *dryRun, log)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import stats",
		"products_added", stats.ProductsAdded,
		"drinks_added", stats.DrinksAdded,
		"electrolytes_added", stats.ElectrolytesAdded,
		"skipped", stats.Skipped,
	)
	log.Info("import complete")
}
