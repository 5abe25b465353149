package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ImportStats counts what an import run did.
type ImportStats struct {
	ProductsAdded     int
	DrinksAdded       int
	ElectrolytesAdded int
	Skipped           int
}

// importFile is the YAML document layout for bulk catalog imports.
type importFile struct {
	CHOProducts []struct {
		Name          string  `yaml:"name"`
		Kind          string  `yaml:"kind"`
		CHOGrams      float64 `yaml:"cho_g"`
		GlucoseGrams  float64 `yaml:"glucose_g"`
		FructoseGrams float64 `yaml:"fructose_g"`
		MaltodextrinG float64 `yaml:"maltodextrin_g"`
		SucroseGrams  float64 `yaml:"sucrose_g"`
		CaffeineMg    float64 `yaml:"caffeine_mg"`
		Notes         string  `yaml:"notes"`
	} `yaml:"cho_products"`
	Drinks []struct {
		Name             string  `yaml:"name"`
		MlPerServing     float64 `yaml:"ml_per_serving"`
		CHOPerServing    float64 `yaml:"cho_g_per_serving"`
		SodiumPerServing float64 `yaml:"sodium_mg_per_serving"`
		Notes            string  `yaml:"notes"`
	} `yaml:"drinks"`
	Electrolytes []struct {
		Name          string  `yaml:"name"`
		SodiumPerUnit float64 `yaml:"sodium_mg_per_unit"`
		Notes         string  `yaml:"notes"`
	} `yaml:"electrolytes"`
}

// ImportFile loads a YAML catalog file and appends its entries to the store.
// Entries whose name already exists are skipped. In dry-run mode nothing is
// written; the stats report what would have happened.
func (s *Store) ImportFile(ctx context.Context, path string, dryRun bool, log *slog.Logger) (*ImportStats, error) {
	stats := &ImportStats{}

	data, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("reading catalog file: %w", err)
	}

	var file importFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return stats, fmt.Errorf("parsing catalog file: %w", err)
	}

	existing, err := s.existingNames(ctx)
	if err != nil {
		return stats, err
	}

	for _, p := range file.CHOProducts {
		if p.Name == "" || p.CHOGrams <= 0 {
			return stats, fmt.Errorf("cho product %q: name and cho_g are required", p.Name)
		}
		if existing[p.Name] {
			log.Info("skipping existing cho product", "name", p.Name)
			stats.Skipped++
			continue
		}
		kind := CHOKind(p.Kind)
		if kind == "" {
			kind = KindGel
		}
		if !dryRun {
			_, err := s.AddCHOProduct(ctx, CHOProduct{
				Name:          p.Name,
				Kind:          kind,
				CHOGrams:      p.CHOGrams,
				GlucoseGrams:  p.GlucoseGrams,
				FructoseGrams: p.FructoseGrams,
				MaltodextrinG: p.MaltodextrinG,
				SucroseGrams:  p.SucroseGrams,
				CaffeineMg:    p.CaffeineMg,
				Notes:         p.Notes,
			})
			if err != nil {
				return stats, err
			}
		}
		stats.ProductsAdded++
	}

	for _, d := range file.Drinks {
		if d.Name == "" || d.MlPerServing <= 0 {
			return stats, fmt.Errorf("drink %q: name and ml_per_serving are required", d.Name)
		}
		if existing[d.Name] {
			log.Info("skipping existing drink", "name", d.Name)
			stats.Skipped++
			continue
		}
		if !dryRun {
			_, err := s.AddDrink(ctx, Drink{
				Name:             d.Name,
				MlPerServing:     d.MlPerServing,
				CHOPerServing:    d.CHOPerServing,
				SodiumPerServing: d.SodiumPerServing,
				Notes:            d.Notes,
			})
			if err != nil {
				return stats, err
			}
		}
		stats.DrinksAdded++
	}

	for _, e := range file.Electrolytes {
		if e.Name == "" || e.SodiumPerUnit <= 0 {
			return stats, fmt.Errorf("electrolyte %q: name and sodium_mg_per_unit are required", e.Name)
		}
		if existing[e.Name] {
			log.Info("skipping existing electrolyte", "name", e.Name)
			stats.Skipped++
			continue
		}
		if !dryRun {
			_, err := s.AddElectrolyte(ctx, Electrolyte{
				Name:          e.Name,
				SodiumPerUnit: e.SodiumPerUnit,
				Notes:         e.Notes,
			})
			if err != nil {
				return stats, err
			}
		}
		stats.ElectrolytesAdded++
	}

	return stats, nil
}

// existingNames returns all catalog names across the three tables.
func (s *Store) existingNames(ctx context.Context) (map[string]bool, error) {
	names := map[string]bool{}

	products, err := s.ListCHOProducts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		names[p.Name] = true
	}

	drinks, err := s.ListDrinks(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range drinks {
		names[d.Name] = true
	}

	elecs, err := s.ListElectrolytes(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range elecs {
		names[e.Name] = true
	}

	return names, nil
}
