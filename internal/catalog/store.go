package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store holds the three append-only product catalogs in an embedded SQLite
// database. The default DSN is ":memory:"; plans are computed per session
// and nothing requires the catalog to outlive the process.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the catalog database at the given DSN.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening catalog db: %w", err)
	}
	// The in-memory database vanishes when its only connection closes.
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		`CREATE TABLE IF NOT EXISTS cho_products (
			id             TEXT PRIMARY KEY,
			name           TEXT NOT NULL UNIQUE,
			kind           TEXT NOT NULL,
			cho_g          REAL NOT NULL,
			glucose_g      REAL NOT NULL,
			fructose_g     REAL NOT NULL,
			maltodextrin_g REAL NOT NULL,
			sucrose_g      REAL NOT NULL,
			caffeine_mg    REAL NOT NULL,
			notes          TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS drinks (
			id                    TEXT PRIMARY KEY,
			name                  TEXT NOT NULL UNIQUE,
			ml_per_serving        REAL NOT NULL,
			cho_g_per_serving     REAL NOT NULL,
			sodium_mg_per_serving REAL NOT NULL,
			notes                 TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS electrolytes (
			id                 TEXT PRIMARY KEY,
			name               TEXT NOT NULL UNIQUE,
			sodium_mg_per_unit REAL NOT NULL,
			notes              TEXT NOT NULL DEFAULT ''
		)`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating catalog tables: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Seed inserts the default products into any catalog that is still empty.
// Safe to call on every startup.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cho_products`).Scan(&n); err != nil {
		return fmt.Errorf("counting cho_products: %w", err)
	}
	if n == 0 {
		for _, p := range defaultCHOProducts {
			if _, err := s.AddCHOProduct(ctx, p); err != nil {
				return err
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drinks`).Scan(&n); err != nil {
		return fmt.Errorf("counting drinks: %w", err)
	}
	if n == 0 {
		for _, d := range defaultDrinks {
			if _, err := s.AddDrink(ctx, d); err != nil {
				return err
			}
		}
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM electrolytes`).Scan(&n); err != nil {
		return fmt.Errorf("counting electrolytes: %w", err)
	}
	if n == 0 {
		for _, e := range defaultElectrolytes {
			if _, err := s.AddElectrolyte(ctx, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// AddCHOProduct appends a carbohydrate product and returns it with its
// assigned ID. Catalogs are append-only; there is no update or delete.
func (s *Store) AddCHOProduct(ctx context.Context, p CHOProduct) (CHOProduct, error) {
	p.ID = uuid.New()
	if p.Kind == "" {
		p.Kind = KindGel
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO cho_products (id, name, kind, cho_g, glucose_g, fructose_g, maltodextrin_g, sucrose_g, caffeine_mg, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.Name, string(p.Kind), p.CHOGrams, p.GlucoseGrams,
		p.FructoseGrams, p.MaltodextrinG, p.SucroseGrams, p.CaffeineMg, p.Notes)
	if err != nil {
		return CHOProduct{}, fmt.Errorf("inserting cho product %q: %w", p.Name, err)
	}
	return p, nil
}

// AddDrink appends a drink and returns it with its assigned ID.
func (s *Store) AddDrink(ctx context.Context, d Drink) (Drink, error) {
	d.ID = uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drinks (id, name, ml_per_serving, cho_g_per_serving, sodium_mg_per_serving, notes)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID.String(), d.Name, d.MlPerServing, d.CHOPerServing, d.SodiumPerServing, d.Notes)
	if err != nil {
		return Drink{}, fmt.Errorf("inserting drink %q: %w", d.Name, err)
	}
	return d, nil
}

// AddElectrolyte appends an electrolyte product and returns it with its
// assigned ID.
func (s *Store) AddElectrolyte(ctx context.Context, e Electrolyte) (Electrolyte, error) {
	e.ID = uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO electrolytes (id, name, sodium_mg_per_unit, notes) VALUES (?, ?, ?, ?)`,
		e.ID.String(), e.Name, e.SodiumPerUnit, e.Notes)
	if err != nil {
		return Electrolyte{}, fmt.Errorf("inserting electrolyte %q: %w", e.Name, err)
	}
	return e, nil
}

// ListCHOProducts returns all carbohydrate products in insertion order.
func (s *Store) ListCHOProducts(ctx context.Context) ([]CHOProduct, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, kind, cho_g, glucose_g, fructose_g, maltodextrin_g, sucrose_g, caffeine_mg, notes
		 FROM cho_products ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying cho products: %w", err)
	}
	defer rows.Close()

	var result []CHOProduct
	for rows.Next() {
		p, err := scanCHOProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// ListDrinks returns all drinks in insertion order.
func (s *Store) ListDrinks(ctx context.Context) ([]Drink, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, ml_per_serving, cho_g_per_serving, sodium_mg_per_serving, notes
		 FROM drinks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying drinks: %w", err)
	}
	defer rows.Close()

	var result []Drink
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, rows.Err()
}

// ListElectrolytes returns all electrolyte products in insertion order.
func (s *Store) ListElectrolytes(ctx context.Context) ([]Electrolyte, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, sodium_mg_per_unit, notes FROM electrolytes ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying electrolytes: %w", err)
	}
	defer rows.Close()

	var result []Electrolyte
	for rows.Next() {
		e, err := scanElectrolyte(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// CHOProductByName looks up a carbohydrate product by display name, falling
// back to the first catalog entry when the name is unknown or empty. It only
// fails on an empty catalog or a query error. An unrecognized selection is
// not an error.
func (s *Store) CHOProductByName(ctx context.Context, name string) (CHOProduct, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, cho_g, glucose_g, fructose_g, maltodextrin_g, sucrose_g, caffeine_mg, notes
		 FROM cho_products WHERE name = ?`, name)
	p, err := scanCHOProduct(row)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return CHOProduct{}, err
	}
	row = s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, cho_g, glucose_g, fructose_g, maltodextrin_g, sucrose_g, caffeine_mg, notes
		 FROM cho_products ORDER BY rowid LIMIT 1`)
	p, err = scanCHOProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return CHOProduct{}, fmt.Errorf("cho product catalog is empty")
	}
	return p, err
}

// DrinkByName looks up a drink by display name with fallback to the first
// catalog entry.
func (s *Store) DrinkByName(ctx context.Context, name string) (Drink, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, ml_per_serving, cho_g_per_serving, sodium_mg_per_serving, notes
		 FROM drinks WHERE name = ?`, name)
	d, err := scanDrink(row)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Drink{}, err
	}
	row = s.db.QueryRowContext(ctx,
		`SELECT id, name, ml_per_serving, cho_g_per_serving, sodium_mg_per_serving, notes
		 FROM drinks ORDER BY rowid LIMIT 1`)
	d, err = scanDrink(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Drink{}, fmt.Errorf("drink catalog is empty")
	}
	return d, err
}

// ElectrolyteByName looks up an electrolyte product by display name with
// fallback to the first catalog entry.
func (s *Store) ElectrolyteByName(ctx context.Context, name string) (Electrolyte, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, sodium_mg_per_unit, notes FROM electrolytes WHERE name = ?`, name)
	e, err := scanElectrolyte(row)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Electrolyte{}, err
	}
	row = s.db.QueryRowContext(ctx,
		`SELECT id, name, sodium_mg_per_unit, notes FROM electrolytes ORDER BY rowid LIMIT 1`)
	e, err = scanElectrolyte(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Electrolyte{}, fmt.Errorf("electrolyte catalog is empty")
	}
	return e, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCHOProduct(sc scanner) (CHOProduct, error) {
	var p CHOProduct
	var id, kind string
	err := sc.Scan(&id, &p.Name, &kind, &p.CHOGrams, &p.GlucoseGrams,
		&p.FructoseGrams, &p.MaltodextrinG, &p.SucroseGrams, &p.CaffeineMg, &p.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return CHOProduct{}, err
	}
	if err != nil {
		return CHOProduct{}, fmt.Errorf("scanning cho product: %w", err)
	}
	p.ID, _ = uuid.Parse(id)
	p.Kind = CHOKind(kind)
	return p, nil
}

func scanDrink(sc scanner) (Drink, error) {
	var d Drink
	var id string
	err := sc.Scan(&id, &d.Name, &d.MlPerServing, &d.CHOPerServing, &d.SodiumPerServing, &d.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return Drink{}, err
	}
	if err != nil {
		return Drink{}, fmt.Errorf("scanning drink: %w", err)
	}
	d.ID, _ = uuid.Parse(id)
	return d, nil
}

func scanElectrolyte(sc scanner) (Electrolyte, error) {
	var e Electrolyte
	var id string
	err := sc.Scan(&id, &e.Name, &e.SodiumPerUnit, &e.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return Electrolyte{}, err
	}
	if err != nil {
		return Electrolyte{}, fmt.Errorf("scanning electrolyte: %w", err)
	}
	e.ID, _ = uuid.Parse(id)
	return e, nil
}
