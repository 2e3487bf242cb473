package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

// Views a series can be sampled for
const (
	ViewInteractive = "interactive"
	ViewSolved      = "solved"
	ViewProposed    = "proposed"
)

// Run is one export of the whole catalog
type Run struct {
	ID               string    `json:"run_id" db:"run_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	InteractiveClamp float64   `json:"interactive_clamp" db:"interactive_clamp"`
	StaticClamp      float64   `json:"static_clamp" db:"static_clamp"`
	Functions        int       `json:"functions" db:"functions"`
}

// Series is the sample set of one family, variant and view
type Series struct {
	Function string
	Variant  string
	View     string
	Formula  string
	Points   []sampler.Point
}

// Snapshot samples every family at its defaults (once per variant) with the
// interactive options, and every practice problem with the static options.
func Snapshot(c *catalog.Catalog, interactive, static sampler.Options) (Run, []Series) {
	run := Run{
		ID:               uuid.New().String(),
		CreatedAt:        time.Now().UTC(),
		InteractiveClamp: interactive.Clamp,
		StaticClamp:      static.Clamp,
	}

	var series []Series
	for _, f := range c.All() {
		run.Functions++

		p := f.NewAssignment()
		variants := []string{""}
		for _, v := range f.Variants {
			variants = append(variants, v.ID)
		}
		for _, v := range variants {
			series = append(series, Series{
				Function: f.ID,
				Variant:  v,
				View:     ViewInteractive,
				Formula:  catalog.RenderFormula(f, p, v),
				Points:   sampler.Sample(f, v, p, interactive),
			})
		}

		problems := []struct {
			view string
			pr   catalog.Problem
		}{
			{ViewSolved, f.SolvedProblem},
			{ViewProposed, f.ProposedProblem},
		}
		for _, prob := range problems {
			pr := prob.pr
			pp, v := pr.Plot()
			series = append(series, Series{
				Function: f.ID,
				Variant:  v,
				View:     prob.view,
				Formula:  catalog.RenderFormula(f, pp, v),
				Points:   sampler.SampleProblem(f, pr, static),
			})
		}
	}
	return run, series
}

// RunRepository handles export runs
type RunRepository struct {
	db *DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save writes the run, its functions and every series in one transaction
func (r *RunRepository) Save(c *catalog.Catalog, run Run, series []Series) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`
		INSERT INTO runs (run_id, created_at, interactive_clamp, static_clamp, functions)
		VALUES (:run_id, :created_at, :interactive_clamp, :static_clamp, :functions)
	`, run)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, f := range c.All() {
		_, err = tx.Exec(`INSERT INTO functions (run_id, function_id, name, category, formula) VALUES (?, ?, ?, ?, ?)`,
			run.ID, f.ID, f.Name, string(f.Category), f.Formula)
		if err != nil {
			return fmt.Errorf("failed to insert function %s: %w", f.ID, err)
		}
	}

	stmt, err := tx.Preparex(`
		INSERT INTO samples (run_id, function_id, variant_id, view, formula, idx, x, y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range series {
		for i, p := range s.Points {
			var y sql.NullFloat64
			if p.Y != nil {
				y = sql.NullFloat64{Float64: *p.Y, Valid: true}
			}
			if _, err := stmt.Exec(run.ID, s.Function, s.Variant, s.View, s.Formula, i, p.X, y); err != nil {
				return fmt.Errorf("failed to insert sample %s/%s/%s[%d]: %w", s.Function, s.Variant, s.View, i, err)
			}
		}
	}

	return tx.Commit()
}

// List returns every run, newest first
func (r *RunRepository) List() ([]Run, error) {
	var runs []Run
	err := r.db.Select(&runs, `SELECT run_id, created_at, interactive_clamp, static_clamp, functions FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return runs, nil
}

type sampleRow struct {
	X float64         `db:"x"`
	Y sql.NullFloat64 `db:"y"`
}

// Points reads one series back in x order. It returns nil if nothing matches.
func (r *RunRepository) Points(runID, function, variant, view string) ([]sampler.Point, error) {
	var rows []sampleRow
	err := r.db.Select(&rows, `
		SELECT x, y FROM samples
		WHERE run_id = ? AND function_id = ? AND variant_id = ? AND view = ?
		ORDER BY idx
	`, runID, function, variant, view)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	points := make([]sampler.Point, len(rows))
	for i, row := range rows {
		points[i].X = row.X
		if row.Y.Valid {
			y := row.Y.Float64
			points[i].Y = &y
		}
	}
	return points, nil
}

// Delete removes a run and its samples
func (r *RunRepository) Delete(runID string) error {
	res, err := r.db.Exec(`DELETE FROM runs WHERE run_id = ?`, runID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("run %q not found", runID)
	}
	return nil
}
