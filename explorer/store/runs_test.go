package store

import (
	"path/filepath"
	"testing"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "samples.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSnapshotCoversEveryView(t *testing.T) {
	run, series := Snapshot(catalog.Default(), sampler.Options{Clamp: 20}, sampler.Options{Clamp: 15})

	if run.Functions != 8 {
		t.Errorf("Functions = %d, want 8", run.Functions)
	}
	// 8 base series + 9 trig variants, plus two problems per family
	if want := 8 + 9 + 16; len(series) != want {
		t.Errorf("len(series) = %d, want %d", len(series), want)
	}
	for _, s := range series {
		if len(s.Points) != sampler.NumPoints {
			t.Errorf("%s/%s/%s has %d points", s.Function, s.Variant, s.View, len(s.Points))
		}
	}
}

func TestSaveAndReadBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)
	c := catalog.Default()

	run, series := Snapshot(c, sampler.Options{Clamp: 20}, sampler.Options{Clamp: 15})
	if err := repo.Save(c, run, series); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	runs, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != run.ID || runs[0].StaticClamp != 15 {
		t.Fatalf("List() = %+v", runs)
	}

	points, err := repo.Points(run.ID, "logarithmic", "", ViewInteractive)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != sampler.NumPoints {
		t.Fatalf("len = %d", len(points))
	}
	if !points[0].Gap() {
		t.Errorf("log x=-10 = %+v, want gap", points[0])
	}
	// log2(1) = 0 must come back as a value
	if p := points[55]; p.X != 1 || p.Gap() || *p.Y != 0 {
		t.Errorf("log x=1 = %+v, want 0", p)
	}

	cos, err := repo.Points(run.ID, "trigonometric", "cos", ViewProposed)
	if err != nil {
		t.Fatal(err)
	}
	if p := cos[50]; p.Gap() || *p.Y != 1 {
		t.Errorf("proposed cos x=0 = %+v, want 1", p)
	}

	missing, err := repo.Points(run.ID, "linear", "sin", ViewInteractive)
	if err != nil || missing != nil {
		t.Errorf("Points(linear/sin) = %v, %v, want nil", missing, err)
	}
}

func TestDeleteRun(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db)
	c := catalog.Default()

	run, series := Snapshot(c, sampler.Options{Clamp: 20}, sampler.Options{Clamp: 15})
	if err := repo.Save(c, run, series); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(run.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	points, err := repo.Points(run.ID, "linear", "", ViewInteractive)
	if err != nil || points != nil {
		t.Errorf("Points after delete = %v, %v", points, err)
	}
	if err := repo.Delete(run.ID); err == nil {
		t.Error("second Delete() error = nil")
	}
}
