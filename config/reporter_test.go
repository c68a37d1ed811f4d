package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	stored := filepath.Join(dir, "final.log")
	if err := os.WriteFile(stored, []byte("late"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	copied := filepath.Join(dir, "sheet.yaml")
	if err := os.WriteFile(copied, []byte("original"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r.Store("final.log", stored)
	if err := r.StoreCopy("source.yaml", copied); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	r.StoreData("entry-10.txt", []byte("ten"))
	r.StoreData("entry-2.txt", []byte("two"))
	r.Store("missing", filepath.Join(dir, "nope"))

	// Store reads at close time, StoreCopy does not
	if err := os.WriteFile(stored, []byte("later"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if got := r.Name(); got != conf.Destination {
		t.Errorf("Name() = %q, want %q", got, conf.Destination)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["final.log"] != "later" {
		t.Errorf("final.log = %q, want %q", files["final.log"], "later")
	}
	if files["source.yaml"] != "original" {
		t.Errorf("source.yaml = %q, want %q", files["source.yaml"], "original")
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent file should not be archived")
	}
	manifest := files["MANIFEST"]
	if i, j := strings.Index(manifest, "entry-2.txt"), strings.Index(manifest, "entry-10.txt"); i < 0 || j < 0 || i > j {
		t.Errorf("manifest not in natural order:\n%s", manifest)
	}
}

func TestReport_DuplicatePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("a", []byte("1"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate data name")
		}
	}()
	r.StoreData("a", []byte("2"))
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	r := &Report{entries: make(map[string]entry)}
	for range 2 {
		if err := r.StoreCopy("f.txt", path); err != nil {
			t.Fatalf("StoreCopy() error = %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("got %d entries, want 2", len(r.entries))
	}
	if err := r.StoreCopy("g.txt", filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReportClose_NilReport(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report should have no name")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
