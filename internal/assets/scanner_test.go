package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "A"), "a.mp4", "a.csv", "a.pdf")
	writeFiles(t, filepath.Join(root, "B"), "b.mp4", "b.csv") // no pdf

	blasts, err := NewScanner(root, "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(blasts) != 1 {
		t.Fatalf("expected only the complete folder, got %v", blasts)
	}
	got := blasts[0]
	if got.Folder != "A" {
		t.Errorf("expected folder A, got %q", got.Folder)
	}
	if got.VideoURL != "/static/blasts/A/a.mp4" {
		t.Errorf("VideoURL: %q", got.VideoURL)
	}
	if got.CSVURL != "/static/blasts/A/a.csv" {
		t.Errorf("CSVURL: %q", got.CSVURL)
	}
	if got.PDFURL != "/static/blasts/A/a.pdf" {
		t.Errorf("PDFURL: %q", got.PDFURL)
	}
}

func TestScanner_Scan_missing_root(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope"), "/static/blasts").Scan()
	if !errors.Is(err, ErrScanRoot) {
		t.Errorf("expected ErrScanRoot, got %v", err)
	}
}

func TestScanner_Scan_empty_root(t *testing.T) {
	blasts, err := NewScanner(t.TempDir(), "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("empty root is valid, got %v", err)
	}
	if len(blasts) != 0 {
		t.Errorf("expected no blasts, got %v", blasts)
	}
}

func TestScanner_Scan_case_insensitive_extensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "A"), "clip.MP4", "data.CSV", "report.Pdf")

	blasts, err := NewScanner(root, "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(blasts) != 1 {
		t.Fatalf("uppercase extensions should match, got %v", blasts)
	}
	if blasts[0].VideoURL != "/static/blasts/A/clip.MP4" {
		t.Errorf("original filename casing must be preserved in URLs: %q", blasts[0].VideoURL)
	}
}

func TestScanner_Scan_ignores_files_and_nested_dirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "stray.mp4") // file at root level, not a folder
	writeFiles(t, filepath.Join(root, "A"), "a.mp4", "a.csv", "a.pdf", "notes.txt")
	writeFiles(t, filepath.Join(root, "A", "nested"), "deep.pdf") // must not count

	blasts, err := NewScanner(root, "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(blasts) != 1 || blasts[0].Folder != "A" {
		t.Fatalf("expected just folder A, got %v", blasts)
	}
}

func TestScanner_Scan_duplicate_extension_last_wins(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "A"), "x.mp4", "y.mp4", "a.csv", "a.pdf")

	blasts, err := NewScanner(root, "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(blasts) != 1 {
		t.Fatalf("expected one blast, got %v", blasts)
	}
	// Entries come back sorted by name, so the lexicographically last
	// duplicate is the one referenced. Exactly one is chosen either way.
	if blasts[0].VideoURL != "/static/blasts/A/y.mp4" {
		t.Errorf("expected last duplicate to win, got %q", blasts[0].VideoURL)
	}
}

func TestScanner_Scan_folders_sorted(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, filepath.Join(root, "C1_340_102"), "v.mp4", "d.csv", "r.pdf")
	writeFiles(t, filepath.Join(root, "C1_328_109"), "v.mp4", "d.csv", "r.pdf")

	blasts, err := NewScanner(root, "/static/blasts").Scan()
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(blasts) != 2 || blasts[0].Folder != "C1_328_109" || blasts[1].Folder != "C1_340_102" {
		t.Errorf("expected name-sorted folders, got %v", blasts)
	}
}
