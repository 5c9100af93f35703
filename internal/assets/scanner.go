// Package assets discovers blast asset bundles on disk: one folder per
// blast event, each holding a video, a CSV data file, and a PDF report.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrScanRoot indicates the configured blasts directory is missing or
// unreadable. Callers should surface this as a server error so a
// misconfigured deployment is distinguishable from an empty library.
var ErrScanRoot = errors.New("blasts directory unreadable")

// Blast is one discovered asset triple: the folder name plus resolvable
// URLs for each of the three files.
type Blast struct {
	Folder   string `json:"folder"`
	VideoURL string `json:"video_url"`
	CSVURL   string `json:"csv_url"`
	PDFURL   string `json:"pdf_url"`
}

// Scanner enumerates blast folders under a root directory.
type Scanner struct {
	dir       string
	urlPrefix string
}

// NewScanner returns a Scanner over dir. urlPrefix is prepended to emitted
// file URLs, e.g. "/static/blasts" yields "/static/blasts/<folder>/<file>".
func NewScanner(dir, urlPrefix string) *Scanner {
	return &Scanner{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Scan walks the immediate subdirectories of the root (depth exactly one)
// and returns a Blast for every folder containing at least one .mp4, one
// .csv, and one .pdf. Folders missing any of the three are silently
// dropped. Extensions are matched case-insensitively; other files are
// ignored. os.ReadDir returns entries sorted by name, so results are
// deterministic: folders appear in name order, and when a folder holds
// several files with the same extension the lexicographically last one
// wins.
func (s *Scanner) Scan() ([]Blast, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrScanRoot, s.dir, err)
	}

	blasts := []Blast{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		blast, ok := s.scanFolder(entry.Name())
		if ok {
			blasts = append(blasts, blast)
		}
	}
	return blasts, nil
}

// scanFolder classifies the direct files of one blast folder by extension.
// The ok return is false when any of the three file types is missing or the
// folder cannot be read.
func (s *Scanner) scanFolder(folder string) (Blast, bool) {
	entries, err := os.ReadDir(filepath.Join(s.dir, folder))
	if err != nil {
		// An unreadable folder is treated like a partial one: skipped.
		return Blast{}, false
	}

	var videoFile, csvFile, pdfFile string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".mp4":
			videoFile = name
		case ".csv":
			csvFile = name
		case ".pdf":
			pdfFile = name
		}
	}

	if videoFile == "" || csvFile == "" || pdfFile == "" {
		return Blast{}, false
	}

	return Blast{
		Folder:   folder,
		VideoURL: s.fileURL(folder, videoFile),
		CSVURL:   s.fileURL(folder, csvFile),
		PDFURL:   s.fileURL(folder, pdfFile),
	}, true
}

func (s *Scanner) fileURL(folder, file string) string {
	return path.Join(s.urlPrefix, folder, file)
}
