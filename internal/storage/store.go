package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/entity"
)

// FilenameTimestampLayout is the second-granularity timestamp embedded in
// report and document filenames.
const FilenameTimestampLayout = "20060102_150405"

// Store persists analysis records as JSON reports and manages the two flat
// output directories (reports and Word documents). There is no index or
// metadata store beyond filesystem stat info.
type Store struct {
	reportsDir string
	docsDir    string
	logger     *zap.Logger
}

func NewStore(reportsDir, docsDir string, logger *zap.Logger) *Store {
	return &Store{
		reportsDir: reportsDir,
		docsDir:    docsDir,
		logger:     logger,
	}
}

// ReportsDir returns the reports output directory.
func (s *Store) ReportsDir() string { return s.reportsDir }

// DocumentsDir returns the Word documents output directory.
func (s *Store) DocumentsDir() string { return s.docsDir }

// EnsureDirs creates both output directories when missing.
func (s *Store) EnsureDirs() error {
	for _, dir := range []string{s.reportsDir, s.docsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	return nil
}

// SaveAnalysis writes a single-product pillar analysis to the reports
// directory and returns the file path.
func (s *Store) SaveAnalysis(ctx context.Context, a *entity.PillarAnalysis) (string, error) {
	filename := fmt.Sprintf("pillar_analysis_%s_%s_%s.json",
		SanitizeName(a.Product),
		SanitizeName(a.Pillar),
		time.Now().Format(FilenameTimestampLayout),
	)
	return s.writeReport(ctx, filename, a)
}

// SaveCombined writes a combined multi-product analysis to the reports
// directory and returns the file path.
func (s *Store) SaveCombined(ctx context.Context, c *entity.CombinedAnalysis) (string, error) {
	filename := fmt.Sprintf("combined_analysis_%s_%s_%s.json",
		JoinNames(c.Products),
		SanitizeName(c.Pillar),
		time.Now().Format(FilenameTimestampLayout),
	)
	return s.writeReport(ctx, filename, c)
}

func (s *Store) writeReport(ctx context.Context, filename string, record any) (string, error) {
	if err := s.EnsureDirs(); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis: %w", err)
	}

	path := filepath.Join(s.reportsDir, filename)
	if err := WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	ctxzap.Info(ctx, "analysis report saved",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return path, nil
}

// ReadReport loads a stored report by filename.
func (s *Store) ReadReport(filename string) ([]byte, error) {
	if filepath.Base(filename) != filename || !strings.HasSuffix(filename, ".json") {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidFileType, filename)
	}

	data, err := os.ReadFile(filepath.Join(s.reportsDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", entity.ErrReportNotFound, filename)
		}
		return nil, fmt.Errorf("read report: %w", err)
	}
	return data, nil
}

// ListReports lists stored JSON reports, newest first.
func (s *Store) ListReports() ([]entity.StoredFile, error) {
	return listDir(s.reportsDir, ".json")
}

// ListDocuments lists generated Word documents, newest first.
func (s *Store) ListDocuments() ([]entity.StoredFile, error) {
	return listDir(s.docsDir, ".docx")
}

// ResolveDownload maps a download filename to its on-disk path. Only .docx
// (documents dir) and .json (reports dir) are served; path traversal is
// rejected.
func (s *Store) ResolveDownload(filename string) (string, error) {
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("%w: %s", entity.ErrInvalidFileType, filename)
	}

	var dir string
	switch {
	case strings.HasSuffix(filename, ".docx"):
		dir = s.docsDir
	case strings.HasSuffix(filename, ".json"):
		dir = s.reportsDir
	default:
		return "", fmt.Errorf("%w: %s", entity.ErrInvalidFileType, filename)
	}

	path := filepath.Join(dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", entity.ErrReportNotFound, filename)
	}
	return path, nil
}

// ClearHistory removes all reports and Word documents. Individual removal
// failures (e.g. a file still in use) are logged and skipped rather than
// aborting; the returned list names the files actually removed, relative to
// the workspace.
func (s *Store) ClearHistory(ctx context.Context) []string {
	cleared := []string{}
	cleared = append(cleared, s.clearDir(ctx, s.reportsDir, ".json")...)
	cleared = append(cleared, s.clearDir(ctx, s.docsDir, ".docx")...)
	return cleared
}

func (s *Store) clearDir(ctx context.Context, dir, ext string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			ctxzap.Warn(ctx, "could not read output directory", zap.String("dir", dir), zap.Error(err))
		}
		return nil
	}

	var cleared []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.Remove(path); err != nil {
			ctxzap.Warn(ctx, "could not remove file, it may be in use",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		cleared = append(cleared, filepath.ToSlash(filepath.Join(filepath.Base(dir), e.Name())))
	}
	return cleared
}

func listDir(dir, ext string) ([]entity.StoredFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.StoredFile{}, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	files := make([]entity.StoredFile, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		modified := info.ModTime().Format(time.RFC3339)
		files = append(files, entity.StoredFile{
			Filename: e.Name(),
			Size:     info.Size(),
			Created:  modified,
			Modified: modified,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Modified > files[j].Modified
	})
	return files, nil
}

// WriteFileAtomic writes data to a uniquely named temp file in the target
// directory and renames it into place, so readers never observe a partial
// file.
func WriteFileAtomic(path string, data []byte) error {
	tmp := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// SanitizeName normalizes a pillar or product label for use in filenames:
// lowercased, spaces replaced with underscores, "temenos_" prefix stripped.
func SanitizeName(name string) string {
	clean := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	return strings.ReplaceAll(clean, "temenos_", "")
}

// JoinNames sanitizes and joins several product labels for a combined
// filename.
func JoinNames(names []string) string {
	parts := make([]string, 0, len(names))
	for _, n := range names {
		parts = append(parts, SanitizeName(n))
	}
	return strings.Join(parts, "_")
}
