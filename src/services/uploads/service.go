// Package uploads stores files attached to submissions on local disk.
package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"Backend-FormFlow/src/logger"

	"github.com/google/uuid"
)

// ErrFileTooLarge is returned when an upload exceeds the configured limit.
var ErrFileTooLarge = errors.New("file exceeds the maximum upload size")

// SaveFunc writes one multipart file to path. The HTTP layer passes fiber's c.SaveFile.
type SaveFunc func(fh *multipart.FileHeader, path string) error

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Service จัดการไฟล์ที่อัปโหลดมากับคำตอบ
type Service struct {
	dir     string
	maxSize int64
	now     func() time.Time
}

// NewService creates the uploads directory if needed.
func NewService(dir string, maxSize int64) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Service{dir: dir, maxSize: maxSize, now: time.Now}, nil
}

// Dir is the directory files are written to.
func (s *Service) Dir() string { return s.dir }

// StoredName builds "<field>-<unix millis>-<uuid><ext>" for an upload.
func (s *Service) StoredName(field, original string) string {
	safeField := strings.Trim(unsafeChars.ReplaceAllString(field, "_"), "_")
	if safeField == "" {
		safeField = "file"
	}
	ext := strings.ToLower(filepath.Ext(original))
	if len(ext) > 16 || unsafeChars.MatchString(strings.TrimPrefix(ext, ".")) {
		ext = ""
	}
	return fmt.Sprintf("%s-%d-%s%s", safeField, s.now().UnixMilli(), uuid.NewString(), ext)
}

// Store saves every file and returns field name -> stored filename (the last
// file wins when a field has several) plus all stored names. On failure the
// files already written are removed.
func (s *Service) Store(files map[string][]*multipart.FileHeader, save SaveFunc) (map[string]string, []string, error) {
	fields := make([]string, 0, len(files))
	for field := range files {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	byField := make(map[string]string, len(files))
	var stored []string
	for _, field := range fields {
		for _, fh := range files[field] {
			if fh.Size > s.maxSize {
				s.Remove(stored...)
				return nil, nil, fmt.Errorf("%s: %w", fh.Filename, ErrFileTooLarge)
			}
			name := s.StoredName(field, fh.Filename)
			if err := save(fh, filepath.Join(s.dir, name)); err != nil {
				s.Remove(stored...)
				return nil, nil, fmt.Errorf("save %s: %w", fh.Filename, err)
			}
			stored = append(stored, name)
			byField[field] = name
		}
	}
	return byField, stored, nil
}

// Remove deletes stored files by name. Missing files are ignored.
func (s *Service) Remove(names ...string) int {
	removed := 0
	for _, name := range names {
		base := filepath.Base(name)
		if base == "." || base == string(filepath.Separator) || base != name {
			logger.Warnf("⚠️ refusing to remove suspicious upload name %q", name)
			continue
		}
		err := os.Remove(filepath.Join(s.dir, base))
		switch {
		case err == nil:
			removed++
		case !errors.Is(err, os.ErrNotExist):
			logger.Warnf("⚠️ failed to remove upload %s: %v", base, err)
		}
	}
	return removed
}
