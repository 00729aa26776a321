package dioteko

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportImage writes img to path. The encoder is chosen by the engine from
// the file extension.
func ExportImage(e ResourceEngine, img *Image, path string) error {
	if !e.ExportImage(img.Raw(), path) {
		return fmt.Errorf("export image %s: engine refused to write the file", path)
	}
	return nil
}

// Screenshot captures the current frame and writes it as a PNG into dir with
// a timestamped, sanitized file name. It returns the path written.
func (p *Painter) Screenshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: mkdir %s: %w", dir, err)
	}

	img, err := p.LoadImageFromScreen()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	exportErr := ExportImage(p.win.engine, img, path)
	if err := errors.Join(exportErr, img.Release()); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
