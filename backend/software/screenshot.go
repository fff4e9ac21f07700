package software

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Screenshot queues a labeled capture of the frame being drawn. It is
// written as PNG to ScreenshotDir when the frame is presented.
func (p *Platform) Screenshot(label string) {
	p.screenshotQueue = append(p.screenshotQueue, label)
}

func (p *Platform) flushScreenshots() error {
	if len(p.screenshotQueue) == 0 {
		return nil
	}
	defer func() { p.screenshotQueue = p.screenshotQueue[:0] }()

	if err := os.MkdirAll(p.ScreenshotDir, 0o755); err != nil {
		return fmt.Errorf("screenshot: mkdir %s: %w", p.ScreenshotDir, err)
	}

	stamp := p.now().Format("20060102_150405")
	for _, label := range p.screenshotQueue {
		path := filepath.Join(p.ScreenshotDir, fmt.Sprintf("%s_%05d_%s.png", stamp, p.frames, sanitizeLabel(label)))
		if err := p.SavePNG(path); err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
	}
	return nil
}

// SavePNG writes the current frame to path.
func (p *Platform) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := p.canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
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
