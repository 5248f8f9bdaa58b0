package output

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// FileOutputHandler writes previews to disk. With a fixed path every frame
// lands in that file; with a directory each widget instance gets its own
// "<variant>_<id>.png".
type FileOutputHandler struct {
	filePath string
	dir      string
}

func NewFileOutputHandler(filePath string) *FileOutputHandler {
	return &FileOutputHandler{filePath: filePath}
}

func NewDirOutputHandler(dir string) (*FileOutputHandler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preview dir: %w", err)
	}
	return &FileOutputHandler{dir: dir}, nil
}

func (f *FileOutputHandler) GetType() string {
	return "file"
}

func (f *FileOutputHandler) path(key string) (string, error) {
	if f.dir == "" {
		return f.filePath, nil
	}
	name := strings.ReplaceAll(key, "/", "_")
	if name == "" || strings.ContainsAny(name, `\:`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid preview key %q", key)
	}
	return filepath.Join(f.dir, name+".png"), nil
}

// Output writes through a temp file so readers never see a partial PNG.
func (f *FileOutputHandler) Output(frame *Frame) error {
	target, err := f.path(frame.Key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".preview-*.png")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(frame.PNG); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return os.Rename(tmp.Name(), target)
}

func (f *FileOutputHandler) Close() error {
	return nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
