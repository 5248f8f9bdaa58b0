package render

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"widgetconfig/internal/logging"
)

// Clock font values understood by the renderer. Anything else falls back
// to the light face.
const (
	FontLight  = "light"
	FontNormal = "normal"
	FontBlack  = "black"
	FontAnalog = "analog"

	fontCJK = "cjk"
)

type faceKey struct {
	style string
	size  int
}

// FontCache holds parsed fonts shared by every render. Parsed fonts are
// safe for concurrent use; faces are not, so faces come from a Faces set
// owned by a single render.
type FontCache struct {
	parsed      map[string]*opentype.Font
	systemFonts []string
	cjkOnce     sync.Once
	cjk         *opentype.Font
	mutex       sync.Mutex
}

// NewFontCache builds a cache over the embedded Go fonts. systemFonts are
// file names searched in the usual font directories for a face able to
// draw CJK text. With none given, CJK text uses the regular face.
func NewFontCache(systemFonts ...string) *FontCache {
	return &FontCache{
		parsed:      make(map[string]*opentype.Font),
		systemFonts: systemFonts,
	}
}

func DefaultSystemFonts() []string {
	return []string{
		"wqy-microhei.ttc",
		"wqy-zenhei.ttc",
		"NotoSansCJK-Regular.ttc",
		"SourceHanSansSC-Regular.otf",
		"msyh.ttc",
		"simhei.ttf",
		"DroidSansFallbackFull.ttf",
	}
}

func fontData(style string) []byte {
	switch style {
	case FontNormal:
		return gomedium.TTF
	case FontBlack:
		return gobold.TTF
	default:
		return goregular.TTF
	}
}

func normalizeStyle(style string) string {
	if style != FontNormal && style != FontBlack && style != fontCJK {
		return FontLight
	}
	return style
}

// NewFace builds a fresh face for a clock font value at a pixel size. The
// caller owns the face and must not share it between goroutines.
func (fc *FontCache) NewFace(style string, size int) (font.Face, error) {
	if size < 1 {
		size = 1
	}
	style = normalizeStyle(style)

	f, err := fc.font(style)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s face: %w", style, err)
	}
	return face, nil
}

func (fc *FontCache) font(style string) (*opentype.Font, error) {
	if style == fontCJK {
		if f := fc.loadCJK(); f != nil {
			return f, nil
		}
		style = FontLight
	}

	fc.mutex.Lock()
	defer fc.mutex.Unlock()
	if f, ok := fc.parsed[style]; ok {
		return f, nil
	}
	f, err := opentype.Parse(fontData(style))
	if err != nil {
		return nil, fmt.Errorf("parse %s font: %w", style, err)
	}
	fc.parsed[style] = f
	return f, nil
}

func (fc *FontCache) loadCJK() *opentype.Font {
	fc.cjkOnce.Do(func() {
		if len(fc.systemFonts) == 0 {
			return
		}
		path, f := findFontByName(fc.systemFonts)
		if f == nil {
			logging.WarnModule("font", "No CJK font found, lunar text may not render")
			return
		}
		fc.cjk = f
		logging.InfoModule("font", "Using CJK font: %s", filepath.Base(path))
	})
	return fc.cjk
}

// Faces is the set of faces used by one render.
type Faces struct {
	cache *FontCache
	faces map[faceKey]font.Face
}

func (fc *FontCache) NewFaces() *Faces {
	return &Faces{cache: fc, faces: make(map[faceKey]font.Face)}
}

// Face returns the set's face for style and size, creating it on first use.
func (f *Faces) Face(style string, size int) (font.Face, error) {
	if size < 1 {
		size = 1
	}
	key := faceKey{style: normalizeStyle(style), size: size}
	if face, exists := f.faces[key]; exists {
		return face, nil
	}
	face, err := f.cache.NewFace(key.style, size)
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}

// Close releases every face in the set.
func (f *Faces) Close() {
	for key, face := range f.faces {
		face.Close()
		delete(f.faces, key)
	}
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".ttc") {
		collection, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return collection.Font(0)
	}
	return opentype.Parse(data)
}

func fontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		)
	}
	return dirs
}

func findFontByName(fontNames []string) (string, *opentype.Font) {
	dirs := fontDirs()

	for _, fontName := range fontNames {
		for _, dir := range dirs {
			cmd := exec.Command("find", dir, "-name", "*"+fontName+"*", "-type", "f")
			output, err := cmd.Output()
			if err != nil {
				continue
			}

			lines := strings.Split(strings.TrimSpace(string(output)), "\n")
			for _, line := range lines {
				if line != "" && (strings.HasSuffix(line, ".ttf") ||
					strings.HasSuffix(line, ".ttc") ||
					strings.HasSuffix(line, ".otf")) {
					if f, err := parseFontFile(line); err == nil {
						return line, f
					}
				}
			}
		}
	}
	return "", nil
}
