package fontfind

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultTarget is the file-name fragment searched for when none is configured.
const DefaultTarget = "IoskeleyMono_Regular"

// DefaultFallback is the generic family used when no font file resolves.
const DefaultFallback = "monospace"

var styleMarkers = []string{"bold", "italic", "oblique"}

// Face is a parsed font file together with its internal family name.
type Face struct {
	Path   string
	Family string
	Font   *opentype.Font
}

// Result is the outcome of a resolution. Found is false when Family is the
// configured fallback and Face is nil.
type Result struct {
	Path   string
	Family string
	Face   *opentype.Font
	Found  bool
}

// Resolver searches Dirs, in order, for a font file whose name contains Target.
type Resolver struct {
	Target   string
	Dirs     []string
	Fallback string
}

// DefaultDirs returns the per-user and system font directories in priority
// order. An empty home skips the per-user entries.
func DefaultDirs(home string) []string {
	dirs := make([]string, 0, 4)
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		)
	}
	return append(dirs, "/usr/share/fonts", "/usr/local/share/fonts")
}

// New returns a Resolver for target over the default directories of the
// current user.
func New(target string) *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{
		Target:   target,
		Dirs:     DefaultDirs(home),
		Fallback: DefaultFallback,
	}
}

// Find returns the best matching font path. A clean (non-styled) candidate
// in the earliest directory wins; otherwise the first styled candidate is
// returned.
func (r *Resolver) Find() (string, bool) {
	target := normalize(r.Target)
	if target == "" {
		return "", false
	}
	firstStyled := ""
	for _, dir := range r.Dirs {
		clean := ""
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d == nil || path == dir {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isFontFile(path) {
				return nil
			}
			name := normalize(filepath.Base(path))
			if !strings.Contains(name, target) {
				return nil
			}
			if isStyled(name) {
				if firstStyled == "" {
					firstStyled = path
				}
				return nil
			}
			clean = path
			return fs.SkipAll
		})
		if clean != "" {
			return clean, true
		}
	}
	if firstStyled != "" {
		return firstStyled, true
	}
	return "", false
}

// Resolve finds and loads the target font. It never fails: when nothing
// matches or the file cannot be parsed it logs a warning and returns the
// fallback family.
func (r *Resolver) Resolve(logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	fallback := r.Fallback
	if fallback == "" {
		fallback = DefaultFallback
	}
	path, ok := r.Find()
	if !ok {
		logger.Warn("font not found, using fallback", "target", r.Target, "fallback", fallback)
		return Result{Family: fallback}
	}
	face, err := Load(path)
	if err != nil {
		logger.Warn("font not loadable, using fallback", "path", path, "fallback", fallback, "error", err)
		return Result{Path: path, Family: fallback}
	}
	logger.Info("font resolved", "family", face.Family, "path", path)
	return Result{Path: path, Family: face.Family, Face: face.Font, Found: true}
}

// Load parses the font at path and reads its family name from the name
// table, falling back to the full name and then the file stem.
func Load(path string) (Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Face{}, fmt.Errorf("read font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return Face{}, fmt.Errorf("parse font %s: %w", filepath.Base(path), err)
	}
	return Face{Path: path, Family: familyName(f, path), Font: f}, nil
}

func familyName(f *opentype.Font, path string) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		name, err := f.Name(nil, id)
		if err == nil && name != "" {
			return name
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func isStyled(normalized string) bool {
	for _, m := range styleMarkers {
		if strings.Contains(normalized, m) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
}
