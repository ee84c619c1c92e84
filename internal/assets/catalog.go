// Package assets loads the sprite catalog: a drawable handle (glyph and
// color) plus intrinsic dimensions for every named sprite.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/psychic-chicken/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// Sprite is a loaded drawable.
type Sprite struct {
	Name   string
	Glyph  rune
	Color  core.Color
	Width  float64
	Height float64
}

// Catalog maps sprite names to sprites.
type Catalog struct {
	sprites map[string]Sprite
}

type catalogFile struct {
	Sprites map[string]spriteEntry `yaml:"sprites"`
}

type spriteEntry struct {
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultSpritesYAML)
}

// LoadCatalog reads a catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read catalog %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("assets: cannot parse catalog: %w", err)
	}

	c := &Catalog{sprites: make(map[string]Sprite, len(f.Sprites))}
	for name, e := range f.Sprites {
		glyph, size := utf8.DecodeRuneInString(e.Glyph)
		if size == 0 || glyph == utf8.RuneError {
			return nil, fmt.Errorf("assets: sprite %q has no glyph", name)
		}
		if e.Width <= 0 || e.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q has invalid size %vx%v", name, e.Width, e.Height)
		}
		color := core.ColorDefault
		if e.Color != "" {
			var ok bool
			if color, ok = core.ParseColor(e.Color); !ok {
				return nil, fmt.Errorf("assets: sprite %q has unknown color %q", name, e.Color)
			}
		}
		c.sprites[name] = Sprite{
			Name:   name,
			Glyph:  glyph,
			Color:  color,
			Width:  e.Width,
			Height: e.Height,
		}
	}
	return c, nil
}

// Load returns the named sprite, or an error if the catalog lacks it.
func (c *Catalog) Load(name string) (Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return Sprite{}, fmt.Errorf("assets: unknown sprite %q", name)
	}
	return s, nil
}

// Names returns all sprite names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sprites))
	for name := range c.sprites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
