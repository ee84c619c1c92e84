package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/psychic-chicken/internal/core"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog() failed: %v", err)
	}

	for _, name := range []string{"bag", "chicken", "egg", "meteor", "ground"} {
		s, err := c.Load(name)
		if err != nil {
			t.Errorf("Load(%q) failed: %v", name, err)
			continue
		}
		if s.Width <= 0 || s.Height <= 0 {
			t.Errorf("sprite %q has size %vx%v", name, s.Width, s.Height)
		}
	}

	egg, _ := c.Load("egg")
	if egg.Width != 20 || egg.Height != 20 {
		t.Errorf("egg size = %vx%v, expected 20x20", egg.Width, egg.Height)
	}
	if egg.Color != core.ColorWhite {
		t.Errorf("egg color = %d, expected white", egg.Color)
	}
}

func TestLoadUnknownSprite(t *testing.T) {
	c, err := DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load("dragon"); err == nil {
		t.Error("Load should fail for unknown sprites")
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprites.yaml")
	data := "sprites:\n  bag:\n    glyph: \"@\"\n    width: 10\n    height: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() failed: %v", err)
	}
	s, err := c.Load("bag")
	if err != nil {
		t.Fatal(err)
	}
	if s.Glyph != '@' || s.Width != 10 || s.Height != 12 || s.Color != core.ColorDefault {
		t.Errorf("unexpected sprite %+v", s)
	}
	if names := c.Names(); len(names) != 1 || names[0] != "bag" {
		t.Errorf("Names() = %v", names)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"no glyph", "sprites:\n  bag:\n    width: 1\n    height: 1\n", "no glyph"},
		{"zero size", "sprites:\n  bag:\n    glyph: x\n    width: 0\n    height: 1\n", "invalid size"},
		{"bad color", "sprites:\n  bag:\n    glyph: x\n    color: plaid\n    width: 1\n    height: 1\n", "unknown color"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("ParseCatalog() error = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}
