package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/brackenedit/bracken/internal/style"
)

// fileTheme is the on-disk TOML shape. Colors are hex strings; any
// omitted color keeps its default.
type fileTheme struct {
	Name   string `toml:"name"`
	Colors struct {
		Background string `toml:"background"`
		Foreground string `toml:"foreground"`
		Alert      string `toml:"alert"`
		Caution    string `toml:"caution"`
		Notice     string `toml:"notice"`
		Muted      string `toml:"muted"`
		Selection  string `toml:"selection"`
		Highlight  string `toml:"highlight"`
	} `toml:"colors"`
}

// Load reads a theme from a TOML file. A missing file is not an error:
// the default theme is returned.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Theme{}, fmt.Errorf("reading theme file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML theme data, starting from the default theme.
func Parse(data []byte) (Theme, error) {
	var ft fileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return Theme{}, fmt.Errorf("parsing theme: %w", err)
	}

	t := Default()
	if ft.Name != "" {
		t.Name = ft.Name
	}

	assign := func(dst *style.Color, hex, key string) error {
		if hex == "" {
			return nil
		}
		c, err := style.ColorFromHex(hex)
		if err != nil {
			return fmt.Errorf("theme color %q: %w", key, err)
		}
		*dst = c
		return nil
	}

	fields := []struct {
		dst *style.Color
		hex string
		key string
	}{
		{&t.Background, ft.Colors.Background, "background"},
		{&t.Foreground, ft.Colors.Foreground, "foreground"},
		{&t.Alert, ft.Colors.Alert, "alert"},
		{&t.Caution, ft.Colors.Caution, "caution"},
		{&t.Notice, ft.Colors.Notice, "notice"},
		{&t.Muted, ft.Colors.Muted, "muted"},
		{&t.Selection, ft.Colors.Selection, "selection"},
		{&t.Highlight, ft.Colors.Highlight, "highlight"},
	}
	for _, f := range fields {
		if err := assign(f.dst, f.hex, f.key); err != nil {
			return Theme{}, err
		}
	}

	return t, nil
}
