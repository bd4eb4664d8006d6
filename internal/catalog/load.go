package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"searchtabs/internal/domain"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

type fileItem struct {
	ID       string `toml:"id" yaml:"id" json:"id"`
	Title    string `toml:"title" yaml:"title" json:"title"`
	Subtitle string `toml:"subtitle" yaml:"subtitle" json:"subtitle"`
	Category string `toml:"category" yaml:"category" json:"category"`
	Badge    string `toml:"badge" yaml:"badge" json:"badge"`
	Avatar   string `toml:"avatar" yaml:"avatar" json:"avatar"`
	Icon     string `toml:"icon" yaml:"icon" json:"icon"`
}

type fileCatalog struct {
	Items []fileItem `toml:"items" yaml:"items" json:"items"`
}

// Load reads a catalog from a .toml, .yaml/.yml or .json/.jsonc file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes catalog data in the format named by ext (with or without the dot)
func Parse(ext string, data []byte) (*Catalog, error) {
	var fc fileCatalog
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "toml":
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case "json", "jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	items := make([]domain.Item, 0, len(fc.Items))
	for _, fi := range fc.Items {
		items = append(items, domain.Item{
			ID:       fi.ID,
			Title:    fi.Title,
			Subtitle: fi.Subtitle,
			Category: domain.Category(strings.ToLower(strings.TrimSpace(fi.Category))),
			Badge:    fi.Badge,
			Avatar:   fi.Avatar,
			Icon:     fi.Icon,
		})
	}
	return New(items)
}
