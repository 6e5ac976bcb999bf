package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/muhammadheryan/fw-development/model"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

type CatalogRepository interface {
	Get(ctx context.Context) (*model.Catalog, error)
}

type fileRepo struct {
	catalog *model.Catalog
}

// NewCatalogRepository loads the catalog from path, or the built-in catalog when path is empty.
func NewCatalogRepository(path string) (CatalogRepository, error) {
	data := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		data = b
	}

	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &fileRepo{catalog: c}, nil
}

// NewStaticRepository serves an already built catalog.
func NewStaticRepository(c *model.Catalog) CatalogRepository {
	return &fileRepo{catalog: c}
}

func (r *fileRepo) Get(_ context.Context) (*model.Catalog, error) {
	return r.catalog, nil
}

// Parse decodes a YAML catalog and checks ids and prices.
func Parse(data []byte) (*model.Catalog, error) {
	var c model.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *model.Catalog) error {
	seen := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("catalog: service %q has empty id", s.Name)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("catalog: duplicate service id %q", s.ID)
		}
		if s.Price < 0 || s.Hours < 0 {
			return fmt.Errorf("catalog: service %q has negative price or hours", s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	seen = make(map[string]struct{}, len(c.AddOns))
	for _, a := range c.AddOns {
		if a.ID == "" {
			return fmt.Errorf("catalog: add-on %q has empty id", a.Name)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("catalog: duplicate add-on id %q", a.ID)
		}
		if a.Price < 0 {
			return fmt.Errorf("catalog: add-on %q has negative price", a.ID)
		}
		seen[a.ID] = struct{}{}
	}
	return nil
}
