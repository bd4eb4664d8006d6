// Package catalog holds the immutable item set the search pipeline runs over.
package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"searchtabs/internal/domain"
)

// itemNamespace seeds name-based ids for items loaded without one
var itemNamespace = uuid.MustParse("6f1c3c52-8a59-4d43-9b7e-2a8f1f0e5d11")

// Catalog is an ordered, read-only sequence of items
type Catalog struct {
	items []domain.Item
}

// New validates items and builds a catalog preserving their order
func New(items []domain.Item) (*Catalog, error) {
	out := make([]domain.Item, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if item.ID == "" {
			item.ID = DeriveID(item)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("item %d: %w: duplicate id %q", i, domain.ErrInvalidItem, item.ID)
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return &Catalog{items: out}, nil
}

// DeriveID returns a stable id for an item from its category and title
func DeriveID(item domain.Item) string {
	return uuid.NewSHA1(itemNamespace, []byte(string(item.Category)+"/"+item.Title)).String()
}

// Items returns a copy of the items in catalog order
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items
func (c *Catalog) Len() int {
	return len(c.items)
}

// CountByCategory returns the number of items per category
func (c *Catalog) CountByCategory() map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		counts[cat] = 0
	}
	for _, item := range c.items {
		counts[item.Category]++
	}
	return counts
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultItems())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in items invalid: %v", err))
	}
	return c
}

func defaultItems() []domain.Item {
	return []domain.Item{
		{
			Avatar:   "https://i.pravatar.cc/40?img=1",
			Title:    "Randall Johnsson",
			Subtitle: "Active now",
			Category: domain.CategoryPeople,
		},
		{
			Icon:     "folder",
			Title:    "Random Michal Folder",
			Subtitle: "in Photos • Edited 12m ago",
			Badge:    "12 Files",
			Category: domain.CategoryFiles,
		},
		{
			Icon:     "image",
			Title:    "crative_file_frandkies.jpg",
			Subtitle: "in Photos/Assets • Edited 12m ago",
			Category: domain.CategoryFiles,
		},
		{
			Avatar:   "https://i.pravatar.cc/40?img=2",
			Title:    "Kristinge Karand",
			Subtitle: "Active 2d ago",
			Category: domain.CategoryPeople,
		},
		{
			Icon:     "file-video",
			Title:    "files_krande_michelle.avi",
			Subtitle: "in Videos • Added 12m ago",
			Category: domain.CategoryFiles,
		},
	}
}
