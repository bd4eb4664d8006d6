package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the classification tag attached to every catalog item
type Category string

const (
	CategoryPeople Category = "people"
	CategoryFiles  Category = "files"
	CategoryChats  Category = "chats"
	CategoryLists  Category = "lists"
)

// Categories returns every category in the order tabs and filter toggles are shown
func Categories() []Category {
	return []Category{CategoryFiles, CategoryPeople, CategoryChats, CategoryLists}
}

// ParseCategory converts a raw key into a Category
func ParseCategory(key string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(key)))
	switch c {
	case CategoryPeople, CategoryFiles, CategoryChats, CategoryLists:
		return c, true
	default:
		return "", false
	}
}

// Label returns the human readable tab label
func (c Category) Label() string {
	switch c {
	case CategoryPeople:
		return "People"
	case CategoryFiles:
		return "Files"
	case CategoryChats:
		return "Chats"
	case CategoryLists:
		return "Lists"
	default:
		return string(c)
	}
}

// Tab is the active tab selection: "All" or a single category
type Tab string

// TabAll selects every visible category
const TabAll Tab = "All"

// ParseTab converts a raw key ("All" or a category key) into a Tab
func ParseTab(key string) (Tab, bool) {
	if strings.EqualFold(strings.TrimSpace(key), string(TabAll)) {
		return TabAll, true
	}
	c, ok := ParseCategory(key)
	if !ok {
		return "", false
	}
	return TabFor(c), true
}

// TabFor returns the tab that scopes results to a single category
func TabFor(c Category) Tab {
	return Tab(c)
}

// IsAll reports whether the tab is the "All" tab
func (t Tab) IsAll() bool {
	return t == TabAll
}

// Category returns the category scoped by the tab. ok is false for "All".
func (t Tab) Category() (Category, bool) {
	if t.IsAll() {
		return "", false
	}
	return ParseCategory(string(t))
}

// Label returns the human readable tab label
func (t Tab) Label() string {
	if c, ok := t.Category(); ok {
		return c.Label()
	}
	return string(TabAll)
}

// ErrInvalidItem is returned when an item violates the catalog invariants
var ErrInvalidItem = errors.New("invalid item")

// Item is a single immutable catalog entry
type Item struct {
	ID       string
	Title    string // may embed simple markup
	Subtitle string
	Category Category
	Badge    string // optional
	Avatar   string // optional URI
	Icon     string // optional symbolic name
}

// Validate checks that the item has a known category and exactly one of avatar/icon
func (i Item) Validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidItem)
	}
	if _, ok := ParseCategory(string(i.Category)); !ok {
		return fmt.Errorf("%w: %q has unknown category %q", ErrInvalidItem, i.Title, i.Category)
	}
	hasAvatar := i.Avatar != ""
	hasIcon := i.Icon != ""
	if hasAvatar == hasIcon {
		return fmt.Errorf("%w: %q must have exactly one of avatar or icon", ErrInvalidItem, i.Title)
	}
	return nil
}

// CopyText is the literal text written to the clipboard for a row
func (i Item) CopyText() string {
	return i.Title + " - " + i.Subtitle
}

// Phase is the search pipeline phase
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDebouncing
	PhaseLoading
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseLoading:
		return "loading"
	case PhaseSettled:
		return "settled"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
