package collectionlog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/osse101/GroupIronmen_Go/internal/validation"
)

// SchemaName is the name the embedded schema is registered under.
const SchemaName = "collection_log_info.schema.json"

//go:embed schema/collection_log_info.schema.json
var infoSchema []byte

// ErrDuplicatePage is returned when two tabs declare the same page name.
var ErrDuplicatePage = errors.New("duplicate collection log page")

// Item is one obtainable item on a page.
type Item struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Page is one collection log page, e.g. a boss.
type Page struct {
	Name             string   `json:"name"`
	CompletionLabels []string `json:"completion_labels"`
	Items            []Item   `json:"items"`
}

// Tab groups pages in the in-game interface.
type Tab struct {
	TabID int    `json:"tabId"`
	Name  string `json:"name"`
	Pages []Page `json:"pages"`
}

type pageIndex struct {
	items  map[int32]struct{}
	labels int
}

// Info is the read-only collection log reference. It is safe for
// concurrent use once built.
type Info struct {
	tabs  []Tab
	raw   []byte
	pages map[string]pageIndex
}

// Parse validates data against the embedded schema and indexes it.
func Parse(data []byte, schemaValidator validation.SchemaValidator) (*Info, error) {
	if err := schemaValidator.RegisterSchema(SchemaName, infoSchema); err != nil {
		return nil, fmt.Errorf("failed to register collection log schema: %w", err)
	}
	if err := schemaValidator.ValidateBytes(data, SchemaName); err != nil {
		return nil, fmt.Errorf("schema validation failed for collection log info: %w", err)
	}

	var tabs []Tab
	if err := json.Unmarshal(data, &tabs); err != nil {
		return nil, fmt.Errorf("failed to parse collection log info: %w", err)
	}

	info := &Info{
		tabs:  tabs,
		raw:   data,
		pages: make(map[string]pageIndex),
	}
	for _, tab := range tabs {
		for _, page := range tab.Pages {
			if _, exists := info.pages[page.Name]; exists {
				return nil, fmt.Errorf("%w: %s", ErrDuplicatePage, page.Name)
			}
			idx := pageIndex{
				items:  make(map[int32]struct{}, len(page.Items)),
				labels: len(page.CompletionLabels),
			}
			for _, item := range page.Items {
				idx.items[item.ID] = struct{}{}
			}
			info.pages[page.Name] = idx
		}
	}
	return info, nil
}

// Load reads the reference file at path.
func Load(path string, schemaValidator validation.SchemaValidator) (*Info, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection log info: %w", err)
	}
	return Parse(data, schemaValidator)
}

// HasPage reports whether page exists.
func (i *Info) HasPage(page string) bool {
	_, ok := i.pages[page]
	return ok
}

// HasItem reports whether itemID belongs to page.
func (i *Info) HasItem(page string, itemID int32) bool {
	idx, ok := i.pages[page]
	if !ok {
		return false
	}
	_, ok = idx.items[itemID]
	return ok
}

// CompletionLabelCount returns how many completion counters page tracks.
func (i *Info) CompletionLabelCount(page string) int {
	return i.pages[page].labels
}

// PageCount returns the number of indexed pages.
func (i *Info) PageCount() int {
	return len(i.pages)
}

// Tabs returns the parsed tabs. Callers must not modify the result.
func (i *Info) Tabs() []Tab {
	return i.tabs
}

// Raw returns the validated source document.
func (i *Info) Raw() []byte {
	return i.raw
}

var _ validation.CollectionLogReference = (*Info)(nil)
