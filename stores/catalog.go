// Package stores implements the catalog and order collections on top of
// the storage blob port. Every operation is a read-modify-write of the
// whole collection under the store mutex; a failed write leaves the
// persisted state untouched.
package stores

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Afzal-gif888/campus-cafe-mate/models"
	"github.com/Afzal-gif888/campus-cafe-mate/storage"
)

const menuKey = "cafe_menu_items"

// Catalog owns the set of menu items.
type Catalog struct {
	mu sync.Mutex
	kv storage.Store
}

func NewCatalog(kv storage.Store) *Catalog {
	return &Catalog{kv: kv}
}

// load reads the collection, seeding the default catalog on first
// access.
func (cs *Catalog) load() ([]models.MenuItem, error) {
	raw, ok, err := cs.kv.Get(menuKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		items := DefaultCatalog()
		if err := cs.save(items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decoding menu collection: %v", storage.ErrStorage, err)
	}
	return items, nil
}

func (cs *Catalog) save(items []models.MenuItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encoding menu collection: %v", storage.ErrStorage, err)
	}
	return cs.kv.Put(menuKey, raw)
}

// ListAll returns every menu item in insertion order.
func (cs *Catalog) ListAll() ([]models.MenuItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.load()
}

// ListAvailable returns the items students can currently order.
func (cs *Catalog) ListAvailable() ([]models.MenuItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, err := cs.load()
	if err != nil {
		return nil, err
	}
	available := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

// Create appends a new menu item with a generated ID and returns the
// stored record. Any ID on the input is ignored.
func (cs *Catalog) Create(item models.MenuItem) (models.MenuItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, err := cs.load()
	if err != nil {
		return models.MenuItem{}, err
	}
	item.ID = uuid.NewString()
	items = append(items, item)
	if err := cs.save(items); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Update merges the patch onto the stored item and returns the result.
func (cs *Catalog) Update(id string, patch models.MenuItemPatch) (models.MenuItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, err := cs.load()
	if err != nil {
		return models.MenuItem{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := cs.save(items); err != nil {
			return models.MenuItem{}, err
		}
		return items[i], nil
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
}

// Delete removes the item if present. Deleting an absent ID is a no-op.
func (cs *Catalog) Delete(id string) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, err := cs.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return cs.save(kept)
}

// Get returns a single menu item by ID.
func (cs *Catalog) Get(id string) (models.MenuItem, error) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	items, err := cs.load()
	if err != nil {
		return models.MenuItem{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, fmt.Errorf("menu item %s: %w", id, ErrNotFound)
}
