package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Favorites is the persisted set of favorite product ids. The whole set is
// written to disk after every mutation and loaded once when opened; a
// missing or corrupt file simply yields an empty set.
type Favorites struct {
	mu   sync.Mutex
	path string
	ids  []int
}

// OpenFavorites loads the set stored at path. Load failures are not errors:
// the favorites view must never crash over a bad state file.
func OpenFavorites(path string) *Favorites {
	f := &Favorites{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		return f
	}
	var ids []int
	if err := json.Unmarshal(b, &ids); err != nil {
		return f
	}
	f.ids = dedup(ids)
	return f
}

func dedup(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (f *Favorites) IsFavorite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return containsInt(f.ids, id)
}

// Add inserts the id, moving an already-present id to the most-recent
// position without duplicating it.
func (f *Favorites) Add(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeLocked(id)
	f.ids = append(f.ids, id)
	return f.saveLocked()
}

func (f *Favorites) Remove(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeLocked(id)
	return f.saveLocked()
}

// Toggle flips membership and reports the new state.
func (f *Favorites) Toggle(id int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if containsInt(f.ids, id) {
		f.removeLocked(id)
		return false, f.saveLocked()
	}
	f.ids = append(f.ids, id)
	return true, f.saveLocked()
}

func (f *Favorites) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = nil
	return f.saveLocked()
}

// IDs returns a snapshot in insertion order, oldest first.
func (f *Favorites) IDs() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.ids))
	copy(out, f.ids)
	return out
}

func (f *Favorites) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.ids)
}

func (f *Favorites) removeLocked(id int) {
	for i, v := range f.ids {
		if v == id {
			f.ids = append(f.ids[:i], f.ids[i+1:]...)
			return
		}
	}
}

func (f *Favorites) saveLocked() error {
	ids := f.ids
	if ids == nil {
		ids = []int{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(f.path, b, 0644)
}
