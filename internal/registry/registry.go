// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the editor
// to look up record geometry and level names without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes one game whose engine writes LMP recordings.
// Variants carry the per-game constants the header codec needs: the width
// of one player's slice of a tic, the accepted episode range and the names
// shown when reporting a header.
type Variant interface {
	// ID returns a unique identifier for this variant (e.g., "doom").
	// Used for CLI flags and configuration.
	ID() string

	// Title returns a human-readable name for display (e.g., "Doom / Doom II").
	Title() string

	// RecordWidth returns the number of bytes one player occupies in a tic.
	RecordWidth() int

	// MaxEpisode returns the highest episode accepted in a header of the
	// given layout.
	MaxEpisode(legacy bool) int

	// SkillName returns the menu name of a 0-based skill level.
	SkillName(skill int) string

	// EpisodeName returns the name of the episode, or "" if unknown.
	EpisodeName(episode, mapNum int, legacy bool) string

	// MapName returns the name of the map, or "" if unknown.
	MapName(episode, mapNum int, legacy bool) string
}

// VariantInfo contains metadata about a registered variant.
type VariantInfo struct {
	ID    string
	Title string
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from a variant's init() function.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	id := v.ID()
	if _, exists := variants[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	variants[id] = v
}

// List returns information about all registered variants, sorted by ID.
func List() []VariantInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]VariantInfo, 0, len(variants))
	for id, v := range variants {
		result = append(result, VariantInfo{
			ID:    id,
			Title: v.Title(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant registered under id.
// Returns an error if the variant ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return v, nil
}
