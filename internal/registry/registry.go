// Package registry provides a global registry of color palettes.
// Themes register themselves in init() functions, allowing the frontends
// to discover and select them by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultTheme is the palette used when none is selected.
const DefaultTheme = "classic"

// Palette assigns colors to every element of the playing field.
type Palette struct {
	// ID is the unique identifier used by --theme and display.theme.
	ID string
	// Title is a human-readable name for listings.
	Title string

	Field       core.Color
	Net         core.Color
	Score       core.Color
	LeftPaddle  core.Color
	RightPaddle core.Color
	Ball        core.Color

	// Backdrop, Banner and Caption color the game-over screen.
	Backdrop core.Color
	Banner   core.Color
	Caption  core.Color
}

// Info contains metadata about a registered palette.
type Info struct {
	ID    string
	Title string
}

var (
	palettes = make(map[string]Palette)
	mu       sync.RWMutex
)

// Register adds a palette to the registry.
// Typically called from an init() function.
// Panics if the ID is empty or a palette with the same ID is already registered.
func Register(p Palette) {
	mu.Lock()
	defer mu.Unlock()

	if p.ID == "" {
		panic("registry: palette without ID")
	}
	if _, exists := palettes[p.ID]; exists {
		panic(fmt.Sprintf("registry: palette %q already registered", p.ID))
	}

	palettes[p.ID] = p
}

// List returns information about all registered palettes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(palettes))
	for id, p := range palettes {
		result = append(result, Info{
			ID:    id,
			Title: p.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the palette registered under id.
// Returns an error if the ID is not registered.
func Get(id string) (Palette, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := palettes[id]
	if !ok {
		return Palette{}, fmt.Errorf("registry: unknown theme %q", id)
	}

	return p, nil
}

// Exists checks if a palette with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := palettes[id]
	return ok
}
