// Package registry is the catalogue of games available on the arcade.
// Games register their metadata in init() functions so the CLI and hosts can
// list them and resolve identifiers without importing every game package.
// The game state machines themselves are owned by the dispatcher.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string
	Title    string
	Kind     core.GameKind
	Controls string // one-line control summary for help output
}

var (
	games = make(map[string]GameInfo)
	mu    sync.RWMutex
)

// Register adds a game to the catalogue.
// Panics if a game with the same ID or kind is already registered.
func Register(info GameInfo) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := games[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	for _, g := range games {
		if g.Kind == info.Kind {
			panic(fmt.Sprintf("registry: kind %s already registered as %q", info.Kind, g.ID))
		}
	}

	games[info.ID] = info
}

// List returns all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(games))
	for _, g := range games {
		result = append(result, g)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Lookup returns the metadata for a game ID.
func Lookup(id string) (GameInfo, error) {
	mu.RLock()
	defer mu.RUnlock()

	g, ok := games[id]
	if !ok {
		return GameInfo{}, fmt.Errorf("registry: unknown game %q", id)
	}
	return g, nil
}

// ByKind returns the metadata for a game kind.
func ByKind(kind core.GameKind) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, g := range games {
		if g.Kind == kind {
			return g, true
		}
	}
	return GameInfo{}, false
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := games[id]
	return ok
}
