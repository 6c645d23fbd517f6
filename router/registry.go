package router

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ProfileRegistry is a thread-safe registry of model profiles and
// their aliases, with one profile designated as the default. It is
// populated once at startup and read-only afterwards, so concurrent
// lookups need no external coordination.
type ProfileRegistry struct {
	mu           sync.RWMutex
	profiles     map[string]*ModelProfile
	aliases      map[string]string // lowered alias -> model ID
	defaultModel string
}

// NewProfileRegistry creates an empty ProfileRegistry.
func NewProfileRegistry() *ProfileRegistry {
	return &ProfileRegistry{
		profiles: make(map[string]*ModelProfile),
		aliases:  make(map[string]string),
	}
}

// Register adds a profile under its ID. An existing profile with the
// same ID is replaced.
func (r *ProfileRegistry) Register(p *ModelProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
}

// RegisterAlias maps an alternate name (e.g. "western model") to a
// registered model ID. Returns an error if the target is unknown.
func (r *ProfileRegistry) RegisterAlias(alias, modelID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[modelID]; !ok {
		return fmt.Errorf("alias %q targets unregistered model %q", alias, modelID)
	}
	r.aliases[strings.ToLower(alias)] = modelID
	return nil
}

// Get retrieves a profile by ID.
func (r *ProfileRegistry) Get(id string) (*ModelProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[id]
	return p, ok
}

// SetDefault designates a registered profile as the default.
// Returns an error if the ID is not registered.
func (r *ProfileRegistry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[id]; !ok {
		return fmt.Errorf("model %q not registered", id)
	}
	r.defaultModel = id
	return nil
}

// Default returns the default profile.
// Returns an error if no default has been set.
func (r *ProfileRegistry) Default() (*ModelProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.defaultModel == "" {
		return nil, fmt.Errorf("no default model set")
	}
	p, ok := r.profiles[r.defaultModel]
	if !ok {
		return nil, fmt.Errorf("default model %q not found in registry", r.defaultModel)
	}
	return p, nil
}

// List returns the sorted IDs of all registered profiles.
func (r *ProfileRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered profiles.
func (r *ProfileRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.profiles)
}

// FindIn scans free text for any registered model ID or alias,
// case-insensitively, and returns the resolved model ID plus the name
// fragment that matched. Longer names are tried first so that
// "western model" wins over a model ID embedded in it.
func (r *ProfileRegistry) FindIn(text string) (modelID, matched string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lowered := strings.ToLower(text)

	type candidate struct {
		name   string
		target string
	}
	candidates := make([]candidate, 0, len(r.profiles)+len(r.aliases))
	for id := range r.profiles {
		candidates = append(candidates, candidate{name: strings.ToLower(id), target: id})
	}
	for alias, id := range r.aliases {
		candidates = append(candidates, candidate{name: alias, target: id})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if len(candidates[i].name) != len(candidates[j].name) {
			return len(candidates[i].name) > len(candidates[j].name)
		}
		return candidates[i].name < candidates[j].name
	})

	for _, c := range candidates {
		if c.name != "" && strings.Contains(lowered, c.name) {
			return c.target, c.name, true
		}
	}
	return "", "", false
}
