// Package registry holds the component lists and blueprints the keyword
// engine combines into search phrases.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// ListKey names a component list.
type ListKey string

const (
	KeyGames        ListKey = "games"
	KeyIntents      ListKey = "intents"
	KeyGeoTargets   ListKey = "geoTargets"
	KeyModifiers    ListKey = "modifiers"
	KeyFormats      ListKey = "formats"
	KeyPrizes       ListKey = "prizes"
	KeyPlatforms    ListKey = "platforms"
	KeyHindiPhrases ListKey = "hindiPhrases"
	KeyYears        ListKey = "years"
)

// ComponentList is an ordered, deduplicated list of lowercase tokens.
type ComponentList []string

// Blueprint is one cartesian-product shape plus its share of the output.
type Blueprint struct {
	Name   string    `json:"name" yaml:"name"`
	Keys   []ListKey `json:"keys" yaml:"keys"`
	Weight float64   `json:"weight" yaml:"weight"`
}

// Uses reports whether the blueprint draws from list k.
func (b Blueprint) Uses(k ListKey) bool {
	for _, key := range b.Keys {
		if key == k {
			return true
		}
	}
	return false
}

// IsHindi reports whether the blueprint produces Hindi-language phrases.
func (b Blueprint) IsHindi() bool { return b.Uses(KeyHindiPhrases) }

// IsYear reports whether the blueprint produces year-stamped phrases.
func (b Blueprint) IsYear() bool { return b.Uses(KeyYears) }

// Registry is an immutable set of component lists and blueprints.
type Registry struct {
	lists      map[ListKey]ComponentList
	blueprints []Blueprint
}

// New normalizes the given lists and validates the blueprints against them.
// Tokens are lowercased, whitespace-collapsed and deduplicated in first-seen
// order; empty tokens are dropped.
func New(lists map[ListKey][]string, blueprints []Blueprint) (*Registry, error) {
	r := &Registry{
		lists:      make(map[ListKey]ComponentList, len(lists)),
		blueprints: make([]Blueprint, 0, len(blueprints)),
	}
	for k, tokens := range lists {
		r.lists[k] = normalizeList(tokens)
	}

	var errs []string
	if len(blueprints) == 0 {
		errs = append(errs, "at least one blueprint is required")
	}
	for i, b := range blueprints {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if len(b.Keys) == 0 {
			errs = append(errs, fmt.Sprintf("blueprint %s: no keys", name))
		}
		if b.Weight <= 0 {
			errs = append(errs, fmt.Sprintf("blueprint %s: weight must be > 0", name))
		}
		for _, k := range b.Keys {
			if _, ok := r.lists[k]; !ok {
				errs = append(errs, fmt.Sprintf("blueprint %s: unknown list %q", name, k))
			}
		}
		r.blueprints = append(r.blueprints, Blueprint{
			Name:   name,
			Keys:   append([]ListKey(nil), b.Keys...),
			Weight: b.Weight,
		})
	}

	if len(errs) > 0 {
		return nil, eris.Errorf("registry: invalid registry: %s", strings.Join(errs, "; "))
	}
	return r, nil
}

// List returns a copy of the named list, or nil if it does not exist.
func (r *Registry) List(k ListKey) ComponentList {
	l, ok := r.lists[k]
	if !ok {
		return nil
	}
	return append(ComponentList(nil), l...)
}

// Keys returns the names of all lists, sorted.
func (r *Registry) Keys() []ListKey {
	keys := make([]ListKey, 0, len(r.lists))
	for k := range r.lists {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Blueprints returns a copy of the blueprints in declared order.
func (r *Registry) Blueprints() []Blueprint {
	out := make([]Blueprint, len(r.blueprints))
	for i, b := range r.blueprints {
		out[i] = Blueprint{Name: b.Name, Keys: append([]ListKey(nil), b.Keys...), Weight: b.Weight}
	}
	return out
}

// NormalizeToken lowercases a token and collapses its whitespace.
func NormalizeToken(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func normalizeList(tokens []string) ComponentList {
	seen := make(map[string]struct{}, len(tokens))
	out := make(ComponentList, 0, len(tokens))
	for _, t := range tokens {
		n := NormalizeToken(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
