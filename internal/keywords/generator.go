// Package keywords synthesizes bounded, deduplicated keyword universes from
// registry blueprints.
package keywords

import (
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/sells-group/growth-cli/internal/registry"
)

// Options narrows and sizes a keyword universe. The zero value of the
// Exclude toggles keeps Hindi and year blueprints.
type Options struct {
	Limit int `json:"limit"`

	// Case-insensitive allow-lists. An empty slice means no filtering.
	Games      []string `json:"games,omitempty"`
	Intents    []string `json:"intents,omitempty"`
	GeoTargets []string `json:"geo_targets,omitempty"`
	Modifiers  []string `json:"modifiers,omitempty"`

	ExcludeHindi bool `json:"exclude_hindi,omitempty"`
	ExcludeYears bool `json:"exclude_years,omitempty"`
}

func (o Options) isZero() bool {
	return o.Limit == 0 && len(o.Games) == 0 && len(o.Intents) == 0 &&
		len(o.GeoTargets) == 0 && len(o.Modifiers) == 0 &&
		!o.ExcludeHindi && !o.ExcludeYears
}

func (o Options) filters() map[registry.ListKey][]string {
	return map[registry.ListKey][]string{
		registry.KeyGames:      o.Games,
		registry.KeyIntents:    o.Intents,
		registry.KeyGeoTargets: o.GeoTargets,
		registry.KeyModifiers:  o.Modifiers,
	}
}

// Generator builds keyword universes from a registry.
type Generator struct {
	reg *registry.Registry
}

// NewGenerator returns a Generator over reg, or over the default registry if
// reg is nil.
func NewGenerator(reg *registry.Registry) *Generator {
	if reg == nil {
		reg = registry.Default()
	}
	return &Generator{reg: reg}
}

// Generate returns the keyword universe for opts using the default registry.
func Generate(opts Options) []string {
	return NewGenerator(nil).Generate(opts)
}

// Generate returns at most opts.Limit unique phrases in first-insertion order.
// Output is deterministic for a fixed registry and options.
func (g *Generator) Generate(opts Options) []string {
	out, _ := g.generate(opts)
	return out
}

// generate also reports how many candidate phrases were visited, which is
// bounded by what the quotas need rather than the full product size.
func (g *Generator) generate(opts Options) ([]string, int) {
	limit := opts.Limit
	if limit < 1 {
		limit = 1
	}

	lists := g.filteredLists(opts)

	var (
		eligible    []registry.Blueprint
		totalWeight float64
	)
	for _, bp := range g.reg.Blueprints() {
		if opts.ExcludeHindi && bp.IsHindi() {
			continue
		}
		if opts.ExcludeYears && bp.IsYear() {
			continue
		}
		if !hasAllLists(bp, lists) {
			zap.L().Debug("keywords: blueprint skipped, empty component list",
				zap.String("blueprint", bp.Name),
			)
			continue
		}
		eligible = append(eligible, bp)
		totalWeight += bp.Weight
	}

	set := newOrderedSet(limit)
	visited := 0

	for _, bp := range eligible {
		if set.Len() >= limit {
			break
		}
		quota := int(math.Round(bp.Weight / totalWeight * float64(limit)))
		if quota < 1 {
			quota = 1
		}
		added := 0
		walkProduct(productLists(bp, lists), func(phrase string) bool {
			visited++
			if set.Add(phrase) {
				added++
			}
			return added < quota && set.Len() < limit
		})
		zap.L().Debug("keywords: blueprint walked",
			zap.String("blueprint", bp.Name),
			zap.Int("quota", quota),
			zap.Int("added", added),
		)
	}

	// Backfill: blueprints whose product was smaller than their quota leave
	// room that the others can fill.
	for _, bp := range eligible {
		if set.Len() >= limit {
			break
		}
		walkProduct(productLists(bp, lists), func(phrase string) bool {
			visited++
			set.Add(phrase)
			return set.Len() < limit
		})
	}

	return set.Items(), visited
}

// filteredLists returns every registry list, with the filterable lists
// narrowed to the caller's allow-lists.
func (g *Generator) filteredLists(opts Options) map[registry.ListKey][]string {
	fold := cases.Fold()
	filters := opts.filters()

	lists := make(map[registry.ListKey][]string)
	for _, k := range g.reg.Keys() {
		tokens := g.reg.List(k)
		allow := filters[k]
		if len(allow) == 0 {
			lists[k] = tokens
			continue
		}

		allowed := make(map[string]struct{}, len(allow))
		for _, a := range allow {
			allowed[fold.String(registry.NormalizeToken(a))] = struct{}{}
		}
		kept := make([]string, 0, len(allow))
		for _, t := range tokens {
			if _, ok := allowed[fold.String(t)]; ok {
				kept = append(kept, t)
			}
		}
		lists[k] = kept
	}
	return lists
}

func hasAllLists(bp registry.Blueprint, lists map[registry.ListKey][]string) bool {
	for _, k := range bp.Keys {
		if len(lists[k]) == 0 {
			return false
		}
	}
	return true
}

func productLists(bp registry.Blueprint, lists map[registry.ListKey][]string) [][]string {
	out := make([][]string, len(bp.Keys))
	for i, k := range bp.Keys {
		out[i] = lists[k]
	}
	return out
}

// walkProduct visits the cartesian product of lists depth-first, left to
// right, calling emit with each joined phrase until emit returns false.
func walkProduct(lists [][]string, emit func(string) bool) {
	if len(lists) == 0 {
		return
	}
	parts := make([]string, len(lists))
	var walk func(depth int) bool
	walk = func(depth int) bool {
		if depth == len(lists) {
			return emit(joinPhrase(parts))
		}
		for _, tok := range lists[depth] {
			parts[depth] = tok
			if !walk(depth + 1) {
				return false
			}
		}
		return true
	}
	walk(0)
}

func joinPhrase(parts []string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// orderedSet is an insertion-ordered string set.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet(limit int) *orderedSet {
	capacity := min(limit, 4096)
	return &orderedSet{
		items: make([]string, 0, capacity),
		seen:  make(map[string]struct{}, capacity),
	}
}

// Add inserts v and reports whether it was new.
func (s *orderedSet) Add(v string) bool {
	if v == "" {
		return false
	}
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) Len() int { return len(s.items) }

func (s *orderedSet) Items() []string { return s.items }
