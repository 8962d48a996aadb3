// Package linkplan turns link-building targets into concrete plans: anchor
// text allocations and monthly referring-domain velocity.
package linkplan

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/model"
)

// Share is the target percentage for one anchor category.
type Share struct {
	Category model.AnchorCategory `json:"category" yaml:"category"`
	Percent  float64              `json:"percent" yaml:"percent"`
}

// Distribution is an ordered set of anchor shares. Percentages are expected,
// not required, to sum to 100.
type Distribution []Share

// Allocation is the number of links assigned to one anchor category.
type Allocation struct {
	Category model.AnchorCategory `json:"category"`
	Count    int                  `json:"count"`
}

// Mix is the result of CalculateAnchorMix, in distribution order.
type Mix []Allocation

// Map returns the mix keyed by category. Repeated categories are summed.
func (m Mix) Map() map[model.AnchorCategory]int {
	out := make(map[model.AnchorCategory]int, len(m))
	for _, a := range m {
		out[a.Category] += a.Count
	}
	return out
}

// Total returns the number of links allocated.
func (m Mix) Total() int {
	var n int
	for _, a := range m {
		n += a.Count
	}
	return n
}

// DefaultDistribution returns the standard natural-looking anchor profile.
func DefaultDistribution() Distribution {
	return Distribution{
		{Category: model.AnchorBranded, Percent: 40},
		{Category: model.AnchorNaked, Percent: 25},
		{Category: model.AnchorPartial, Percent: 15},
		{Category: model.AnchorGeneric, Percent: 10},
		{Category: model.AnchorExact, Percent: 10},
	}
}

// PercentSum returns the sum of all shares.
func (d Distribution) PercentSum() float64 {
	var s float64
	for _, sh := range d {
		s += sh.Percent
	}
	return s
}

// CalculateAnchorMix splits totalLinks across the distribution so the counts
// sum exactly to totalLinks and none is negative. Every category but the last
// gets its rounded share; the last absorbs the remainder. An empty
// distribution uses DefaultDistribution.
func CalculateAnchorMix(totalLinks int, dist Distribution) Mix {
	if len(dist) == 0 {
		dist = DefaultDistribution()
	}
	if totalLinks < 0 {
		totalLinks = 0
	}

	mix := make(Mix, len(dist))
	allocated := 0
	last := len(dist) - 1
	for i, sh := range dist {
		mix[i].Category = sh.Category
		if i == last {
			break
		}
		pct := math.Max(0, sh.Percent)
		mix[i].Count = int(math.Round(float64(totalLinks) * pct / 100))
		allocated += mix[i].Count
	}
	mix[last].Count = totalLinks - allocated

	// Shares over 100% push the remainder negative; zero it and take the
	// deficit back from the largest allocations.
	if mix[last].Count < 0 {
		deficit := -mix[last].Count
		mix[last].Count = 0
		reclaim(mix, deficit)
	}

	if drift := totalLinks - mix.Total(); drift != 0 {
		mix[0].Count += drift
	}

	return mix
}

// reclaim removes deficit links, draining the largest allocations first.
// Ties keep declared order.
func reclaim(mix Mix, deficit int) {
	order := make([]int, len(mix))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return mix[order[a]].Count > mix[order[b]].Count
	})
	for _, idx := range order {
		if deficit == 0 {
			return
		}
		take := min(mix[idx].Count, deficit)
		mix[idx].Count -= take
		deficit -= take
	}
}

// DistributionFromConfig converts configured shares. An empty list yields
// nil, which CalculateAnchorMix treats as the default distribution.
func DistributionFromConfig(cfg config.AnchorsConfig) Distribution {
	if len(cfg.Distribution) == 0 {
		return nil
	}
	d := make(Distribution, 0, len(cfg.Distribution))
	for _, s := range cfg.Distribution {
		d = append(d, Share{
			Category: model.AnchorCategory(strings.ToLower(strings.TrimSpace(s.Category))),
			Percent:  s.Percent,
		})
	}
	return d
}

// ParseDistribution parses "branded=40,naked=25,..." into a Distribution,
// keeping the given order.
func ParseDistribution(s string) (Distribution, error) {
	var d Distribution
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, val, ok := strings.Cut(part, "=")
		if !ok {
			return nil, eris.Errorf("linkplan: invalid share %q, want category=percent", part)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return nil, eris.Errorf("linkplan: empty category in %q", part)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, eris.Wrapf(err, "linkplan: parse percent for %s", name)
		}
		d = append(d, Share{Category: model.AnchorCategory(name), Percent: pct})
	}
	return d, nil
}
