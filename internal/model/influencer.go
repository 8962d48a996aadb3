// Package model defines the records the growth engine scores and plans over.
package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Tier classifies an influencer by follower count.
type Tier string

const (
	TierNano  Tier = "NANO"
	TierMicro Tier = "MICRO"
	TierMid   Tier = "MID"
	TierMacro Tier = "MACRO"
)

// Follower thresholds (exclusive upper bounds) for each tier.
const (
	NanoMaxFollowers  = 10_000
	MicroMaxFollowers = 100_000
	MidMaxFollowers   = 500_000
)

// AllTiers returns every tier from smallest to largest.
func AllTiers() []Tier {
	return []Tier{TierNano, TierMicro, TierMid, TierMacro}
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierNano, TierMicro, TierMid, TierMacro:
		return true
	}
	return false
}

// TierForFollowers returns the tier for a follower count.
func TierForFollowers(followers int64) Tier {
	switch {
	case followers < NanoMaxFollowers:
		return TierNano
	case followers < MicroMaxFollowers:
		return TierMicro
	case followers < MidMaxFollowers:
		return TierMid
	default:
		return TierMacro
	}
}

// OutreachStatus is the position of an influencer in the outreach pipeline.
// Transitions are owned by the follow-up scheduler; this package only
// classifies states.
type OutreachStatus string

const (
	StatusNotContacted OutreachStatus = "NOT_CONTACTED"
	StatusPending      OutreachStatus = "PENDING"
	StatusResponded    OutreachStatus = "RESPONDED"
	StatusNegotiating  OutreachStatus = "NEGOTIATING"
	StatusActive       OutreachStatus = "ACTIVE"
	StatusDeclined     OutreachStatus = "DECLINED"
	StatusInactive     OutreachStatus = "INACTIVE"
)

// Valid reports whether s is a known status.
func (s OutreachStatus) Valid() bool {
	switch s {
	case StatusNotContacted, StatusPending, StatusResponded, StatusNegotiating,
		StatusActive, StatusDeclined, StatusInactive:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions happen from s.
func (s OutreachStatus) IsTerminal() bool {
	return s == StatusActive || s == StatusDeclined || s == StatusInactive
}

// Platform is one social channel an influencer publishes on.
type Platform struct {
	Name      string `json:"name" yaml:"name"`
	Followers int64  `json:"followers,omitempty" yaml:"followers,omitempty"`
	// EngagementRate is a percentage, e.g. 4.5 for 4.5%.
	EngagementRate float64 `json:"engagement_rate" yaml:"engagement_rate"`
}

// Collaboration is a completed campaign with its realized ROI (percent).
type Collaboration struct {
	CampaignID string  `json:"campaign_id" yaml:"campaign_id"`
	ROI        float64 `json:"roi" yaml:"roi"`
}

// Influencer is a creator record owned by the CRM.
type Influencer struct {
	ID             string          `json:"id" yaml:"id"`
	Name           string          `json:"name" yaml:"name"`
	Handle         string          `json:"handle,omitempty" yaml:"handle,omitempty"`
	Followers      int64           `json:"followers" yaml:"followers"`
	Tier           Tier            `json:"tier,omitempty" yaml:"tier,omitempty"`
	Niche          []string        `json:"niche,omitempty" yaml:"niche,omitempty"`
	PrimaryGame    string          `json:"primary_game" yaml:"primary_game"`
	Languages      []string        `json:"languages,omitempty" yaml:"languages,omitempty"`
	Regions        []string        `json:"regions,omitempty" yaml:"regions,omitempty"`
	Platforms      []Platform      `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	Collaborations []Collaboration `json:"collaborations,omitempty" yaml:"collaborations,omitempty"`
	Status         OutreachStatus  `json:"status,omitempty" yaml:"status,omitempty"`
}

// EffectiveTier returns the explicit tier, or the tier derived from followers.
func (i *Influencer) EffectiveTier() Tier {
	if i.Tier != "" {
		return i.Tier
	}
	return TierForFollowers(i.Followers)
}

// EffectiveStatus returns the status, treating an unset status as NOT_CONTACTED.
func (i *Influencer) EffectiveStatus() OutreachStatus {
	if i.Status == "" {
		return StatusNotContacted
	}
	return i.Status
}

// Validate checks the required fields and value ranges of an influencer.
func (i *Influencer) Validate() error {
	var errs []string

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(i.PrimaryGame) == "" {
		errs = append(errs, "primary_game is required")
	}
	if i.Followers < 0 {
		errs = append(errs, "followers must be >= 0")
	}
	if i.Tier != "" && !i.Tier.Valid() {
		errs = append(errs, fmt.Sprintf("unknown tier %q", i.Tier))
	}
	if i.Status != "" && !i.Status.Valid() {
		errs = append(errs, fmt.Sprintf("unknown status %q", i.Status))
	}
	for idx, p := range i.Platforms {
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("platforms[%d]: name is required", idx))
		}
		if !inRange(p.EngagementRate, 0, 100) {
			errs = append(errs, fmt.Sprintf("platforms[%d]: engagement_rate must be between 0 and 100", idx))
		}
	}
	for idx, c := range i.Collaborations {
		if math.IsNaN(c.ROI) || math.IsInf(c.ROI, 0) {
			errs = append(errs, fmt.Sprintf("collaborations[%d]: roi must be a finite number", idx))
		}
	}

	if len(errs) > 0 {
		return eris.Errorf("model: influencer %q validation failed: %s", i.ID, strings.Join(errs, "; "))
	}
	return nil
}

// Campaign is the brief influencers are matched against.
type Campaign struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name,omitempty" yaml:"name,omitempty"`
	Game            string   `json:"game" yaml:"game"`
	TargetLanguages []string `json:"target_languages,omitempty" yaml:"target_languages,omitempty"`
	TargetRegions   []string `json:"target_regions,omitempty" yaml:"target_regions,omitempty"`
	MinFitScore     float64  `json:"min_fit_score,omitempty" yaml:"min_fit_score,omitempty"`
}

// Validate checks the required fields of a campaign.
func (c *Campaign) Validate() error {
	var errs []string

	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(c.Game) == "" {
		errs = append(errs, "game is required")
	}
	if !inRange(c.MinFitScore, 0, 100) {
		errs = append(errs, "min_fit_score must be between 0 and 100")
	}

	if len(errs) > 0 {
		return eris.Errorf("model: campaign %q validation failed: %s", c.ID, strings.Join(errs, "; "))
	}
	return nil
}
