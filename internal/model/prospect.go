package model

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// LinkType is the kind of placement a backlink prospect offers.
type LinkType string

const (
	LinkTypeNews      LinkType = "news"
	LinkTypePR        LinkType = "pr"
	LinkTypeBlog      LinkType = "blog"
	LinkTypeResource  LinkType = "resource"
	LinkTypeCommunity LinkType = "community"
	LinkTypeForum     LinkType = "forum"
)

// Valid reports whether t is a known link type.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeNews, LinkTypePR, LinkTypeBlog, LinkTypeResource, LinkTypeCommunity, LinkTypeForum:
		return true
	}
	return false
}

// ProspectTier buckets prospects by domain authority.
type ProspectTier string

const (
	ProspectTier1 ProspectTier = "TIER1"
	ProspectTier2 ProspectTier = "TIER2"
	ProspectTier3 ProspectTier = "TIER3"
)

// AnchorCategory describes the style of a link's anchor text.
type AnchorCategory string

const (
	AnchorBranded AnchorCategory = "branded"
	AnchorNaked   AnchorCategory = "naked"
	AnchorPartial AnchorCategory = "partial"
	AnchorGeneric AnchorCategory = "generic"
	AnchorExact   AnchorCategory = "exact"
)

// Prospect is a site that might link to the platform.
type Prospect struct {
	Domain               string           `json:"domain" yaml:"domain"`
	DomainAuthority      float64          `json:"domain_authority" yaml:"domain_authority"`
	RelevanceScore       float64          `json:"relevance_score" yaml:"relevance_score"`
	MonthlyTraffic       int64            `json:"monthly_traffic" yaml:"monthly_traffic"`
	SpamScore            float64          `json:"spam_score" yaml:"spam_score"`
	LinkType             LinkType         `json:"link_type" yaml:"link_type"`
	RequiresPayment      bool             `json:"requires_payment,omitempty" yaml:"requires_payment,omitempty"`
	ExistingRelationship bool             `json:"existing_relationship,omitempty" yaml:"existing_relationship,omitempty"`
	PreferredAnchors     []AnchorCategory `json:"preferred_anchors,omitempty" yaml:"preferred_anchors,omitempty"`
	Notes                string           `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Validate checks the required fields and value ranges of a prospect.
func (p *Prospect) Validate() error {
	var errs []string

	if strings.TrimSpace(p.Domain) == "" {
		errs = append(errs, "domain is required")
	}
	if !inRange(p.DomainAuthority, 0, 100) {
		errs = append(errs, "domain_authority must be between 0 and 100")
	}
	if !inRange(p.RelevanceScore, 0, 10) {
		errs = append(errs, "relevance_score must be between 0 and 10")
	}
	if p.MonthlyTraffic < 0 {
		errs = append(errs, "monthly_traffic must be >= 0")
	}
	if !inRange(p.SpamScore, 0, 100) {
		errs = append(errs, "spam_score must be between 0 and 100")
	}
	if !p.LinkType.Valid() {
		errs = append(errs, fmt.Sprintf("unknown link_type %q", p.LinkType))
	}

	if len(errs) > 0 {
		return eris.Errorf("model: prospect %q validation failed: %s", p.Domain, strings.Join(errs, "; "))
	}
	return nil
}

// inRange reports whether v lies in [lo, hi]. NaN is never in range.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
