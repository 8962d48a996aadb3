package model

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// DeliverableType is a unit of sponsored content.
type DeliverableType string

const (
	DeliverableVideo  DeliverableType = "video"
	DeliverableShort  DeliverableType = "short"
	DeliverablePost   DeliverableType = "post"
	DeliverableStream DeliverableType = "stream"
)

// Deliverable is a quantity of one content type in a collaboration.
type Deliverable struct {
	Type     DeliverableType `json:"type" yaml:"type"`
	Quantity int             `json:"quantity" yaml:"quantity"`
}

// Validate checks that a deliverable names a type and a non-negative quantity.
// Unknown types are allowed; they are priced at zero.
func (d *Deliverable) Validate() error {
	var errs []string
	if strings.TrimSpace(string(d.Type)) == "" {
		errs = append(errs, "type is required")
	}
	if d.Quantity < 0 {
		errs = append(errs, fmt.Sprintf("quantity must be >= 0, got %d", d.Quantity))
	}
	if len(errs) > 0 {
		return eris.Errorf("model: deliverable validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Metrics are the attributed outcomes of a collaboration.
type Metrics struct {
	Registrations int     `json:"registrations" yaml:"registrations"`
	PayingUsers   int     `json:"paying_users" yaml:"paying_users"`
	Revenue       float64 `json:"revenue" yaml:"revenue"`
}

// VelocityPhase is one month of a link-building plan.
type VelocityPhase struct {
	Month         int    `json:"month" yaml:"month" mapstructure:"month"`
	Phase         string `json:"phase" yaml:"phase" mapstructure:"phase"`
	TargetDomains int    `json:"target_domains" yaml:"target_domains" mapstructure:"target_domains"`
}

// Validate checks that a phase has a positive month and a non-negative target.
func (p *VelocityPhase) Validate() error {
	var errs []string
	if p.Month < 1 {
		errs = append(errs, fmt.Sprintf("month must be >= 1, got %d", p.Month))
	}
	if p.TargetDomains < 0 {
		errs = append(errs, fmt.Sprintf("target_domains must be >= 0, got %d", p.TargetDomains))
	}
	if len(errs) > 0 {
		return eris.Errorf("model: velocity phase validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
