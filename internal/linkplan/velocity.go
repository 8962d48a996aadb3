package linkplan

import (
	"github.com/sells-group/growth-cli/internal/config"
	"github.com/sells-group/growth-cli/internal/model"
)

// Projection summarizes the rest of a velocity plan from a given month.
type Projection struct {
	CurrentPhase    *model.VelocityPhase  `json:"current_phase,omitempty"`
	RemainingMonths []model.VelocityPhase `json:"remaining_months"`
	TotalTarget     int                   `json:"total_target"`
}

// DefaultVelocityPlan returns a six month ramp for a new domain.
func DefaultVelocityPlan() []model.VelocityPhase {
	return []model.VelocityPhase{
		{Month: 1, Phase: "foundation", TargetDomains: 10},
		{Month: 2, Phase: "foundation", TargetDomains: 15},
		{Month: 3, Phase: "growth", TargetDomains: 20},
		{Month: 4, Phase: "growth", TargetDomains: 25},
		{Month: 5, Phase: "authority", TargetDomains: 30},
		{Month: 6, Phase: "authority", TargetDomains: 35},
	}
}

// ProjectLinkVelocity keeps the phases at or after currentMonth, in plan
// order, and sums their targets. CurrentPhase is the first phase whose month
// equals currentMonth, if any.
func ProjectLinkVelocity(currentMonth int, plan []model.VelocityPhase) Projection {
	var p Projection
	for _, ph := range plan {
		if ph.Month < currentMonth {
			continue
		}
		p.RemainingMonths = append(p.RemainingMonths, ph)
		p.TotalTarget += ph.TargetDomains
		if ph.Month == currentMonth && p.CurrentPhase == nil {
			cur := ph
			p.CurrentPhase = &cur
		}
	}
	return p
}

// PlanFromConfig converts a configured plan. An empty config yields the
// default plan.
func PlanFromConfig(cfg config.VelocityConfig) []model.VelocityPhase {
	if len(cfg.Plan) == 0 {
		return DefaultVelocityPlan()
	}
	plan := make([]model.VelocityPhase, 0, len(cfg.Plan))
	for _, p := range cfg.Plan {
		plan = append(plan, model.VelocityPhase{Month: p.Month, Phase: p.Phase, TargetDomains: p.TargetDomains})
	}
	return plan
}
