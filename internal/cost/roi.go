package cost

import "github.com/sells-group/growth-cli/internal/model"

// ROIReport is the attributed return on one collaboration.
type ROIReport struct {
	Cost                float64 `json:"cost"`
	Revenue             float64 `json:"revenue"`
	Registrations       int     `json:"registrations"`
	PayingUsers         int     `json:"paying_users"`
	CostPerRegistration float64 `json:"cost_per_registration"`
	CostPerPayingUser   float64 `json:"cost_per_paying_user"`
	ROIPercent          float64 `json:"roi_percent"`
	RevenueMultiplier   float64 `json:"revenue_multiplier"`
	NetValue            float64 `json:"net_value"`
	ConversionRate      float64 `json:"conversion_rate"`
}

// CalculateROI derives unit costs and return ratios. Any ratio whose
// denominator is zero is reported as 0. Values are rounded to 2 decimals.
func CalculateROI(cost float64, m model.Metrics) ROIReport {
	r := ROIReport{
		Cost:          round2(cost),
		Revenue:       round2(m.Revenue),
		Registrations: m.Registrations,
		PayingUsers:   m.PayingUsers,
		NetValue:      round2(m.Revenue - cost),
	}

	if m.Registrations > 0 {
		r.CostPerRegistration = round2(cost / float64(m.Registrations))
		r.ConversionRate = round2(float64(m.PayingUsers) / float64(m.Registrations) * 100)
	}
	if m.PayingUsers > 0 {
		r.CostPerPayingUser = round2(cost / float64(m.PayingUsers))
	}
	if cost != 0 {
		r.ROIPercent = round2((m.Revenue - cost) / cost * 100)
		r.RevenueMultiplier = round2(m.Revenue / cost)
	}

	return r
}
