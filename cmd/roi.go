package main

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/growth-cli/internal/cost"
	"github.com/sells-group/growth-cli/internal/model"
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Compute ROI for a collaboration",
	Long: `Derives cost per registration, cost per paying user, ROI percentage,
revenue multiplier, net value and conversion rate. Ratios with a zero
denominator are reported as 0.

Examples:
  roi --cost 50000 --registrations 400 --paying 50 --revenue 150000`,
	RunE: runROI,
}

func init() {
	f := roiCmd.Flags()
	f.Float64("cost", 0, "total collaboration cost (INR)")
	f.Int("registrations", 0, "attributed registrations")
	f.Int("paying", 0, "attributed paying users")
	f.Float64("revenue", 0, "attributed revenue (INR)")

	rootCmd.AddCommand(roiCmd)
}

func runROI(cmd *cobra.Command, _ []string) error {
	spend, _ := cmd.Flags().GetFloat64("cost")
	regs, _ := cmd.Flags().GetInt("registrations")
	paying, _ := cmd.Flags().GetInt("paying")
	revenue, _ := cmd.Flags().GetFloat64("revenue")

	// Written so NaN fails too.
	if !(spend >= 0) || !(revenue >= 0) || math.IsInf(spend, 0) || math.IsInf(revenue, 0) || regs < 0 || paying < 0 {
		return eris.New("roi: flag values must be finite and >= 0")
	}

	r := cost.CalculateROI(spend, model.Metrics{Registrations: regs, PayingUsers: paying, Revenue: revenue})
	printROI(r)
	return nil
}

func printROI(r cost.ROIReport) {
	fmt.Printf("Cost:                  ₹%s\n", formatMoney(r.Cost))
	fmt.Printf("Revenue:               ₹%s\n", formatMoney(r.Revenue))
	fmt.Printf("Net value:             ₹%s\n", formatMoney(r.NetValue))
	fmt.Printf("ROI:                   %s%%\n", ftoa(r.ROIPercent))
	fmt.Printf("Revenue multiplier:    %sx\n", ftoa(r.RevenueMultiplier))
	fmt.Printf("Cost per registration: ₹%s\n", ftoa(r.CostPerRegistration))
	fmt.Printf("Cost per paying user:  ₹%s\n", ftoa(r.CostPerPayingUser))
	fmt.Printf("Conversion rate:       %s%%\n", ftoa(r.ConversionRate))
}
