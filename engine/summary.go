package engine

import (
	"errors"

	"runwayplanner/backend/models"
)

var ErrEmptyProjection = errors.New("cannot summarize an empty projection")

// Summarize reduces a projection to its headline metrics. LTV uses the base
// churn rate, not the scenario-adjusted one.
func Summarize(p []models.MonthlyProjection, base models.AssumptionSet) (models.ProjectionSummary, error) {
	if len(p) == 0 {
		return models.ProjectionSummary{}, ErrEmptyProjection
	}
	first, last := p[0], p[len(p)-1]

	s := models.ProjectionSummary{
		StartingMRR:       first.MRR,
		EndingMRR:         last.MRR,
		StartingCash:      first.StartingCash,
		EndingCash:        last.EndingCash,
		StartingHeadcount: first.Headcount,
		EndingHeadcount:   last.Headcount,
		CACPaybackMonths:  base.PaybackPeriodMonths,
	}
	if first.MRR > 0 {
		s.MRRGrowthPercent = (last.MRR - first.MRR) / first.MRR * 100
	}

	peak := -1
	burning := 0
	var mrrTotal float64
	for i, m := range p {
		s.TotalRevenue += m.Revenue
		mrrTotal += m.MRR

		if m.NetBurn > 0 {
			s.TotalCashBurned += m.NetBurn
			burning++
			if peak < 0 || m.NetBurn > p[peak].NetBurn {
				peak = i
			}
		} else if s.BreakEvenMonth == nil {
			s.BreakEvenMonth = strPtr(m.Month)
		}

		if m.EndingCash <= 0 && s.ZeroCashMonth == nil {
			s.ZeroCashMonth = strPtr(m.Month)
		}
		if m.RunwayMonths != nil && (s.MinRunway == nil || *m.RunwayMonths < *s.MinRunway) {
			v := *m.RunwayMonths
			s.MinRunway = &v
		}
	}

	if peak < 0 {
		peak = len(p) - 1
	}
	s.PeakBurn = p[peak].NetBurn
	s.PeakBurnMonth = p[peak].Month
	if burning > 0 {
		s.AvgMonthlyBurn = s.TotalCashBurned / float64(burning)
	}

	s.LTV = LTV(mrrTotal/float64(len(p)), base.ChurnRate).Ptr()

	netNewARR := (last.MRR - first.MRR) * 12
	s.BurnMultiple = BurnMultiple(s.TotalCashBurned, netNewARR)
	return s, nil
}

func strPtr(s string) *string { return &s }
