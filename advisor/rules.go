package advisor

import (
	"fmt"

	"runwayplanner/backend/models"
	"runwayplanner/backend/utils"
)

// Facts is everything the rules look at.
type Facts struct {
	Company     models.CompanyState
	Assumptions models.AssumptionSet
	Summary     models.ProjectionSummary
	Sanity      models.SanityCheckResult
}

func (f Facts) money(v float64) string { return utils.FormatMoney(v, f.Company.Currency) }

func runwayAdvice(f Facts) []string {
	s := f.Summary
	out := []string{}
	if s.ZeroCashMonth == nil {
		out = append(out, fmt.Sprintf("Cash stays positive through the horizon, ending at %s.", f.money(s.EndingCash)))
	} else {
		out = append(out, fmt.Sprintf("Cash runs out in %s. Minimum runway is %s.", *s.ZeroCashMonth, utils.FormatMonths(s.MinRunway)))
		out = append(out, "Start fundraising at least 6 months before that date or cut burn now.")
	}
	if s.BreakEvenMonth != nil {
		out = append(out, fmt.Sprintf("The model reaches break-even in %s.", *s.BreakEvenMonth))
	}
	return out
}

func burnAdvice(f Facts) []string {
	s := f.Summary
	out := []string{
		fmt.Sprintf("Average monthly burn is %s, peaking at %s in %s.", f.money(s.AvgMonthlyBurn), f.money(s.PeakBurn), s.PeakBurnMonth),
		fmt.Sprintf("Total cash burned over the horizon: %s.", f.money(s.TotalCashBurned)),
	}
	if s.BurnMultiple.Defined {
		switch {
		case s.BurnMultiple.Value > 2:
			out = append(out, fmt.Sprintf("Burn multiple of %.1f is high; each dollar of new ARR costs more than $2.", s.BurnMultiple.Value))
		case s.BurnMultiple.Value > 1:
			out = append(out, fmt.Sprintf("Burn multiple of %.1f is acceptable but leaves room to improve.", s.BurnMultiple.Value))
		default:
			out = append(out, fmt.Sprintf("Burn multiple of %.1f is efficient.", s.BurnMultiple.Value))
		}
	} else {
		out = append(out, "ARR does not grow over the horizon, so burn buys no growth.")
	}
	return out
}

func growthAdvice(f Facts) []string {
	s := f.Summary
	out := []string{
		fmt.Sprintf("MRR moves from %s to %s (%s).", f.money(s.StartingMRR), f.money(s.EndingMRR), utils.FormatPercent(s.MRRGrowthPercent, 1)),
	}
	if f.Assumptions.ChurnRate > 0.05 {
		out = append(out, fmt.Sprintf("Monthly churn of %s erodes growth; retention work pays back faster than acquisition.", utils.FormatPercent(f.Assumptions.ChurnRate*100, 1)))
	}
	if f.Assumptions.ExpansionRevenueRate < 0.01 {
		out = append(out, "Expansion revenue is negligible; upsell paths would compound MRR.")
	}
	return out
}

func unitEconomicsAdvice(f Facts) []string {
	s := f.Summary
	out := []string{}
	if s.LTV != nil {
		ratio := LTVToCACText(*s.LTV, f.Assumptions.CAC)
		out = append(out, fmt.Sprintf("Projected LTV is %s against a CAC of %s (%s).", f.money(*s.LTV), f.money(f.Assumptions.CAC), ratio))
	} else {
		out = append(out, "With zero churn, LTV is unbounded; check the churn assumption.")
	}
	out = append(out, fmt.Sprintf("CAC payback is %d months at %s gross margin.", s.CACPaybackMonths, utils.FormatPercent(f.Assumptions.GrossMarginPercent, 0)))
	return out
}

// LTVToCACText renders the ratio, or "n/a" when CAC is zero.
func LTVToCACText(ltv, cac float64) string {
	if cac == 0 {
		return "LTV:CAC n/a"
	}
	return fmt.Sprintf("LTV:CAC %.1fx", ltv/cac)
}

func hiringAdvice(f Facts) []string {
	s := f.Summary
	out := []string{
		fmt.Sprintf("Headcount goes from %d to %d.", s.StartingHeadcount, s.EndingHeadcount),
	}
	if s.ZeroCashMonth != nil && s.EndingHeadcount > s.StartingHeadcount {
		out = append(out, "Hiring runs past the zero-cash month; consider delaying later hires until the next raise.")
	}
	return out
}

func generalAdvice(f Facts) []string {
	out := runwayAdvice(f)
	out = append(out, growthAdvice(f)[0])
	return out
}

// sanityPoints lists high-severity warnings, which apply to every intent.
func sanityPoints(r models.SanityCheckResult) []string {
	out := []string{}
	for _, w := range r.Warnings {
		if w.Severity == models.SeverityHigh {
			out = append(out, fmt.Sprintf("Check %s: %s", w.Field, w.Message))
		}
	}
	return out
}
