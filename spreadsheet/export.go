package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"runwayplanner/backend/models"
	"runwayplanner/backend/utils"
)

const summarySheet = "Summary"

var monthlyHeaders = []string{
	"Month", "Starting Cash", "Ending Cash", "Net Burn", "Runway (months)",
	"New Customers", "Churned Customers", "Active Customers", "MRR", "Revenue",
	"COGS", "Gross Profit", "Salary Costs", "Fixed Costs", "Variable Costs",
	"Total Opex", "Headcount",
}

// monthlyRow renders one month with money rounded to cents. A profitable
// month has an empty runway cell.
func monthlyRow(m models.MonthlyProjection) []any {
	var runway any = ""
	if m.RunwayMonths != nil {
		runway = utils.Round2(*m.RunwayMonths)
	}
	return []any{
		m.Month, utils.Round2(m.StartingCash), utils.Round2(m.EndingCash), utils.Round2(m.NetBurn), runway,
		utils.Round2(m.NewCustomers), utils.Round2(m.ChurnedCustomers), utils.Round2(m.ActiveCustomers),
		utils.Round2(m.MRR), utils.Round2(m.Revenue), utils.Round2(m.COGS), utils.Round2(m.GrossProfit),
		utils.Round2(m.SalaryCosts), utils.Round2(m.FixedCosts), utils.Round2(m.VariableCosts),
		utils.Round2(m.TotalOpex), m.Headcount,
	}
}

func summaryRows(s models.ProjectionSummary) [][]any {
	orNA := func(v any, ok bool) any {
		if !ok {
			return "n/a"
		}
		return v
	}
	var zeroCash, breakEven string
	if s.ZeroCashMonth != nil {
		zeroCash = *s.ZeroCashMonth
	}
	if s.BreakEvenMonth != nil {
		breakEven = *s.BreakEvenMonth
	}
	var minRunway, ltv float64
	if s.MinRunway != nil {
		minRunway = utils.Round2(*s.MinRunway)
	}
	if s.LTV != nil {
		ltv = utils.Round2(*s.LTV)
	}
	return [][]any{
		{"Starting MRR", utils.Round2(s.StartingMRR)},
		{"Ending MRR", utils.Round2(s.EndingMRR)},
		{"MRR Growth %", utils.Round2(s.MRRGrowthPercent)},
		{"Peak Burn", utils.Round2(s.PeakBurn)},
		{"Peak Burn Month", s.PeakBurnMonth},
		{"Avg Monthly Burn", utils.Round2(s.AvgMonthlyBurn)},
		{"Starting Cash", utils.Round2(s.StartingCash)},
		{"Ending Cash", utils.Round2(s.EndingCash)},
		{"Total Cash Burned", utils.Round2(s.TotalCashBurned)},
		{"Zero Cash Month", orNA(zeroCash, s.ZeroCashMonth != nil)},
		{"Min Runway (months)", orNA(minRunway, s.MinRunway != nil)},
		{"Total Revenue", utils.Round2(s.TotalRevenue)},
		{"Starting Headcount", s.StartingHeadcount},
		{"Ending Headcount", s.EndingHeadcount},
		{"LTV", orNA(ltv, s.LTV != nil)},
		{"CAC Payback (months)", s.CACPaybackMonths},
		{"Break-even Month", orNA(breakEven, s.BreakEvenMonth != nil)},
		{"Burn Multiple", orNA(utils.Round2(s.BurnMultiple.Value), s.BurnMultiple.Defined)},
	}
}

// WriteProjectionXLSX writes a workbook with a Summary sheet and one sheet of
// monthly rows named sheetName.
func WriteProjectionXLSX(w io.Writer, run models.ProjectionRun, sheetName string) error {
	if sheetName == "" || sheetName == summarySheet {
		sheetName = "Monthly"
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return err
	}

	meta := [][]any{
		{"Scenario", run.ScenarioName},
		{"Run ID", run.ID},
	}
	row := 1
	for _, r := range append(meta, summaryRows(run.Summary)...) {
		cellName, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(summarySheet, cellName, &r); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", row-1), header); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return err
	}

	hdr := make([]any, len(monthlyHeaders))
	for i, h := range monthlyHeaders {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &hdr); err != nil {
		return err
	}
	for i, m := range run.Projections {
		vals := monthlyRow(m)
		cellName, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cellName, &vals); err != nil {
			return err
		}
	}
	last, _ := excelize.ColumnNumberToName(len(monthlyHeaders))
	if err := f.SetCellStyle(sheetName, "A1", last+"1", header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", last, 15); err != nil {
		return err
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}
	return f.Write(w)
}

// WriteProjectionCSV writes the monthly rows with a header line.
func WriteProjectionCSV(w io.Writer, projections []models.MonthlyProjection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(monthlyHeaders); err != nil {
		return err
	}
	for _, m := range projections {
		vals := monthlyRow(m)
		rec := make([]string, len(vals))
		for i, v := range vals {
			switch x := v.(type) {
			case float64:
				rec[i] = strconv.FormatFloat(x, 'f', -1, 64)
			case int:
				rec[i] = strconv.Itoa(x)
			case string:
				rec[i] = x
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
