package spreadsheet

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"runwayplanner/backend/models"
)

const planCSV = `Hiring plan FY24,,,,
Role,Department,Count,Monthly Salary,Start Month
Engineer,Eng,3,"$10,000",0
Sales Rep,Sales,2,8000,2024-07
,,,,
Designer,Product,,9000,
Support,Customer Success,1.5,4000,3
,Operations,1,5000,4
Analyst,Finance,1,abc,1
`

func TestReadRowsCSV(t *testing.T) {
	rows, err := ReadRows([]byte(planCSV), ".CSV")
	require.NoError(t, err)
	assert.Len(t, rows, 9)
	assert.Equal(t, []string{"Role", "Department", "Count", "Monthly Salary", "Start Month"}, rows[1])
}

func TestReadRowsUnsupported(t *testing.T) {
	_, err := ReadRows([]byte("x"), ".pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseHiringPlan(t *testing.T) {
	rows, err := ReadRows([]byte(planCSV), ".csv")
	require.NoError(t, err)

	got, err := ParseHiringPlan(rows, "2024-01")
	require.NoError(t, err)

	assert.Equal(t, []models.HiringPlanItem{
		{MonthOffset: 0, RoleName: "Engineer", Count: 3, MonthlySalaryPerHead: 10000, Department: models.DeptEngineering},
		{MonthOffset: 6, RoleName: "Sales Rep", Count: 2, MonthlySalaryPerHead: 8000, Department: models.DeptSales},
	}, got.Items)

	reasons := map[int]string{}
	for _, s := range got.Skipped {
		reasons[s.Row] = s.Reason
	}
	assert.Equal(t, "missing month", reasons[6])
	assert.Equal(t, "invalid count", reasons[7])
	assert.Equal(t, "missing role", reasons[8])
	assert.Equal(t, "invalid salary", reasons[9])
	assert.Len(t, got.Skipped, 4)
}

func TestParseHiringPlanMonthLabelNeedsStart(t *testing.T) {
	rows := [][]string{
		{"Role", "Salary", "Month"},
		{"Engineer", "10000", "2024-03"},
		{"PM", "9000", "2023-12"},
	}
	got, err := ParseHiringPlan(rows, "")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	require.Len(t, got.Skipped, 2)

	got, err = ParseHiringPlan(rows, "2024-01")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].MonthOffset)
	assert.Equal(t, 1, got.Items[0].Count)
	assert.Contains(t, got.Skipped[0].Reason, "before")
}

func TestToNumeric(t *testing.T) {
	for in, want := range map[string]float64{
		"1.2e4":     12000,
		"2E0":       2,
		"-350.5":    -350.5,
		"$1,234.50": 1234.5,
		"€ 8 000":   8000,
		" 42 ":      42,
	} {
		assert.Equal(t, want, toNumeric(in), in)
	}
	for _, in := range []string{"", "abc", "Inf", "-inf", "NaN", "1e400"} {
		assert.True(t, math.IsNaN(toNumeric(in)), in)
	}
}

func TestParseHiringPlanExponentCells(t *testing.T) {
	rows := [][]string{
		{"Role", "Count", "Salary", "Month"},
		{"Engineer", "2e0", "1.2e4", "0"},
		{"Support", "1e30", "4000", "1"},
		{"Sales", "1001", "5000", "1"},
		{"Ops", "1", "5000", "1e30"},
	}
	got, err := ParseHiringPlan(rows, "2024-01")
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Count)
	assert.Equal(t, 12000.0, got.Items[0].MonthlySalaryPerHead)

	require.Len(t, got.Skipped, 3)
	assert.Equal(t, SkippedRow{3, "invalid count"}, got.Skipped[0])
	assert.Equal(t, SkippedRow{4, "invalid count"}, got.Skipped[1])
	assert.Equal(t, 5, got.Skipped[2].Row)
	assert.Contains(t, got.Skipped[2].Reason, "invalid month offset")
}

func TestParseHiringPlanMissingColumns(t *testing.T) {
	_, err := ParseHiringPlan([][]string{{"Name", "Notes"}, {"a", "b"}}, "2024-01")
	assert.ErrorIs(t, err, ErrMissingColumns)

	got, err := ParseHiringPlan(nil, "2024-01")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestPickColumnSkipsTaken(t *testing.T) {
	headers := []string{"Role", "Monthly Salary", "Hire Month"}
	salary := pickColumn(headers, salaryKeywords)
	assert.Equal(t, 1, salary)
	assert.Equal(t, 2, pickColumn(headers, offsetKeywords, salary))
	assert.Equal(t, -1, pickColumn(headers, deptKeywords))
}

func TestMatchDepartment(t *testing.T) {
	for in, want := range map[string]models.Department{
		"Engineering":      models.DeptEngineering,
		"dev":              models.DeptEngineering,
		"Customer Success": models.DeptCustomerSuccess,
		"G&A":              models.DeptGA,
		"marketing":        models.DeptMarketing,
		"":                 "",
		"legal":            "",
	} {
		assert.Equal(t, want, matchDepartment(in), in)
	}
}

func exportRun() models.ProjectionRun {
	runway := 12.345
	zero := "2025-06"
	return models.ProjectionRun{
		ID:           "run-1",
		ScenarioName: "base",
		ScenarioResult: models.ScenarioResult{
			Projections: []models.MonthlyProjection{
				{Month: "2024-01", StartingCash: 1000, EndingCash: 900.456, NetBurn: 99.544, RunwayMonths: &runway, MRR: 50, Revenue: 50, Headcount: 2},
				{Month: "2024-02", StartingCash: 900.456, EndingCash: 950, NetBurn: -49.544, MRR: 60, Revenue: 60, Headcount: 2},
			},
			Summary: models.ProjectionSummary{StartingMRR: 50, EndingMRR: 60, ZeroCashMonth: &zero, BurnMultiple: models.Undefined()},
		},
	}
}

func TestWriteProjectionCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectionCSV(&buf, exportRun().Projections))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Month,Starting Cash,Ending Cash"))
	assert.Equal(t, "2024-01,1000,900.46,99.54,12.35,0,0,0,50,50,0,0,0,0,0,0,2", lines[1])
	// profitable month leaves runway blank
	assert.Equal(t, "2024-02,900.46,950,-49.54,,0,0,0,60,60,0,0,0,0,0,0,2", lines[2])
}

func TestWriteProjectionXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectionXLSX(&buf, exportRun(), "Months"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Months"}, f.GetSheetList())

	v, err := f.GetCellValue("Months", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", v)
	v, err = f.GetCellValue("Months", "C2")
	require.NoError(t, err)
	assert.Equal(t, "900.46", v)

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	found := map[string]string{}
	for _, r := range rows {
		if len(r) == 2 {
			found[r[0]] = r[1]
		}
	}
	assert.Equal(t, "base", found["Scenario"])
	assert.Equal(t, "2025-06", found["Zero Cash Month"])
	assert.Equal(t, "n/a", found["Burn Multiple"])
	assert.Equal(t, "n/a", found["LTV"])
}

func TestWriteThenReadXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProjectionXLSX(&buf, exportRun(), ""))

	// ReadRows reads the first sheet
	rows, err := ReadRows(buf.Bytes(), ".xlsx")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, "Scenario", rows[0][0])
}
