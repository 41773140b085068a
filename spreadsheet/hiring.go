package spreadsheet

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"runwayplanner/backend/models"
	"runwayplanner/backend/utils"
)

var ErrMissingColumns = errors.New("missing required columns")

// maxMonthOffset keeps absurd offsets out of int conversion.
const maxMonthOffset = 1200

var (
	roleKeywords   = []string{"role", "role name", "title", "position", "job"}
	countKeywords  = []string{"count", "heads", "headcount", "qty", "quantity", "number"}
	salaryKeywords = []string{"monthly salary", "salary", "monthly cost", "cost", "pay", "comp"}
	offsetKeywords = []string{"month offset", "month_offset", "offset", "start month", "month", "start"}
	deptKeywords   = []string{"department", "dept", "team", "function"}
)

// SkippedRow explains why an input row did not become a plan item. Row is the
// 1-based line in the file.
type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type HiringImport struct {
	Items   []models.HiringPlanItem `json:"items"`
	Skipped []SkippedRow            `json:"skipped"`
}

// ParseHiringPlan turns spreadsheet rows into hiring plan items. The month
// column may hold an offset or a YYYY-MM label, resolved against startMonth.
func ParseHiringPlan(rows [][]string, startMonth string) (HiringImport, error) {
	out := HiringImport{Items: []models.HiringPlanItem{}, Skipped: []SkippedRow{}}
	if len(rows) == 0 {
		return out, nil
	}
	headerIdx := detectHeader(rows)
	headers := rows[headerIdx]

	roleCol := pickColumn(headers, roleKeywords)
	salaryCol := pickColumn(headers, salaryKeywords, roleCol)
	offsetCol := pickColumn(headers, offsetKeywords, roleCol, salaryCol)
	if roleCol < 0 || salaryCol < 0 || offsetCol < 0 {
		return out, fmt.Errorf("%w: need role, salary and month columns, got %q", ErrMissingColumns, headers)
	}
	countCol := pickColumn(headers, countKeywords, roleCol, salaryCol, offsetCol)
	deptCol := pickColumn(headers, deptKeywords, roleCol, salaryCol, offsetCol, countCol)

	for i := headerIdx + 1; i < len(rows); i++ {
		r := rows[i]
		line := i + 1
		role := cell(r, roleCol)
		if role == "" && cell(r, salaryCol) == "" {
			continue
		}
		if role == "" {
			out.Skipped = append(out.Skipped, SkippedRow{line, "missing role"})
			continue
		}

		offset, err := parseOffset(cell(r, offsetCol), startMonth)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{line, err.Error()})
			continue
		}

		salary := toNumeric(cell(r, salaryCol))
		if math.IsNaN(salary) || salary < 0 {
			out.Skipped = append(out.Skipped, SkippedRow{line, "invalid salary"})
			continue
		}

		count := 1
		if countCol >= 0 && cell(r, countCol) != "" {
			n := toNumeric(cell(r, countCol))
			if math.IsNaN(n) || n < 1 || n > models.MaxHeadsPerItem || n != math.Trunc(n) {
				out.Skipped = append(out.Skipped, SkippedRow{line, "invalid count"})
				continue
			}
			count = int(n)
		}

		out.Items = append(out.Items, models.HiringPlanItem{
			MonthOffset:          offset,
			RoleName:             role,
			Count:                count,
			MonthlySalaryPerHead: salary,
			Department:           matchDepartment(cell(r, deptCol)),
		})
	}
	return out, nil
}

func parseOffset(v, startMonth string) (int, error) {
	if v == "" {
		return 0, errors.New("missing month")
	}
	if strings.Contains(v, "-") && len(v) == len(utils.MonthLayout) {
		if startMonth == "" {
			return 0, fmt.Errorf("month %s needs a start month", v)
		}
		n, err := utils.MonthsBetween(startMonth, v)
		if err != nil {
			return 0, fmt.Errorf("invalid month %s", v)
		}
		if n < 0 {
			return 0, fmt.Errorf("month %s is before %s", v, startMonth)
		}
		return n, nil
	}
	f := toNumeric(v)
	if math.IsNaN(f) || f < 0 || f > maxMonthOffset || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid month offset %s", v)
	}
	return int(f), nil
}

// matchDepartment maps free text such as "Eng" or "Customer Success" onto a
// known department, or leaves it empty.
func matchDepartment(v string) models.Department {
	t := strings.ToLower(strings.TrimSpace(v))
	if t == "" {
		return ""
	}
	t = strings.NewReplacer(" ", "_", "-", "_", "&", "_and_").Replace(t)
	for _, d := range models.Departments {
		if t == string(d) {
			return d
		}
	}
	switch {
	case strings.HasPrefix(t, "eng"), strings.HasPrefix(t, "dev"):
		return models.DeptEngineering
	case strings.HasPrefix(t, "prod"), strings.HasPrefix(t, "design"):
		return models.DeptProduct
	case strings.HasPrefix(t, "sales"), strings.HasPrefix(t, "bd"):
		return models.DeptSales
	case strings.HasPrefix(t, "market"), strings.HasPrefix(t, "growth"):
		return models.DeptMarketing
	case strings.Contains(t, "success"), strings.Contains(t, "support"):
		return models.DeptCustomerSuccess
	case strings.HasPrefix(t, "ops"), strings.HasPrefix(t, "operation"):
		return models.DeptOperations
	case strings.Contains(t, "admin"), strings.Contains(t, "finance"), t == "g_and_a", t == "ga", t == "hr":
		return models.DeptGA
	}
	return ""
}
