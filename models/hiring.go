package models

type Department string

const (
	DeptEngineering     Department = "engineering"
	DeptProduct         Department = "product"
	DeptSales           Department = "sales"
	DeptMarketing       Department = "marketing"
	DeptCustomerSuccess Department = "customer_success"
	DeptOperations      Department = "operations"
	DeptGA              Department = "g_and_a"
)

// MaxHeadsPerItem caps Count on a single plan item.
const MaxHeadsPerItem = 1000

// Departments lists every known department in display order.
var Departments = []Department{
	DeptEngineering, DeptProduct, DeptSales, DeptMarketing,
	DeptCustomerSuccess, DeptOperations, DeptGA,
}

// HiringPlanItem adds Count heads from MonthOffset onwards. There is no
// attrition: once active an item stays active for the rest of the horizon.
type HiringPlanItem struct {
	MonthOffset          int        `json:"month_offset" validate:"gte=0"`
	RoleName             string     `json:"role_name" validate:"required"`
	Count                int        `json:"count" validate:"gte=1,lte=1000"`
	MonthlySalaryPerHead float64    `json:"monthly_salary_per_head" validate:"gte=0"`
	Department           Department `json:"department" validate:"omitempty,oneof=engineering product sales marketing customer_success operations g_and_a"`
}
