package models

// PreviewRequest runs a scenario from inline inputs. Scenario selects a preset
// when no explicit overrides are given.
type PreviewRequest struct {
	ScenarioInput
	Scenario ScenarioKind `json:"scenario,omitempty"`
}

// RunRequest runs a scenario from stored inputs and persists the result. A nil
// AssumptionSetID picks the company's latest set.
type RunRequest struct {
	CompanyID       int64              `json:"company_id" binding:"required"`
	AssumptionSetID *int64             `json:"assumption_set_id,omitempty"`
	Scenario        ScenarioKind       `json:"scenario,omitempty"`
	ScenarioName    string             `json:"scenario_name,omitempty"`
	Overrides       *ScenarioOverrides `json:"scenario_overrides,omitempty"`
}

type CreateAssumptionsRequest struct {
	Name string `json:"name"`
	AssumptionSet
}

type SanityCheckRequest struct {
	Company     CompanyState  `json:"company"`
	Assumptions AssumptionSet `json:"assumptions"`
}

type BreakEvenRequest struct {
	Assumptions       AssumptionSet      `json:"assumptions"`
	HiringPlan        []HiringPlanItem   `json:"hiring_plan"`
	ScenarioOverrides *ScenarioOverrides `json:"scenario_overrides,omitempty"`
	MonthIndex        int                `json:"month_index"`
}

type AdviceRequest struct {
	Question string `json:"question" binding:"required"`
}
