package models

import "time"

type Stage string

const (
	StageIdea    Stage = "idea"
	StagePreSeed Stage = "pre_seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series_a"
	StageSeriesB Stage = "series_b"
	StageGrowth  Stage = "growth"
)

type Sector string

const (
	SectorSaaS        Sector = "saas"
	SectorMarketplace Sector = "marketplace"
	SectorFintech     Sector = "fintech"
	SectorEcommerce   Sector = "ecommerce"
	SectorHealthtech  Sector = "healthtech"
	SectorOther       Sector = "other"
)

// CompanyState is the starting point of a projection. The engine never
// mutates it.
type CompanyState struct {
	Name             string  `json:"name" validate:"required"`
	Stage            Stage   `json:"stage" validate:"required,oneof=idea pre_seed seed series_a series_b growth"`
	Sector           Sector  `json:"sector" validate:"required,oneof=saas marketplace fintech ecommerce healthtech other"`
	Country          string  `json:"country" validate:"omitempty,len=2"`
	Currency         string  `json:"currency" validate:"omitempty,len=3"`
	StartingCash     float64 `json:"starting_cash" validate:"gte=0"`
	StartingMRR      float64 `json:"starting_mrr" validate:"gte=0"`
	CurrentHeadcount int     `json:"current_headcount" validate:"gte=0"`
}

// Company is a persisted CompanyState owned by a user.
type Company struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	CompanyState
}
