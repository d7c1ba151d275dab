package models

import (
	"fmt"
	"strings"
	"time"
)

// Category is one of the fixed construction service types the portal quotes.
type Category string

const (
	CategoryWholeBuild Category = "Whole Build"
	CategoryElectrical Category = "Electrical System"
	CategoryPaint      Category = "Paint & Finishes"
	CategoryFlooring   Category = "Flooring & Tiling"
	CategorySanitary   Category = "Sanitary & Utility"
	CategoryMasonry    Category = "Brickwork & Masonry"
)

// Categories returns all quotable service categories in display order.
func Categories() []Category {
	return []Category{
		CategoryWholeBuild,
		CategoryElectrical,
		CategoryPaint,
		CategoryFlooring,
		CategorySanitary,
		CategoryMasonry,
	}
}

// Valid reports whether c is one of the known service categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Grade is the finishing grade of a project, ordered Budget < Standard <
// Premium < Luxury.
type Grade string

const (
	GradeBudget   Grade = "Budget"
	GradeStandard Grade = "Standard"
	GradePremium  Grade = "Premium"
	GradeLuxury   Grade = "Luxury"
)

var gradeRanks = map[Grade]int{
	GradeBudget:   0,
	GradeStandard: 1,
	GradePremium:  2,
	GradeLuxury:   3,
}

// Valid reports whether g is a known finishing grade.
func (g Grade) Valid() bool {
	_, ok := gradeRanks[g]
	return ok
}

// Rank returns the position of g in the grade ordering, -1 if unknown.
func (g Grade) Rank() int {
	rank, ok := gradeRanks[g]
	if !ok {
		return -1
	}
	return rank
}

// ProjectRequest holds the user-supplied project parameters for one
// submission. It is not modified after validation.
type ProjectRequest struct {
	ClientName   string   `json:"client_name"`
	Category     Category `json:"category"`
	Zone         string   `json:"zone"`
	Grade        Grade    `json:"grade"`
	BuildingType string   `json:"building_type,omitempty"`
	AreaSqft     float64  `json:"area_sqft,omitempty"`
}

// Validate checks the request fields the estimation prompt depends on.
func (r ProjectRequest) Validate() error {
	if strings.TrimSpace(r.ClientName) == "" {
		return fmt.Errorf("client name is required")
	}
	if !r.Category.Valid() {
		return fmt.Errorf("unknown service category: %q", r.Category)
	}
	if !r.Grade.Valid() {
		return fmt.Errorf("unknown finishing grade: %q", r.Grade)
	}
	if r.AreaSqft < 0 {
		return fmt.Errorf("area must not be negative")
	}
	return nil
}

// Inputs flattens the request into the field map sent to the estimation
// service. Zero-valued optional fields are omitted.
func (r ProjectRequest) Inputs() map[string]any {
	inputs := map[string]any{
		"client":   r.ClientName,
		"location": r.Zone,
		"grade":    string(r.Grade),
	}
	if r.AreaSqft > 0 {
		inputs["sqft"] = r.AreaSqft
	}
	if r.BuildingType != "" {
		inputs["type"] = r.BuildingType
	}
	return inputs
}

// MaterialItem is one line of the bill of materials. JSON tags match the
// estimation service's reply contract.
type MaterialItem struct {
	Name            string  `json:"name"`
	Quantity        string  `json:"quantity"`
	UnitPrice       float64 `json:"unitPrice"`
	TotalPrice      float64 `json:"totalPrice"`
	BrandSuggestion string  `json:"brandSuggestion,omitempty"`
}

// TimelineEvent is one milestone of the projected build schedule.
type TimelineEvent struct {
	Week     int    `json:"week"`
	Activity string `json:"activity"`
	Status   string `json:"status,omitempty"`
}

// EstimateResult is the fully parsed reply of the estimation service. It is
// never partially constructed: parsing either yields all required fields or
// the submission is rejected.
type EstimateResult struct {
	Materials            []MaterialItem  `json:"materials"`
	LaborCost            float64         `json:"laborCost"`
	EstimatedDays        int             `json:"estimatedDays"`
	Precautions          []string        `json:"precautions"`
	TotalEstimatedCost   float64         `json:"totalEstimatedCost"`
	ExpertTips           string          `json:"expertTips"`
	VisualPrompt         string          `json:"visualPrompt"`
	Timeline             []TimelineEvent `json:"timeline,omitempty"`
	PaintCodeSuggestions []string        `json:"paintCodeSuggestions,omitempty"`
}

// Quote is one completed submission: the request, the estimate, and the
// resolved illustrative image (empty when none could be produced).
type Quote struct {
	Request   ProjectRequest `json:"request"`
	Estimate  EstimateResult `json:"estimate"`
	ImagePath string         `json:"image_path,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
