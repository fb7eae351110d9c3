// Package domain defines the core types of the trip backend: the
// user-supplied generation request, the validated itinerary produced by the
// generation service, and the persisted trip record. Value types carry
// validation tags consumed by the validate package; the generation service's
// output is never treated as an Itinerary before passing that validation.
package domain

// Budget is the closed set of spending levels a caller can request.
type Budget string

// Budget levels.
const (
	BudgetEconomic Budget = "economic"
	BudgetBalanced Budget = "balanced"
	BudgetComfort  Budget = "comfort"
)

// Pace is the closed set of trip rhythms a caller can request.
type Pace string

// Pace levels.
const (
	PaceRelaxed  Pace = "relaxed"
	PaceBalanced Pace = "balanced"
	PaceIntense  Pace = "intense"
)

// Interest is one of the twelve selectable interest categories.
type Interest string

// Interest categories.
const (
	InterestCulture    Interest = "culture"
	InterestNature     Interest = "nature"
	InterestGastronomy Interest = "gastronomie"
	InterestHistory    Interest = "histoire"
	InterestBeach      Interest = "plage"
	InterestAdventure  Interest = "aventure"
	InterestShopping   Interest = "shopping"
	InterestRelaxation Interest = "relaxation"
	InterestOffbeat    Interest = "insolite"
	InterestSport      Interest = "sport"
	InterestNightlife  Interest = "vie_nocturne"
	InterestFamily     Interest = "famille"
)

// Interests enumerates every valid interest value, in display order.
var Interests = []Interest{
	InterestCulture, InterestNature, InterestGastronomy, InterestHistory,
	InterestBeach, InterestAdventure, InterestShopping, InterestRelaxation,
	InterestOffbeat, InterestSport, InterestNightlife, InterestFamily,
}

// TripRequest is the validated generation input. Field order is fixed and
// meaningful: the idempotency fingerprint is a digest of this struct's
// canonical JSON, so two requests with identical values always serialize
// identically regardless of the key order of the raw body.
type TripRequest struct {
	Destination string     `json:"destination" validate:"required,min=2,max=100,destination"`
	Days        int        `json:"days" validate:"required,min=1,max=30"`
	Budget      Budget     `json:"budget" validate:"required,oneof=economic balanced comfort"`
	Interests   []Interest `json:"interests" validate:"required,min=1,max=5,dive,interest"`
	Pace        Pace       `json:"pace" validate:"required,oneof=relaxed balanced intense"`
	Travelers   *int       `json:"travelers,omitempty" validate:"omitempty,min=1,max=20"`
	StartDate   string     `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Activity is a single scheduled item within a day.
type Activity struct {
	Time         string `json:"time" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Location     string `json:"location" validate:"required"`
	Duration     string `json:"duration,omitempty"`
	CostEstimate string `json:"costEstimate" validate:"required"`
	Tips         string `json:"tips,omitempty"`
}

// Meal is a restaurant or food recommendation.
type Meal struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required"`
	CostEstimate string `json:"costEstimate" validate:"required"`
	Description  string `json:"description,omitempty"`
}

// Meals groups the day's meal recommendations; each slot is optional.
type Meals struct {
	Breakfast *Meal `json:"breakfast,omitempty"`
	Lunch     *Meal `json:"lunch,omitempty"`
	Dinner    *Meal `json:"dinner,omitempty"`
}

// Accommodation is the suggested lodging for a night.
type Accommodation struct {
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required"`
	PriceRange   string `json:"priceRange" validate:"required"`
	Neighborhood string `json:"neighborhood,omitempty"`
}

// Day is one day of the itinerary. A day carries 1 to 8 activities.
type Day struct {
	Day           int            `json:"day" validate:"required,min=1"`
	Date          string         `json:"date,omitempty"`
	Theme         string         `json:"theme" validate:"required"`
	Activities    []Activity     `json:"activities" validate:"required,min=1,max=8,dive"`
	Meals         Meals          `json:"meals"`
	Accommodation *Accommodation `json:"accommodation,omitempty"`
	TransportTip  string         `json:"transportTip,omitempty"`
}

// BudgetSummary totals the estimated spend per category as display strings
// (ranges in euros, e.g. "240-360€").
type BudgetSummary struct {
	Accommodation string `json:"accommodation" validate:"required"`
	Food          string `json:"food" validate:"required"`
	Activities    string `json:"activities" validate:"required"`
	Transport     string `json:"transport" validate:"required"`
	Total         string `json:"total" validate:"required"`
}

// Itinerary is the trusted shape of a generated result. Values of this type
// only exist after passing full schema validation; the generation service
// itself is untrusted.
type Itinerary struct {
	Destination       string        `json:"destination" validate:"required"`
	Days              []Day         `json:"days" validate:"required,min=1,dive"`
	BudgetSummary     BudgetSummary `json:"budgetSummary" validate:"required"`
	Tips              []string      `json:"tips" validate:"required,dive,required"`
	BestTimeToVisit   string        `json:"bestTimeToVisit,omitempty"`
	PackingEssentials []string      `json:"packingEssentials,omitempty"`
}
