// Package validate implements the two validation gates of the generation
// pipeline: the inbound TripRequest (client-supplied, checked before any
// quota is consumed) and the outbound Itinerary (model-produced, checked
// before anything trusts it). Both are pure: no I/O, a structured list of
// field-level violations on failure.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/govasco/go-trip-backend/internal/domain"
)

// FieldError is a single machine-readable violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// String renders the violation as "field: message" (no field prefix when the
// violation is not tied to one).
func (e FieldError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Format joins violations into a single display string, mirroring how the
// client renders validation summaries.
func Format(errs []FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

// destinationRE accepts letters (including Latin-1 accents), spaces, hyphens,
// apostrophes, and commas.
var destinationRE = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s\-',]+$`)

// v is the shared validator. Struct fields are reported by their JSON names
// so violations line up with the wire format.
var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = val.RegisterValidation("destination", func(fl validator.FieldLevel) bool {
		return destinationRE.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return IsValidInterest(fl.Field().String())
	})

	return val
}

// TripRequest validates a decoded generation request against the full input
// schema. It returns nil when the request is valid.
func TripRequest(req *domain.TripRequest) []FieldError {
	if err := v.Struct(req); err != nil {
		return fieldErrors(err, requestMessage)
	}
	return nil
}

// Itinerary validates a parsed generation result against the itinerary
// schema: required fields, 1..8 activities per day, nested meal and
// accommodation shapes. It returns nil when the payload is trustworthy.
func Itinerary(it *domain.Itinerary) []FieldError {
	if err := v.Struct(it); err != nil {
		return fieldErrors(err, itineraryMessage)
	}
	return nil
}

// fieldErrors converts validator output into the public violation list.
func fieldErrors(err error, message func(validator.FieldError) string) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath strips the root struct name from the namespace, leaving a wire
// path such as "days[0].activities".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// requestMessage maps a request violation to its user-facing message.
// Messages are in French, the application's display language.
func requestMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "destination":
		switch fe.Tag() {
		case "min":
			return "La destination doit faire au moins 2 caractères"
		case "max":
			return "La destination ne peut pas dépasser 100 caractères"
		case "destination":
			return "La destination ne peut contenir que des lettres, espaces et tirets"
		default:
			return "La destination est requise"
		}
	case "days":
		if fe.Tag() == "max" {
			return "Maximum 30 jours"
		}
		return "Minimum 1 jour"
	case "budget":
		return "Budget invalide. Choisissez: economic, balanced ou comfort"
	case "interests":
		switch fe.Tag() {
		case "max":
			return "Maximum 5 centres d'intérêt"
		case "interest":
			return "Centre d'intérêt invalide"
		default:
			return "Sélectionnez au moins 1 centre d'intérêt"
		}
	case "pace":
		return "Rythme invalide. Choisissez: relaxed, balanced ou intense"
	case "travelers":
		if fe.Tag() == "max" {
			return "Maximum 20 voyageurs"
		}
		return "Minimum 1 voyageur"
	case "startDate":
		return "Format de date invalide (YYYY-MM-DD)"
	default:
		// Interest slice elements surface as interests[i].
		if strings.HasPrefix(fe.Field(), "interests[") || fe.Tag() == "interest" {
			return "Centre d'intérêt invalide"
		}
		return "Valeur invalide"
	}
}

// itineraryMessage maps an itinerary violation to an internal diagnostic.
// These messages end up in logs and GENERATION_FAILED details, never in
// stored data, so they stay terse and English.
func itineraryMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "below minimum (" + fe.Param() + ")"
	case "max":
		return "above maximum (" + fe.Param() + ")"
	default:
		return "invalid value"
	}
}
