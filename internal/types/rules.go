// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// DimensionWeights combines the four dimension scores into one overall score.
// The weights of a registered industry must sum to 1.0.
type DimensionWeights struct {
	Skills     float64 `json:"skills" validate:"gte=0,lte=1"`
	Experience float64 `json:"experience" validate:"gte=0,lte=1"`
	ATS        float64 `json:"ats" validate:"gte=0,lte=1"`
	Location   float64 `json:"location" validate:"gte=0,lte=1"`
}

// weightSumTolerance absorbs float literal rounding in rule tables.
const weightSumTolerance = 0.001

// Validate checks that the weights form a proper convex combination.
func (w DimensionWeights) Validate() error {
	validate := validator.New()
	if err := validate.Struct(w); err != nil {
		return err
	}
	sum := w.Skills + w.Experience + w.ATS + w.Location
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("dimension weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// IndustryRules is the per-industry configuration: which CV sections an ATS
// expects, formatting rules, required terms, and the dimension weight vector.
type IndustryRules struct {
	Industry             string           `json:"industry" validate:"required"`
	RequiredSections     []string         `json:"requiredSections" validate:"required,min=1"`
	KeywordDensity       float64          `json:"keywordDensity" validate:"gt=0,lte=1"`
	FormatRules          []string         `json:"formatRules"`
	SpecificRequirements []string         `json:"specificRequirements"`
	Weights              DimensionWeights `json:"weights"`
}

// Validate checks the structural tags and the weight-sum invariant. Called
// once at registry load, not per scoring call.
func (r *IndustryRules) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("industry %q: %w", r.Industry, err)
	}
	if err := r.Weights.Validate(); err != nil {
		return fmt.Errorf("industry %q: %w", r.Industry, err)
	}
	return nil
}
