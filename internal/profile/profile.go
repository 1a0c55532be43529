// Package profile provides functionality to load and validate the applicant
// profile configuration.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// DefaultHiringManagerFallback is used when the profile does not configure
// a hiring-manager fallback literal.
const DefaultHiringManagerFallback = "Hiring Manager"

// Applicant holds the applicant's identity fields.
type Applicant struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Address1 string `json:"address_line1,omitempty"`
	Address2 string `json:"address_line2,omitempty"`
	Location string `json:"home_location,omitempty"`
}

// Lists holds the reusable, ordered string lists. Order is significant:
// placeholder fan-out always slices from the head.
type Lists struct {
	Degrees        []string `json:"degrees"`
	Certifications []string `json:"certifications"`
	Skills         []string `json:"skills"`
	Stakeholders   []string `json:"stakeholders"`
	PresentedTo    []string `json:"presented_to"`
	Teams          []string `json:"teams"`
}

// Defaults holds per-field fallback values applied when neither overrides
// nor posting extraction produce a value.
type Defaults struct {
	CompanyFeatures       []string `json:"company_features"`
	HiringManagerFallback string   `json:"hiring_manager_fallback"`
	CityFallback          string   `json:"city_fallback"`
	RegionFallback        string   `json:"region_fallback"`
	CountryFallback       string   `json:"country_fallback"`
}

// Profile is the applicant's reusable configuration. It is loaded once per
// run and never mutated afterwards.
type Profile struct {
	Applicant Applicant `json:"applicant" validate:"required"`
	Lists     Lists     `json:"lists"`
	Defaults  Defaults  `json:"defaults"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a profile file.
func Load(path string) (*Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read profile file %s", path),
			Cause:   err,
		}
	}

	// Reject list fields that are present but not arrays of strings before
	// decoding into the struct, so the error names the offending field.
	if err := checkListFields(content, path); err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid JSON in %s", path),
			Cause:   err,
		}
	}

	if err := validate.Struct(&p); err != nil {
		return nil, &ValidationError{
			Message: fmt.Sprintf("profile %s failed validation", path),
			Cause:   err,
		}
	}

	if p.Defaults.HiringManagerFallback == "" {
		p.Defaults.HiringManagerFallback = DefaultHiringManagerFallback
	}

	return &p, nil
}

var listFields = []string{
	"degrees", "certifications", "skills", "stakeholders", "presented_to", "teams",
}

// checkListFields verifies every declared list is a JSON array of strings.
func checkListFields(content []byte, path string) error {
	var raw struct {
		Lists map[string]json.RawMessage `json:"lists"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return &LoadError{
			Message: fmt.Sprintf("invalid JSON in %s", path),
			Cause:   err,
		}
	}

	for _, field := range listFields {
		value, present := raw.Lists[field]
		if !present {
			continue
		}
		var items []string
		if err := json.Unmarshal(value, &items); err != nil {
			return &ValidationError{
				Message: fmt.Sprintf("expected lists.%s to be an array of strings in %s", field, path),
				Cause:   err,
			}
		}
	}
	return nil
}

// List returns the named list, or nil for an unknown name.
func (l *Lists) List(name string) []string {
	switch name {
	case "degrees":
		return l.Degrees
	case "certifications":
		return l.Certifications
	case "skills":
		return l.Skills
	case "stakeholders":
		return l.Stakeholders
	case "presented_to":
		return l.PresentedTo
	case "teams":
		return l.Teams
	}
	return nil
}
