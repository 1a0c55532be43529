// Package resolve merges posting metadata, user overrides, per-run arguments
// and profile defaults into the resolved field set consumed by rendering.
package resolve

import (
	"encoding/json"
	"fmt"
	"os"
)

// Overrides holds user-supplied manual values for posting fields. Scalar
// values live in Values; the two list-valued keys get their own slots.
type Overrides struct {
	Values          map[string]string
	CompanyFeatures []string
	Skills          []string
}

// EmptyOverrides returns an Overrides with no values set.
func EmptyOverrides() *Overrides {
	return &Overrides{Values: map[string]string{}}
}

// Get returns the override for a field, or "" when unset.
func (o *Overrides) Get(field string) string {
	if o == nil {
		return ""
	}
	return o.Values[field]
}

// LoadOverrides reads an optional overrides file. An empty path returns
// empty overrides; a present but unreadable or invalid file is an error.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return EmptyOverrides(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ResolveError{
			Message: fmt.Sprintf("failed to read overrides file %s", path),
			Cause:   err,
		}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &ResolveError{
			Message: fmt.Sprintf("invalid JSON in %s", path),
			Cause:   err,
		}
	}

	overrides := EmptyOverrides()
	for key, value := range raw {
		switch key {
		case "company_features", "skills":
			var items []string
			if err := json.Unmarshal(value, &items); err != nil {
				return nil, &ResolveError{
					Message: fmt.Sprintf("expected %q to be an array of strings in %s", key, path),
					Cause:   err,
				}
			}
			if key == "company_features" {
				overrides.CompanyFeatures = items
			} else {
				overrides.Skills = items
			}
		default:
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, &ResolveError{
					Message: fmt.Sprintf("expected %q to be a string in %s", key, path),
					Cause:   err,
				}
			}
			overrides.Values[key] = s
		}
	}

	return overrides, nil
}
