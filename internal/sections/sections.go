// Package sections loads the lego-section configuration and assembles the
// per-section placeholder mappings used for rendering.
package sections

import (
	"encoding/json"
	"fmt"
	"os"
)

// Spec describes one lego section: an independently toggled, ordered
// template fragment. Duplicate ids are treated as independent entries.
type Spec struct {
	ID       string            `json:"id"`
	Template string            `json:"template"`
	Enabled  *bool             `json:"enabled,omitempty"`
	Context  map[string]string `json:"context,omitempty"`
}

// IsEnabled reports whether the section should render. Unset means enabled.
func (s *Spec) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// LoadSections reads the ordered section configuration. Array order is the
// render order.
func LoadSections(path string) ([]Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read sections file %s", path),
			Cause:   err,
		}
	}

	var raw struct {
		Sections []Spec `json:"sections"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("invalid JSON in %s", path),
			Cause:   err,
		}
	}

	for i, spec := range raw.Sections {
		if spec.Template == "" {
			return nil, &LoadError{
				Message: fmt.Sprintf("sections[%d] needs a template file reference in %s", i, path),
			}
		}
	}

	return raw.Sections, nil
}
