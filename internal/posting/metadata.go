// Package posting provides functionality to fetch a job posting page and
// extract structured metadata from embedded JSON-LD and meta tags.
package posting

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Metadata contains the fields extracted from a job posting page.
// An empty string means the field is absent.
type Metadata struct {
	URL           string `json:"url,omitempty"`
	Company       string `json:"company,omitempty"`
	Title         string `json:"title,omitempty"`
	HiringManager string `json:"hiring_manager,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region,omitempty"`
	Country       string `json:"country,omitempty"`
	RawLocation   string `json:"raw_location,omitempty"`
	Description   string `json:"description,omitempty"`
}

// Found reports whether extraction produced at least one field beyond the URL.
func (m *Metadata) Found() bool {
	if m == nil {
		return false
	}
	return m.Company != "" || m.Title != "" || m.HiringManager != "" ||
		m.City != "" || m.Region != "" || m.Country != "" ||
		m.RawLocation != "" || m.Description != ""
}

// ToJSON marshals Metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// cleanText collapses runs of whitespace to single spaces and trims.
func cleanText(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// splitLocationText splits a free-form "City, Region, Country" string.
// Fewer parts fill from the left; extra parts are ignored.
func splitLocationText(value string) (city, region, country string) {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch {
	case len(parts) >= 3:
		return parts[0], parts[1], parts[2]
	case len(parts) == 2:
		return parts[0], parts[1], ""
	case len(parts) == 1:
		return parts[0], "", ""
	}
	return "", "", ""
}
