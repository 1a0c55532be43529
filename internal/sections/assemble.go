package sections

import (
	"fmt"

	"github.com/jonathan/cover-letter-generator/internal/resolve"
)

// Counts holds the requested number of items per list-backed placeholder
// family. Zero values fall back to the defaults in DefaultCounts.
type Counts struct {
	CompanyFeatures int
	Degrees         int
	Certifications  int
	Skills          int
	Stakeholders    int
	PresentedTo     int
	Teams           int
}

// DefaultCounts returns the per-list defaults used when no --*-count flag
// is given.
func DefaultCounts() Counts {
	return Counts{
		CompanyFeatures: 3,
		Degrees:         4,
		Certifications:  4,
		Skills:          3,
		Stakeholders:    2,
		PresentedTo:     1,
		Teams:           4,
	}
}

// fanOutSpec pairs a resolved list with its placeholder prefix.
type fanOutSpec struct {
	list   string
	prefix string
	count  func(Counts) int
}

// fanOuts enumerates every list-backed placeholder family. The prefixes are
// a naming convention shared with the templates: degree1, certi2, skill3...
var fanOuts = []fanOutSpec{
	{"company_features", "company_feature", func(c Counts) int { return c.CompanyFeatures }},
	{"degrees", "degree", func(c Counts) int { return c.Degrees }},
	{"certifications", "certi", func(c Counts) int { return c.Certifications }},
	{"skills", "skill", func(c Counts) int { return c.Skills }},
	{"stakeholders", "stakeholder", func(c Counts) int { return c.Stakeholders }},
	{"presented_to", "presented", func(c Counts) int { return c.PresentedTo }},
	{"teams", "team", func(c Counts) int { return c.Teams }},
}

// PlaceholderName returns the enumerated placeholder for a prefix and
// zero-based index: PlaceholderName("skill", 0) == "skill1".
func PlaceholderName(prefix string, index int) string {
	return fmt.Sprintf("%s%d", prefix, index+1)
}

// Section is one assembled unit of rendering work: a template reference and
// the mapping it is rendered against. Sections never see each other's
// mappings.
type Section struct {
	ID       string
	Template string
	Mapping  map[string]string
}

// Assemble builds the ordered render sequence from the enabled specs.
// Disabled specs contribute nothing, not even placeholder resolution.
func Assemble(specs []Spec, fields *resolve.Fields, counts Counts) []Section {
	base := baseMapping(fields, counts)

	var assembled []Section
	for _, spec := range specs {
		if !spec.IsEnabled() {
			continue
		}
		mapping := make(map[string]string, len(base)+len(spec.Context))
		for key, value := range base {
			mapping[key] = value
		}
		for key, value := range spec.Context {
			mapping[key] = value
		}
		assembled = append(assembled, Section{
			ID:       spec.ID,
			Template: spec.Template,
			Mapping:  mapping,
		})
	}
	return assembled
}

// baseMapping combines all scalar fields with the fan-out placeholders.
// Indexes past the end of a list map to an empty string so templates can
// request more items than the profile carries.
func baseMapping(fields *resolve.Fields, counts Counts) map[string]string {
	mapping := make(map[string]string, len(fields.Scalars))
	for key, value := range fields.Scalars {
		mapping[key] = value
	}

	for _, fo := range fanOuts {
		items := fields.Lists[fo.list]
		count := fo.count(counts)
		for i := 0; i < count; i++ {
			value := ""
			if i < len(items) {
				value = items[i]
			}
			mapping[PlaceholderName(fo.prefix, i)] = value
		}
	}

	return mapping
}
