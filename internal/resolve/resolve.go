package resolve

import (
	"strings"
	"time"

	"github.com/jonathan/cover-letter-generator/internal/posting"
	"github.com/jonathan/cover-letter-generator/internal/profile"
)

// RuntimeArgs holds the per-invocation list values supplied on the command
// line. When set they fully replace profile defaults, never merge with them.
type RuntimeArgs struct {
	CompanyFeatures []string
	Skills          []string
}

// Fields is the resolved field set consumed by section assembly. Scalars
// always carry every known field name, possibly with an empty value. Built
// once per run and never mutated afterwards.
type Fields struct {
	Scalars map[string]string
	Lists   map[string][]string
}

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// Resolve merges all sources into one field set. Scalar precedence per
// field, highest first: overrides file, posting extraction, profile fallback
// default. List precedence: runtime args, overrides file, profile values.
func Resolve(p *profile.Profile, meta *posting.Metadata, overrides *Overrides, args *RuntimeArgs) *Fields {
	if meta == nil {
		meta = &posting.Metadata{}
	}
	if overrides == nil {
		overrides = EmptyOverrides()
	}
	if args == nil {
		args = &RuntimeArgs{}
	}

	company := pick(overrides.Get("company"), meta.Company)
	position := pick(overrides.Get("position"), meta.Title)
	city := pick(overrides.Get("city"), meta.City, p.Defaults.CityFallback)
	region := pick(overrides.Get("region"), meta.Region, p.Defaults.RegionFallback)
	country := pick(overrides.Get("country"), meta.Country, p.Defaults.CountryFallback)
	hiringManager := pick(overrides.Get("hiring_manager"), meta.HiringManager, p.Defaults.HiringManagerFallback)

	locationBlock := joinPresent(", ", city, region, country)
	if locationBlock == "" {
		locationBlock = meta.RawLocation
	}

	scalars := map[string]string{
		"today":          nowFunc().Format("January 02, 2006"),
		"name":           p.Applicant.Name,
		"email":          p.Applicant.Email,
		"phone":          p.Applicant.Phone,
		"address_line1":  p.Applicant.Address1,
		"address_line2":  p.Applicant.Address2,
		"home_location":  p.Applicant.Location,
		"company":        company,
		"company_upper":  strings.ToUpper(company),
		"position":       position,
		"positionA":      position,
		"hiring_manager": hiringManager,
		"city":           city,
		"region":         region,
		"country":        country,
		"location_block": locationBlock,
		"job_url":        meta.URL,
		"description":    pick(overrides.Get("description"), meta.Description),
	}

	lists := map[string][]string{
		"company_features": preferredSequence(args.CompanyFeatures, overrides.CompanyFeatures, p.Defaults.CompanyFeatures),
		"skills":           preferredSequence(args.Skills, overrides.Skills, p.Lists.Skills),
		"degrees":          p.Lists.Degrees,
		"certifications":   p.Lists.Certifications,
		"stakeholders":     p.Lists.Stakeholders,
		"presented_to":     p.Lists.PresentedTo,
		"teams":            p.Lists.Teams,
	}

	return &Fields{Scalars: scalars, Lists: lists}
}

// pick returns the first non-empty candidate.
func pick(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// preferredSequence returns the first non-empty candidate list, filtered of
// empty items. Tiers never merge: once a tier is selected it wins outright,
// even if filtering leaves it with no items.
func preferredSequence(candidates ...[]string) []string {
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}
		filtered := make([]string, 0, len(candidate))
		for _, item := range candidate {
			if item != "" {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	return []string{}
}

func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			present = append(present, part)
		}
	}
	return strings.Join(present, sep)
}
