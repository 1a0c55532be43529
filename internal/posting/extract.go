package posting

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDSelector matches embedded structured-metadata script blocks.
const jsonLDSelector = `script[type="application/ld+json"]`

// strategy attempts to build Metadata from parsed JSON-LD nodes. Strategies
// are evaluated in order; the first one returning a non-empty result wins.
type strategy func(nodes []any) *Metadata

// Extract fetches a job posting URL and extracts structured metadata.
// A malformed URL is the only fatal error; fetch and markup failures are
// downgraded to an all-absent Metadata because posting markup quality varies
// too widely to treat as fatal.
func Extract(ctx context.Context, urlStr string, opts *Options, verbose bool) (*Metadata, error) {
	if err := ValidateURL(urlStr); err != nil {
		return nil, err
	}

	absent := &Metadata{URL: urlStr}

	result, err := Fetch(ctx, urlStr, opts)
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] Fetch failed, continuing without posting metadata: %v", err)
		}
		return absent, nil
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		if verbose {
			log.Printf("[VERBOSE] HTML parse failed, continuing without posting metadata: %v", err)
		}
		return absent, nil
	}

	metadata := ExtractFromDocument(doc, urlStr)
	if verbose {
		log.Printf("[VERBOSE] Extraction found fields: %v", metadata.Found())
	}
	return metadata, nil
}

// ExtractFromDocument runs the extraction strategies against a parsed page.
func ExtractFromDocument(doc *goquery.Document, urlStr string) *Metadata {
	nodes := collectJSONLD(doc)

	strategies := []strategy{
		fromJobPostingNode,
		fromAnyRelevantNode,
	}

	metadata := &Metadata{URL: urlStr}
	for _, s := range strategies {
		if m := s(nodes); m.Found() {
			metadata = m
			metadata.URL = urlStr
			break
		}
	}

	enrichFromPage(doc, metadata)
	return metadata
}

// collectJSONLD parses every JSON-LD script block into a flat node list.
// Top-level arrays are flattened; unparseable blocks are skipped.
func collectJSONLD(doc *goquery.Document) []any {
	var nodes []any
	doc.Find(jsonLDSelector).Each(func(_ int, sel *goquery.Selection) {
		raw := strings.TrimSpace(sel.Text())
		if raw == "" {
			return
		}
		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return
		}
		if list, ok := data.([]any); ok {
			nodes = append(nodes, list...)
		} else {
			nodes = append(nodes, data)
		}
	})
	return nodes
}

// fromJobPostingNode extracts from the first node typed as a JobPosting,
// recursing into @graph containers.
func fromJobPostingNode(nodes []any) *Metadata {
	if job := findJobPostingNode(nodes); job != nil {
		return fromNode(job)
	}
	return &Metadata{}
}

func findJobPostingNode(nodes []any) map[string]any {
	for _, node := range nodes {
		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}
		if isJobPostingType(obj["@type"]) {
			return obj
		}
		if graph, ok := obj["@graph"].([]any); ok {
			if job := findJobPostingNode(graph); job != nil {
				return job
			}
		}
	}
	return nil
}

func isJobPostingType(nodeType any) bool {
	switch t := nodeType.(type) {
	case string:
		return strings.EqualFold(t, "jobposting")
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, "jobposting") {
				return true
			}
		}
	}
	return false
}

// fromAnyRelevantNode extracts from the first node carrying any
// job-posting-shaped field, regardless of its declared type.
func fromAnyRelevantNode(nodes []any) *Metadata {
	for _, node := range nodes {
		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}
		if _, hasTitle := obj["title"]; !hasTitle {
			if _, hasOrg := obj["hiringOrganization"]; !hasOrg {
				if _, hasLoc := obj["jobLocation"]; !hasLoc {
					continue
				}
			}
		}
		if m := fromNode(obj); m.Found() {
			return m
		}
	}
	return &Metadata{}
}

// fromNode maps a single JSON-LD node to Metadata.
func fromNode(job map[string]any) *Metadata {
	m := &Metadata{}
	m.Title = cleanText(stringField(job, "title"))

	if org, ok := job["hiringOrganization"].(map[string]any); ok {
		m.Company = cleanText(stringField(org, "name"))
	}
	if contact, ok := job["contactPoint"].(map[string]any); ok {
		m.HiringManager = cleanText(stringField(contact, "name"))
	}
	if desc := stringField(job, "description"); desc != "" {
		m.Description = cleanText(desc)
	}

	extractLocation(job, m)
	return m
}

func extractLocation(job map[string]any, m *Metadata) {
	var location map[string]any
	switch loc := job["jobLocation"].(type) {
	case []any:
		if len(loc) > 0 {
			location, _ = loc[0].(map[string]any)
		}
	case map[string]any:
		location = loc
	}
	if location == nil {
		return
	}

	switch address := location["address"].(type) {
	case map[string]any:
		m.City = cleanText(stringField(address, "addressLocality"))
		m.Region = cleanText(stringField(address, "addressRegion"))
		m.Country = cleanText(addressCountry(address["addressCountry"]))
	case string:
		raw := cleanText(address)
		m.City, m.Region, m.Country = splitLocationText(raw)
		m.RawLocation = raw
	}
}

// addressCountry handles both plain strings and nested Country objects.
func addressCountry(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]any:
		return stringField(v, "name")
	}
	return ""
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

var hiringManagerRe = regexp.MustCompile(`Hiring Manager[:\-\s]+([A-Z][A-Za-z\s]+)`)

// enrichFromPage fills fields the structured strategies left absent using
// meta tags, the page title and a naive hiring-manager text scan.
func enrichFromPage(doc *goquery.Document, m *Metadata) {
	if m.Title == "" {
		m.Title = cleanText(metaContent(doc, "og:title", "twitter:title"))
	}
	if m.Title == "" {
		m.Title = cleanText(doc.Find("title").First().Text())
	}
	if m.Company == "" {
		m.Company = cleanText(metaContent(doc, "og:site_name", "application-name"))
	}
	if m.Description == "" {
		m.Description = cleanText(metaContent(doc, "og:description", "twitter:description"))
	}
	if m.HiringManager == "" {
		text := doc.Find("body").Text()
		if match := hiringManagerRe.FindStringSubmatch(text); match != nil {
			m.HiringManager = cleanText(match[1])
		}
	}
}

// metaContent returns the first non-empty content attribute among meta tags
// matching the given property or name values.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		selector := `meta[property="` + name + `"], meta[name="` + name + `"]`
		if content, ok := doc.Find(selector).First().Attr("content"); ok && content != "" {
			return content
		}
	}
	return ""
}
