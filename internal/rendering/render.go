package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jonathan/cover-letter-generator/internal/sections"
)

// Output formats and their section separators.
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
)

// ValidFormat reports whether format names a known output format.
func ValidFormat(format string) bool {
	return format == FormatMarkdown || format == FormatText
}

// RenderSections renders each section independently against only its own
// mapping. A placeholder the mapping cannot fill is fatal. Sections that
// render to nothing but whitespace are dropped.
func RenderSections(templatesDir string, secs []sections.Section) ([]string, error) {
	rendered := make([]string, 0, len(secs))
	for _, sec := range secs {
		block, err := renderSection(templatesDir, sec)
		if err != nil {
			return nil, err
		}
		if block != "" {
			rendered = append(rendered, block)
		}
	}
	return rendered, nil
}

func renderSection(templatesDir string, sec sections.Section) (string, error) {
	path := filepath.Join(templatesDir, sec.Template)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Template: sec.Template,
				Message:  fmt.Sprintf("template file not found: %s", path),
			}
		}
		return "", &TemplateError{
			Template: sec.Template,
			Message:  "failed to read template",
			Cause:    err,
		}
	}

	tmpl, err := template.New(sec.Template).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", &TemplateError{
			Template: sec.Template,
			Message:  "failed to parse template",
			Cause:    err,
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, sec.Mapping); err != nil {
		return "", &TemplateError{
			Template: sec.Template,
			Message:  "failed to execute template",
			Cause:    err,
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

// JoinDocument concatenates rendered sections with the format's separator:
// a blank line between sections for markdown, a single newline for text.
// The document always ends with exactly one trailing newline.
func JoinDocument(rendered []string, format string) string {
	separator := "\n\n"
	if format == FormatText {
		separator = "\n"
	}
	return strings.TrimSpace(strings.Join(rendered, separator)) + "\n"
}

// Write persists the fully assembled document in a single write. The
// destination directory is never created.
func Write(document, path string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return &WriteError{
			Path:    path,
			Message: fmt.Sprintf("output directory does not exist: %s", dir),
			Cause:   err,
		}
	}
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return &WriteError{
			Path:    path,
			Message: "failed to write output file",
			Cause:   err,
		}
	}
	return nil
}
