package generator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cover-letter-generator/internal/rendering"
	"github.com/jonathan/cover-letter-generator/internal/resolve"
	"github.com/jonathan/cover-letter-generator/internal/sections"
)

const testProfile = `{
	"applicant": {"name": "Alex Doe", "email": "alex@example.com"},
	"lists": {
		"skills": ["A", "B", "C"],
		"degrees": ["BSc Economics"]
	},
	"defaults": {"hiring_manager_fallback": "Hiring Manager"}
}`

const postingPage = `<html><head>
<script type="application/ld+json">
{
	"@type": "JobPosting",
	"title": "Data Analyst",
	"hiringOrganization": {"name": "Acme Corp"},
	"jobLocation": {"address": {"addressLocality": "Berlin", "addressCountry": "Germany"}}
}
</script>
</head><body></body></html>`

// workspace writes a full config/templates/output layout and returns Params
// pointing at it.
func workspace(t *testing.T, sectionsJSON string, templates map[string]string) Params {
	t.Helper()
	root := t.TempDir()

	configDir := filepath.Join(root, "config")
	templatesDir := filepath.Join(root, "templates")
	outputDir := filepath.Join(root, "output")
	for _, dir := range []string{configDir, templatesDir, outputDir} {
		require.NoError(t, os.Mkdir(dir, 0o755))
	}

	profilePath := filepath.Join(configDir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(testProfile), 0o644))

	sectionsPath := filepath.Join(configDir, "sections.json")
	require.NoError(t, os.WriteFile(sectionsPath, []byte(sectionsJSON), 0o644))

	for name, content := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(templatesDir, name), []byte(content), 0o644))
	}

	return Params{
		ProfilePath:  profilePath,
		SectionsPath: sectionsPath,
		TemplatesDir: templatesDir,
		OutputPath:   filepath.Join(outputDir, "cover_letter.md"),
		Format:       rendering.FormatMarkdown,
		Counts:       sections.DefaultCounts(),
	}
}

func postingServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(postingPage))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGenerate_EndToEnd(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [
		{"id": "greeting", "template": "greeting.tmpl"},
		{"id": "body", "template": "body.tmpl"}
	]}`, map[string]string{
		"greeting.tmpl": "Dear {{.hiring_manager}},",
		"body.tmpl":     "I am excited to apply to {{.company}} as {{.position}} in {{.city}}.",
	})
	params.JobURL = server.URL

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager,\n\nI am excited to apply to Acme Corp as Data Analyst in Berlin.\n", string(content))
}

func TestGenerate_FetchFailureUsesDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "Dear {{.hiring_manager}}, company is {{.company}}."})
	params.JobURL = server.URL

	overridesPath := filepath.Join(filepath.Dir(params.ProfilePath), "overrides.json")
	require.NoError(t, os.WriteFile(overridesPath, []byte(`{"company": "Acme Robotics"}`), 0o644))
	params.OverridesPath = overridesPath

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager, company is Acme Robotics.\n", string(content))
}

func TestGenerate_OverrideBeatsExtracted(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "{{.company}}"})
	params.JobURL = server.URL

	overridesPath := filepath.Join(filepath.Dir(params.ProfilePath), "overrides.json")
	require.NoError(t, os.WriteFile(overridesPath, []byte(`{"company": "Acme Robotics"}`), 0o644))
	params.OverridesPath = overridesPath

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "Acme Robotics\n", string(content))
}

func TestGenerate_SkillSlicing(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "{{.skill1}} and {{.skill2}}"})
	params.JobURL = server.URL
	params.Counts.Skills = 2

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "A and B\n", string(content))
}

func TestGenerate_RuntimeSkillsReplaceProfile(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "{{.skill1}}/{{.skill2}}"})
	params.JobURL = server.URL
	params.Counts.Skills = 2
	params.Runtime = resolve.RuntimeArgs{Skills: []string{"dbt", "Airflow"}}

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "dbt/Airflow\n", string(content))
}

func TestGenerate_DisabledSectionNeverResolved(t *testing.T) {
	server := postingServer(t)

	// The disabled section references a placeholder nothing can fill; the
	// run must still succeed.
	params := workspace(t, `{"sections": [
		{"id": "body", "template": "body.tmpl"},
		{"id": "broken", "template": "broken.tmpl", "enabled": false}
	]}`, map[string]string{
		"body.tmpl":   "hello {{.company}}",
		"broken.tmpl": "{{.no_such_placeholder}}",
	})
	params.JobURL = server.URL

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "hello Acme Corp\n", string(content))
}

func TestGenerate_TextFormatJoin(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [
		{"id": "a", "template": "a.tmpl"},
		{"id": "b", "template": "b.tmpl"},
		{"id": "c", "template": "c.tmpl"}
	]}`, map[string]string{
		"a.tmpl": "one",
		"b.tmpl": "two",
		"c.tmpl": "three",
	})
	params.JobURL = server.URL
	params.Format = rendering.FormatText

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\n", string(content))
}

func TestGenerate_UnresolvablePlaceholderFails(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "{{.no_such_placeholder}}"})
	params.JobURL = server.URL

	_, err := Generate(context.Background(), params)
	require.Error(t, err)

	var tmplErr *rendering.TemplateError
	assert.ErrorAs(t, err, &tmplErr)
}

func TestGenerate_MissingOutputDirectory(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "hello"})
	params.JobURL = server.URL
	params.OutputPath = filepath.Join(t.TempDir(), "missing-dir", "letter.md")

	_, err := Generate(context.Background(), params)
	require.Error(t, err)

	var writeErr *rendering.WriteError
	assert.ErrorAs(t, err, &writeErr)

	// No partial output may exist anywhere under the missing directory.
	_, statErr := os.Stat(filepath.Dir(params.OutputPath))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerate_MalformedURLFatal(t *testing.T) {
	params := workspace(t, `{"sections": [{"id": "body", "template": "body.tmpl"}]}`,
		map[string]string{"body.tmpl": "hello"})
	params.JobURL = "::::"

	_, err := Generate(context.Background(), params)
	require.Error(t, err)
}

func TestGenerate_DuplicateSectionRendersTwice(t *testing.T) {
	server := postingServer(t)

	params := workspace(t, `{"sections": [
		{"id": "body", "template": "body.tmpl"},
		{"id": "body", "template": "body.tmpl"}
	]}`, map[string]string{"body.tmpl": "para"})
	params.JobURL = server.URL

	written, err := Generate(context.Background(), params)
	require.NoError(t, err)

	content, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, "para\n\npara\n", string(content))
}
