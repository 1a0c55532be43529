package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validProfile = `{
	"applicant": {"name": "Alex Doe", "email": "alex@example.com", "phone": "555-0100"},
	"lists": {
		"degrees": ["BSc Economics", "MSc Data Science"],
		"certifications": ["PMP"],
		"skills": ["SQL", "Python", "Tableau"],
		"stakeholders": ["executives", "product teams"],
		"presented_to": ["board members"],
		"teams": ["analytics", "finance"]
	},
	"defaults": {
		"company_features": ["great culture"],
		"city_fallback": "Berlin"
	}
}`

func TestLoad_Valid(t *testing.T) {
	p, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)

	assert.Equal(t, "Alex Doe", p.Applicant.Name)
	assert.Equal(t, []string{"BSc Economics", "MSc Data Science"}, p.Lists.Degrees)
	assert.Equal(t, []string{"SQL", "Python", "Tableau"}, p.Lists.Skills)
	assert.Equal(t, "Berlin", p.Defaults.CityFallback)
}

func TestLoad_HiringManagerFallbackDefault(t *testing.T) {
	p, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)
	assert.Equal(t, DefaultHiringManagerFallback, p.Defaults.HiringManagerFallback)
}

func TestLoad_HiringManagerFallbackConfigured(t *testing.T) {
	content := `{
		"applicant": {"name": "Alex Doe", "email": "alex@example.com"},
		"defaults": {"hiring_manager_fallback": "Recruiting Team"}
	}`
	p, err := Load(writeProfile(t, content))
	require.NoError(t, err)
	assert.Equal(t, "Recruiting Team", p.Defaults.HiringManagerFallback)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeProfile(t, "{not json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoad_MissingEmail(t *testing.T) {
	_, err := Load(writeProfile(t, `{"applicant": {"name": "Alex Doe"}}`))
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestLoad_MissingName(t *testing.T) {
	_, err := Load(writeProfile(t, `{"applicant": {"email": "alex@example.com"}}`))
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestLoad_ListNotStrings(t *testing.T) {
	content := `{
		"applicant": {"name": "Alex Doe", "email": "alex@example.com"},
		"lists": {"skills": "SQL"}
	}`
	_, err := Load(writeProfile(t, content))
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Contains(t, err.Error(), "lists.skills")
}

func TestLists_List(t *testing.T) {
	p, err := Load(writeProfile(t, validProfile))
	require.NoError(t, err)

	assert.Equal(t, p.Lists.Skills, p.Lists.List("skills"))
	assert.Equal(t, p.Lists.PresentedTo, p.Lists.List("presented_to"))
	assert.Nil(t, p.Lists.List("unknown"))
}
