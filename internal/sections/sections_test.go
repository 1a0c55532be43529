package sections

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSections(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sections.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSections_OrderPreserved(t *testing.T) {
	path := writeSections(t, `{"sections": [
		{"id": "greeting", "template": "greeting.tmpl"},
		{"id": "body", "template": "body.tmpl", "enabled": false},
		{"id": "closing", "template": "closing.tmpl", "enabled": true}
	]}`)

	specs, err := LoadSections(path)
	require.NoError(t, err)
	require.Len(t, specs, 3)
	assert.Equal(t, "greeting", specs[0].ID)
	assert.Equal(t, "body", specs[1].ID)
	assert.Equal(t, "closing", specs[2].ID)
}

func TestLoadSections_EnabledDefaultsTrue(t *testing.T) {
	path := writeSections(t, `{"sections": [{"id": "greeting", "template": "greeting.tmpl"}]}`)

	specs, err := LoadSections(path)
	require.NoError(t, err)
	assert.True(t, specs[0].IsEnabled())
}

func TestLoadSections_ExplicitDisabled(t *testing.T) {
	path := writeSections(t, `{"sections": [{"id": "x", "template": "x.tmpl", "enabled": false}]}`)

	specs, err := LoadSections(path)
	require.NoError(t, err)
	assert.False(t, specs[0].IsEnabled())
}

func TestLoadSections_MissingTemplate(t *testing.T) {
	path := writeSections(t, `{"sections": [{"id": "greeting"}]}`)

	_, err := LoadSections(path)
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "sections[0]")
}

func TestLoadSections_MissingFile(t *testing.T) {
	_, err := LoadSections(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadSections_InvalidJSON(t *testing.T) {
	_, err := LoadSections(writeSections(t, "{broken"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadSections_DuplicateIDsKept(t *testing.T) {
	// Duplicate ids are independent entries; both render.
	path := writeSections(t, `{"sections": [
		{"id": "body", "template": "body.tmpl"},
		{"id": "body", "template": "body.tmpl"}
	]}`)

	specs, err := LoadSections(path)
	require.NoError(t, err)
	assert.Len(t, specs, 2)
}

func TestLoadSections_SectionContext(t *testing.T) {
	path := writeSections(t, `{"sections": [
		{"id": "body", "template": "body.tmpl", "context": {"tone": "formal"}}
	]}`)

	specs, err := LoadSections(path)
	require.NoError(t, err)
	assert.Equal(t, "formal", specs[0].Context["tone"])
}
