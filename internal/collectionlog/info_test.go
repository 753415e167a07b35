package collectionlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GroupIronmen_Go/internal/validation"
)

const sampleInfo = `[
	{"tabId": 0, "name": "Bosses", "pages": [
		{"name": "Vorkath", "completion_labels": ["Vorkath kills"], "items": [
			{"id": 21992, "name": "Vorki"},
			{"id": 2425, "name": "Vorkath's head"}
		]}
	]},
	{"tabId": 4, "name": "Other", "pages": [
		{"name": "Shayzien Armour", "items": [{"id": 13357, "name": "Shayzien gloves (1)"}]}
	]}
]`

func TestParse(t *testing.T) {
	info, err := Parse([]byte(sampleInfo), validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.Equal(t, 2, info.PageCount())
	assert.Len(t, info.Tabs(), 2)
	assert.True(t, info.HasPage("Vorkath"))
	assert.False(t, info.HasPage("Zulrah"))
	assert.True(t, info.HasItem("Vorkath", 21992))
	assert.False(t, info.HasItem("Vorkath", 13357))
	assert.False(t, info.HasItem("Zulrah", 21992))
	assert.Equal(t, 1, info.CompletionLabelCount("Vorkath"))
	assert.Equal(t, 0, info.CompletionLabelCount("Shayzien Armour"))
	assert.JSONEq(t, sampleInfo, string(info.Raw()))
}

func TestParse_SchemaViolation(t *testing.T) {
	_, err := Parse([]byte(`[{"tabId": 0, "name": "Bosses"}]`), validation.NewSchemaValidator())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}

func TestParse_DuplicatePage(t *testing.T) {
	data := `[
		{"tabId": 0, "name": "Bosses", "pages": [{"name": "Vorkath", "items": []}]},
		{"tabId": 1, "name": "Other", "pages": [{"name": "Vorkath", "items": []}]}
	]`
	_, err := Parse([]byte(data), validation.NewSchemaValidator())
	assert.ErrorIs(t, err, ErrDuplicatePage)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection_log_info.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleInfo), 0644))

	info, err := Load(path, validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.True(t, info.HasPage("Shayzien Armour"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), validation.NewSchemaValidator())
	assert.Error(t, err)
}

func TestLoad_BundledReference(t *testing.T) {
	info, err := Load(filepath.Join("..", "..", "configs", "collection_log_info.json"), validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.True(t, info.HasItem("Abyssal Sire", 13262))
}

func TestInfo_ValidatesSubmission(t *testing.T) {
	info, err := Parse([]byte(sampleInfo), validation.NewSchemaValidator())
	require.NoError(t, err)

	assert.NoError(t, validation.ValidateCollectionLog(info, nil))
}
