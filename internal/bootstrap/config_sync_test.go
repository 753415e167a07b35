package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCollectionLogInfo(t *testing.T) {
	info, err := LoadCollectionLogInfo(filepath.Join("..", "..", "configs", "collection_log_info.json"))
	require.NoError(t, err)
	assert.True(t, info.HasPage("Vorkath"))
}

func TestLoadCollectionLogInfo_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"tabId":"zero"}]`), 0o644))

	_, err := LoadCollectionLogInfo(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCollection)
}
