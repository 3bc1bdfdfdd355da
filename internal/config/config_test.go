package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "library.bib", cfg.BibPath)
	assert.Equal(t, "docs", cfg.OutputDir)
	assert.Equal(t, "user", cfg.Zotero.LibraryType)
	assert.Equal(t, 12, cfg.Charts.TopK)
	assert.Equal(t, 9, cfg.Charts.PieMax)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reflib.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bib_path: refs/library.bib
zotero:
  library_type: groups
  library_id: "98765"
charts:
  top_k: 8
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "refs/library.bib", cfg.BibPath)
	assert.Equal(t, "docs", cfg.OutputDir, "unset fields keep defaults")
	assert.Equal(t, "groups", cfg.Zotero.LibraryType)
	assert.Equal(t, "98765", cfg.Zotero.LibraryID)
	assert.Equal(t, 8, cfg.Charts.TopK)
	assert.Equal(t, 9, cfg.Charts.PieMax)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
