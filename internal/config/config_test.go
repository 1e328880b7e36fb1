package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 5174, cfg.Server.Port)
	assert.Equal(t, RowErrorSkip, cfg.Ingest.OnRowError)
	require.Len(t, cfg.Institutions, 2)
	assert.Equal(t, "umpqua", cfg.Institutions[0].Format)
	assert.Equal(t, 1, cfg.Institutions[0].AccountID)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetd.yaml")

	cfg := Default()
	cfg.Server.Port = 8080
	cfg.Ingest.OnRowError = RowErrorAbort
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, loaded.Server.Port)
	assert.Equal(t, RowErrorAbort, loaded.Ingest.OnRowError)
	assert.Equal(t, cfg.Institutions, loaded.Institutions)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgetd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestInstitutionForFormat(t *testing.T) {
	cfg := Default()

	inst, ok := cfg.InstitutionForFormat("fnbo")
	require.True(t, ok)
	assert.Equal(t, "FNBO", inst.Name)
	assert.Equal(t, 2, inst.AccountID)

	_, ok = cfg.InstitutionForFormat("chase")
	assert.False(t, ok)
}
