package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileEmptyPathReturnsZeroValue(t *testing.T) {
	cfg, err := ParseFile("")
	require.NoError(t, err)
	assert.Equal(t, RunConfig{}, cfg)
}

func TestParseFileDecodesKnownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_fields: [0, 2]\nlog_level: debug\n"), 0o644))

	cfg, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cfg.IgnoreFields)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseFileRejectsUnknownField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_feilds: [0]\n"), 0o644))

	_, err := ParseFile(path)
	assert.Error(t, err)
}

func TestMergeIgnoreFieldsPrependsConfigDefaults(t *testing.T) {
	got := MergeIgnoreFields(RunConfig{IgnoreFields: []int{0}}, []int{3})
	assert.Equal(t, []int{0, 3}, got)

	got = MergeIgnoreFields(RunConfig{}, []int{3})
	assert.Equal(t, []int{3}, got)
}
