package base

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatch(t *testing.T, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/items.yaml", []byte(content), 0o600))
	return fs
}

func TestLoadItemsFile(t *testing.T) {
	fs := writeBatch(t, `
items:
  - database: "5dc4d1cb-2e33-4dec-a997-224f3f7f3b27"
    table: "75f1eb2b-c0f6-4737-bbe1-4e0cf27031cb"
    record_history: "dc1b4a9d-0a56-4ea9-b821-fe5b67b4f0ee"
    record_version: 2
  - database: "5dc4d1cb-2e33-4dec-a997-224f3f7f3b27"
    record_history: "e75b5320-3b3a-4fa1-9b92-a9aa44a7ff45"
`)

	items, err := LoadItemsFile(fs, "/items.yaml")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "5dc4d1cb-2e33-4dec-a997-224f3f7f3b27", items[0].DatabaseGUID.String())
	assert.Equal(t, "75f1eb2b-c0f6-4737-bbe1-4e0cf27031cb", items[0].TableGUID.String())
	assert.Equal(t, "dc1b4a9d-0a56-4ea9-b821-fe5b67b4f0ee", items[0].RecordHistoryGUID.String())
	require.NotNil(t, items[0].RecordVersion)
	assert.Equal(t, 2, *items[0].RecordVersion)

	assert.True(t, items[1].TableGUID.IsZero())
	assert.Nil(t, items[1].RecordVersion)
}

func TestLoadItemsFile_MissingFile(t *testing.T) {
	_, err := LoadItemsFile(afero.NewMemMapFs(), "/items.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read items file")
}

func TestLoadItemsFile_NotYAML(t *testing.T) {
	fs := writeBatch(t, `items: [`)
	_, err := LoadItemsFile(fs, "/items.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse items file")
}

func TestLoadItemsFile_Empty(t *testing.T) {
	fs := writeBatch(t, `items: []`)
	_, err := LoadItemsFile(fs, "/items.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contains no items")
}

func TestLoadItemsFile_ReportsEveryBadEntry(t *testing.T) {
	fs := writeBatch(t, `
items:
  - database: "not-a-guid"
    record_history: "dc1b4a9d-0a56-4ea9-b821-fe5b67b4f0ee"
  - database: "5dc4d1cb-2e33-4dec-a997-224f3f7f3b27"
  - record_history: "dc1b4a9d-0a56-4ea9-b821-fe5b67b4f0ee"
`)

	_, err := LoadItemsFile(fs, "/items.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 0: invalid database")
	assert.Contains(t, err.Error(), "item 1: record_history is required")
	assert.Contains(t, err.Error(), "item 2: database is required")
}
