package base

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

// batchFile is the YAML document format for item batch files:
//
//	items:
//	  - database: "5dc4d1cb-2e33-4dec-a997-224f3f7f3b27"
//	    table: "75f1eb2b-c0f6-4737-bbe1-4e0cf27031cb"
//	    record_history: "dc1b4a9d-0a56-4ea9-b821-fe5b67b4f0ee"
//	    record_version: 2
type batchFile struct {
	Items []batchItem `yaml:"items"`
}

type batchItem struct {
	Database      string `yaml:"database"`
	Table         string `yaml:"table"`
	RecordHistory string `yaml:"record_history"`
	RecordVersion *int   `yaml:"record_version"`
}

// LoadItemsFile reads record list items from a YAML batch file. Every entry
// is checked before any is returned; the error lists all malformed entries.
func LoadItemsFile(fs afero.Fs, path string) ([]recordlists.RecordListItem, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read items file %s: %w", path, err)
	}

	var batch batchFile
	if err := yaml.Unmarshal(src, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse items file %s: %w", path, err)
	}
	if len(batch.Items) == 0 {
		return nil, fmt.Errorf("items file %s contains no items", path)
	}

	var errs *multierror.Error
	items := make([]recordlists.RecordListItem, 0, len(batch.Items))
	for i, entry := range batch.Items {
		item, err := entry.toItem()
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("item %d: %w", i, err))
			continue
		}
		items = append(items, item)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("invalid items file %s: %w", path, err)
	}
	return items, nil
}

func (e batchItem) toItem() (recordlists.RecordListItem, error) {
	var item recordlists.RecordListItem

	if e.Database == "" {
		return item, fmt.Errorf("database is required")
	}
	database, err := guid.Parse(e.Database)
	if err != nil {
		return item, fmt.Errorf("invalid database: %w", err)
	}

	if e.RecordHistory == "" {
		return item, fmt.Errorf("record_history is required")
	}
	history, err := guid.Parse(e.RecordHistory)
	if err != nil {
		return item, fmt.Errorf("invalid record_history: %w", err)
	}

	// The table is optional here: removal does not need one, and addition
	// is validated by the client before anything is sent.
	var table guid.GUID
	if e.Table != "" {
		table, err = guid.Parse(e.Table)
		if err != nil {
			return item, fmt.Errorf("invalid table: %w", err)
		}
	}

	if e.RecordVersion != nil {
		return recordlists.NewVersionedRecordListItem(database, table, history, *e.RecordVersion), nil
	}
	return recordlists.NewRecordListItem(database, table, history), nil
}
