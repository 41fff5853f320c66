package serverapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SearchDatabaseRecords runs a targeted record search within one database,
// identified by its key. Used as an existence check: an empty result set or a
// 404 for an unknown key means the record is not reachable there.
func (c *Client) SearchDatabaseRecords(ctx context.Context, databaseKey string, criterion *RecordSearchCriterion) ([]RecordSearchResult, error) {
	var info RecordSearchResultsInfo
	path := fmt.Sprintf("/api/v1/databases/%s/records/search", url.PathEscape(databaseKey))
	if err := c.do(ctx, http.MethodPost, path, nil, criterion, &info); err != nil {
		return nil, err
	}
	return info.Results, nil
}
