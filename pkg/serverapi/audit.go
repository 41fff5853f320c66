package serverapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// RunAuditLogSearch submits an audit-log search and returns the identifier
// under which the results are held.
func (c *Client) RunAuditLogSearch(ctx context.Context, body *AuditLogSearchRequest) (*SearchInfo, error) {
	var info SearchInfo
	if err := c.do(ctx, http.MethodPost, "/api/v1/lists/audit/search", nil, body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAuditLogSearchResults fetches the entries of a previously submitted
// audit-log search.
func (c *Client) GetAuditLogSearchResults(ctx context.Context, searchResultIdentifier string) ([]ListAuditEntry, error) {
	var entries []ListAuditEntry
	path := fmt.Sprintf("/api/v1/lists/audit/search/results/%s", url.PathEscape(searchResultIdentifier))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
