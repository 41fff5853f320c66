package serverapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetVersion returns the service layer's version report. This doubles as the
// connectivity and capability check: a service layer without the record-lists
// feature answers 404 here.
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var info VersionInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/schema/mi-version", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAllDatabases enumerates the databases visible to the current session.
// Internal-use databases are excluded unless includeInternalUse is set.
func (c *Client) GetAllDatabases(ctx context.Context, includeInternalUse bool) ([]Database, error) {
	query := url.Values{}
	query.Set("includeInternalUse", strconv.FormatBool(includeInternalUse))

	var info DatabasesInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/schema/databases", query, nil, &info); err != nil {
		return nil, err
	}
	return info.Databases, nil
}
