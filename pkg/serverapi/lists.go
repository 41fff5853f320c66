package serverapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetAllLists returns the headers of every record list visible to the
// current user.
func (c *Client) GetAllLists(ctx context.Context) ([]RecordListHeader, error) {
	var info RecordListsInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/lists", nil, nil, &info); err != nil {
		return nil, err
	}
	return info.Lists, nil
}

// GetList returns the header of a single record list.
func (c *Client) GetList(ctx context.Context, identifier string) (*RecordListHeader, error) {
	var header RecordListHeader
	path := fmt.Sprintf("/api/v1/lists/%s", url.PathEscape(identifier))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// CreateList creates a new record list and returns its header.
func (c *Client) CreateList(ctx context.Context, body *CreateRecordList) (*RecordListHeader, error) {
	var header RecordListHeader
	if err := c.do(ctx, http.MethodPost, "/api/v1/lists", nil, body, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// UpdateList applies JSON-Patch style operations to a list's properties and
// returns the updated header.
func (c *Client) UpdateList(ctx context.Context, identifier string, ops []PatchOperation) (*RecordListHeader, error) {
	var header RecordListHeader
	path := fmt.Sprintf("/api/v1/lists/%s", url.PathEscape(identifier))
	if err := c.do(ctx, http.MethodPatch, path, nil, ops, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// DeleteList deletes a record list.
func (c *Client) DeleteList(ctx context.Context, identifier string) error {
	path := fmt.Sprintf("/api/v1/lists/%s", url.PathEscape(identifier))
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// CopyList copies a list and returns the copy's header.
func (c *Client) CopyList(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "copy")
}

// ReviseList creates an editable revision of a published list and returns
// the revision's header.
func (c *Client) ReviseList(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "revise")
}

// RequestListApproval marks a list as awaiting approval.
func (c *Client) RequestListApproval(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "request-approval")
}

// ResetAwaitingApproval withdraws a pending approval request.
func (c *Client) ResetAwaitingApproval(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "reset-awaiting-approval")
}

// PublishList publishes a list awaiting approval for publication.
func (c *Client) PublishList(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "publish")
}

// UnpublishList withdraws a published list awaiting approval for withdrawal.
func (c *Client) UnpublishList(ctx context.Context, identifier string) (*RecordListHeader, error) {
	return c.postLifecycle(ctx, identifier, "unpublish")
}

func (c *Client) postLifecycle(ctx context.Context, identifier, action string) (*RecordListHeader, error) {
	var header RecordListHeader
	path := fmt.Sprintf("/api/v1/lists/%s/%s", url.PathEscape(identifier), action)
	if err := c.do(ctx, http.MethodPost, path, nil, nil, &header); err != nil {
		return nil, err
	}
	return &header, nil
}

// RunListSearch submits a list search and returns the identifier under which
// the results are held. Results must be fetched with GetListSearchResults.
func (c *Client) RunListSearch(ctx context.Context, body *RecordListSearchRequest) (*SearchInfo, error) {
	var info SearchInfo
	if err := c.do(ctx, http.MethodPost, "/api/v1/lists/search", nil, body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetListSearchResults fetches the results of a previously submitted search.
func (c *Client) GetListSearchResults(ctx context.Context, searchResultIdentifier string) ([]RecordListSearchResult, error) {
	var info RecordListSearchResultsInfo
	path := fmt.Sprintf("/api/v1/lists/search/results/%s", url.PathEscape(searchResultIdentifier))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &info); err != nil {
		return nil, err
	}
	return info.SearchResults, nil
}
