package serverapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetListItems returns the items of a record list.
func (c *Client) GetListItems(ctx context.Context, identifier string) ([]ListItem, error) {
	var info RecordListItemsInfo
	path := fmt.Sprintf("/api/v1/lists/%s/items", url.PathEscape(identifier))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &info); err != nil {
		return nil, err
	}
	return info.Items, nil
}

// AddListItems adds items to a record list and returns the list's full item
// set afterwards.
func (c *Client) AddListItems(ctx context.Context, identifier string, body *CreateRecordListItemsInfo) ([]ListItem, error) {
	var info RecordListItemsInfo
	path := fmt.Sprintf("/api/v1/lists/%s/items/add", url.PathEscape(identifier))
	if err := c.do(ctx, http.MethodPost, path, nil, body, &info); err != nil {
		return nil, err
	}
	return info.Items, nil
}

// RemoveListItems removes items from a record list and returns the list's
// full item set afterwards.
func (c *Client) RemoveListItems(ctx context.Context, identifier string, body *DeleteRecordListItems) ([]ListItem, error) {
	var info RecordListItemsInfo
	path := fmt.Sprintf("/api/v1/lists/%s/items/remove", url.PathEscape(identifier))
	if err := c.do(ctx, http.MethodPost, path, nil, body, &info); err != nil {
		return nil, err
	}
	return info.Items, nil
}
