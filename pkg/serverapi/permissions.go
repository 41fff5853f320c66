package serverapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// SubscribeToList subscribes the current user to a record list.
func (c *Client) SubscribeToList(ctx context.Context, identifier string) error {
	path := fmt.Sprintf("/api/v1/lists/%s/permissions/subscribe", url.PathEscape(identifier))
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// UnsubscribeFromList removes the current user's subscription to a record
// list.
func (c *Client) UnsubscribeFromList(ctx context.Context, identifier string) error {
	path := fmt.Sprintf("/api/v1/lists/%s/permissions/unsubscribe", url.PathEscape(identifier))
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}
