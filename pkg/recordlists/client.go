package recordlists

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// Client is the high level record lists API. It wraps the raw Server API
// client and translates between domain objects and their wire form.
//
// Construct one with Connect, which also verifies the server is reachable
// and recent enough, or with NewClient when that check is not wanted.
type Client struct {
	api      *serverapi.Client
	resolver *itemResolver
	logger   hclog.Logger
}

// NewClient wraps an existing Server API client without any connectivity
// check. A nil logger disables logging.
func NewClient(api *serverapi.Client, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named("recordlists")
	return &Client{
		api:      api,
		resolver: newItemResolver(api, logger.Named("resolver")),
		logger:   logger,
	}
}

// GetAllLists returns every record list visible to the current user.
func (c *Client) GetAllLists(ctx context.Context) ([]RecordList, error) {
	headers, err := c.api.GetAllLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record lists: %w", err)
	}

	lists := make([]RecordList, 0, len(headers))
	for i := range headers {
		list, err := recordListFromDTO(&headers[i])
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// GetList returns the record list with the given identifier.
func (c *Client) GetList(ctx context.Context, identifier guid.GUID) (*RecordList, error) {
	header, err := c.api.GetList(ctx, identifier.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record list %s: %w", identifier, err)
	}
	list, err := recordListFromDTO(header)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateListRequest describes a new record list. Name is the only required
// property; Items may seed the list at creation time.
type CreateListRequest struct {
	Name        string
	Description *string
	Notes       *string
	Items       []RecordListItem
}

// Validate checks the request locally. Seed items follow the same table
// GUID requirement as AddItemsToList.
func (r CreateListRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	); err != nil {
		return err
	}
	return validateItemsForAddition(r.Items)
}

// CreateList creates a new record list and returns it.
func (c *Client) CreateList(ctx context.Context, req CreateListRequest) (*RecordList, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid create request: %w", err)
	}

	body := &serverapi.CreateRecordList{
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
	}
	if len(req.Items) > 0 {
		items := make([]serverapi.ListItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, itemToCreateDTO(item))
		}
		body.Items = &serverapi.CreateRecordListItemsInfo{Items: items}
	}

	header, err := c.api.CreateList(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create record list %q: %w", req.Name, err)
	}
	list, err := recordListFromDTO(header)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("created record list", "identifier", list.Identifier, "name", list.Name)
	return &list, nil
}

// UpdateList applies a partial property update to a list and returns the
// updated list. See UpdateListProperties for the tri-state field semantics.
func (c *Client) UpdateList(ctx context.Context, list RecordList, props UpdateListProperties) (*RecordList, error) {
	if err := props.Validate(); err != nil {
		return nil, fmt.Errorf("invalid update for record list %s: %w", list.Identifier, err)
	}

	header, err := c.api.UpdateList(ctx, list.Identifier.String(), props.patchOperations())
	if err != nil {
		return nil, fmt.Errorf("failed to update record list %s: %w", list.Identifier, err)
	}
	updated, err := recordListFromDTO(header)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteList deletes a record list.
func (c *Client) DeleteList(ctx context.Context, list RecordList) error {
	if err := c.api.DeleteList(ctx, list.Identifier.String()); err != nil {
		return fmt.Errorf("failed to delete record list %s: %w", list.Identifier, err)
	}
	c.logger.Debug("deleted record list", "identifier", list.Identifier)
	return nil
}

// GetListItems returns the items of a record list.
func (c *Client) GetListItems(ctx context.Context, list RecordList) ([]RecordListItem, error) {
	dtos, err := c.api.GetListItems(ctx, list.Identifier.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items of record list %s: %w", list.Identifier, err)
	}
	return itemsFromDTO(dtos)
}

// AddItemsToList adds items to a list and returns the list's full item set
// afterwards. Every item must carry a table GUID; all items are validated
// before anything is sent.
func (c *Client) AddItemsToList(ctx context.Context, list RecordList, items []RecordListItem) ([]RecordListItem, error) {
	if err := validateItemsForAddition(items); err != nil {
		return nil, err
	}

	dtos := make([]serverapi.ListItem, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToCreateDTO(item))
	}

	result, err := c.api.AddListItems(ctx, list.Identifier.String(), &serverapi.CreateRecordListItemsInfo{Items: dtos})
	if err != nil {
		return nil, fmt.Errorf("failed to add items to record list %s: %w", list.Identifier, err)
	}
	return itemsFromDTO(result)
}

// RemoveItemsFromList removes items from a list and returns the list's full
// item set afterwards. Removal matches on database, record history and
// pinned version; table GUIDs are ignored.
func (c *Client) RemoveItemsFromList(ctx context.Context, list RecordList, items []RecordListItem) ([]RecordListItem, error) {
	dtos := make([]serverapi.DeleteListItem, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemToDeleteDTO(item))
	}

	result, err := c.api.RemoveListItems(ctx, list.Identifier.String(), &serverapi.DeleteRecordListItems{Items: dtos})
	if err != nil {
		return nil, fmt.Errorf("failed to remove items from record list %s: %w", list.Identifier, err)
	}
	return itemsFromDTO(result)
}

// GetResolvableListItems returns the subset of a list's items the current
// user can resolve to a reachable record, in list order.
func (c *Client) GetResolvableListItems(ctx context.Context, list RecordList, opts ResolveOptions) ([]RecordListItem, error) {
	items, err := c.GetListItems(ctx, list)
	if err != nil {
		return nil, err
	}
	return c.resolver.resolve(ctx, items, opts)
}

// GetResolvableItems filters an arbitrary set of items down to the ones the
// current user can resolve, preserving input order. Empty input returns
// immediately without touching the server.
func (c *Client) GetResolvableItems(ctx context.Context, items []RecordListItem, opts ResolveOptions) ([]RecordListItem, error) {
	return c.resolver.resolve(ctx, items, opts)
}

// CopyList copies a list and returns the copy.
func (c *Client) CopyList(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.CopyList, list, "copy")
}

// ReviseList creates an editable revision of a published list and returns
// it. The revision points back at its parent via
// ParentRecordListIdentifier.
func (c *Client) ReviseList(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.ReviseList, list, "revise")
}

// RequestListApproval marks a list as awaiting approval: for publication
// when it is unpublished, for withdrawal when it is published.
func (c *Client) RequestListApproval(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.RequestListApproval, list, "request approval for")
}

// CancelListApprovalRequest withdraws a pending approval request.
func (c *Client) CancelListApprovalRequest(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.ResetAwaitingApproval, list, "cancel approval request for")
}

// PublishList publishes a list that is awaiting approval for publication.
func (c *Client) PublishList(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.PublishList, list, "publish")
}

// UnpublishList withdraws a published list that is awaiting approval for
// withdrawal.
func (c *Client) UnpublishList(ctx context.Context, list RecordList) (*RecordList, error) {
	return c.lifecycle(ctx, c.api.UnpublishList, list, "unpublish")
}

func (c *Client) lifecycle(ctx context.Context, call func(context.Context, string) (*serverapi.RecordListHeader, error), list RecordList, action string) (*RecordList, error) {
	header, err := call(ctx, list.Identifier.String())
	if err != nil {
		return nil, fmt.Errorf("failed to %s record list %s: %w", action, list.Identifier, err)
	}
	updated, err := recordListFromDTO(header)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SubscribeToList subscribes the current user to a published list.
func (c *Client) SubscribeToList(ctx context.Context, list RecordList) error {
	if err := c.api.SubscribeToList(ctx, list.Identifier.String()); err != nil {
		return fmt.Errorf("failed to subscribe to record list %s: %w", list.Identifier, err)
	}
	return nil
}

// UnsubscribeFromList removes the current user's subscription to a list.
func (c *Client) UnsubscribeFromList(ctx context.Context, list RecordList) error {
	if err := c.api.UnsubscribeFromList(ctx, list.Identifier.String()); err != nil {
		return fmt.Errorf("failed to unsubscribe from record list %s: %w", list.Identifier, err)
	}
	return nil
}

// SearchForLists runs a list search. The search is two phase: the criterion
// is posted first, then the results are fetched under the identifier the
// server assigned to the search.
//
// Items are only populated on the results when includeItems is set;
// otherwise SearchResult.Items stays nil for every hit.
func (c *Client) SearchForLists(ctx context.Context, criterion Criterion, includeItems bool) ([]SearchResult, error) {
	if criterion == nil {
		return nil, fmt.Errorf("criterion must be provided")
	}

	body := &serverapi.RecordListSearchRequest{
		SearchCriterion: criterion.toListCriterion(),
		ResponseOptions: &serverapi.ResponseOptions{IncludeRecordListItems: includeItems},
	}
	info, err := c.api.RunListSearch(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to run record list search: %w", err)
	}

	dtos, err := c.api.GetListSearchResults(ctx, info.SearchResultIdentifier)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record list search results: %w", err)
	}

	results := make([]SearchResult, 0, len(dtos))
	for _, dto := range dtos {
		result, err := searchResultFromDTO(dto, includeItems)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// validateItemsForAddition checks the table GUID requirement on every item
// before anything is sent, accumulating one error per offending item.
func validateItemsForAddition(items []RecordListItem) error {
	var errs *multierror.Error
	for i, item := range items {
		if item.TableGUID.IsZero() {
			errs = multierror.Append(errs, fmt.Errorf(
				"item %d (record history %s): table GUID must be provided", i, item.RecordHistoryGUID))
		}
	}
	return errs.ErrorOrNil()
}
