package recordlists

import (
	"context"
	"fmt"
	"time"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/paging"
	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// AuditLogAction identifies what an audit log entry records.
type AuditLogAction string

const (
	ActionListCreated                            AuditLogAction = "ListCreated"
	ActionListDeleted                            AuditLogAction = "ListDeleted"
	ActionListNameChanged                        AuditLogAction = "ListNameChanged"
	ActionListDescriptionChanged                 AuditLogAction = "ListDescriptionChanged"
	ActionListNotesChanged                       AuditLogAction = "ListNotesChanged"
	ActionListMadeInternal                       AuditLogAction = "ListMadeInternal"
	ActionListMadeNotInternal                    AuditLogAction = "ListMadeNotInternal"
	ActionListSetToAwaitingApprovalForPublishing AuditLogAction = "ListSetToAwaitingApprovalForPublishing"
	ActionListSetToAwaitingApprovalForWithdrawal AuditLogAction = "ListSetToAwaitingApprovalForWithdrawal"
	ActionListAwaitingApprovalRemoved            AuditLogAction = "ListAwaitingApprovalRemoved"
	ActionListPublished                          AuditLogAction = "ListPublished"
	ActionListUnpublished                        AuditLogAction = "ListUnpublished"
	ActionListRevisionCreated                    AuditLogAction = "ListRevisionCreated"
	ActionListCopied                             AuditLogAction = "ListCopied"
	ActionItemAdded                              AuditLogAction = "ItemAdded"
	ActionItemRemoved                            AuditLogAction = "ItemRemoved"
	ActionUserSubscribed                         AuditLogAction = "UserSubscribed"
	ActionUserUnsubscribed                       AuditLogAction = "UserUnsubscribed"
)

// AuditLogActions returns every known audit log action.
func AuditLogActions() []AuditLogAction {
	return []AuditLogAction{
		ActionListCreated,
		ActionListDeleted,
		ActionListNameChanged,
		ActionListDescriptionChanged,
		ActionListNotesChanged,
		ActionListMadeInternal,
		ActionListMadeNotInternal,
		ActionListSetToAwaitingApprovalForPublishing,
		ActionListSetToAwaitingApprovalForWithdrawal,
		ActionListAwaitingApprovalRemoved,
		ActionListPublished,
		ActionListUnpublished,
		ActionListRevisionCreated,
		ActionListCopied,
		ActionItemAdded,
		ActionItemRemoved,
		ActionUserSubscribed,
		ActionUserUnsubscribed,
	}
}

// AuditLogItem is one entry in a record list's audit trail. Read-only.
type AuditLogItem struct {
	// ListIdentifier names the record list the entry belongs to.
	ListIdentifier guid.GUID

	// InitiatingUser performed the action.
	InitiatingUser UserOrGroup

	// UserOrGroupAffected is set for permission-related actions.
	UserOrGroupAffected *UserOrGroup

	// ListItemAffected is set for item-related actions.
	ListItemAffected *RecordListItem

	Action    AuditLogAction
	Timestamp time.Time
}

func (a *AuditLogItem) String() string {
	return fmt.Sprintf("<AuditLogItem list: %s, action: %s>", a.ListIdentifier, a.Action)
}

// AuditLogSearchCriterion filters an audit-log search. Zero-length filters
// are not applied.
type AuditLogSearchCriterion struct {
	// FilterRecordListIdentifiers restricts results to entries for the
	// given lists.
	FilterRecordListIdentifiers []guid.GUID

	// FilterActions restricts results to entries recording the given
	// actions.
	FilterActions []AuditLogAction
}

func (c *AuditLogSearchCriterion) toSearchRequest(paging *serverapi.PagingOptions) *serverapi.AuditLogSearchRequest {
	req := &serverapi.AuditLogSearchRequest{
		FilterRecordListIdentifiers: guidStrings(c.FilterRecordListIdentifiers),
		PagingOptions:               paging,
	}
	if c.FilterActions != nil {
		req.FilterActions = make([]string, 0, len(c.FilterActions))
		for _, a := range c.FilterActions {
			req.FilterActions = append(req.FilterActions, string(a))
		}
	}
	return req
}

// GetAllAuditLogEntries returns the full audit trail across all lists in
// one response. Prefer GetAllAuditLogEntriesPaged on busy servers.
func (c *Client) GetAllAuditLogEntries(ctx context.Context) ([]AuditLogItem, error) {
	return c.SearchAuditLog(ctx, AuditLogSearchCriterion{})
}

// SearchAuditLog returns all audit entries matching the criterion in one
// response.
func (c *Client) SearchAuditLog(ctx context.Context, criterion AuditLogSearchCriterion) ([]AuditLogItem, error) {
	return c.fetchAuditPage(ctx, criterion, nil)
}

// GetAllAuditLogEntriesPaged returns a lazy iterator over the full audit
// trail. A pageSize of 0 or less selects the default page size.
func (c *Client) GetAllAuditLogEntriesPaged(pageSize int) *paging.PagedResult[AuditLogItem] {
	return c.SearchAuditLogPaged(AuditLogSearchCriterion{}, pageSize)
}

// SearchAuditLogPaged returns a lazy iterator over the audit entries
// matching the criterion. Nothing is fetched until the first Scan, and each
// page issues a fresh two phase search with paging options.
func (c *Client) SearchAuditLogPaged(criterion AuditLogSearchCriterion, pageSize int) *paging.PagedResult[AuditLogItem] {
	fetch := func(ctx context.Context, size, start int) ([]AuditLogItem, error) {
		return c.fetchAuditPage(ctx, criterion, &serverapi.PagingOptions{PageSize: size, StartIndex: start})
	}
	return paging.New(fetch, pageSize)
}

// fetchAuditPage runs one two phase audit-log search. A nil paging fetches
// everything.
func (c *Client) fetchAuditPage(ctx context.Context, criterion AuditLogSearchCriterion, pagingOpts *serverapi.PagingOptions) ([]AuditLogItem, error) {
	info, err := c.api.RunAuditLogSearch(ctx, criterion.toSearchRequest(pagingOpts))
	if err != nil {
		return nil, fmt.Errorf("failed to run audit log search: %w", err)
	}

	entries, err := c.api.GetAuditLogSearchResults(ctx, info.SearchResultIdentifier)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit log search results: %w", err)
	}

	items := make([]AuditLogItem, 0, len(entries))
	for _, entry := range entries {
		item, err := auditItemFromDTO(entry)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
