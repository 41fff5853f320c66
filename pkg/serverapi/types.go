package serverapi

import (
	"github.com/go-openapi/strfmt"
)

// RecordListHeader is the wire representation of a record list.
type RecordListHeader struct {
	Identifier                 string           `json:"identifier"`
	Name                       string           `json:"name"`
	Description                *string          `json:"description,omitempty"`
	Notes                      *string          `json:"notes,omitempty"`
	CreatedTimestamp           strfmt.DateTime  `json:"createdTimestamp"`
	CreatedUser                *UserOrGroup     `json:"createdUser,omitempty"`
	LastModifiedTimestamp      strfmt.DateTime  `json:"lastModifiedTimestamp"`
	LastModifiedUser           *UserOrGroup     `json:"lastModifiedUser,omitempty"`
	PublishedTimestamp         *strfmt.DateTime `json:"publishedTimestamp,omitempty"`
	PublishedUser              *UserOrGroup     `json:"publishedUser,omitempty"`
	Published                  bool             `json:"published"`
	IsRevision                 bool             `json:"isRevision"`
	AwaitingApproval           bool             `json:"awaitingApproval"`
	InternalUse                bool             `json:"internalUse"`
	ParentRecordListIdentifier *string          `json:"parentRecordListIdentifier,omitempty"`
}

// RecordListsInfo is the response envelope for list enumeration.
type RecordListsInfo struct {
	Lists []RecordListHeader `json:"lists"`
}

// UserOrGroup is the wire representation of a user or group reference.
type UserOrGroup struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"displayName"`
	Name        string `json:"name"`
}

// ListItem is the wire representation of a record list item.
type ListItem struct {
	DatabaseGUID      string `json:"databaseGuid"`
	TableGUID         string `json:"tableGuid,omitempty"`
	RecordHistoryGUID string `json:"recordHistoryGuid"`
	RecordVersion     *int   `json:"recordVersion,omitempty"`
	RecordGUID        string `json:"recordGuid,omitempty"`
}

// DeleteListItem identifies an item to remove from a list. Removal matches on
// database, history and version; the table is not part of the removal key.
type DeleteListItem struct {
	DatabaseGUID      string `json:"databaseGuid"`
	RecordHistoryGUID string `json:"recordHistoryGuid"`
	RecordVersion     *int   `json:"recordVersion,omitempty"`
}

// RecordListItemsInfo is the response envelope for item enumeration.
type RecordListItemsInfo struct {
	Items []ListItem `json:"items"`
}

// CreateRecordListItemsInfo is the request body for adding items.
type CreateRecordListItemsInfo struct {
	Items []ListItem `json:"items"`
}

// DeleteRecordListItems is the request body for removing items.
type DeleteRecordListItems struct {
	Items []DeleteListItem `json:"items"`
}

// CreateRecordList is the request body for list creation.
type CreateRecordList struct {
	Name        string                     `json:"name"`
	Description *string                    `json:"description,omitempty"`
	Notes       *string                    `json:"notes,omitempty"`
	Items       *CreateRecordListItemsInfo `json:"items,omitempty"`
}

// PatchOperation is one JSON-Patch style operation within a list update.
type PatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// ListCriterion is the recursive wire form of a record-list search criterion.
// Leaf filters and boolean combinators share one shape; combinators carry
// child criteria in MatchAny/MatchAll and leave the filter fields unset.
type ListCriterion struct {
	MatchAny []*ListCriterion `json:"matchAny,omitempty"`
	MatchAll []*ListCriterion `json:"matchAll,omitempty"`

	NameContains                        *string  `json:"nameContains,omitempty"`
	UserRole                            *string  `json:"userRole,omitempty"`
	IsPublished                         *bool    `json:"isPublished,omitempty"`
	IsAwaitingApproval                  *bool    `json:"isAwaitingApproval,omitempty"`
	IsInternalUse                       *bool    `json:"isInternalUse,omitempty"`
	IsRevision                          *bool    `json:"isRevision,omitempty"`
	ContainsRecordsInDatabases          []string `json:"containsRecordsInDatabases,omitempty"`
	ContainsRecordsInIntegrationSchemas []string `json:"containsRecordsInIntegrationSchemas,omitempty"`
	ContainsRecordsInTables             []string `json:"containsRecordsInTables,omitempty"`
	ContainsRecords                     []string `json:"containsRecords,omitempty"`
	UserCanAddOrRemoveItems             *bool    `json:"userCanAddOrRemoveItems,omitempty"`
}

// ResponseOptions controls what a list search returns alongside each header.
type ResponseOptions struct {
	IncludeRecordListItems bool `json:"includeRecordListItems"`
}

// RecordListSearchRequest is the request body for the list search endpoint.
type RecordListSearchRequest struct {
	SearchCriterion *ListCriterion   `json:"searchCriterion"`
	ResponseOptions *ResponseOptions `json:"responseOptions,omitempty"`
}

// SearchInfo carries the identifier handed back by a search submission; the
// actual results are fetched with it in a second request.
type SearchInfo struct {
	SearchResultIdentifier string `json:"searchResultIdentifier"`
}

// RecordListSearchResult pairs a matching list header with its items when
// they were requested via ResponseOptions.
type RecordListSearchResult struct {
	Header RecordListHeader `json:"header"`
	Items  []ListItem       `json:"items,omitempty"`
}

// RecordListSearchResultsInfo is the response envelope for search results.
type RecordListSearchResultsInfo struct {
	SearchResults []RecordListSearchResult `json:"searchResults"`
}

// PagingOptions selects one page of a paged search.
type PagingOptions struct {
	PageSize   int `json:"pageSize"`
	StartIndex int `json:"startIndex"`
}

// AuditLogSearchRequest is the request body for the audit-log search endpoint.
type AuditLogSearchRequest struct {
	FilterRecordListIdentifiers []string       `json:"filterRecordListIdentifiers,omitempty"`
	FilterActions               []string       `json:"filterActions,omitempty"`
	PagingOptions               *PagingOptions `json:"pagingOptions,omitempty"`
}

// ListAuditEntry is one entry of a record list's audit trail.
type ListAuditEntry struct {
	ListIdentifier      string          `json:"listIdentifier"`
	InitiatingUser      *UserOrGroup    `json:"initiatingUser,omitempty"`
	UserOrGroupAffected *UserOrGroup    `json:"userOrGroupAffected,omitempty"`
	ListItemAffected    *ListItem       `json:"listItemAffected,omitempty"`
	Action              string          `json:"action"`
	Timestamp           strfmt.DateTime `json:"timestamp"`
}

// VersionInfo is the response of the service-layer version endpoint.
type VersionInfo struct {
	Version                    string `json:"version"`
	MajorMinorVersion          string `json:"majorMinorVersion"`
	BinaryCompatibilityVersion string `json:"binaryCompatibilityVersion,omitempty"`
}

// Database describes one database visible to the current session.
type Database struct {
	GUID   string `json:"guid"`
	Key    string `json:"key"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// DatabasesInfo is the response envelope for database enumeration.
type DatabasesInfo struct {
	Databases []Database `json:"databases"`
}

// RecordSearchCriterion is a targeted existence query for a single record
// within one database.
type RecordSearchCriterion struct {
	TableGUID         string `json:"tableGuid,omitempty"`
	RecordHistoryGUID string `json:"recordHistoryGuid"`
	RecordVersion     *int   `json:"recordVersion,omitempty"`
}

// RecordSearchResult is one record reference returned by a database search.
type RecordSearchResult struct {
	RecordHistoryGUID string `json:"recordHistoryGuid"`
	RecordGUID        string `json:"recordGuid,omitempty"`
	TableGUID         string `json:"tableGuid,omitempty"`
	RecordVersion     *int   `json:"recordVersion,omitempty"`
}

// RecordSearchResultsInfo is the response envelope for a database search.
type RecordSearchResultsInfo struct {
	Results []RecordSearchResult `json:"results"`
}
