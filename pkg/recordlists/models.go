package recordlists

import (
	"fmt"
	"time"

	"github.com/matforge/recordlists-go/pkg/guid"
)

// RecordList describes a record list as held by the server. Instances come
// from server responses and are read-only; use the client operations to
// change a list's properties or state.
type RecordList struct {
	// Identifier is the server-assigned identity of the list.
	Identifier guid.GUID

	Name        string
	Description *string
	Notes       *string

	CreatedTimestamp      time.Time
	CreatedUser           UserOrGroup
	LastModifiedTimestamp time.Time
	LastModifiedUser      UserOrGroup

	// PublishedTimestamp and PublishedUser are set once the list has been
	// published at least once.
	PublishedTimestamp *time.Time
	PublishedUser      *UserOrGroup

	Published        bool
	IsRevision       bool
	AwaitingApproval bool
	InternalUse      bool

	// ParentRecordListIdentifier is set on revisions and points at the
	// published list the revision was created from. Zero otherwise.
	ParentRecordListIdentifier guid.GUID
}

func (l *RecordList) String() string {
	return fmt.Sprintf("<RecordList name: %s>", l.Name)
}

// RecordListItem describes an item of a RecordList, i.e. a record in one of
// the server's databases. An item does not necessarily represent a record
// that exists on the server, or one the current user can see.
type RecordListItem struct {
	// DatabaseGUID identifies the database holding the record. Note that
	// GUIDs are not guaranteed unique across databases; see the resolver.
	DatabaseGUID guid.GUID

	// TableGUID identifies the table holding the record. It may be zero on
	// items built locally, but is required when adding items to a list.
	TableGUID guid.GUID

	// RecordHistoryGUID identifies the record across its versions.
	RecordHistoryGUID guid.GUID

	// RecordVersion pins a specific version of a record in a
	// version-controlled table. When nil, the item tracks the latest
	// available version.
	RecordVersion *int

	// RecordGUID identifies the exact record version. Populated by the
	// server on items fetched from a list when the item pins a version;
	// never set on locally constructed items.
	RecordGUID guid.GUID
}

// NewRecordListItem builds an item tracking the latest version of a record.
func NewRecordListItem(databaseGUID, tableGUID, recordHistoryGUID guid.GUID) RecordListItem {
	return RecordListItem{
		DatabaseGUID:      databaseGUID,
		TableGUID:         tableGUID,
		RecordHistoryGUID: recordHistoryGUID,
	}
}

// NewVersionedRecordListItem builds an item pinned to a specific version of
// a record in a version-controlled table.
func NewVersionedRecordListItem(databaseGUID, tableGUID, recordHistoryGUID guid.GUID, recordVersion int) RecordListItem {
	item := NewRecordListItem(databaseGUID, tableGUID, recordHistoryGUID)
	item.RecordVersion = &recordVersion
	return item
}

// Equal reports whether two items identify the same record reference. The
// comparison covers database, table, record history and pinned version; the
// server-assigned RecordGUID is deliberately excluded so a locally built
// item compares equal to its server-returned counterpart.
func (i RecordListItem) Equal(other RecordListItem) bool {
	return i.DatabaseGUID.Equal(other.DatabaseGUID) &&
		i.TableGUID.Equal(other.TableGUID) &&
		i.RecordHistoryGUID.Equal(other.RecordHistoryGUID) &&
		equalIntPtr(i.RecordVersion, other.RecordVersion)
}

func (i RecordListItem) String() string {
	return fmt.Sprintf("<RecordListItem(record_history_guid=%s)>", i.RecordHistoryGUID)
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// UserOrGroup identifies a user or group known to the server.
type UserOrGroup struct {
	Identifier  guid.GUID
	DisplayName string
	Name        string
}

func (u UserOrGroup) String() string {
	return fmt.Sprintf("<UserOrGroup display_name: %s>", u.DisplayName)
}

// SearchResult pairs a matching record list with its items. Items is nil
// unless the search requested them, distinguishing a list without items from
// a list whose items were not fetched.
type SearchResult struct {
	List  RecordList
	Items []RecordListItem
}

func (r *SearchResult) String() string {
	return fmt.Sprintf("<SearchResult name: %s>", r.List.Name)
}

// Bool returns a pointer to v. Convenience for optional criterion fields.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v. Convenience for optional fields.
func Int(v int) *int { return &v }

// String returns a pointer to v. Convenience for optional fields.
func String(v string) *string { return &v }
