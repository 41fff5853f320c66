package recordlists

import (
	"fmt"
	"time"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// Mapping between domain objects and Server API DTOs. Kept as standalone
// functions so the domain types stay free of transport coupling; substituting
// a different transport only means replacing this file and the client.

func recordListFromDTO(h *serverapi.RecordListHeader) (RecordList, error) {
	identifier, err := guid.Parse(h.Identifier)
	if err != nil {
		return RecordList{}, fmt.Errorf("failed to decode record list identifier: %w", err)
	}

	createdUser, err := userOrGroupFromDTO(h.CreatedUser)
	if err != nil {
		return RecordList{}, fmt.Errorf("failed to decode record list %s: %w", h.Identifier, err)
	}
	modifiedUser, err := userOrGroupFromDTO(h.LastModifiedUser)
	if err != nil {
		return RecordList{}, fmt.Errorf("failed to decode record list %s: %w", h.Identifier, err)
	}

	list := RecordList{
		Identifier:            identifier,
		Name:                  h.Name,
		Description:           h.Description,
		Notes:                 h.Notes,
		CreatedTimestamp:      time.Time(h.CreatedTimestamp),
		CreatedUser:           createdUser,
		LastModifiedTimestamp: time.Time(h.LastModifiedTimestamp),
		LastModifiedUser:      modifiedUser,
		Published:             h.Published,
		IsRevision:            h.IsRevision,
		AwaitingApproval:      h.AwaitingApproval,
		InternalUse:           h.InternalUse,
	}

	if h.PublishedTimestamp != nil {
		ts := time.Time(*h.PublishedTimestamp)
		list.PublishedTimestamp = &ts
	}
	if h.PublishedUser != nil {
		publishedUser, err := userOrGroupFromDTO(h.PublishedUser)
		if err != nil {
			return RecordList{}, fmt.Errorf("failed to decode record list %s: %w", h.Identifier, err)
		}
		list.PublishedUser = &publishedUser
	}
	if h.ParentRecordListIdentifier != nil && *h.ParentRecordListIdentifier != "" {
		parent, err := guid.Parse(*h.ParentRecordListIdentifier)
		if err != nil {
			return RecordList{}, fmt.Errorf("failed to decode record list %s: %w", h.Identifier, err)
		}
		list.ParentRecordListIdentifier = parent
	}

	return list, nil
}

func userOrGroupFromDTO(u *serverapi.UserOrGroup) (UserOrGroup, error) {
	if u == nil {
		return UserOrGroup{}, nil
	}
	identifier, err := guid.Parse(u.Identifier)
	if err != nil {
		return UserOrGroup{}, fmt.Errorf("failed to decode user identifier: %w", err)
	}
	return UserOrGroup{
		Identifier:  identifier,
		DisplayName: u.DisplayName,
		Name:        u.Name,
	}, nil
}

func itemFromDTO(dto serverapi.ListItem) (RecordListItem, error) {
	databaseGUID, err := guid.Parse(dto.DatabaseGUID)
	if err != nil {
		return RecordListItem{}, fmt.Errorf("failed to decode list item database: %w", err)
	}
	historyGUID, err := guid.Parse(dto.RecordHistoryGUID)
	if err != nil {
		return RecordListItem{}, fmt.Errorf("failed to decode list item record history: %w", err)
	}

	item := RecordListItem{
		DatabaseGUID:      databaseGUID,
		RecordHistoryGUID: historyGUID,
		RecordVersion:     dto.RecordVersion,
	}

	if dto.TableGUID != "" {
		tableGUID, err := guid.Parse(dto.TableGUID)
		if err != nil {
			return RecordListItem{}, fmt.Errorf("failed to decode list item table: %w", err)
		}
		item.TableGUID = tableGUID
	}
	if dto.RecordGUID != "" {
		recordGUID, err := guid.Parse(dto.RecordGUID)
		if err != nil {
			return RecordListItem{}, fmt.Errorf("failed to decode list item record: %w", err)
		}
		item.RecordGUID = recordGUID
	}

	return item, nil
}

func itemsFromDTO(dtos []serverapi.ListItem) ([]RecordListItem, error) {
	items := make([]RecordListItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemFromDTO(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// itemToCreateDTO serializes an item for list addition. The table GUID is
// part of this serialization; AddItemsToList validates its presence first.
func itemToCreateDTO(item RecordListItem) serverapi.ListItem {
	dto := serverapi.ListItem{
		DatabaseGUID:      item.DatabaseGUID.String(),
		RecordHistoryGUID: item.RecordHistoryGUID.String(),
		RecordVersion:     item.RecordVersion,
	}
	if !item.TableGUID.IsZero() {
		dto.TableGUID = item.TableGUID.String()
	}
	return dto
}

// itemToDeleteDTO serializes an item for list removal. Removal matches on
// database, record history and version; no table GUID is sent.
func itemToDeleteDTO(item RecordListItem) serverapi.DeleteListItem {
	return serverapi.DeleteListItem{
		DatabaseGUID:      item.DatabaseGUID.String(),
		RecordHistoryGUID: item.RecordHistoryGUID.String(),
		RecordVersion:     item.RecordVersion,
	}
}

// itemToRecordSearchCriterion serializes an item as a targeted existence
// query within a single database.
func itemToRecordSearchCriterion(item RecordListItem) *serverapi.RecordSearchCriterion {
	criterion := &serverapi.RecordSearchCriterion{
		RecordHistoryGUID: item.RecordHistoryGUID.String(),
		RecordVersion:     item.RecordVersion,
	}
	if !item.TableGUID.IsZero() {
		criterion.TableGUID = item.TableGUID.String()
	}
	return criterion
}

func searchResultFromDTO(dto serverapi.RecordListSearchResult, includesItems bool) (SearchResult, error) {
	list, err := recordListFromDTO(&dto.Header)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{List: list}

	// Items stay nil when they were not requested: on the wire both "no
	// items" and "items not fetched" arrive as an empty list.
	if includesItems {
		items, err := itemsFromDTO(dto.Items)
		if err != nil {
			return SearchResult{}, err
		}
		result.Items = items
	}

	return result, nil
}

func auditItemFromDTO(dto serverapi.ListAuditEntry) (AuditLogItem, error) {
	listIdentifier, err := guid.Parse(dto.ListIdentifier)
	if err != nil {
		return AuditLogItem{}, fmt.Errorf("failed to decode audit entry list identifier: %w", err)
	}
	initiating, err := userOrGroupFromDTO(dto.InitiatingUser)
	if err != nil {
		return AuditLogItem{}, fmt.Errorf("failed to decode audit entry for list %s: %w", dto.ListIdentifier, err)
	}

	item := AuditLogItem{
		ListIdentifier: listIdentifier,
		InitiatingUser: initiating,
		Action:         AuditLogAction(dto.Action),
		Timestamp:      time.Time(dto.Timestamp),
	}

	if dto.UserOrGroupAffected != nil {
		affected, err := userOrGroupFromDTO(dto.UserOrGroupAffected)
		if err != nil {
			return AuditLogItem{}, fmt.Errorf("failed to decode audit entry for list %s: %w", dto.ListIdentifier, err)
		}
		item.UserOrGroupAffected = &affected
	}
	if dto.ListItemAffected != nil {
		affected, err := itemFromDTO(*dto.ListItemAffected)
		if err != nil {
			return AuditLogItem{}, fmt.Errorf("failed to decode audit entry for list %s: %w", dto.ListIdentifier, err)
		}
		item.ListItemAffected = &affected
	}

	return item, nil
}
