package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

func TestParseListIdentifier(t *testing.T) {
	identifier, err := parseListIdentifier("{550E8400-E29B-41D4-A716-446655440000}")
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", identifier.String())

	_, err = parseListIdentifier("not-a-guid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid list identifier")
}

func TestListState(t *testing.T) {
	assert.Equal(t, "unpublished", listState(recordlists.RecordList{}))
	assert.Equal(t, "published", listState(recordlists.RecordList{Published: true}))
	assert.Equal(t, "revision", listState(recordlists.RecordList{IsRevision: true}))
	assert.Equal(t, "awaiting-approval",
		listState(recordlists.RecordList{Published: true, AwaitingApproval: true}))
}

func TestParseRole(t *testing.T) {
	role, err := parseRole("owner")
	require.NoError(t, err)
	assert.Equal(t, recordlists.UserRoleOwner, role)

	role, err = parseRole("administrator")
	require.NoError(t, err)
	assert.Equal(t, recordlists.UserRoleAdministrator, role)

	_, err = parseRole("janitor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown role "janitor"`)
}

func TestSearchCriterion(t *testing.T) {
	database := guid.New()
	record := guid.New()

	cmd := &SearchCommand{
		flagNameContains: "steel",
		flagRole:         "curator",
		flagPublished:    "true",
		flagEditable:     "false",
		flagDatabases:    []string{database.String()},
		flagRecords:      []string{record.String()},
	}

	criterion, err := cmd.criterion()
	require.NoError(t, err)

	require.NotNil(t, criterion.NameContains)
	assert.Equal(t, "steel", *criterion.NameContains)
	require.NotNil(t, criterion.UserRole)
	assert.Equal(t, recordlists.UserRoleCurator, *criterion.UserRole)
	require.NotNil(t, criterion.IsPublished)
	assert.True(t, *criterion.IsPublished)
	require.NotNil(t, criterion.UserCanAddOrRemoveItems)
	assert.False(t, *criterion.UserCanAddOrRemoveItems)
	assert.Nil(t, criterion.IsAwaitingApproval, "unset filter stays out of the criterion")
	assert.Nil(t, criterion.IsRevision)

	require.Len(t, criterion.ContainsRecordsInDatabases, 1)
	assert.True(t, criterion.ContainsRecordsInDatabases[0].Equal(database))
	require.Len(t, criterion.ContainsRecords, 1)
	assert.True(t, criterion.ContainsRecords[0].Equal(record))
	assert.Empty(t, criterion.ContainsRecordsInTables)
}

func TestSearchCriterionBadInput(t *testing.T) {
	cmd := &SearchCommand{flagPublished: "maybe"}
	_, err := cmd.criterion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid published value "maybe"`)

	cmd = &SearchCommand{flagTables: []string{"zzz"}}
	_, err = cmd.criterion()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid in-table value")
}

func TestUpdateProperties(t *testing.T) {
	cmd := &UpdateCommand{flagName: "renamed", flagClearNotes: true}
	props, err := cmd.properties()
	require.NoError(t, err)

	value, ok := props.Name.Value()
	require.True(t, ok)
	assert.Equal(t, "renamed", value)
	assert.False(t, props.Description.IsProvided())
	assert.True(t, props.Notes.IsNull())
}

func TestUpdatePropertiesConflicts(t *testing.T) {
	cmd := &UpdateCommand{flagDescription: "new", flagClearDescription: true}
	_, err := cmd.properties()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description and clear-description are mutually exclusive")

	cmd = &UpdateCommand{flagNotes: "new", flagClearNotes: true}
	_, err = cmd.properties()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes and clear-notes are mutually exclusive")
}
