package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/recordlists"
)

func TestParseAction(t *testing.T) {
	cases := map[string]recordlists.AuditLogAction{
		"list-published": recordlists.ActionListPublished,
		"item-added":     recordlists.ActionItemAdded,
		"list-set-to-awaiting-approval-for-publishing": recordlists.ActionListSetToAwaitingApprovalForPublishing,
		"user-unsubscribed":                            recordlists.ActionUserUnsubscribed,
	}
	for input, want := range cases {
		action, err := parseAction(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, action)
	}
}

func TestParseActionUnknown(t *testing.T) {
	_, err := parseAction("list-exploded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown action "list-exploded"`)
	assert.Contains(t, err.Error(), "list-published")
}

func TestParseWindow(t *testing.T) {
	w, err := parseWindow("2024-03-01T00:00:00Z", "2024-04-01T00:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), w.since.UTC())
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), w.until.UTC())
}

func TestParseWindowUnbounded(t *testing.T) {
	w, err := parseWindow("", "")
	require.NoError(t, err)
	assert.True(t, w.contains(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.contains(time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseWindowErrors(t *testing.T) {
	_, err := parseWindow("not a time", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid since value")

	_, err = parseWindow("", "also not a time")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid until value")

	_, err = parseWindow("2024-04-01T00:00:00Z", "2024-03-01T00:00:00Z")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is before since")
}

func TestWindowContains(t *testing.T) {
	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	w := window{since: since, until: until}

	assert.False(t, w.contains(since.Add(-time.Second)))
	assert.True(t, w.contains(since), "lower bound is inclusive")
	assert.True(t, w.contains(since.Add(24*time.Hour)))
	assert.False(t, w.contains(until), "upper bound is exclusive")
	assert.False(t, w.contains(until.Add(time.Second)))
}

func TestEntrySubject(t *testing.T) {
	record := guid.MustParse("36177a6c-c542-4f61-a43c-3dd40065def3")

	withItem := recordlists.AuditLogItem{
		ListItemAffected: &recordlists.RecordListItem{RecordHistoryGUID: record},
	}
	assert.Equal(t, "record 36177a6c-c542-4f61-a43c-3dd40065def3", entrySubject(withItem))

	withUser := recordlists.AuditLogItem{
		UserOrGroupAffected: &recordlists.UserOrGroup{DisplayName: "Plate Reviewers"},
	}
	assert.Equal(t, "Plate Reviewers", entrySubject(withUser))

	assert.Equal(t, "-", entrySubject(recordlists.AuditLogItem{}))
}

func TestEntryRowAction(t *testing.T) {
	entry := recordlists.AuditLogItem{
		ListIdentifier: guid.MustParse("0d3cbb17-2672-4c63-8035-ca41ae7944f7"),
		Action:         recordlists.ActionListSetToAwaitingApprovalForPublishing,
		Timestamp:      time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
	}
	row := entryRow(entry)
	require.Len(t, row, len(entryHeaders))
	assert.Equal(t, "0d3cbb17-2672-4c63-8035-ca41ae7944f7", row[1])
	assert.Equal(t, "list-set-to-awaiting-approval-for-publishing", row[2])
}
