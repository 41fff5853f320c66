package recordlists

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullable(t *testing.T) {
	t.Run("zero value is not provided", func(t *testing.T) {
		var n Nullable[string]
		assert.False(t, n.IsProvided())
		assert.False(t, n.IsNull())
		_, ok := n.Value()
		assert.False(t, ok)
	})

	t.Run("set value", func(t *testing.T) {
		n := Set("hello")
		assert.True(t, n.IsProvided())
		assert.False(t, n.IsNull())
		v, ok := n.Value()
		assert.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("explicit null", func(t *testing.T) {
		n := Null[string]()
		assert.True(t, n.IsProvided())
		assert.True(t, n.IsNull())
		_, ok := n.Value()
		assert.False(t, ok)
	})
}

func TestUpdateListProperties_Validate(t *testing.T) {
	tests := []struct {
		name    string
		props   UpdateListProperties
		wantErr string
	}{
		{
			name:    "nothing provided",
			props:   UpdateListProperties{},
			wantErr: "at least one property",
		},
		{
			name:    "name cannot be cleared",
			props:   UpdateListProperties{Name: Null[string]()},
			wantErr: "name cannot be null",
		},
		{
			name:  "new name",
			props: UpdateListProperties{Name: Set("renamed")},
		},
		{
			name:  "clearing an optional property",
			props: UpdateListProperties{Notes: Null[string]()},
		},
		{
			name: "mixing values and nulls",
			props: UpdateListProperties{
				Name:        Set("renamed"),
				Description: Null[string](),
				Notes:       Set("fresh notes"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.props.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateListProperties_PatchOperations(t *testing.T) {
	props := UpdateListProperties{
		Name:        Set("renamed"),
		Description: Null[string](),
	}

	ops := props.patchOperations()
	data, err := json.Marshal(ops)
	require.NoError(t, err)

	// An explicit null must survive onto the wire; an unprovided field must
	// not appear at all.
	expected := `[
		{"op": "replace", "path": "/name", "value": "renamed"},
		{"op": "replace", "path": "/description", "value": null}
	]`
	assert.JSONEq(t, expected, string(data))
}
