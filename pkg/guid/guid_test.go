package guid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "canonical form",
			input: "550e8400-e29b-41d4-a716-446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "uppercase normalized",
			input: "550E8400-E29B-41D4-A716-446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "bare hex without hyphens",
			input: "550e8400e29b41d4a716446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "braced form",
			input: "{550e8400-e29b-41d4-a716-446655440000}",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:  "urn form",
			input: "urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			want:  "550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:    "invalid value",
			input:   "invalid-guid",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "truncated",
			input:   "550e8400",
			wantErr: true,
		},
		{
			name:    "invalid characters",
			input:   "550e8400-e29b-41d4-a716-44665544000g",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.String())
		})
	}
}

func TestParse_ErrorNamesValue(t *testing.T) {
	_, err := Parse("invalid-guid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"invalid-guid" is not a valid GUID`)
}

func TestMustParse(t *testing.T) {
	t.Run("parses valid GUID", func(t *testing.T) {
		g := MustParse("550e8400-e29b-41d4-a716-446655440000")
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", g.String())
	})

	t.Run("panics on invalid GUID", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParse("not-a-guid")
		})
	})

	t.Run("panics on empty GUID", func(t *testing.T) {
		assert.Panics(t, func() {
			MustParse("")
		})
	})
}

func TestGUID_IsZero(t *testing.T) {
	t.Run("zero GUID", func(t *testing.T) {
		var g GUID
		assert.True(t, g.IsZero())
	})

	t.Run("non-zero GUID", func(t *testing.T) {
		assert.False(t, New().IsZero())
	})

	t.Run("parsed nil GUID", func(t *testing.T) {
		g, err := Parse("00000000-0000-0000-0000-000000000000")
		require.NoError(t, err)
		assert.True(t, g.IsZero())
	})
}

func TestGUID_Equal(t *testing.T) {
	t.Run("equal GUIDs", func(t *testing.T) {
		g1 := MustParse("550e8400-e29b-41d4-a716-446655440000")
		g2 := MustParse("{550E8400-E29B-41D4-A716-446655440000}")
		assert.True(t, g1.Equal(g2))
	})

	t.Run("different GUIDs", func(t *testing.T) {
		assert.False(t, New().Equal(New()))
	})

	t.Run("usable as map key", func(t *testing.T) {
		m := map[GUID]int{}
		m[MustParse("550e8400-e29b-41d4-a716-446655440000")] = 1
		m[MustParse("550e8400e29b41d4a716446655440000")] = 2
		assert.Len(t, m, 1)
		assert.Equal(t, 2, m[MustParse("550e8400-e29b-41d4-a716-446655440000")])
	})
}

func TestGUID_MarshalJSON(t *testing.T) {
	t.Run("valid GUID", func(t *testing.T) {
		g := MustParse("550e8400-e29b-41d4-a716-446655440000")
		data, err := json.Marshal(g)
		require.NoError(t, err)
		assert.Equal(t, `"550e8400-e29b-41d4-a716-446655440000"`, string(data))
	})

	t.Run("zero GUID", func(t *testing.T) {
		var g GUID
		data, err := json.Marshal(g)
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})
}

func TestGUID_UnmarshalJSON(t *testing.T) {
	t.Run("valid GUID", func(t *testing.T) {
		var g GUID
		err := json.Unmarshal([]byte(`"550e8400-e29b-41d4-a716-446655440000"`), &g)
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", g.String())
	})

	t.Run("null value", func(t *testing.T) {
		var g GUID
		err := json.Unmarshal([]byte("null"), &g)
		require.NoError(t, err)
		assert.True(t, g.IsZero())
	})

	t.Run("empty string", func(t *testing.T) {
		var g GUID
		err := json.Unmarshal([]byte(`""`), &g)
		require.NoError(t, err)
		assert.True(t, g.IsZero())
	})

	t.Run("invalid GUID", func(t *testing.T) {
		var g GUID
		err := json.Unmarshal([]byte(`"not-a-guid"`), &g)
		assert.Error(t, err)
	})

	t.Run("not a string", func(t *testing.T) {
		var g GUID
		err := json.Unmarshal([]byte(`123`), &g)
		assert.Error(t, err)
	})
}
