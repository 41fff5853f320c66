// Package guid provides the typed GUID used to identify databases, tables,
// records and record lists throughout the MatForge Data Server API.
//
// The server emits canonical lowercase hyphenated UUID strings, but callers
// hold GUIDs copied from a variety of sources (URLs, exports, the desktop
// client), so Parse accepts the four common textual forms:
//
//	"550e8400-e29b-41d4-a716-446655440000"
//	"550e8400e29b41d4a716446655440000"
//	"{550e8400-e29b-41d4-a716-446655440000}"
//	"urn:uuid:550e8400-e29b-41d4-a716-446655440000"
//
// All forms normalize to the canonical representation. The zero GUID means
// "absent" and marshals to JSON null.
package guid

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// GUID is a globally unique identifier for a server-side entity.
type GUID struct {
	value uuid.UUID
}

// New generates a new random GUID (v4). Mostly useful in tests; the server
// assigns identifiers for real entities.
func New() GUID {
	return GUID{value: uuid.New()}
}

// MustParse parses a GUID from string, panicking on error.
// Useful for test fixtures and constants where the GUID is known valid.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid GUID: %s: %v", s, err))
	}
	return g
}

// Parse parses a GUID from any of the accepted textual forms and normalizes
// it to the canonical lowercase hyphenated representation.
func Parse(s string) (GUID, error) {
	if s == "" {
		return GUID{}, fmt.Errorf("GUID cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("value %q is not a valid GUID: %w", s, err)
	}
	return GUID{value: u}, nil
}

// String returns the canonical GUID string in lowercase with hyphens.
func (g GUID) String() string {
	return g.value.String()
}

// IsZero returns true if this is the zero/nil GUID.
func (g GUID) IsZero() bool {
	return g.value == uuid.Nil
}

// Equal returns true if two GUIDs are equal.
func (g GUID) Equal(other GUID) bool {
	return g.value == other.value
}

// MarshalJSON implements json.Marshaler. The zero GUID serializes as null.
func (g GUID) MarshalJSON() ([]byte, error) {
	if g.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(g.String())
}

// UnmarshalJSON implements json.Unmarshaler. null and "" decode to the zero
// GUID; anything else must be one of the accepted textual forms.
func (g *GUID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = GUID{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("GUID must be a string: %w", err)
	}
	if s == "" {
		*g = GUID{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
