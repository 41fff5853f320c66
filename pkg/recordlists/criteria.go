package recordlists

import (
	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// UserRole is a role the current user can hold on a record list, used to
// filter list searches.
type UserRole string

const (
	// UserRoleNone matches lists on which the user holds no role. Searching
	// with this role excludes every list the user can see, so it is only
	// useful inside boolean combinations.
	UserRoleNone UserRole = "None"

	UserRoleOwner         UserRole = "Owner"
	UserRoleSubscriber    UserRole = "Subscriber"
	UserRoleCurator       UserRole = "Curator"
	UserRoleAdministrator UserRole = "Administrator"
)

// Role returns a pointer to v. Convenience for SearchCriterion.UserRole.
func Role(v UserRole) *UserRole { return &v }

// Criterion is a record-list search criterion. SearchCriterion expresses a
// single set of filters; BooleanCriterion combines other criteria.
type Criterion interface {
	toListCriterion() *serverapi.ListCriterion
}

// SearchCriterion filters a record-list search. Nil fields are not part of
// the filter; all set fields must match (AND semantics within one criterion).
type SearchCriterion struct {
	// NameContains matches lists whose name contains the given string.
	NameContains *string

	// UserRole matches lists on which the current user has the given role.
	UserRole *UserRole

	IsPublished        *bool
	IsAwaitingApproval *bool
	IsInternalUse      *bool
	IsRevision         *bool

	// ContainsRecordsInDatabases matches lists containing records in any of
	// the given databases.
	ContainsRecordsInDatabases []guid.GUID

	// ContainsRecordsInIntegrationSchemas matches lists containing records
	// in any of the given integration schemas.
	ContainsRecordsInIntegrationSchemas []guid.GUID

	// ContainsRecordsInTables matches lists containing records in any of
	// the given tables.
	ContainsRecordsInTables []guid.GUID

	// ContainsRecords matches lists containing any of the given records,
	// identified by record history GUID.
	ContainsRecords []guid.GUID

	// UserCanAddOrRemoveItems matches lists the current user may edit.
	UserCanAddOrRemoveItems *bool
}

var _ Criterion = (*SearchCriterion)(nil)

func (c *SearchCriterion) toListCriterion() *serverapi.ListCriterion {
	out := &serverapi.ListCriterion{
		NameContains:                        c.NameContains,
		IsPublished:                         c.IsPublished,
		IsAwaitingApproval:                  c.IsAwaitingApproval,
		IsInternalUse:                       c.IsInternalUse,
		IsRevision:                          c.IsRevision,
		ContainsRecordsInDatabases:          guidStrings(c.ContainsRecordsInDatabases),
		ContainsRecordsInIntegrationSchemas: guidStrings(c.ContainsRecordsInIntegrationSchemas),
		ContainsRecordsInTables:             guidStrings(c.ContainsRecordsInTables),
		ContainsRecords:                     guidStrings(c.ContainsRecords),
		UserCanAddOrRemoveItems:             c.UserCanAddOrRemoveItems,
	}
	if c.UserRole != nil {
		role := string(*c.UserRole)
		out.UserRole = &role
	}
	return out
}

// BooleanCriterion combines child criteria. MatchAny keeps lists matching at
// least one child; MatchAll keeps lists matching every child. Supplying both
// keeps lists satisfying all of MatchAll and at least one of MatchAny.
type BooleanCriterion struct {
	MatchAny []Criterion
	MatchAll []Criterion
}

var _ Criterion = (*BooleanCriterion)(nil)

func (c *BooleanCriterion) toListCriterion() *serverapi.ListCriterion {
	return &serverapi.ListCriterion{
		MatchAny: toListCriteria(c.MatchAny),
		MatchAll: toListCriteria(c.MatchAll),
	}
}

func toListCriteria(criteria []Criterion) []*serverapi.ListCriterion {
	if criteria == nil {
		return nil
	}
	out := make([]*serverapi.ListCriterion, 0, len(criteria))
	for _, c := range criteria {
		out = append(out, c.toListCriterion())
	}
	return out
}

func guidStrings(guids []guid.GUID) []string {
	if guids == nil {
		return nil
	}
	out := make([]string, 0, len(guids))
	for _, g := range guids {
		out = append(out, g.String())
	}
	return out
}
