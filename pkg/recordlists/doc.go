// Package recordlists is the typed client for the record-lists resource of
// the MatForge Data Server.
//
// A record list is a curated, shareable collection of references to records
// held in the server's materials databases. This package wraps the raw
// Server API (pkg/serverapi) with domain objects and operations:
//
//	cfg := serverapi.DefaultConfig()
//	cfg.BaseURL = "https://mi.example.com/mi_servicelayer"
//	cfg.APIToken = os.Getenv("MATFORGE_API_TOKEN")
//
//	client, err := recordlists.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lists, err := client.GetAllLists(ctx)
//
// # Domain objects and the wire
//
// RecordList, RecordListItem, SearchCriterion and friends are plain data
// holders. Conversion to and from the Server API's DTO types happens through
// explicit mapping functions in this package, so the domain types carry no
// transport coupling and a different transport can be substituted without
// touching them.
//
// # Item resolution
//
// Items identify their database by GUID, but search permissions and queries
// are scoped by database key, and distinct databases can share a GUID. The
// GetResolvableListItems operation resolves each item's GUID to the candidate
// keys and keeps the items the current user can actually reach. See the
// resolver documentation for the exact semantics.
//
// # Errors
//
// Operations issue each request exactly once; transport and authorization
// failures are returned unmodified, with *serverapi.APIError exposing the
// HTTP status for failed responses. Local validation failures are reported
// before any network traffic happens.
package recordlists
