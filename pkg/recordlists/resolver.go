package recordlists

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/matforge/recordlists-go/pkg/guid"
	"github.com/matforge/recordlists-go/pkg/serverapi"
)

// resolverAPI is the slice of the Server API the resolver needs.
type resolverAPI interface {
	GetAllDatabases(ctx context.Context, includeInternalUse bool) ([]serverapi.Database, error)
	SearchDatabaseRecords(ctx context.Context, databaseKey string, criterion *serverapi.RecordSearchCriterion) ([]serverapi.RecordSearchResult, error)
}

var _ resolverAPI = (*serverapi.Client)(nil)

// ResolveOptions control how resolvability is checked. The zero value
// checks sequentially against non-internal databases.
type ResolveOptions struct {
	// IncludeInternalUse extends the database enumeration to databases
	// marked for internal use only.
	IncludeInternalUse bool

	// MaxParallel is the number of items checked concurrently. Values
	// below 2 keep the checks sequential, which also fixes the order of
	// the underlying search calls. Parallelism is across items only: each
	// item still walks its candidate keys one at a time.
	MaxParallel int
}

// itemResolver filters record list items down to the ones the current user
// can reach through some visible database.
//
// Items carry a database GUID, but the record search endpoint is addressed
// by database key, and one GUID can be mounted under several keys. The
// resolver enumerates databases fresh on every call, groups keys by GUID,
// and checks each candidate key in enumeration order, stopping at the first
// database that can serve the record.
type itemResolver struct {
	api    resolverAPI
	logger hclog.Logger
}

func newItemResolver(api resolverAPI, logger hclog.Logger) *itemResolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &itemResolver{api: api, logger: logger}
}

// resolve returns the subsequence of items that are reachable, preserving
// the input order. A transport failure on any check aborts the whole call.
func (r *itemResolver) resolve(ctx context.Context, items []RecordListItem, opts ResolveOptions) ([]RecordListItem, error) {
	// No items means no network traffic, not even the database listing.
	if len(items) == 0 {
		return nil, nil
	}

	dbMap, err := r.databaseKeyMap(ctx, opts.IncludeInternalUse)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("resolving record list items", "items", len(items), "databases", len(dbMap))

	if opts.MaxParallel > 1 {
		return r.resolveParallel(ctx, dbMap, items, opts.MaxParallel)
	}

	var resolvable []RecordListItem
	for _, item := range items {
		ok, err := r.resolveItem(ctx, dbMap, item)
		if err != nil {
			return nil, err
		}
		if ok {
			resolvable = append(resolvable, item)
		}
	}
	return resolvable, nil
}

// resolveParallel distributes items over a worker pool. The returned
// subsequence keeps the input order regardless of completion order.
func (r *itemResolver) resolveParallel(ctx context.Context, dbMap map[guid.GUID][]string, items []RecordListItem, maxParallel int) ([]RecordListItem, error) {
	workers := maxParallel
	if len(items) < workers {
		workers = len(items)
	}

	resolved := make([]bool, len(items))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs *multierror.Error

	ch := make(chan int, len(items))

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, open := <-ch:
					if !open {
						return
					}
					ok, err := r.resolveItem(ctx, dbMap, items[idx])
					if err != nil {
						mu.Lock()
						errs = multierror.Append(errs, err)
						mu.Unlock()
						continue
					}
					resolved[idx] = ok
				}
			}
		}()
	}

	for idx := range items {
		ch <- idx
	}
	close(ch)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	var resolvable []RecordListItem
	for idx, item := range items {
		if resolved[idx] {
			resolvable = append(resolvable, item)
		}
	}
	return resolvable, nil
}

// resolveItem reports whether any database mounted for the item's database
// GUID can serve its record.
func (r *itemResolver) resolveItem(ctx context.Context, dbMap map[guid.GUID][]string, item RecordListItem) (bool, error) {
	keys := dbMap[item.DatabaseGUID]
	if len(keys) == 0 {
		r.logger.Warn("discarding item: database is not visible",
			"database", item.DatabaseGUID,
			"record_history", item.RecordHistoryGUID)
		return false, nil
	}

	for _, key := range keys {
		ok, err := r.isItemResolvableInDB(ctx, key, item)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	r.logger.Warn("discarding item: record not reachable in any database",
		"database", item.DatabaseGUID,
		"record_history", item.RecordHistoryGUID,
		"keys_checked", len(keys))
	return false, nil
}

// isItemResolvableInDB runs the existence check for one item against one
// database key. A 404 means the key is no longer served and counts as a
// miss, not an error.
func (r *itemResolver) isItemResolvableInDB(ctx context.Context, databaseKey string, item RecordListItem) (bool, error) {
	results, err := r.api.SearchDatabaseRecords(ctx, databaseKey, itemToRecordSearchCriterion(item))
	if err != nil {
		if serverapi.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return len(results) > 0, nil
}

// databaseKeyMap enumerates the visible databases and groups their keys by
// database GUID. A GUID mounted under several keys keeps all of them, in
// enumeration order.
func (r *itemResolver) databaseKeyMap(ctx context.Context, includeInternalUse bool) (map[guid.GUID][]string, error) {
	databases, err := r.api.GetAllDatabases(ctx, includeInternalUse)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate databases: %w", err)
	}

	dbMap := make(map[guid.GUID][]string, len(databases))
	for _, db := range databases {
		dbGUID, err := guid.Parse(db.GUID)
		if err != nil {
			r.logger.Warn("skipping database with malformed GUID", "key", db.Key, "error", err)
			continue
		}
		dbMap[dbGUID] = append(dbMap[dbGUID], db.Key)
	}
	return dbMap, nil
}
