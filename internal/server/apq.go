package server

import (
	"net/http"

	"github.com/prakasham-tecinyaw/serverless-api/internal/cache"
	"github.com/prakasham-tecinyaw/serverless-api/internal/graph"
)

const (
	errPersistedQueryNotFound = "PersistedQueryNotFound"
	codePersistedQueryMissing = "PERSISTED_QUERY_NOT_FOUND"
)

// loadPersisted applies the automatic persisted query protocol: a request
// carrying only a hash is filled from the cache, a request carrying both a
// hash and a query registers the query after checking the hash.
func loadPersisted(queries *cache.QueryCache, req *graph.Request) *requestError {
	ext, ok := req.Extensions["persistedQuery"].(map[string]interface{})
	if !ok || queries == nil {
		return nil
	}
	if v, _ := ext["version"].(float64); v != 1 {
		return &requestError{status: http.StatusBadRequest, message: "unsupported persisted query version"}
	}
	hash, _ := ext["sha256Hash"].(string)
	if hash == "" {
		return &requestError{status: http.StatusBadRequest, message: "missing persisted query hash"}
	}

	if req.Query == "" {
		query, found := queries.Get(hash)
		if !found {
			return &requestError{status: http.StatusOK, message: errPersistedQueryNotFound, code: codePersistedQueryMissing}
		}
		req.Query = query
		return nil
	}
	if cache.Hash(req.Query) != hash {
		return &requestError{status: http.StatusUnprocessableEntity, message: "provided sha does not match query"}
	}
	queries.Set(hash, req.Query)
	return nil
}
