package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/cache"
	"github.com/prakasham-tecinyaw/serverless-api/internal/graph"
	"github.com/prakasham-tecinyaw/serverless-api/internal/obs"
)

const (
	opUnknown  = "unknown"
	opMutation = "mutation"
)

// GraphQLHandler serves GraphQL over HTTP: POST with a JSON body or GET with
// URL parameters.
type GraphQLHandler struct {
	Schema       graphql.Schema
	Queries      *cache.QueryCache
	Metrics      *obs.Metrics
	Log          *zap.Logger
	MaxBodyBytes int64
	// Explorer, when set, is served to browsers that GET the endpoint
	// without a query.
	Explorer http.Handler
}

func (h *GraphQLHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		req  graph.Request
		rerr *requestError
	)
	switch r.Method {
	case http.MethodGet:
		if h.Explorer != nil && wantsExplorer(r) {
			h.Explorer.ServeHTTP(w, r)
			return
		}
		req, rerr = requestFromURL(r.URL.Query())
	case http.MethodPost:
		req, rerr = h.requestFromBody(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, OPTIONS")
		rerr = &requestError{status: http.StatusMethodNotAllowed, message: "method not allowed"}
	}
	if rerr == nil {
		rerr = loadPersisted(h.Queries, &req)
	}
	if rerr == nil && strings.TrimSpace(req.Query) == "" {
		rerr = &requestError{status: http.StatusBadRequest, message: "no query provided"}
	}
	if rerr != nil {
		writeRequestError(w, rerr)
		return
	}

	start := time.Now()
	prepared, res := graph.Prepare(req)
	op := opUnknown
	if prepared != nil {
		if kind := prepared.Operation(); kind != "" {
			op = kind
		}
	}
	if r.Method == http.MethodGet && op == opMutation {
		w.Header().Set("Allow", "POST")
		writeRequestError(w, &requestError{status: http.StatusMethodNotAllowed, message: "mutations are not allowed over GET"})
		return
	}
	if prepared != nil {
		res = prepared.Execute(r.Context(), h.Schema)
	}
	h.observe(op, res, time.Since(start))

	status := http.StatusOK
	if res.Data == nil && res.HasErrors() {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, res)
}

func (h *GraphQLHandler) observe(op string, res *graphql.Result, took time.Duration) {
	if h.Metrics != nil {
		h.Metrics.Requests.WithLabelValues(op).Inc()
		h.Metrics.Latency.WithLabelValues(op).Observe(took.Seconds())
		if n := len(res.Errors); n > 0 {
			h.Metrics.Errors.WithLabelValues(op).Add(float64(n))
		}
	}
	if h.Log != nil && res.HasErrors() {
		h.Log.Debug("graphql errors", zap.String("operation", op), zap.Int("count", len(res.Errors)),
			zap.String("first", res.Errors[0].Message))
	}
}

func wantsExplorer(r *http.Request) bool {
	return r.URL.Query().Get("query") == "" && strings.Contains(r.Header.Get("Accept"), "text/html")
}

func requestFromURL(q url.Values) (graph.Request, *requestError) {
	req := graph.Request{
		Query:         q.Get("query"),
		OperationName: q.Get("operationName"),
	}
	if v := q.Get("variables"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Variables); err != nil {
			return req, &requestError{status: http.StatusBadRequest, message: "variables must be a JSON object"}
		}
	}
	if v := q.Get("extensions"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Extensions); err != nil {
			return req, &requestError{status: http.StatusBadRequest, message: "extensions must be a JSON object"}
		}
	}
	return req, nil
}

func (h *GraphQLHandler) requestFromBody(w http.ResponseWriter, r *http.Request) (graph.Request, *requestError) {
	var req graph.Request
	body := http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)
	defer body.Close()

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return req, &requestError{status: http.StatusUnsupportedMediaType, message: "invalid content type"}
		}
		mediaType = mt
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return req, bodyError(err)
		}
	case "application/graphql":
		b, err := io.ReadAll(body)
		if err != nil {
			return req, bodyError(err)
		}
		req.Query = string(b)
	default:
		return req, &requestError{status: http.StatusUnsupportedMediaType, message: "unsupported content type " + mediaType}
	}
	return req, nil
}

func bodyError(err error) *requestError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &requestError{status: http.StatusRequestEntityTooLarge, message: "request body too large"}
	}
	return &requestError{status: http.StatusBadRequest, message: "invalid request body: " + err.Error()}
}
