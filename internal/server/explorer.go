package server

import (
	"net/http"
	"strings"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/awslabs/aws-lambda-go-api-proxy/core"
)

const explorerTitle = "Products and Sellers"

// explorer serves the playground page. The page posts to the endpoint as the
// browser addressed it, so behind API Gateway the stage prefix is kept.
func explorer(path string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playground.Handler(explorerTitle, explorerEndpoint(r, path)).ServeHTTP(w, r)
	})
}

// explorerEndpoint returns path prefixed with whatever API Gateway stripped
// from the request: the stage, or a custom domain's base path.
func explorerEndpoint(r *http.Request, path string) string {
	gw, ok := core.GetAPIGatewayContextFromContext(r.Context())
	if !ok {
		return path
	}
	var prefix string
	switch {
	case gw.Path != "" && strings.HasSuffix(gw.Path, r.URL.Path):
		prefix = strings.TrimSuffix(gw.Path, r.URL.Path)
	case gw.Stage != "":
		prefix = "/" + gw.Stage
	}
	return strings.TrimSuffix(prefix, "/") + path
}
