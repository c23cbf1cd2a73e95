package graph

import (
	"context"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
)

// Request is one GraphQL operation as sent by a client.
type Request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

// Prepared is a request whose document has been parsed. The same document is
// inspected by the transport and then validated and executed.
type Prepared struct {
	req Request
	doc *ast.Document
}

// Prepare parses req. When the document does not parse, the returned result
// carries the syntax errors and Prepared is nil.
func Prepare(req Request) (*Prepared, *graphql.Result) {
	src := source.NewSource(&source.Source{
		Body: []byte(req.Query),
		Name: "GraphQL request",
	})
	doc, err := parser.Parse(parser.ParseParams{Source: src})
	if err != nil {
		return nil, &graphql.Result{Errors: gqlerrors.FormatErrors(err)}
	}
	return &Prepared{req: req, doc: doc}, nil
}

// Operation reports the kind of the operation the request selects: "query",
// "mutation" or "subscription". It is empty when no single operation is
// selected, which execution reports as an error.
func (p *Prepared) Operation() string {
	var selected *ast.OperationDefinition
	count := 0
	for _, def := range p.doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		count++
		if p.req.OperationName == "" {
			selected = op
			continue
		}
		if op.Name != nil && op.Name.Value == p.req.OperationName {
			return op.Operation
		}
	}
	if p.req.OperationName == "" && count == 1 {
		return selected.Operation
	}
	return ""
}

// Execute validates and runs the prepared document against schema.
func (p *Prepared) Execute(ctx context.Context, schema graphql.Schema) *graphql.Result {
	if vr := graphql.ValidateDocument(&schema, p.doc, nil); !vr.IsValid {
		return &graphql.Result{Errors: vr.Errors}
	}
	return graphql.Execute(graphql.ExecuteParams{
		Schema:        schema,
		AST:           p.doc,
		OperationName: p.req.OperationName,
		Args:          p.req.Variables,
		Context:       ctx,
	})
}

// Execute parses, validates and runs req against schema.
func Execute(ctx context.Context, schema graphql.Schema, req Request) *graphql.Result {
	p, failed := Prepare(req)
	if failed != nil {
		return failed
	}
	return p.Execute(ctx, schema)
}
