// Package graphql builds the read-only GraphQL schema from a provided root
// query and executes requests against it.
package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
)

// NewSchema creates a GraphQL schema from the provided root query object.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// Schema is the executable schema type.
type Schema = graphql.Schema

// Result is the JSON-ready outcome of a query execution.
type Result = graphql.Result

// Do executes a query string against schema.
func Do(ctx context.Context, schema graphql.Schema, query string, variables map[string]interface{}) *Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}
