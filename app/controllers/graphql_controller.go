package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/ordertrack/app/graph"
	"github.com/shashiranjanraj/ordertrack/app/services"
	gql "github.com/shashiranjanraj/ordertrack/pkg/graphql"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

// GraphQLController serves the read-only query endpoint.
type GraphQLController struct {
	schema gql.Schema
}

func NewGraphQLController() (*GraphQLController, error) {
	schema, err := graph.NewSchema(services.NewOrderService())
	if err != nil {
		return nil, err
	}
	return &GraphQLController{schema: schema}, nil
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

func (c *GraphQLController) Query(w http.ResponseWriter, r *http.Request) {
	var req graphqlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if req.Query == "" {
		response.Error(w, http.StatusBadRequest, "Missing query")
		return
	}

	result := gql.Do(r.Context(), c.schema, req.Query, req.Variables)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
