package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/metrics"
)

// maxQueryDepth bounds nested selections such as post.creator.posts.
const maxQueryDepth = 10

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type response struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors []responseError `json:"errors,omitempty"`
}

// Handler executes GraphQL requests against the root resolver.
type Handler struct {
	schema  *graphql.Schema
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHandler parses the schema against resolver. It panics if the resolver
// does not implement the schema. m may be nil.
func NewHandler(resolver *Resolver, m *metrics.Metrics, logger *logger.Logger) *Handler {
	return &Handler{
		schema:  graphql.MustParseSchema(Schema, resolver, graphql.MaxDepth(maxQueryDepth)),
		metrics: m,
		logger:  logger,
	}
}

// Serve handles POST /graphql. Once the body is decoded the response status
// is always 200; failures are reported in the errors list.
func (h *Handler) Serve(c *gin.Context) {
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("GraphQL handler: invalid request body",
			"error", err.Error())
		c.JSON(http.StatusBadRequest, response{Errors: []responseError{{
			Message: "Invalid request body",
			Status:  http.StatusBadRequest,
		}}})
		return
	}

	h.logger.Debug("GraphQL handler: executing operation",
		"operation", req.OperationName)

	result := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	errs := formatErrors(result.Errors, h.logger)

	if h.metrics != nil {
		outcome := "ok"
		if len(errs) > 0 {
			outcome = "error"
		}
		h.metrics.ObserveOperation(req.OperationName, outcome)
	}

	c.JSON(http.StatusOK, response{Data: result.Data, Errors: errs})
}
