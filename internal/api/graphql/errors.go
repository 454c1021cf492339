package graphql

import (
	"errors"
	"net/http"

	gqlerrors "github.com/graph-gophers/graphql-go/errors"

	"github.com/dtroode/gophfeed-server/internal/apperr"
	"github.com/dtroode/gophfeed-server/internal/logger"
)

// responseError is the wire shape of a single GraphQL error.
type responseError struct {
	Message   string               `json:"message"`
	Status    int                  `json:"status"`
	Data      any                  `json:"data,omitempty"`
	Locations []gqlerrors.Location `json:"locations,omitempty"`
	Path      []any                `json:"path,omitempty"`
}

// formatErrors converts execution errors into the response error list.
// Resolver failures carry the status of their apperr classification; query
// parse and validation failures are reported as 400.
func formatErrors(errs []*gqlerrors.QueryError, logger *logger.Logger) []responseError {
	if len(errs) == 0 {
		return nil
	}

	out := make([]responseError, 0, len(errs))
	for _, qe := range errs {
		if qe == nil {
			continue
		}
		if qe.ResolverError == nil && len(qe.Path) > 0 {
			// recovered resolver panic
			logger.Error("GraphQL handler: resolver panicked",
				"path", qe.Path,
				"error", qe.Message)
			out = append(out, responseError{
				Message: apperr.NewInternal(nil).Message,
				Status:  http.StatusInternalServerError,
				Path:    qe.Path,
			})
			continue
		}
		if qe.ResolverError == nil {
			out = append(out, responseError{
				Message:   qe.Message,
				Status:    http.StatusBadRequest,
				Locations: qe.Locations,
			})
			continue
		}
		out = append(out, formatResolverError(qe, logger))
	}
	return out
}

func formatResolverError(qe *gqlerrors.QueryError, logger *logger.Logger) responseError {
	var appErr *apperr.Error
	if !errors.As(qe.ResolverError, &appErr) {
		appErr = apperr.NewInternal(qe.ResolverError)
	}

	if appErr.Kind == apperr.KindInternal {
		logger.Error("GraphQL handler: resolver failed",
			"path", qe.Path,
			"error", qe.ResolverError.Error())
	}

	return responseError{
		Message: appErr.Message,
		Status:  appErr.Code(),
		Data:    appErr.Data,
		Path:    qe.Path,
	}
}
