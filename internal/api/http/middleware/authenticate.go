package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophfeed-server/internal/logger"
	"github.com/dtroode/gophfeed-server/internal/model"
)

// Authenticate resolves the bearer token of each request into an AuthContext.
// It never rejects a request; authorization happens in the services.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle attaches the AuthContext to the request context and continues the chain.
func (m *Authenticate) Handle(c *gin.Context) {
	auth := m.resolve(c.GetHeader("Authorization"))
	c.Request = c.Request.WithContext(m.contextManager.SetAuthToContext(c.Request.Context(), auth))
	c.Next()
}

func (m *Authenticate) resolve(header string) model.AuthContext {
	if header == "" {
		return model.Anonymous()
	}

	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[1] == "" {
		return model.Anonymous()
	}

	payload, err := m.tokenManager.Parse(parts[1])
	if err != nil {
		m.logger.Debug("Authenticate middleware: token rejected",
			"error", err.Error())
		return model.Anonymous()
	}

	return model.Authenticated(payload)
}
