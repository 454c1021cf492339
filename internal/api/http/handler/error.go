package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/gophfeed-server/internal/apperr"
)

func handleError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Kind != apperr.KindInternal {
		c.JSON(appErr.Code(), gin.H{"message": appErr.Message, "data": appErr.Data})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": apperr.NewInternal(err).Message})
}
