package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gamecatalog/internal/domain"
)

// writeError maps a catalog error code to an HTTP status and writes the
// standard error envelope.
func writeError(c *gin.Context, err error) {
	catalogErr, ok := domain.IsCatalogError(err)
	if !ok {
		catalogErr = domain.NewCatalogError("INTERNAL_ERROR", "Internal server error", err)
	}

	status := http.StatusInternalServerError
	switch catalogErr.Code {
	case domain.ErrCodeInvalidEntity:
		status = http.StatusBadRequest
	case domain.ErrCodeDuplicateKey:
		status = http.StatusConflict
	case domain.ErrCodePreconditionFailed:
		status = http.StatusNotFound
	case domain.ErrCodeInvalidCredentials, domain.ErrCodeTokenInvalid, domain.ErrCodeTokenMissing:
		status = http.StatusUnauthorized
	case domain.ErrCodeStorageUnavailable:
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, domain.NewErrorResponse(catalogErr))
}

// currentUsername pulls the authenticated username set by the JWT middleware.
func currentUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok && name != ""
}
