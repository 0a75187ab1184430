package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"flavour_fusion/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgInvalidBody = "invalid request body"
	msgInternal    = "internal server error"
)

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondError maps service errors to status codes. Anything unexpected is
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, logger *slog.Logger, op string, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondMessage(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, service.ErrEmailTaken):
		respondMessage(c, http.StatusConflict, service.ErrEmailTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrInvalidRecipeID):
		respondMessage(c, http.StatusNotFound, service.ErrInvalidRecipeID.Error())
	case errors.Is(err, service.ErrRecipeNotFound):
		respondMessage(c, http.StatusNotFound, service.ErrRecipeNotFound.Error())
	default:
		logger.Error(op+" failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
		respondMessage(c, http.StatusInternalServerError, msgInternal)
	}
}

// bindRequest binds a JSON or form body into obj. An empty body leaves obj untouched.
func bindRequest(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBind(obj)
}

// bindFields reads a JSON object or a URL-encoded form into a generic field map.
// An empty body yields an empty map.
func bindFields(c *gin.Context) (map[string]any, error) {
	fields := map[string]any{}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return fields, nil
	}

	switch c.ContentType() {
	case binding.MIMEPOSTForm:
		form := map[string]string{}
		if err := c.ShouldBindWith(&form, binding.FormPost); err != nil {
			return nil, err
		}
		for k, v := range form {
			fields[k] = v
		}
		return fields, nil
	default:
		if err := c.ShouldBindJSON(&fields); err != nil {
			return nil, err
		}
		if fields == nil {
			fields = map[string]any{}
		}
		return fields, nil
	}
}
