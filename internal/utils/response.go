package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
)

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// FromError maps an application error onto an HTTP response. Internal
// errors are returned opaque: storage-layer detail never reaches the caller.
func FromError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			ErrorResponse(c, http.StatusBadRequest, ae.Msg)
			return
		case apperr.KindNotFound:
			ErrorResponse(c, http.StatusNotFound, ae.Msg)
			return
		case apperr.KindConflict:
			ErrorResponse(c, http.StatusConflict, ae.Msg)
			return
		}
	}
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
