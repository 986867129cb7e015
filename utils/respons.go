package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Afzal-gif888/campus-cafe-mate/stores"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondStoreError maps store errors onto HTTP statuses. Anything that
// is not a NotFound or validation failure is reported as a generic
// message so storage internals never reach the client.
func RespondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, stores.ErrValidation):
		RespondError(c, http.StatusBadRequest, err)
	default:
		ErrorLogger.Printf("store operation failed: %v", err)
		RespondError(c, http.StatusInternalServerError, errors.New("something went wrong, please try again"))
	}
}
