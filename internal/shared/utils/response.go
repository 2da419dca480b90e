package utils

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hilla/internal/shared/errors"
)

// ErrorInfo is the error body returned by the API.
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type errorBody struct {
	Error ErrorInfo `json:"error"`
}

// JSONResponse writes data as the response body without an envelope.
// Ticket endpoints return the resource representation directly.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse writes a 201 with the created resource.
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Error: ErrorInfo{Type: "error", Message: message}})
}

// ErrorResponseWithError maps an application error to its HTTP shape.
// Binding errors from gin surface as field-level validation messages;
// anything unrecognized becomes an opaque 500.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, errorBody{Error: ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}})
		return
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		c.JSON(http.StatusBadRequest, errorBody{Error: ErrorInfo{
			Type:    string(errors.ErrorTypeValidation),
			Message: "field '" + first.Field() + "' failed on '" + first.Tag() + "'",
		}})
		return
	}

	// Do not expose internal error details to prevent information leakage.
	c.JSON(http.StatusInternalServerError, errorBody{Error: ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	}})
}
