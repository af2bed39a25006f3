package util

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var (
	MalformedIdHTTPErr = &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "id malformed",
	}
	UnauthorizedHTTPErr = &HTTPError{
		Status:  http.StatusUnauthorized,
		Message: "authentication required",
	}
	NotOwnerHTTPErr = &HTTPError{
		Status:  http.StatusForbidden,
		Message: "only the author can modify this",
	}
	SelfFollowHTTPErr = &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "cannot follow yourself",
	}
	DuplicateFollowHTTPErr = &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "already following this user",
	}
)

func BuildDbHTTPErr(err error) *HTTPError {
	log.Println("database error occurred", err)
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "database error",
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("malformed request body: %v", err),
	}
}

func BuildValidationHTTPErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func BuildNotFoundHTTPErr(resource string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: resource + " not found",
	}
}

// HandleHTTPErrorRes handles creating the appropriate response for the HTTP
// error. Break the route after calling this function.
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	c.JSON(err.Status, gin.H{
		"success": false,
		"message": err.Message,
	})
}

type HandlerFunc func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct {
	// SuccessStatus overrides the 200 written on success. StatusNoContent
	// suppresses the response envelope entirely.
	SuccessStatus int
}

func HandlerWrapper(handler HandlerFunc, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			HandleHTTPErrorRes(c, httpErr)
			c.Abort()
			return
		}
		status := opts.SuccessStatus
		if status == 0 {
			status = http.StatusOK
		}
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

func ParseId(val string) (int64, *HTTPError) {
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, MalformedIdHTTPErr
	}
	return id, nil
}
