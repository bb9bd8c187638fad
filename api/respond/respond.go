// Package respond writes service errors as JSON API responses.
package respond

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
)

const internalMessage = "internal server error"

var statuses = []struct {
	err    error
	status int
}{
	{dmn.ErrMazeNotFound, http.StatusNotFound},
	{dmn.ErrUserConflict, http.StatusConflict},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{dmn.ErrUsernameTooShort, http.StatusBadRequest},
	{dmn.ErrUsernameTooLong, http.StatusBadRequest},
	{dmn.ErrInvalidUsernameChars, http.StatusBadRequest},
	{dmn.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrInvalidDimensions, http.StatusBadRequest},
	{service.ErrDimensionTooLarge, http.StatusBadRequest},
	{service.ErrPointOutOfBounds, http.StatusBadRequest},
	{service.ErrPointOnWall, http.StatusBadRequest},
	{maze.ErrInvalidPoint, http.StatusBadRequest},
	{maze.ErrUnknownAlgorithm, http.StatusBadRequest},
}

// Status returns the HTTP status for err. Unrecognized errors are 500.
func Status(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.err) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

// Error writes err with its status. A 500 is logged and its cause is not
// exposed to the client.
func Error(ctx *gin.Context, err error, logger i.Logger) {
	status := Status(err)
	if status != http.StatusInternalServerError {
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if logger != nil {
		logger.Error(err.Error())
	}
	ctx.JSON(status, gin.H{"error": internalMessage})
}

// BadRequest rejects a request whose body or parameters could not be bound.
func BadRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
