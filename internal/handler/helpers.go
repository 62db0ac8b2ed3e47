package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/campusboard/campusboard/internal/errors"
)

var errUnauthorized = &errors.ErrorWithStatusCode{Message: "Please sign-in", StatusCode: http.StatusUnauthorized}

// parseIntParam parses an integer parameter from a string and returns a meaningful error
func parseIntParam(param string, paramName string) (int64, error) {
	val, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, &errors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("Invalid %s: must be an integer", paramName),
			StatusCode: http.StatusBadRequest,
		}
	}
	return val, nil
}
