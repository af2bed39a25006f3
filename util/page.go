package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageQuery is a limit/offset window. A zero Limit means "no windowing".
type PageQuery struct {
	Limit  int
	Offset int
}

// Page wraps a windowed result set with enough metadata for the client to
// reach the remaining rows.
type Page struct {
	Count   int64       `json:"count"`
	Limit   int         `json:"limit"`
	Offset  int         `json:"offset"`
	Results interface{} `json:"results"`
}

// ParsePageQuery reads limit/offset query params. An absent or zero limit
// falls back to defaultLimit; anything above maxLimit is clamped down to it.
// A zero limit can never reach the stores, where it would mean "no windowing".
func ParsePageQuery(c *gin.Context, defaultLimit, maxLimit int) (*PageQuery, *HTTPError) {
	limit, httpErr := parsePageParam(c, "limit", defaultLimit)
	if httpErr != nil {
		return nil, httpErr
	}
	offset, httpErr := parsePageParam(c, "offset", 0)
	if httpErr != nil {
		return nil, httpErr
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return &PageQuery{Limit: limit, Offset: offset}, nil
}

func parsePageParam(c *gin.Context, name string, fallback int) (int, *HTTPError) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return fallback, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return 0, BuildValidationHTTPErr("invalid " + name + " param")
	}
	return val, nil
}
