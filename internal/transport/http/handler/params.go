package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/transport/http/response"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 400 itself and reports !ok.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads skip/limit with the defaults 0/100.
func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid skip")
		return 0, 0, false
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid limit")
		return 0, 0, false
	}
	return skip, limit, true
}

// parseIDQuery reads a positive integer query parameter.
func parseIDQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
