package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/simulator"
	"github.com/gin-gonic/gin"
)

// respondError writes the backend's uniform error envelope: a JSON body
// with an `error` string and a non-2xx status.
func respondError(c *gin.Context, err error) {
	var storeErr *simulator.Error
	if errors.As(err, &storeErr) {
		c.JSON(storeErr.Status, gin.H{"error": storeErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// pagination reads the page/per_page query parameters with the endpoint's
// defaults.
func pagination(c *gin.Context, defaultPerPage int) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}
