package controllers

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"bistro-backend/models"
	"bistro-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP. Validation
// errors carry the full field list; anything unclassified is treated as
// internal and not leaked to the client.
func respondError(c *gin.Context, err error) {
	kind := utils.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case utils.KindValidation:
		status = http.StatusBadRequest
	case utils.KindNotFound:
		status = http.StatusNotFound
	case utils.KindConflict:
		status = http.StatusConflict
	case utils.KindDomain:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
		})
		return
	}

	c.JSON(status, models.ErrorResponse{
		Success: false,
		Message: err.Error(),
		Error:   kind,
		Errors:  utils.FieldsOf(err),
	})
}

func respondBindingError(c *gin.Context, err error) {
	respondError(c, utils.FromBindingError(err))
}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func generateLinks(c *gin.Context, page, limit, totalPages int) models.PaginationLinks {
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}

	host := c.Request.Host
	path := c.Request.URL.Path
	queryParams := c.Request.URL.Query()

	makeURL := func(pageNum int) string {
		newParams := url.Values{}
		for key, values := range queryParams {
			if key != "page" {
				for _, value := range values {
					newParams.Add(key, value)
				}
			}
		}
		newParams.Set("page", strconv.Itoa(pageNum))
		newParams.Set("limit", strconv.Itoa(limit))
		return fmt.Sprintf("%s://%s%s?%s", scheme, host, path, newParams.Encode())
	}

	links := models.PaginationLinks{
		Self: makeURL(page),
	}
	if page > 1 {
		links.Prev = makeURL(page - 1)
	}
	if page < totalPages {
		links.Next = makeURL(page + 1)
	}
	return links
}

func buildPaginatedResponse(c *gin.Context, message string, data interface{}, page, limit, totalItems int) models.PaginatedResponse {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}

	if page > totalPages && totalPages > 0 {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return models.PaginatedResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: totalItems,
			TotalPages: totalPages,
		},
		Links: generateLinks(c, page, limit, totalPages),
	}
}
