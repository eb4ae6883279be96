package handlers

import (
	"net/http"

	"github.com/financecrm/ai-service/internal/models"
	"github.com/gin-gonic/gin"
)

// NotFoundHandler answers requests for paths no route matches
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "Not Found",
		Message: "No route matches " + c.Request.Method + " " + c.Request.URL.Path,
	})
}

// MethodNotAllowedHandler answers requests whose path exists under a different method
func MethodNotAllowedHandler(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{
		Error:   "Method Not Allowed",
		Message: "Method " + c.Request.Method + " is not allowed on " + c.Request.URL.Path,
	})
}
