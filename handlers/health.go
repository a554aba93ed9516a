package handlers

import (
	"net/http"

	"concierge/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler returns the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
