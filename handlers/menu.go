package handlers

import (
	"net/http"

	"github.com/nanaboakye-dev/tasty-bites/config"
	"github.com/nanaboakye-dev/tasty-bites/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the food items on offer (public)
func GetMenu(c *gin.Context) {
	var items []models.FoodItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if available := c.Query("available"); available == "true" {
		query = query.Where("is_available = ?", true)
	}
	query.Find(&items)

	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}
