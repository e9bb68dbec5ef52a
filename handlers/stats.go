package handlers

import (
	"net/http"
	"time"

	"github.com/nanaboakye-dev/tasty-bites/config"
	"github.com/nanaboakye-dev/tasty-bites/models"
	"github.com/nanaboakye-dev/tasty-bites/sales"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WindowStats struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

func statsForWindow(w sales.Window) (WindowStats, error) {
	query := config.DB.
		Where("status IN ?", w.Statuses).
		Where("created_at >= ?", w.Start)
	if !w.End.IsZero() {
		query = query.Where("created_at < ?", w.End)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return WindowStats{}, err
	}

	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return WindowStats{Total: total, Count: len(orders)}, nil
}

// GetSalesStats reports revenue and order counts for the current calendar
// day plus the rolling 7- and 30-day windows — admin only.
func GetSalesStats(c *gin.Context) {
	now := time.Now()

	daily, err := statsForWindow(sales.DailyWindow(now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	weekly, err := statsForWindow(sales.WeeklyWindow(now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	monthly, err := statsForWindow(sales.MonthlyWindow(now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"daily":   daily,
		"weekly":  weekly,
		"monthly": monthly,
	})
}
