package handlers

import (
	"net/http"

	"github.com/nanaboakye-dev/tasty-bites/config"
	"github.com/nanaboakye-dev/tasty-bites/middleware"
	"github.com/nanaboakye-dev/tasty-bites/models"

	"github.com/gin-gonic/gin"
)

// updatableStatuses is what an admin may set directly. paid is deliberately
// absent: that value is only ever set by the checkout flow.
var updatableStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusPreparing: true,
	models.StatusDelivered: true,
	models.StatusCompleted: true,
	models.StatusCancelled: true,
}

// orderWithRefs resolves an order's user, items and assigned worker for
// display.
func orderWithRefs(id uint) (*models.Order, error) {
	var order models.Order
	err := config.DB.
		Preload("User").
		Preload("Items.FoodItem").
		Preload("AssignedWorker").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetMyOrders returns all orders for the logged-in user
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items.FoodItem").Preload("AssignedWorker").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetAllOrders returns every order with full detail — admin only
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("User").Preload("Items.FoodItem").Preload("AssignedWorker")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	query.Order("created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus overwrites an order's status — admin only. Any allowed
// value may follow any other; there is no transition graph.
func UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !updatableStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	updated, err := orderWithRefs(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": updated})
}

type AssignWorkerRequest struct {
	WorkerID *uint `json:"workerId"`
}

// AssignOrderWorker sets or clears an order's assigned worker — admin only.
// A null/omitted workerId unassigns. The check is purely referential: the
// worker does not have to be active or on shift.
func AssignOrderWorker(c *gin.Context) {
	orderID := c.Param("id")

	var req AssignWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var assignedID *uint
	if req.WorkerID != nil && *req.WorkerID != 0 {
		var worker models.Worker
		if err := config.DB.First(&worker, *req.WorkerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
			return
		}
		assignedID = &worker.ID
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := config.DB.Model(&order).Update("assigned_worker_id", assignedID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	updated, err := orderWithRefs(order.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": updated})
}
