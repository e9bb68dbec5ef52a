package handlers

import (
	"net/http"
	"time"

	"github.com/nanaboakye-dev/tasty-bites/config"
	"github.com/nanaboakye-dev/tasty-bites/models"
	"github.com/nanaboakye-dev/tasty-bites/scheduling"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetWorkers lists all workers, newest first — admin only
func GetWorkers(c *gin.Context) {
	var workers []models.Worker
	config.DB.Order("created_at desc").Find(&workers)
	c.JSON(http.StatusOK, gin.H{"count": len(workers), "workers": workers})
}

type CreateWorkerRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Phone  string `json:"phone"`
	Active *bool  `json:"active"`
}

// CreateWorker adds a worker — admin only
func CreateWorker(c *gin.Context) {
	var req CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and role are required"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	worker := models.Worker{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Active: active,
	}
	if err := config.DB.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"worker": worker})
}

// DeleteWorker removes a worker — admin only. Runs in a transaction that
// also deletes the worker's shifts and unassigns their orders, so no
// dangling references survive the delete.
func DeleteWorker(c *gin.Context) {
	id := c.Param("id")

	var worker models.Worker
	if err := config.DB.First(&worker, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", worker.ID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Order{}).
			Where("assigned_worker_id = ?", worker.ID).
			Update("assigned_worker_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&worker).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete worker"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker removed successfully"})
}

type CreateScheduleRequest struct {
	Start *time.Time `json:"start" binding:"required"`
	End   *time.Time `json:"end" binding:"required"`
}

// CreateWorkerSchedule creates a shift for a worker — admin only. A candidate
// [start, end) is rejected when any existing shift for the same worker
// satisfies existing.start < end AND existing.end > start; shifts that only
// touch at an endpoint are accepted. The conflict check and the insert run
// under a per-worker lock.
func CreateWorkerSchedule(c *gin.Context) {
	workerID := c.Param("id")

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start and end times are required"})
		return
	}

	if err := scheduling.ValidateInterval(*req.Start, *req.End); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		return
	}

	var worker models.Worker
	if err := config.DB.First(&worker, workerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	unlock := scheduling.LockWorker(worker.ID)
	defer unlock()

	var conflict models.Schedule
	err := config.DB.
		Where("worker_id = ? AND start_time < ? AND end_time > ?", worker.ID, req.End, req.Start).
		First(&conflict).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This worker already has a shift during that time"})
		return
	}

	schedule := models.Schedule{
		WorkerID: worker.ID,
		Start:    *req.Start,
		End:      *req.End,
	}
	if err := config.DB.Create(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create schedule"})
		return
	}

	schedule.Worker = worker
	c.JSON(http.StatusCreated, gin.H{"schedule": schedule})
}

// GetAllSchedules lists every shift sorted by start time, worker resolved —
// admin only
func GetAllSchedules(c *gin.Context) {
	var schedules []models.Schedule
	config.DB.Preload("Worker").Order("start_time asc").Find(&schedules)
	c.JSON(http.StatusOK, gin.H{"count": len(schedules), "schedules": schedules})
}

// DeleteSchedule removes a shift — admin only
func DeleteSchedule(c *gin.Context) {
	id := c.Param("id")

	var schedule models.Schedule
	if err := config.DB.First(&schedule, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	if err := config.DB.Delete(&schedule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule removed successfully"})
}
