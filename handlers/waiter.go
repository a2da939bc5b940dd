package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

type CreateWaiterRequest struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	Section string `json:"section"`
}

// ListWaiters returns non-deleted waiters with their staff records
func ListWaiters(c *gin.Context) {
	var waiters []models.Waiter
	query := config.DB.Preload("Staff").Where("is_deleted = ?", false)
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	query.Find(&waiters)
	c.JSON(http.StatusOK, gin.H{"count": len(waiters), "waiters": waiters})
}

// GetWaiter returns one waiter
func GetWaiter(c *gin.Context) {
	var waiter models.Waiter
	err := config.DB.Preload("Staff").Where("is_deleted = ?", false).
		First(&waiter, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"waiter": waiter})
}

// CreateWaiter assigns an existing staff member to the floor
func CreateWaiter(c *gin.Context) {
	var req CreateWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var staff models.Staff
	if err := config.DB.Where("is_deleted = ?", false).First(&staff, "id = ?", req.StaffID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	waiter := models.Waiter{
		StaffID:   req.StaffID,
		Section:   req.Section,
		IsActive:  true,
		CreatedBy: middleware.GetEmail(c),
	}
	if err := config.DB.Create(&waiter).Error; err != nil {
		logError(c, "create_waiter", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create waiter"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Waiter created", "waiter": waiter})
}

// UpdateWaiter updates section, tips, or active flag
func UpdateWaiter(c *gin.Context) {
	var waiter models.Waiter
	if err := config.DB.Where("is_deleted = ?", false).First(&waiter, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"section": true, "tips_earned": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&waiter).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Waiter updated", "waiter": waiter})
}

// DeleteWaiter soft-deletes a waiter
func DeleteWaiter(c *gin.Context) {
	var waiter models.Waiter
	if err := config.DB.Where("is_deleted = ?", false).First(&waiter, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Waiter not found"})
		return
	}
	config.DB.Model(&waiter).Updates(map[string]interface{}{"is_deleted": true, "is_active": false})
	c.JSON(http.StatusOK, gin.H{"message": "Waiter deleted"})
}
