package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateStaffRequest struct {
	Name     string          `json:"name" binding:"required"`
	Position string          `json:"position" binding:"required"`
	Phone    string          `json:"phone"`
	Email    string          `json:"email"`
	Salary   decimal.Decimal `json:"salary"`
}

// ListStaff returns non-deleted staff, optionally filtered
func ListStaff(c *gin.Context) {
	var staff []models.Staff
	query := config.DB.Where("is_deleted = ?", false)
	if position := c.Query("position"); position != "" {
		query = query.Where("position = ?", position)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	query.Order("name asc").Find(&staff)
	c.JSON(http.StatusOK, gin.H{"count": len(staff), "staff": staff})
}

// GetStaff returns one staff member
func GetStaff(c *gin.Context) {
	var staff models.Staff
	if err := config.DB.Where("is_deleted = ?", false).First(&staff, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

// CreateStaff adds a staff member
func CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staff := models.Staff{
		Name:      req.Name,
		Position:  req.Position,
		Phone:     req.Phone,
		Email:     req.Email,
		Salary:    req.Salary,
		IsActive:  true,
		CreatedBy: middleware.GetEmail(c),
	}
	if err := config.DB.Create(&staff).Error; err != nil {
		logError(c, "create_staff", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff member created", "staff": staff})
}

// UpdateStaff updates a staff member's details
func UpdateStaff(c *gin.Context) {
	var staff models.Staff
	if err := config.DB.Where("is_deleted = ?", false).First(&staff, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// Only allow safe fields
	allowed := map[string]bool{"name": true, "position": true, "phone": true, "email": true, "salary": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&staff).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated", "staff": staff})
}

type UpdateStaffStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateStaffStatus toggles a staff member's active flag
func UpdateStaffStatus(c *gin.Context) {
	var staff models.Staff
	if err := config.DB.Where("is_deleted = ?", false).First(&staff, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var req UpdateStaffStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	config.DB.Model(&staff).Update("is_active", *req.IsActive)
	c.JSON(http.StatusOK, gin.H{"message": "Staff status updated", "staff_id": staff.ID, "is_active": *req.IsActive})
}

// DeleteStaff soft-deletes a staff member
func DeleteStaff(c *gin.Context) {
	var staff models.Staff
	if err := config.DB.Where("is_deleted = ?", false).First(&staff, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	config.DB.Model(&staff).Updates(map[string]interface{}{"is_deleted": true, "is_active": false})
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}
