package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ListCustomers returns non-deleted customers
func ListCustomers(c *gin.Context) {
	var customers []models.Customer
	query := config.DB.Where("is_deleted = ?", false)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	query.Order("name asc").Find(&customers)
	c.JSON(http.StatusOK, gin.H{"count": len(customers), "customers": customers})
}

// GetCustomer returns one customer
func GetCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.Where("is_deleted = ?", false).First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// CreateCustomer registers a customer
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		CreatedBy: middleware.GetEmail(c),
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		logError(c, "create_customer", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "customer": customer})
}

// UpdateCustomer updates customer details
func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.Where("is_deleted = ?", false).First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "phone": true, "email": true, "address": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&customer).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated", "customer": customer})
}

// DeleteCustomer soft-deletes a customer
func DeleteCustomer(c *gin.Context) {
	var customer models.Customer
	if err := config.DB.Where("is_deleted = ?", false).First(&customer, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	config.DB.Model(&customer).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
