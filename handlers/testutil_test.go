package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var userSeq atomic.Uint64

// setupServer opens a fresh database in t.TempDir and returns a router with
// all routes registered.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.Open(filepath.Join(t.TempDir(), "pos_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// authToken creates a user with the given role and returns a bearer token.
func authToken(t *testing.T, role models.UserRole) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		Name:         "Test " + string(role),
		Email:        fmt.Sprintf("%s-%d@pos.local", role, userSeq.Add(1)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// doJSON performs a request and decodes the JSON response body.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// seedMenuItem creates a category (if needed) and a menu item with the given
// price and stock, returning the item id.
func seedMenuItem(t *testing.T, name, price, stock string) uint {
	t.Helper()
	var category models.Category
	err := config.DB.Where("name = ?", "Mains").First(&category).Error
	if err != nil {
		category = models.Category{Name: "Mains", IsActive: true}
		if err := config.DB.Create(&category).Error; err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
	}
	item := models.MenuItem{
		CategoryID:   category.ID,
		Name:         name,
		Price:        dec(t, price),
		CurrentStock: dec(t, stock),
		ReorderLevel: dec(t, "5"),
		IsAvailable:  true,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		t.Fatalf("failed to create menu item: %v", err)
	}
	return item.ID
}

// seedWaiter creates a staff record and a waiter, returning the waiter id.
func seedWaiter(t *testing.T) uint {
	t.Helper()
	staff := models.Staff{Name: "Alex Doe", Position: "Waiter", IsActive: true}
	if err := config.DB.Create(&staff).Error; err != nil {
		t.Fatalf("failed to create staff: %v", err)
	}
	waiter := models.Waiter{StaffID: staff.ID, IsActive: true}
	if err := config.DB.Create(&waiter).Error; err != nil {
		t.Fatalf("failed to create waiter: %v", err)
	}
	return waiter.ID
}

func currentStock(t *testing.T, itemID uint) decimal.Decimal {
	t.Helper()
	var item models.MenuItem
	if err := config.DB.First(&item, itemID).Error; err != nil {
		t.Fatalf("failed to load menu item %d: %v", itemID, err)
	}
	return item.CurrentStock
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := config.DB.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
