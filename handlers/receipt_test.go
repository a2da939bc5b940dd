package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"restaurant-pos-api/config"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

// placeTestOrder seeds a menu item and waiter and places one order,
// returning the order id.
func placeTestOrder(t *testing.T, r *gin.Engine, token string) uint {
	t.Helper()
	burgerID := seedMenuItem(t, "Burger", "10.00", "20")
	waiterID := seedWaiter(t)
	req := orderRequest(waiterID, []map[string]interface{}{
		{"menu_id": burgerID, "quantity": 2},
	})
	w, body := doJSON(t, r, "POST", "/api/orders", token, req)
	requireStatus(t, w, http.StatusCreated)
	return uint(body["data"].(map[string]interface{})["order_id"].(float64))
}

func TestGenerateReceipt_CompletesOrder(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	w, body := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusCreated)

	data := body["data"].(map[string]interface{})
	if got, want := data["receipt_number"], models.ReceiptNumber(orderID); got != want {
		t.Errorf("receipt_number = %v, want %s", got, want)
	}
	// Payment status defaults to Paid
	if got := data["payment_status"]; got != "Paid" {
		t.Errorf("payment_status = %v, want Paid", got)
	}

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		t.Fatalf("failed to load order: %v", err)
	}
	if order.OrderStatus != models.StatusCompleted {
		t.Errorf("order status = %s, want Completed", order.OrderStatus)
	}
	if order.PaymentStatus != models.PaymentPaid {
		t.Errorf("payment status = %s, want Paid", order.PaymentStatus)
	}
	if order.PaymentMethod == nil || *order.PaymentMethod != "Cash" {
		t.Errorf("payment method = %v, want Cash", order.PaymentMethod)
	}
}

func TestGenerateReceipt_CancelledOrderRejected(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	w, _ := doJSON(t, r, "PATCH", fmt.Sprintf("/api/orders/%d/status", orderID), token, map[string]interface{}{
		"status": "Cancelled",
	})
	requireStatus(t, w, http.StatusOK)

	w, body := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
	if got := body["error"]; got != "Invalid state transition" {
		t.Errorf("error = %v, want Invalid state transition", got)
	}
	if got := body["current_status"]; got != "Cancelled" {
		t.Errorf("current_status = %v, want Cancelled", got)
	}

	// The cancelled order must not be resurrected or marked paid
	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		t.Fatalf("failed to load order: %v", err)
	}
	if order.OrderStatus != models.StatusCancelled {
		t.Errorf("order status = %s, want Cancelled", order.OrderStatus)
	}
	if order.PaymentStatus != models.PaymentUnpaid {
		t.Errorf("payment status = %s, want Unpaid", order.PaymentStatus)
	}
	if n := countRows(t, &models.Receipt{}); n != 0 {
		t.Errorf("receipt rows = %d, want 0", n)
	}
}

func TestGenerateReceipt_CompletedOrderRejected(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	w, _ := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusCreated)

	// Delete the receipt row directly so only the Completed status blocks
	if err := config.DB.Model(&models.Receipt{}).Where("order_id = ?", orderID).
		Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft-delete receipt: %v", err)
	}

	w, _ = doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Card",
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
}

func TestGenerateReceipt_SecondCallConflicts(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	req := map[string]interface{}{"order_id": orderID, "payment_method": "Card"}

	w, body := doJSON(t, r, "POST", "/api/receipts/generate", token, req)
	requireStatus(t, w, http.StatusCreated)
	firstID := body["data"].(map[string]interface{})["receipt_id"].(float64)

	w, body = doJSON(t, r, "POST", "/api/receipts/generate", token, req)
	requireStatus(t, w, http.StatusConflict)
	if got := body["receipt_id"].(float64); got != firstID {
		t.Errorf("conflict receipt_id = %v, want %v", got, firstID)
	}
}

func TestGenerateReceipt_ConcurrentCallsMintOneReceipt(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	req := map[string]interface{}{"order_id": orderID, "payment_method": "Cash"}

	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	const callers = 4
	codes := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			httpReq := httptest.NewRequest("POST", "/api/receipts/generate", bytes.NewReader(raw))
			httpReq.Header.Set("Content-Type", "application/json")
			httpReq.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httpReq)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		}
	}
	if created != 1 {
		t.Errorf("created receipts = %d, want exactly 1 (codes: %v)", created, codes)
	}

	var n int64
	config.DB.Model(&models.Receipt{}).Where("order_id = ?", orderID).Count(&n)
	if n != 1 {
		t.Errorf("receipt rows = %d, want 1", n)
	}
}

func TestGenerateReceipt_UniqueIndexBackstop(t *testing.T) {
	setupServer(t)

	// Simulate two transactions that both passed the existence check: the
	// second insert must fail on the partial unique index.
	first := models.Receipt{OrderID: 7, ReceiptNumber: models.ReceiptNumber(7), PaymentMethod: "Cash", PaymentStatus: models.PaymentPaid}
	if err := config.DB.Create(&first).Error; err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	second := models.Receipt{OrderID: 7, ReceiptNumber: models.ReceiptNumber(7), PaymentMethod: "Card", PaymentStatus: models.PaymentPaid}
	if err := config.DB.Create(&second).Error; err == nil {
		t.Fatal("second insert succeeded, want unique constraint violation")
	}

	// A soft-deleted receipt does not block a new one
	config.DB.Model(&first).Update("is_deleted", true)
	third := models.Receipt{OrderID: 7, ReceiptNumber: models.ReceiptNumber(7), PaymentMethod: "Card", PaymentStatus: models.PaymentPaid}
	if err := config.DB.Create(&third).Error; err != nil {
		t.Fatalf("insert after soft delete failed: %v", err)
	}
}

func TestGenerateReceipt_OrderNotFound(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)

	w, body := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       12345,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusNotFound)
	if got := body["error"]; got != "Order not found" {
		t.Errorf("error = %v, want order-not-found message", got)
	}
}

func TestGenerateReceipt_MissingFields(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)

	w, body := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id": 1,
	})
	requireStatus(t, w, http.StatusBadRequest)
	if got := body["error"]; got != "Order ID and payment method are required" {
		t.Errorf("error = %v, want required-fields message", got)
	}
}

func TestReceiptNumber_Deterministic(t *testing.T) {
	if got := models.ReceiptNumber(42); got != "RCP-000042" {
		t.Errorf("ReceiptNumber(42) = %s, want RCP-000042", got)
	}
	if got := models.ReceiptNumber(1234567); got != "RCP-1234567" {
		t.Errorf("ReceiptNumber(1234567) = %s, want RCP-1234567", got)
	}
}

func TestGetReceiptByOrder(t *testing.T) {
	r := setupServer(t)
	token := authToken(t, models.RoleCashier)
	orderID := placeTestOrder(t, r, token)

	w, _ := doJSON(t, r, "POST", "/api/receipts/generate", token, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusCreated)

	w, body := doJSON(t, r, "GET", fmt.Sprintf("/api/receipts/order/%d", orderID), token, nil)
	requireStatus(t, w, http.StatusOK)
	receipt := body["receipt"].(map[string]interface{})
	if got := receipt["receipt_number"]; got != models.ReceiptNumber(orderID) {
		t.Errorf("receipt_number = %v, want %s", got, models.ReceiptNumber(orderID))
	}
}

func TestGenerateReceipt_RequiresCashierRole(t *testing.T) {
	r := setupServer(t)
	waiterToken := authToken(t, models.RoleWaiter)
	orderID := placeTestOrder(t, r, waiterToken)

	w, _ := doJSON(t, r, "POST", "/api/receipts/generate", waiterToken, map[string]interface{}{
		"order_id":       orderID,
		"payment_method": "Cash",
	})
	requireStatus(t, w, http.StatusForbidden)
}
