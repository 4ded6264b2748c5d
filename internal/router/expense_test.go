package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"paytrack/internal/auth"
	"paytrack/internal/config"
	"paytrack/internal/ledger"
	"paytrack/internal/testutil"
)

func TestCreateExpenseHandler(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	formData := url.Values{}
	formData.Set("shop_name", "Pen Shop")
	formData.Set("item", "Pen")
	formData.Set("quantity", "2")
	formData.Set("unit_cost", "10")
	formData.Set("category", "Shopping")
	formData.Set("date", "2027-01-15")
	formData.Set("notes", "blue ink")

	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(formData.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("Expected status SeeOther; got %v", resp.Status)
	}

	location := resp.Header.Get("Location")
	if location != "/" {
		t.Errorf("Expected redirect to '/'; got '%s'", location)
	}

	store := ledger.NewStore(s, logger)
	expenses, err := store.Expenses(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Failed to load expenses: %v", err)
	}

	if len(expenses) != 1 {
		t.Fatalf("Expected 1 stored record, got %d", len(expenses))
	}

	expense := expenses[0]
	if expense.Amount != 2000 {
		t.Errorf("Expected amount 2000 paise, got %d", expense.Amount)
	}
	if expense.BillID != "PT-2027-001" {
		t.Errorf("Expected bill ID 'PT-2027-001', got '%s'", expense.BillID)
	}
	if expense.Category != ledger.CategoryShopping {
		t.Errorf("Expected category Shopping, got %s", expense.Category)
	}
	if expense.Notes != "blue ink" {
		t.Errorf("Expected notes 'blue ink', got '%s'", expense.Notes)
	}
	if expense.UserID != "admin" {
		t.Errorf("Expected user ID 'admin', got '%s'", expense.UserID)
	}
}

func TestCreateExpenseHandlerPrependsNewRecord(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	post := func(shopName string) {
		formData := url.Values{}
		formData.Set("shop_name", shopName)
		formData.Set("item", "Thing")
		formData.Set("unit_cost", "10")

		req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(formData.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Result().StatusCode != http.StatusSeeOther {
			t.Fatalf("Expected status SeeOther; got %v", w.Result().Status)
		}
	}

	post("First Shop")
	post("Second Shop")

	store := ledger.NewStore(s, logger)
	expenses, err := store.Expenses(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Failed to load expenses: %v", err)
	}

	if len(expenses) != 2 {
		t.Fatalf("Expected 2 stored records, got %d", len(expenses))
	}

	if expenses[0].ShopName != "Second Shop" {
		t.Errorf("Expected the newest record first, got '%s'", expenses[0].ShopName)
	}

	// Sequence keeps counting across records.
	if expenses[0].BillID == expenses[1].BillID {
		t.Error("Expected distinct bill IDs")
	}
}

func TestCreateExpenseHandlerValidationErrors(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	tests := []struct {
		name          string
		formData      map[string]string
		expectedError string
	}{
		{
			name: "missing vendor",
			formData: map[string]string{
				"item":      "Pen",
				"unit_cost": "10",
			},
			expectedError: "Required fields are missing",
		},
		{
			name: "missing item",
			formData: map[string]string{
				"shop_name": "Pen Shop",
				"unit_cost": "10",
			},
			expectedError: "Required fields are missing",
		},
		{
			name: "zero amount",
			formData: map[string]string{
				"shop_name": "Pen Shop",
				"item":      "Pen",
				"unit_cost": "0",
			},
			expectedError: "Amount must be greater than zero",
		},
		{
			name: "unparsable cost",
			formData: map[string]string{
				"shop_name": "Pen Shop",
				"item":      "Pen",
				"unit_cost": "abc",
			},
			expectedError: "Amount must be greater than zero",
		},
		{
			name: "invalid date",
			formData: map[string]string{
				"shop_name": "Pen Shop",
				"item":      "Pen",
				"unit_cost": "10",
				"date":      "15/01/2027",
			},
			expectedError: "Transaction date is not a valid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formData := url.Values{}
			for key, value := range tt.formData {
				formData.Set(key, value)
			}

			req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(formData.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			resp := w.Result()
			if resp.StatusCode != http.StatusOK {
				t.Errorf("Expected status OK for validation error handling; got %v", resp.Status)
			}

			body := w.Body.String()
			if !strings.Contains(body, tt.expectedError) {
				t.Errorf("Expected error message '%s' not found in response", tt.expectedError)
			}
		})
	}

	// No rejected submission reached storage.
	store := ledger.NewStore(s, logger)
	expenses, err := store.Expenses(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Failed to load expenses: %v", err)
	}
	if len(expenses) != 0 {
		t.Errorf("Expected no stored records, got %d", len(expenses))
	}
}

func TestCreateExpenseHandlerRequiresAuth(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)

	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader("shop_name=Shop"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("Expected status SeeOther; got %v", resp.Status)
	}
	if location := resp.Header.Get("Location"); location != "/signin" {
		t.Errorf("Expected redirect to '/signin'; got '%s'", location)
	}
}

func TestDeleteExpenseHandler(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	store := ledger.NewStore(s, logger)
	expenses := []ledger.Expense{
		{ID: "keep1", ShopName: "Shop", Item: "Thing", Date: "2026-02-02", Amount: 100},
		{ID: "gone1", ShopName: "Shop", Item: "Other", Date: "2026-02-03", Amount: 200},
	}
	if err := store.SaveExpenses(context.Background(), "admin", expenses); err != nil {
		t.Fatalf("Failed to save expenses: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/expenses/gone1/delete", nil)
	testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("Expected status SeeOther; got %v", resp.Status)
	}

	remaining, err := store.Expenses(context.Background(), "admin")
	if err != nil {
		t.Fatalf("Failed to load expenses: %v", err)
	}

	if len(remaining) != 1 {
		t.Fatalf("Expected 1 remaining record, got %d", len(remaining))
	}
	if remaining[0].ID != "keep1" {
		t.Errorf("Expected record 'keep1' to survive, got '%s'", remaining[0].ID)
	}
}

func TestDeleteExpenseHandlerUnknownID(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	req := httptest.NewRequest(http.MethodPost, "/expenses/missing/delete", nil)
	testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status NotFound; got %v", resp.Status)
	}
}

func TestReceiptHandler(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	store := ledger.NewStore(s, logger)
	expenses := []ledger.Expense{
		{
			ID:       "r1",
			ShopName: "Sapna Book House",
			Item:     "Engineering Books",
			Date:     "2026-02-05",
			Amount:   150000,
			Quantity: 3,
			UnitCost: 50000,
			Category: ledger.CategoryShopping,
			BillID:   "PT-2026-004",
		},
	}
	if err := store.SaveExpenses(context.Background(), "admin", expenses); err != nil {
		t.Fatalf("Failed to save expenses: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/expenses/r1/receipt", nil)
	testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status OK; got %v", resp.Status)
	}

	body := w.Body.String()
	for _, want := range []string{"PT-2026-004", "Sapna Book House", "Engineering Books", "1,500", "2026-02-05"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected '%s' on the receipt", want)
		}
	}

	ensureNoErrorInTemplateResponse(t, "receipt", strings.NewReader(body))
}

func TestReceiptHandlerUnknownID(t *testing.T) {
	logger := testutil.TestLogger(t)
	s := testutil.SetupTestStorage(t)

	handler, _ := New(s, &config.Config{}, logger)
	authService := auth.NewService(s, logger)

	req := httptest.NewRequest(http.MethodGet, "/expenses/missing/receipt", nil)
	testutil.SetupAuthCookie(t, authService, req, adminUser, sessionCookieName)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status NotFound; got %v", resp.Status)
	}
}
