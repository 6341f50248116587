package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TestSetup initializes the test environment. Tests that hit the database
// are skipped when no test database is configured.
func TestSetup(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set, skipping database-backed test")
	}

	if _, err := config.LoadConfig(); err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.DB == nil {
		config.InitDB()
	}

	ClearTestData()
}

// ClearTestData clears all test data from the database
func ClearTestData() {
	config.DB.Exec("TRUNCATE TABLE campaign_products CASCADE")
	config.DB.Exec("TRUNCATE TABLE campaigns CASCADE")
	config.DB.Exec("TRUNCATE TABLE products CASCADE")
	config.DB.Exec("TRUNCATE TABLE categories CASCADE")
	config.DB.Exec("TRUNCATE TABLE companies CASCADE")
}

// CreateTestProduct creates a product at full price
func CreateTestProduct(t *testing.T, name string, price float64) *models.Product {
	product := &models.Product{
		ID:    uuid.New().String(),
		Name:  name,
		Price: price,
		Stock: 10,
	}
	if err := config.DB.Create(product).Error; err != nil {
		t.Fatalf("Failed to create test product: %v", err)
	}
	return product
}

// CreateTestCampaign creates a campaign row without touching any prices
func CreateTestCampaign(t *testing.T, title string, percent, amount *float64) *models.Campaign {
	campaign := &models.Campaign{
		Title:           title,
		DiscountPercent: percent,
		DiscountAmount:  amount,
		IsActive:        true,
	}
	if err := config.DB.Create(campaign).Error; err != nil {
		t.Fatalf("Failed to create test campaign: %v", err)
	}
	return campaign
}

// TestRequest represents a test HTTP request
type TestRequest struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// TestResponse represents a test HTTP response
type TestResponse struct {
	StatusCode int
	Body       map[string]interface{}
}

// MakeTestRequest makes a test HTTP request against the given router
func MakeTestRequest(t *testing.T, router *gin.Engine, req TestRequest) TestResponse {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = json.Marshal(req.Body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httpReq)

	var responseBody map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &responseBody); err != nil {
			t.Fatalf("Failed to unmarshal response body: %v", err)
		}
	}

	return TestResponse{
		StatusCode: w.Code,
		Body:       responseBody,
	}
}
