package controllers

import (
	"fmt"
	"os"
	"testing"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/middleware"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCampaignRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	campaigns := router.Group("/v1/campaigns")
	campaigns.GET("/active", GetActiveCampaign)

	admin := campaigns.Group("")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("", CreateCampaign)
		admin.GET("", ListCampaigns)
		admin.GET("/:id", GetCampaign)
		admin.PUT("/:id", UpdateCampaign)
		admin.DELETE("/:id", DeleteCampaign)
	}

	return router
}

func adminHeaders(t *testing.T) map[string]string {
	os.Setenv("JWT_SECRET", "campaign-test-secret")

	admin := &models.Admin{Email: "admin@shopsphere.test", IsActive: true}
	require.NoError(t, config.DB.Create(admin).Error)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"admin_id": float64(admin.ID),
	})
	signed, err := token.SignedString([]byte("campaign-test-secret"))
	require.NoError(t, err)

	return map[string]string{"Authorization": "Bearer " + signed}
}

func productByID(t *testing.T, id string) *models.Product {
	var product models.Product
	require.NoError(t, config.DB.Where("id = ?", id).First(&product).Error)
	return &product
}

func TestCreateCampaignAppliesDiscount(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)
	p1 := utils.CreateTestProduct(t, "Widget", 100)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "POST",
		Path:    "/v1/campaigns",
		Headers: headers,
		Body: map[string]interface{}{
			"title":            "Spring Sale",
			"discount_percent": 20,
			"product_ids":      []string{p1.ID},
		},
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "success", resp.Body["status"])

	updated := productByID(t, p1.ID)
	assert.Equal(t, 80.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 100.0, *updated.OriginalPrice)
	assert.True(t, updated.IsOnSale)
}

func TestCreateCampaignRejectsMissingTitle(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "POST",
		Path:    "/v1/campaigns",
		Headers: headers,
		Body: map[string]interface{}{
			"title":            "   ",
			"discount_percent": 20,
		},
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateCampaignRejectsBothDiscountFields(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "POST",
		Path:    "/v1/campaigns",
		Headers: headers,
		Body: map[string]interface{}{
			"title":            "Broken",
			"discount_percent": 20,
			"discount_amount":  5,
		},
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestUpdateCampaignRemovingAllProductsRestoresPrices(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)
	p1 := utils.CreateTestProduct(t, "Widget", 100)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "POST",
		Path:    "/v1/campaigns",
		Headers: headers,
		Body: map[string]interface{}{
			"title":            "Spring Sale",
			"discount_percent": 20,
			"product_ids":      []string{p1.ID},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	var campaign models.Campaign
	require.NoError(t, config.DB.Where("title = ?", "Spring Sale").First(&campaign).Error)

	resp = utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "PUT",
		Path:    fmt.Sprintf("/v1/campaigns/%d", campaign.ID),
		Headers: headers,
		Body: map[string]interface{}{
			"product_ids": []string{},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	updated := productByID(t, p1.ID)
	assert.Equal(t, 100.0, updated.Price)
	assert.Nil(t, updated.OriginalPrice)
	assert.False(t, updated.IsOnSale)
}

func TestUpdateCampaignDiscountRecomputesMembers(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)
	p1 := utils.CreateTestProduct(t, "Widget", 100)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "POST",
		Path:    "/v1/campaigns",
		Headers: headers,
		Body: map[string]interface{}{
			"title":            "Spring Sale",
			"discount_percent": 20,
			"product_ids":      []string{p1.ID},
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	var campaign models.Campaign
	require.NoError(t, config.DB.Where("title = ?", "Spring Sale").First(&campaign).Error)

	// Change the percentage without touching the membership
	resp = utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "PUT",
		Path:    fmt.Sprintf("/v1/campaigns/%d", campaign.ID),
		Headers: headers,
		Body: map[string]interface{}{
			"discount_percent": 50,
		},
	})
	require.Equal(t, 200, resp.StatusCode)

	updated := productByID(t, p1.ID)
	assert.Equal(t, 50.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 100.0, *updated.OriginalPrice)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "PUT",
		Path:    "/v1/campaigns/999999",
		Headers: headers,
		Body:    map[string]interface{}{"title": "Ghost"},
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteCampaignWithOverlapLeavesProductOnSale(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)
	p1 := utils.CreateTestProduct(t, "Widget", 100)

	for _, body := range []map[string]interface{}{
		{"title": "First Sale", "discount_percent": 10, "product_ids": []string{p1.ID}},
		{"title": "Second Sale", "discount_percent": 30, "product_ids": []string{p1.ID}},
	} {
		resp := utils.MakeTestRequest(t, router, utils.TestRequest{
			Method:  "POST",
			Path:    "/v1/campaigns",
			Headers: headers,
			Body:    body,
		})
		require.Equal(t, 200, resp.StatusCode)
	}

	var first models.Campaign
	require.NoError(t, config.DB.Where("title = ?", "First Sale").First(&first).Error)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "DELETE",
		Path:    fmt.Sprintf("/v1/campaigns/%d", first.ID),
		Headers: headers,
	})
	require.Equal(t, 200, resp.StatusCode)

	// The second campaign's discount survives untouched
	updated := productByID(t, p1.ID)
	assert.Equal(t, 70.0, updated.Price)
	assert.True(t, updated.IsOnSale)
}

func TestGetCampaignNotFound(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "GET",
		Path:    "/v1/campaigns/999999",
		Headers: headers,
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteCampaignNotFound(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method:  "DELETE",
		Path:    "/v1/campaigns/999999",
		Headers: headers,
	})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestGetActiveCampaignReturnsNullWhenNoneMatch(t *testing.T) {
	utils.TestSetup(t)

	router := setupCampaignRouter()

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "GET",
		Path:   "/v1/campaigns/active",
	})
	require.Equal(t, 200, resp.StatusCode)
	assert.Nil(t, resp.Body["data"])
}

func TestGetActiveCampaignPicksMostRecentHomepageCampaign(t *testing.T) {
	utils.TestSetup(t)
	config.DB.Exec("TRUNCATE TABLE admins CASCADE")

	router := setupCampaignRouter()
	headers := adminHeaders(t)

	for _, body := range []map[string]interface{}{
		{"title": "Hidden Sale", "discount_percent": 10, "show_on_homepage": false},
		{"title": "Homepage Sale", "discount_percent": 20, "show_on_homepage": true},
	} {
		resp := utils.MakeTestRequest(t, router, utils.TestRequest{
			Method:  "POST",
			Path:    "/v1/campaigns",
			Headers: headers,
			Body:    body,
		})
		require.Equal(t, 200, resp.StatusCode)
	}

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "GET",
		Path:   "/v1/campaigns/active",
	})
	require.Equal(t, 200, resp.StatusCode)

	data, ok := resp.Body["data"].(map[string]interface{})
	require.True(t, ok)
	campaign, ok := data["campaign"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Homepage Sale", campaign["title"])
}
