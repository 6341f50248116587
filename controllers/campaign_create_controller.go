package controllers

import (
	"strings"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// CreateCampaignRequest represents the request body for creating a campaign
type CreateCampaignRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	DiscountPercent *float64 `json:"discount_percent"`
	DiscountAmount  *float64 `json:"discount_amount"`
	IsActive        *bool    `json:"is_active"`
	ShowOnHomepage  *bool    `json:"show_on_homepage"`
	StartDate       string   `json:"start_date"` // RFC3339
	EndDate         string   `json:"end_date"`
	ProductIDs      []string `json:"product_ids"`
}

// CreateCampaign creates a campaign and applies its discount to the member products
func CreateCampaign(c *gin.Context) {
	utils.LogInfo("CreateCampaign called")

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	utils.LogInfo("Processing campaign creation: %s with %d products", req.Title, len(req.ProductIDs))

	if verr := utils.ValidateCampaignTitle(req.Title); verr != nil {
		utils.LogError("Invalid campaign title: %s", verr.Message)
		utils.BadRequest(c, verr.Message, verr)
		return
	}
	if verr := utils.ValidateDiscountSpec(req.DiscountPercent, req.DiscountAmount); verr != nil {
		utils.LogError("Invalid discount spec: %s", verr.Message)
		utils.BadRequest(c, verr.Message, verr)
		return
	}

	startDate, err := parseCampaignDate(req.StartDate)
	if err != nil {
		utils.LogError("Invalid start date format: %v", err)
		utils.BadRequest(c, "Invalid start date format. Use RFC3339.", nil)
		return
	}
	endDate, err := parseCampaignDate(req.EndDate)
	if err != nil {
		utils.LogError("Invalid end date format: %v", err)
		utils.BadRequest(c, "Invalid end date format. Use RFC3339.", nil)
		return
	}
	if verr := utils.ValidateCampaignWindow(startDate, endDate); verr != nil {
		utils.LogError("Invalid campaign window: %s", verr.Message)
		utils.BadRequest(c, verr.Message, verr)
		return
	}

	campaign := models.Campaign{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		IsActive:        true,
		ShowOnHomepage:  false,
		StartDate:       startDate,
		EndDate:         endDate,
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}
	if req.ShowOnHomepage != nil {
		campaign.ShowOnHomepage = *req.ShowOnHomepage
	}

	// The campaign row, the membership rows and every price mutation commit
	// or roll back together.
	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	if err := tx.Create(&campaign).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create campaign: %v", err)
		utils.InternalServerError(c, "Failed to create campaign", err.Error())
		return
	}

	pricing, err := utils.ApplyCampaignPricing(tx, &campaign, req.ProductIDs)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to apply campaign pricing: %v", err)
		utils.InternalServerError(c, "Failed to apply campaign pricing", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	if err := config.DB.Preload("Products").First(&campaign, campaign.ID).Error; err != nil {
		utils.LogError("Failed to reload campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to load created campaign", err.Error())
		return
	}

	utils.LogInfo("Successfully created campaign %d (%s): %d applied, %d skipped",
		campaign.ID, campaign.Title, len(pricing.Applied), len(pricing.SkippedProductIDs))
	utils.Success(c, "Campaign created successfully", gin.H{
		"campaign": formatCampaign(&campaign),
		"pricing":  pricing,
	})
}
