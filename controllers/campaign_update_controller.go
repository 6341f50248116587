package controllers

import (
	"errors"
	"strings"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateCampaignRequest represents the request body for updating a campaign.
// All fields are optional; ProductIDs nil leaves the membership unchanged,
// while an explicit empty list removes every member. Sending either discount
// field replaces the discount spec wholesale.
type UpdateCampaignRequest struct {
	Title           *string   `json:"title"`
	Description     *string   `json:"description"`
	DiscountPercent *float64  `json:"discount_percent"`
	DiscountAmount  *float64  `json:"discount_amount"`
	IsActive        *bool     `json:"is_active"`
	ShowOnHomepage  *bool     `json:"show_on_homepage"`
	StartDate       *string   `json:"start_date"` // RFC3339
	EndDate         *string   `json:"end_date"`
	ProductIDs      *[]string `json:"product_ids"`
}

// UpdateCampaign updates a campaign and recomputes member pricing. Products
// removed from the membership are reverted first, then the full new set is
// re-applied so a changed discount takes effect immediately, all inside one
// transaction.
func UpdateCampaign(c *gin.Context) {
	utils.LogInfo("UpdateCampaign called")

	id := c.Param("id")
	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid request format for campaign %s: %v", id, err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	if req.Title != nil {
		if verr := utils.ValidateCampaignTitle(*req.Title); verr != nil {
			utils.LogError("Invalid campaign title: %s", verr.Message)
			utils.BadRequest(c, verr.Message, verr)
			return
		}
	}
	if req.DiscountPercent != nil || req.DiscountAmount != nil {
		if verr := utils.ValidateDiscountSpec(req.DiscountPercent, req.DiscountAmount); verr != nil {
			utils.LogError("Invalid discount spec: %s", verr.Message)
			utils.BadRequest(c, verr.Message, verr)
			return
		}
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to start transaction", nil)
		return
	}

	var campaign models.Campaign
	if err := tx.First(&campaign, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Campaign not found: %s", id)
			utils.NotFound(c, "Campaign not found")
			return
		}
		utils.LogError("Failed to load campaign %s: %v", id, err)
		utils.InternalServerError(c, "Failed to load campaign", err.Error())
		return
	}
	utils.LogInfo("Found campaign %d (%s)", campaign.ID, campaign.Title)

	// Apply field updates to the in-memory row first; the engine reads the
	// new discount spec from it.
	if req.Title != nil {
		campaign.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		campaign.Description = *req.Description
	}
	if req.DiscountPercent != nil || req.DiscountAmount != nil {
		campaign.DiscountPercent = req.DiscountPercent
		campaign.DiscountAmount = req.DiscountAmount
	}
	if req.IsActive != nil {
		campaign.IsActive = *req.IsActive
	}
	if req.ShowOnHomepage != nil {
		campaign.ShowOnHomepage = *req.ShowOnHomepage
	}
	if req.StartDate != nil {
		startDate, err := parseCampaignDate(*req.StartDate)
		if err != nil {
			tx.Rollback()
			utils.LogError("Invalid start date format: %v", err)
			utils.BadRequest(c, "Invalid start date format. Use RFC3339.", nil)
			return
		}
		campaign.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseCampaignDate(*req.EndDate)
		if err != nil {
			tx.Rollback()
			utils.LogError("Invalid end date format: %v", err)
			utils.BadRequest(c, "Invalid end date format. Use RFC3339.", nil)
			return
		}
		campaign.EndDate = endDate
	}
	if verr := utils.ValidateCampaignWindow(campaign.StartDate, campaign.EndDate); verr != nil {
		tx.Rollback()
		utils.LogError("Invalid campaign window: %s", verr.Message)
		utils.BadRequest(c, verr.Message, verr)
		return
	}

	oldProductIDs, err := utils.CampaignMemberIDs(tx, campaign.ID)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to load memberships for campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to load campaign memberships", err.Error())
		return
	}

	newProductIDs := oldProductIDs
	if req.ProductIDs != nil {
		newProductIDs = *req.ProductIDs
	}

	// Revert products leaving the membership before anything else touches
	// their price fields; the apply below reads baselines from the ledger.
	removed := diffProductIDs(oldProductIDs, newProductIDs)
	revert, err := utils.RevertCampaignPricing(tx, campaign.ID, removed)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to revert removed products for campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to revert removed products", err.Error())
		return
	}

	// Membership is replaced wholesale, then rebuilt by the apply pass
	if err := tx.Where("campaign_id = ?", campaign.ID).Delete(&models.CampaignProduct{}).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to clear memberships for campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to clear campaign memberships", err.Error())
		return
	}

	if err := tx.Save(&campaign).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to update campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to update campaign", err.Error())
		return
	}

	pricing, err := utils.ApplyCampaignPricing(tx, &campaign, newProductIDs)
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
		utils.InternalServerError(c, "Failed to load updated campaign", err.Error())
		return
	}

	utils.LogInfo("Successfully updated campaign %d: %d applied, %d reverted, %d skipped",
		campaign.ID, len(pricing.Applied), len(revert.Restored), len(pricing.SkippedProductIDs))
	utils.Success(c, "Campaign updated successfully", gin.H{
		"campaign": formatCampaign(&campaign),
		"pricing":  pricing,
		"reverted": revert,
	})
}

// diffProductIDs returns the ids present in old but not in new
func diffProductIDs(old, new []string) []string {
	keep := make(map[string]bool, len(new))
	for _, id := range new {
		keep[id] = true
	}
	var removed []string
	for _, id := range old {
		if !keep[id] {
			removed = append(removed, id)
		}
	}
	return removed
}
