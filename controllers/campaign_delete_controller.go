package controllers

import (
	"errors"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteCampaign deletes a campaign after reverting its member products.
// Products still claimed by another active campaign keep their sale pricing.
func DeleteCampaign(c *gin.Context) {
	utils.LogInfo("DeleteCampaign called")

	id := c.Param("id")

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

	productIDs, err := utils.CampaignMemberIDs(tx, campaign.ID)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to load memberships for campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to load campaign memberships", err.Error())
		return
	}

	revert, err := utils.RevertCampaignPricing(tx, campaign.ID, productIDs)
	if err != nil {
		tx.Rollback()
		utils.LogError("Failed to revert products for campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to revert campaign pricing", err.Error())
		return
	}

	if err := tx.Delete(&campaign).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to delete campaign %d: %v", campaign.ID, err)
		utils.InternalServerError(c, "Failed to delete campaign", err.Error())
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit transaction: %v", err)
		utils.InternalServerError(c, "Failed to commit transaction", nil)
		return
	}

	utils.LogInfo("Successfully deleted campaign %d: %d restored, %d left on sale",
		campaign.ID, len(revert.Restored), len(revert.StillOnSale))
	utils.Success(c, "Campaign deleted successfully", gin.H{
		"success":  true,
		"reverted": revert,
	})
}
