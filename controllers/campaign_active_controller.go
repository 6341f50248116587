package controllers

import (
	"errors"
	"time"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetActiveCampaign returns the single most recent campaign that is active,
// marked for the homepage, and whose window covers the current time. Null
// window bounds are treated as unbounded. Returns null data when none match.
func GetActiveCampaign(c *gin.Context) {
	utils.LogInfo("GetActiveCampaign called")

	now := time.Now()
	var campaign models.Campaign
	err := config.DB.Preload("Products").
		Where("is_active = ? AND show_on_homepage = ?", true, true).
		Where("(start_date IS NULL OR start_date <= ?)", now).
		Where("(end_date IS NULL OR end_date >= ?)", now).
		Order("created_at DESC").
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogDebug("No active homepage campaign found")
			utils.Success(c, "No active campaign", nil)
			return
		}
		utils.LogError("Failed to fetch active campaign: %v", err)
		utils.InternalServerError(c, "Failed to fetch active campaign", err.Error())
		return
	}

	utils.LogInfo("Active homepage campaign: %d (%s)", campaign.ID, campaign.Title)
	utils.Success(c, "Active campaign retrieved successfully", gin.H{
		"campaign": formatCampaign(&campaign),
	})
}
