package controllers

import (
	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
)

// ListCampaigns returns all campaigns, most recent first
func ListCampaigns(c *gin.Context) {
	utils.LogInfo("ListCampaigns called")

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Campaign{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count campaigns: %v", err)
		utils.InternalServerError(c, "Failed to fetch campaigns", err.Error())
		return
	}
	pagination.SetTotal(total)

	var campaigns []models.Campaign
	if err := config.DB.Preload("Products").
		Order("created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&campaigns).Error; err != nil {
		utils.LogError("Failed to fetch campaigns: %v", err)
		utils.InternalServerError(c, "Failed to fetch campaigns", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d campaigns", len(campaigns))

	formatted := make([]gin.H, 0, len(campaigns))
	for i := range campaigns {
		entry := formatCampaign(&campaigns[i])
		entry["product_count"] = len(campaigns[i].Products)
		formatted = append(formatted, entry)
	}

	utils.SendPaginatedResponse(c, "Campaigns retrieved successfully", formatted, pagination)
}
