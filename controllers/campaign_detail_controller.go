package controllers

import (
	"errors"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/Anand-727/ShopSphere/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCampaign returns a campaign with the ledger state of its member products,
// so an admin can audit what the campaign actually did to prices.
func GetCampaign(c *gin.Context) {
	utils.LogInfo("GetCampaign called")

	id := c.Param("id")

	var campaign models.Campaign
	if err := config.DB.Preload("Products.Product").First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Campaign not found: %s", id)
			utils.NotFound(c, "Campaign not found")
			return
		}
		utils.LogError("Failed to load campaign %s: %v", id, err)
		utils.InternalServerError(c, "Failed to load campaign", err.Error())
		return
	}

	members := make([]gin.H, 0, len(campaign.Products))
	for _, member := range campaign.Products {
		members = append(members, gin.H{
			"product_id":       member.ProductID,
			"name":             member.Product.Name,
			"price":            member.Product.Price,
			"original_price":   member.Product.OriginalPrice,
			"is_on_sale":       member.Product.IsOnSale,
			"discount_percent": member.Product.DiscountPercent,
		})
	}

	response := formatCampaign(&campaign)
	response["products"] = members

	utils.LogInfo("Retrieved campaign %d with %d members", campaign.ID, len(members))
	utils.Success(c, "Campaign retrieved successfully", gin.H{"campaign": response})
}
