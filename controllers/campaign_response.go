package controllers

import (
	"time"

	"github.com/Anand-727/ShopSphere/models"
	"github.com/gin-gonic/gin"
)

// formatCampaign builds the standard campaign representation returned by the
// lifecycle endpoints. Memberships are rendered as product_id entries.
func formatCampaign(campaign *models.Campaign) gin.H {
	products := make([]gin.H, 0, len(campaign.Products))
	for _, member := range campaign.Products {
		products = append(products, gin.H{"product_id": member.ProductID})
	}

	return gin.H{
		"id":               campaign.ID,
		"title":            campaign.Title,
		"description":      campaign.Description,
		"discount_percent": campaign.DiscountPercent,
		"discount_amount":  campaign.DiscountAmount,
		"is_active":        campaign.IsActive,
		"show_on_homepage": campaign.ShowOnHomepage,
		"start_date":       formatCampaignDate(campaign.StartDate),
		"end_date":         formatCampaignDate(campaign.EndDate),
		"products":         products,
		"created_at":       campaign.CreatedAt.Format("2006-01-02 15:04:05"),
		"updated_at":       campaign.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func formatCampaignDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// parseCampaignDate parses an optional RFC3339 date string from a request
func parseCampaignDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
