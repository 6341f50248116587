package utils

import (
	"errors"

	"github.com/Anand-727/ShopSphere/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyResult reports what a campaign-level apply actually did, so callers
// can compare the final membership against what was requested.
type ApplyResult struct {
	Requested         int      `json:"requested"`
	Applied           []string `json:"applied"`
	SkippedProductIDs []string `json:"skipped_product_ids"`
}

// RevertResult reports what a campaign-level revert actually did. Products in
// StillOnSale were released from this campaign but kept their sale pricing
// because another active campaign still claims them.
type RevertResult struct {
	Restored          []string `json:"restored"`
	StillOnSale       []string `json:"still_on_sale"`
	SkippedProductIDs []string `json:"skipped_product_ids"`
}

// ApplyCampaignPricing applies a campaign's discount to each product in the
// batch and records the memberships. It must run inside the caller's
// transaction: each product row is locked for update before its price
// mutates, and the membership insert is idempotent so re-applying to an
// existing member simply recomputes from the same stable baseline.
//
// The baseline is the product's original price when one is already captured,
// otherwise its current price. A product already on sale from another
// campaign therefore never has its baseline dragged down to a discounted
// value. Missing products are skipped, not fatal to the batch.
func ApplyCampaignPricing(tx *gorm.DB, campaign *models.Campaign, productIDs []string) (*ApplyResult, error) {
	result := &ApplyResult{
		Requested: len(productIDs),
		Applied:   []string{},
	}

	for _, productID := range productIDs {
		var product models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", productID).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				LogError("Product %s not found while applying campaign %d, skipping", productID, campaign.ID)
				result.SkippedProductIDs = append(result.SkippedProductIDs, productID)
				continue
			}
			return nil, WrapError(err, "failed to load product "+productID)
		}

		base := product.Price
		if product.OriginalPrice != nil {
			base = *product.OriginalPrice
		}
		newPrice := DiscountedPrice(base, campaign.DiscountPercent, campaign.DiscountAmount)

		updates := map[string]interface{}{
			"price":            newPrice,
			"original_price":   base,
			"is_on_sale":       true,
			"discount_percent": campaign.DiscountPercent,
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Updates(updates).Error; err != nil {
			return nil, WrapError(err, "failed to update price for product "+productID)
		}

		membership := models.CampaignProduct{CampaignID: campaign.ID, ProductID: productID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&membership).Error; err != nil {
			return nil, WrapError(err, "failed to record membership for product "+productID)
		}

		LogDebug("Applied campaign %d to product %s: %.2f -> %.2f", campaign.ID, productID, base, newPrice)
		result.Applied = append(result.Applied, productID)
	}

	return result, nil
}

// RevertCampaignPricing removes this campaign's claim on each product in the
// batch and restores baseline pricing for products no other active campaign
// still covers. Products still claimed elsewhere keep their pricing fields
// untouched - the surviving campaign's discount was never disturbed, so there
// is nothing to recompute. Must run inside the caller's transaction so the
// ownership check observes a snapshot consistent with the membership delete.
func RevertCampaignPricing(tx *gorm.DB, campaignID uint, productIDs []string) (*RevertResult, error) {
	result := &RevertResult{
		Restored:    []string{},
		StillOnSale: []string{},
	}

	for _, productID := range productIDs {
		if err := tx.Where("campaign_id = ? AND product_id = ?", campaignID, productID).
			Delete(&models.CampaignProduct{}).Error; err != nil {
			return nil, WrapError(err, "failed to remove membership for product "+productID)
		}

		var product models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", productID).
			First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				LogError("Product %s not found while reverting campaign %d, skipping", productID, campaignID)
				result.SkippedProductIDs = append(result.SkippedProductIDs, productID)
				continue
			}
			return nil, WrapError(err, "failed to load product "+productID)
		}

		var otherClaims int64
		err = tx.Model(&models.CampaignProduct{}).
			Joins("JOIN campaigns ON campaigns.id = campaign_products.campaign_id").
			Where("campaign_products.product_id = ?", productID).
			Where("campaigns.is_active = ?", true).
			Where("campaigns.deleted_at IS NULL").
			Count(&otherClaims).Error
		if err != nil {
			return nil, WrapError(err, "failed to check campaign claims for product "+productID)
		}

		if otherClaims > 0 {
			LogDebug("Product %s still claimed by %d active campaign(s), leaving pricing untouched", productID, otherClaims)
			result.StillOnSale = append(result.StillOnSale, productID)
			continue
		}

		restored := product.Price
		if product.OriginalPrice != nil {
			restored = *product.OriginalPrice
		}
		updates := map[string]interface{}{
			"price":            restored,
			"original_price":   nil,
			"is_on_sale":       false,
			"discount_percent": nil,
		}
		if err := tx.Model(&models.Product{}).Where("id = ?", productID).Updates(updates).Error; err != nil {
			return nil, WrapError(err, "failed to restore price for product "+productID)
		}

		LogDebug("Restored product %s to baseline price %.2f", productID, restored)
		result.Restored = append(result.Restored, productID)
	}

	return result, nil
}

// CampaignMemberIDs returns the product ids currently linked to a campaign
func CampaignMemberIDs(tx *gorm.DB, campaignID uint) ([]string, error) {
	var productIDs []string
	err := tx.Model(&models.CampaignProduct{}).
		Where("campaign_id = ?", campaignID).
		Pluck("product_id", &productIDs).Error
	if err != nil {
		return nil, WrapError(err, "failed to load campaign memberships")
	}
	return productIDs, nil
}
