package utils

import (
	"testing"

	"github.com/Anand-727/ShopSphere/config"
	"github.com/Anand-727/ShopSphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reloadProduct(t *testing.T, id string) *models.Product {
	var product models.Product
	require.NoError(t, config.DB.Where("id = ?", id).First(&product).Error)
	return &product
}

func TestApplyCampaignPricing(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	campaign := CreateTestCampaign(t, "Spring Sale", floatPtr(20), nil)

	tx := config.DB.Begin()
	result, err := ApplyCampaignPricing(tx, campaign, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, 1, result.Requested)
	assert.Equal(t, []string{product.ID}, result.Applied)
	assert.Empty(t, result.SkippedProductIDs)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 80.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 100.0, *updated.OriginalPrice)
	assert.True(t, updated.IsOnSale)
	require.NotNil(t, updated.DiscountPercent)
	assert.Equal(t, 20.0, *updated.DiscountPercent)

	var memberships int64
	config.DB.Model(&models.CampaignProduct{}).
		Where("campaign_id = ? AND product_id = ?", campaign.ID, product.ID).
		Count(&memberships)
	assert.Equal(t, int64(1), memberships)
}

func TestApplyCampaignPricingIdempotent(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	campaign := CreateTestCampaign(t, "Spring Sale", floatPtr(20), nil)

	for i := 0; i < 2; i++ {
		tx := config.DB.Begin()
		_, err := ApplyCampaignPricing(tx, campaign, []string{product.ID})
		require.NoError(t, err)
		require.NoError(t, tx.Commit().Error)
	}

	// Baseline is stable: the second apply recomputes from the captured
	// original price, not the already-discounted one
	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 80.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 100.0, *updated.OriginalPrice)

	var memberships int64
	config.DB.Model(&models.CampaignProduct{}).
		Where("campaign_id = ?", campaign.ID).
		Count(&memberships)
	assert.Equal(t, int64(1), memberships)
}

func TestApplyCampaignPricingFixedAmountClamps(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Cheap Widget", 10)
	campaign := CreateTestCampaign(t, "Deep Cut", nil, floatPtr(25))

	tx := config.DB.Begin()
	_, err := ApplyCampaignPricing(tx, campaign, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 0.0, updated.Price)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 10.0, *updated.OriginalPrice)
	assert.True(t, updated.IsOnSale)
	// Amount-based campaigns carry no percent display hint
	assert.Nil(t, updated.DiscountPercent)
}

func TestApplyCampaignPricingZeroDiscountStillMarksSale(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	campaign := CreateTestCampaign(t, "Zero Percent", floatPtr(0), nil)

	tx := config.DB.Begin()
	_, err := ApplyCampaignPricing(tx, campaign, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 100.0, updated.Price)
	assert.True(t, updated.IsOnSale)

	var memberships int64
	config.DB.Model(&models.CampaignProduct{}).
		Where("campaign_id = ?", campaign.ID).
		Count(&memberships)
	assert.Equal(t, int64(1), memberships)
}

func TestApplyCampaignPricingSkipsMissingProduct(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	campaign := CreateTestCampaign(t, "Spring Sale", floatPtr(10), nil)

	tx := config.DB.Begin()
	result, err := ApplyCampaignPricing(tx, campaign, []string{"no-such-product", product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, []string{"no-such-product"}, result.SkippedProductIDs)
	assert.Equal(t, []string{product.ID}, result.Applied)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 90.0, updated.Price)
}

func TestRevertCampaignPricingRoundTrip(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	campaign := CreateTestCampaign(t, "Spring Sale", floatPtr(20), nil)

	tx := config.DB.Begin()
	_, err := ApplyCampaignPricing(tx, campaign, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	tx = config.DB.Begin()
	result, err := RevertCampaignPricing(tx, campaign.ID, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, []string{product.ID}, result.Restored)
	assert.Empty(t, result.StillOnSale)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 100.0, updated.Price)
	assert.Nil(t, updated.OriginalPrice)
	assert.False(t, updated.IsOnSale)
	assert.Nil(t, updated.DiscountPercent)

	var memberships int64
	config.DB.Model(&models.CampaignProduct{}).
		Where("product_id = ?", product.ID).
		Count(&memberships)
	assert.Equal(t, int64(0), memberships)
}

func TestRevertKeepsProductOnSaleWhenOverlapping(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	first := CreateTestCampaign(t, "First Sale", floatPtr(10), nil)
	second := CreateTestCampaign(t, "Second Sale", floatPtr(30), nil)

	tx := config.DB.Begin()
	_, err := ApplyCampaignPricing(tx, first, []string{product.ID})
	require.NoError(t, err)
	_, err = ApplyCampaignPricing(tx, second, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	// Second campaign wrote last: 30% off the stable baseline
	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 70.0, updated.Price)

	tx = config.DB.Begin()
	result, err := RevertCampaignPricing(tx, first.ID, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, []string{product.ID}, result.StillOnSale)
	assert.Empty(t, result.Restored)

	// The surviving campaign's effect is untouched
	updated = reloadProduct(t, product.ID)
	assert.Equal(t, 70.0, updated.Price)
	assert.True(t, updated.IsOnSale)
	require.NotNil(t, updated.OriginalPrice)
	assert.Equal(t, 100.0, *updated.OriginalPrice)
}

func TestRevertIgnoresInactiveCampaignClaims(t *testing.T) {
	TestSetup(t)

	product := CreateTestProduct(t, "Widget", 100)
	active := CreateTestCampaign(t, "Active Sale", floatPtr(20), nil)
	inactive := CreateTestCampaign(t, "Paused Sale", floatPtr(50), nil)
	require.NoError(t, config.DB.Model(inactive).Update("is_active", false).Error)

	tx := config.DB.Begin()
	_, err := ApplyCampaignPricing(tx, inactive, []string{product.ID})
	require.NoError(t, err)
	_, err = ApplyCampaignPricing(tx, active, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	// Only the inactive campaign remains after this revert, so the product
	// must be restored to baseline
	tx = config.DB.Begin()
	result, err := RevertCampaignPricing(tx, active.ID, []string{product.ID})
	require.NoError(t, err)
	require.NoError(t, tx.Commit().Error)

	assert.Equal(t, []string{product.ID}, result.Restored)

	updated := reloadProduct(t, product.ID)
	assert.Equal(t, 100.0, updated.Price)
	assert.False(t, updated.IsOnSale)
	assert.Nil(t, updated.OriginalPrice)
}
