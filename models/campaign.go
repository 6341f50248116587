package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign represents a promotional campaign. At most one of DiscountPercent
// and DiscountAmount is set; both nil means the campaign is display-only and
// membership does not change member prices. StartDate/EndDate bound homepage
// visibility only - pricing is driven by explicit admin actions, not the clock.
type Campaign struct {
	gorm.Model
	Title           string            `gorm:"not null" json:"title"`
	Description     string            `json:"description"`
	DiscountPercent *float64          `json:"discount_percent"`
	DiscountAmount  *float64          `json:"discount_amount"`
	IsActive        bool              `json:"is_active" gorm:"default:true"`
	ShowOnHomepage  bool              `json:"show_on_homepage" gorm:"default:false"`
	StartDate       *time.Time        `json:"start_date"`
	EndDate         *time.Time        `json:"end_date"`
	Products        []CampaignProduct `json:"products,omitempty" gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE"`
}

// CampaignProduct links a campaign to a product it discounts. The composite
// primary key keeps the pair unique; rows cascade away with their campaign.
type CampaignProduct struct {
	CampaignID uint      `gorm:"primaryKey" json:"campaign_id"`
	ProductID  string    `gorm:"primaryKey" json:"product_id"`
	Product    Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt  time.Time `json:"created_at"`
}
