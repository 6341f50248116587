package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents an administrator of the storefront console
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a product category
type Category struct {
	gorm.Model
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	Blocked     bool      `json:"blocked" gorm:"default:false"`
}

// Company represents a brand/manufacturer shown on product pages
type Company struct {
	gorm.Model
	Name        string    `json:"name"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logo_url"`
	Products    []Product `json:"products,omitempty" gorm:"foreignKey:CompanyID"`
}

// Product represents an item in the catalog. The price fields form the
// price ledger mutated by the campaign pricing engine: Price is what buyers
// see, OriginalPrice is the pre-discount baseline captured when the product
// first enters sale state and cleared when it leaves all active campaigns.
//
// Invariant: IsOnSale == true implies OriginalPrice != nil and
// Price <= *OriginalPrice. IsOnSale == false implies OriginalPrice == nil.
type Product struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	OriginalPrice   *float64  `json:"original_price"`
	IsOnSale        bool      `json:"is_on_sale" gorm:"default:false"`
	DiscountPercent *float64  `json:"discount_percent"`
	Stock           int       `json:"stock"`
	CategoryID      uint      `json:"category_id"`
	Category        Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CompanyID       uint      `json:"company_id"`
	Company         Company   `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	ImageURL        string    `json:"image_url"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
