package domain

import "time"

// ReferralCode is a marketer-owned code that attributes storefront visits and
// purchases to its owner.
type ReferralCode struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	OwnerID         string    `json:"owner_id"`
	DiscountPercent int       `json:"discount_percent"`
	Visits          int64     `json:"visits"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}
