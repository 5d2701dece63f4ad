package entities

import "time"

type WishlistItem struct {
	ItemID    uint   `gorm:"primaryKey" json:"item_id"`
	UserID    string `json:"user_id" gorm:"index"`
	Name      string `json:"name"`
	Variety   string `json:"variety"`
	SourceURL string `json:"source_url"`
	Notes     string `json:"notes"`
	Priority  int    `json:"priority"`
	Acquired  bool   `json:"acquired"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
