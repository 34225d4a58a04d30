package models

import "time"

// User is a marketplace account.
type User struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);uniqueIndex" json:"username"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Market *Market `gorm:"foreignKey:UserID" json:"market,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Market groups a user's offers and wishes.
type Market struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID        string    `gorm:"column:user_id;type:varchar(36);uniqueIndex" json:"userId"`
	OfferlistNote string    `gorm:"column:offerlist_note;type:varchar(200)" json:"offerlistNote"`
	WishlistNote  string    `gorm:"column:wishlist_note;type:varchar(200)" json:"wishlistNote"`
	LastUpdated   time.Time `gorm:"column:last_updated" json:"lastUpdated"`

	Offers []Offer `gorm:"foreignKey:MarketID" json:"offers,omitempty"`
	Wishes []Wish  `gorm:"foreignKey:MarketID" json:"wishes,omitempty"`
}

func (Market) TableName() string {
	return "markets"
}

// Offer lists an item of a market for trade. (MarketID, ItemID) is unique.
type Offer struct {
	ID                   uint      `gorm:"primaryKey;column:id" json:"id"`
	MarketID             uint      `gorm:"column:market_id;uniqueIndex:idx_offers_market_item" json:"marketId"`
	ItemID               string    `gorm:"column:item_id;type:varchar(64);uniqueIndex:idx_offers_market_item;index" json:"itemId"`
	Quantity             int       `gorm:"column:quantity" json:"quantity"`
	MainPriceID          uint      `gorm:"column:main_price_id" json:"mainPriceId"`
	MainPriceAmount      *int      `gorm:"column:main_price_amount" json:"mainPriceAmount"`
	SecondaryPriceID     *uint     `gorm:"column:secondary_price_id" json:"secondaryPriceId"`
	SecondaryPriceAmount *int      `gorm:"column:secondary_price_amount" json:"secondaryPriceAmount"`
	WantsBoth            *bool     `gorm:"column:wants_both" json:"wantsBoth"`
	CreatedAt            time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Market         *Market `gorm:"foreignKey:MarketID" json:"-"`
	Item           *Item   `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	MainPrice      *Price  `gorm:"foreignKey:MainPriceID" json:"mainPrice,omitempty"`
	SecondaryPrice *Price  `gorm:"foreignKey:SecondaryPriceID" json:"secondaryPrice,omitempty"`
}

func (Offer) TableName() string {
	return "offers"
}

// Wish marks an item a market owner wants. (MarketID, ItemID) is unique.
type Wish struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	MarketID  uint      `gorm:"column:market_id;uniqueIndex:idx_wishes_market_item" json:"marketId"`
	ItemID    string    `gorm:"column:item_id;type:varchar(64);uniqueIndex:idx_wishes_market_item;index" json:"itemId"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	Market *Market `gorm:"foreignKey:MarketID" json:"-"`
	Item   *Item   `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (Wish) TableName() string {
	return "wishes"
}
