package models

import (
	"time"

	"gorm.io/datatypes"
)

// OrderModel is the persisted shape of a kit order. Kits stay an opaque
// JSON document; this service never inspects individual items.
type OrderModel struct {
	ID           string  `gorm:"primaryKey;size:36"`
	BuyerName    string  `gorm:"size:255;not null"`
	BuyerEmail   string  `gorm:"size:255;not null"`
	BuyerCelular string  `gorm:"size:32"`
	BuyerCPF     *string `gorm:"size:11"`

	Kits         datatypes.JSON `gorm:"not null"`
	TotalPrice   int64          `gorm:"not null"`
	Currency     string         `gorm:"size:10;not null;default:'BRL'"`
	PurchaseType string         `gorm:"size:32;not null"`

	PaymentID     *int64  `gorm:"index"`
	PaymentStatus string  `gorm:"size:20;not null;index"`
	PaymentMethod *string `gorm:"size:32"`
	Installments  *int

	Version   int `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
