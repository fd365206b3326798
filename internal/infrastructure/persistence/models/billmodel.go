package models

import "time"

type BillModel struct {
	ID         uint   `gorm:"primaryKey"`
	SID        string `gorm:"uniqueIndex;size:32;not null;column:sid"`
	BillNo     string `gorm:"size:64;index"`
	CustomerID uint   `gorm:"index;not null"`
	BrandID    uint   `gorm:"index;not null"`

	PaymentType      string  `gorm:"size:20;not null"`
	AmountCents      int64   `gorm:"not null"`
	Currency         string  `gorm:"size:10;not null;default:'INR'"`
	PaymentStatus    string  `gorm:"size:20;not null;index"`
	GatewayOrderID   *string `gorm:"size:128;index"`
	GatewayPaymentID *string `gorm:"size:128"`
	GatewaySignature *string `gorm:"size:256"`

	ContentType     *string `gorm:"size:20"`
	ContentURL      *string `gorm:"type:text"`
	InstaContentURL *string `gorm:"type:text"`
	BillURL         *string `gorm:"type:text"`

	Status          string `gorm:"size:32;not null;index"`
	BrandStatusDate *time.Time

	Likes         uint64 `gorm:"not null;default:0"`
	Comments      uint64 `gorm:"not null;default:0"`
	Views         uint64 `gorm:"not null;default:0"`
	MetaFetchedAt *time.Time

	RefundStatus    string `gorm:"size:20;not null;index"`
	RefundClaimDate *time.Time
	RefundAmountCents *int64
	RefundDate      *time.Time

	BrandRefundStatus string `gorm:"size:20;not null"`
	BrandRefundDate   *time.Time

	DeletedAt    *time.Time `gorm:"index"`
	LastActiveAt time.Time
	Version      int `gorm:"default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (BillModel) TableName() string {
	return "bills"
}
