package models

import "time"

type BrandModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null;column:sid"`
	Name         string `gorm:"size:128;not null"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	BalanceCents int64  `gorm:"not null;default:0"`
	Currency     string `gorm:"size:10;not null;default:'INR'"`

	RefundDays            int   `gorm:"not null;default:0"`
	RefundPercentage      int   `gorm:"not null;default:0"`
	UpToRefundAmountCents int64 `gorm:"not null;default:0"`

	Active    bool `gorm:"not null;default:true"`
	Version   int  `gorm:"default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BrandModel) TableName() string {
	return "brands"
}
