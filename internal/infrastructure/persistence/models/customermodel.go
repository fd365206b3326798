package models

import "time"

type CustomerModel struct {
	ID           uint   `gorm:"primaryKey"`
	SID          string `gorm:"uniqueIndex;size:32;not null;column:sid"`
	Handle       string `gorm:"size:64;not null;index"`
	Email        string `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Active       bool   `gorm:"not null;default:true"`
	LastActiveAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CustomerModel) TableName() string {
	return "customers"
}
