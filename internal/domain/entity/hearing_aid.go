package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// HearingAid is a catalog entry. Fittings reference it through PatientDevice.
type HearingAid struct {
	ID         string                      `gorm:"type:varchar(64);primaryKey"`
	Brand      string                      `gorm:"type:varchar(255);not null"`
	Model      string                      `gorm:"type:varchar(255);not null"`
	Technology string                      `gorm:"type:varchar(32)"`
	Type       string                      `gorm:"type:varchar(16)"`
	Price      decimal.Decimal             `gorm:"type:decimal(12,2);not null"`
	Features   datatypes.JSONSlice[string] `gorm:"not null"`
	Image      string                      `gorm:"type:text"`
}

func (HearingAid) TableName() string {
	return "hearing_aids"
}
