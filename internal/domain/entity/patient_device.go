package entity

import "gorm.io/datatypes"

const (
	DeviceActive      = "active"
	DeviceMaintenance = "maintenance"
	DeviceReplaced    = "replaced"
)

// Adjustment is one fine-tuning session on a fitted device.
type Adjustment struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	Notes        string   `json:"notes"`
	Satisfaction int      `json:"satisfaction" validate:"gte=0,lte=5"`
	Issues       []string `json:"issues"`
}

// PatientDevice is a fitting: a catalog hearing aid installed for a patient.
type PatientDevice struct {
	ID            string                          `gorm:"type:varchar(64);primaryKey"`
	PatientID     string                          `gorm:"type:varchar(64);not null;index"`
	HearingAidID  string                          `gorm:"type:varchar(64);not null;index"`
	Ear           string                          `gorm:"type:varchar(8)"`
	DateInstalled string                          `gorm:"type:varchar(40)"`
	Warranty      string                          `gorm:"type:varchar(40)"`
	Status        string                          `gorm:"type:varchar(16)"`
	Adjustments   datatypes.JSONSlice[Adjustment] `gorm:"not null"`

	Patient    *Patient    `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
	HearingAid *HearingAid `gorm:"foreignKey:HearingAidID;constraint:OnDelete:CASCADE"`
}

func (PatientDevice) TableName() string {
	return "patient_devices"
}

// NormalizeAdjustments replaces nil issue lists so they serialize as arrays.
func NormalizeAdjustments(adjustments []Adjustment) []Adjustment {
	out := make([]Adjustment, len(adjustments))
	for i, a := range adjustments {
		if a.Issues == nil {
			a.Issues = []string{}
		}
		out[i] = a
	}
	return out
}
