package entity

import "gorm.io/datatypes"

const (
	AudiogramInitial          = "initial"
	AudiogramControle         = "controle"
	AudiogramPostAppareillage = "post-appareillage"
)

// AudiometricData holds the hearing thresholds of one ear, indexed by frequency.
type AudiometricData struct {
	Frequencies    []int     `json:"frequencies"`
	AirConduction  []float64 `json:"airConduction"`
	BoneConduction []float64 `json:"boneConduction"`
}

// Normalize replaces nil slices so the stored JSON always has array values.
func (d AudiometricData) Normalize() AudiometricData {
	if d.Frequencies == nil {
		d.Frequencies = []int{}
	}
	if d.AirConduction == nil {
		d.AirConduction = []float64{}
	}
	if d.BoneConduction == nil {
		d.BoneConduction = []float64{}
	}
	return d
}

type Audiogram struct {
	ID        string                              `gorm:"type:varchar(64);primaryKey"`
	PatientID string                              `gorm:"type:varchar(64);not null;index"`
	Date      string                              `gorm:"type:varchar(40);not null"`
	Type      string                              `gorm:"type:varchar(32);not null"`
	RightEar  datatypes.JSONType[AudiometricData] `gorm:"not null"`
	LeftEar   datatypes.JSONType[AudiometricData] `gorm:"not null"`
	Notes     string                              `gorm:"type:text"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

func (Audiogram) TableName() string {
	return "audiograms"
}
