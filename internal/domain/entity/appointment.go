package entity

const (
	AppointmentPlanned   = "planned"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	PatientID string `gorm:"type:varchar(64);not null;index"`
	Date      string `gorm:"type:varchar(40);not null;index"`
	Duration  int
	Type      string `gorm:"type:varchar(16)"`
	Status    string `gorm:"type:varchar(16)"`
	Notes     string `gorm:"type:text"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

func (Appointment) TableName() string {
	return "appointments"
}
