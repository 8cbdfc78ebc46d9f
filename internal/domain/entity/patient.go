package entity

type Patient struct {
	ID                  string `gorm:"type:varchar(64);primaryKey"`
	FirstName           string `gorm:"type:varchar(255);not null"`
	LastName            string `gorm:"type:varchar(255);not null"`
	Age                 int
	DateOfBirth         string `gorm:"type:varchar(40)"`
	Gender              string `gorm:"type:varchar(1)"`
	Phone               string `gorm:"type:varchar(64)"`
	Email               string `gorm:"type:varchar(255)"`
	Address             string `gorm:"type:text"`
	MedicalHistory      string `gorm:"type:text"`
	AudiologicalHistory string `gorm:"type:text"`
	CreatedAt           string `gorm:"type:varchar(40)"`
	LastVisit           string `gorm:"type:varchar(40)"`
}

func (Patient) TableName() string {
	return "patients"
}
