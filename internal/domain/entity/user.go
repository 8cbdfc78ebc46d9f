package entity

const (
	RoleAdmin            = "admin"
	RoleAudioprothesiste = "audioprothesiste"
	RoleAssistant        = "assistant"
)

// User is a clinic staff account.
type User struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:text;not null"`
	Role      string `gorm:"type:varchar(32);not null"`
	Avatar    string `gorm:"type:text"`
	CreatedAt string `gorm:"type:varchar(40)"`
	LastLogin string `gorm:"type:varchar(40)"`
}

func (User) TableName() string {
	return "users"
}
