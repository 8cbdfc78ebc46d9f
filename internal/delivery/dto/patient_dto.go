package dto

type CreatePatientRequest struct {
	ID                  string `json:"id" validate:"omitempty,max=64"`
	FirstName           string `json:"firstName" validate:"required"`
	LastName            string `json:"lastName" validate:"required"`
	Age                 int    `json:"age" validate:"gte=0"`
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	Gender              string `json:"gender" validate:"omitempty,oneof=M F"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	MedicalHistory      string `json:"medicalHistory"`
	AudiologicalHistory string `json:"audiologicalHistory"`
	CreatedAt           string `json:"createdAt,omitempty"`
	LastVisit           string `json:"lastVisit,omitempty"`
}

type UpdatePatientRequest struct {
	FirstName           *string `json:"firstName" validate:"omitempty,min=1"`
	LastName            *string `json:"lastName" validate:"omitempty,min=1"`
	Age                 *int    `json:"age" validate:"omitempty,gte=0"`
	DateOfBirth         *string `json:"dateOfBirth"`
	Gender              *string `json:"gender" validate:"omitempty,oneof=M F"`
	Phone               *string `json:"phone"`
	Email               *string `json:"email"`
	Address             *string `json:"address"`
	MedicalHistory      *string `json:"medicalHistory"`
	AudiologicalHistory *string `json:"audiologicalHistory"`
	CreatedAt           *string `json:"createdAt"`
	LastVisit           *string `json:"lastVisit"`
}

type PatientResponse struct {
	ID                  string `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Age                 int    `json:"age"`
	DateOfBirth         string `json:"dateOfBirth,omitempty"`
	Gender              string `json:"gender"`
	Phone               string `json:"phone"`
	Email               string `json:"email"`
	Address             string `json:"address"`
	MedicalHistory      string `json:"medicalHistory"`
	AudiologicalHistory string `json:"audiologicalHistory"`
	CreatedAt           string `json:"createdAt"`
	LastVisit           string `json:"lastVisit,omitempty"`
}

// FullName returns "First Last".
func (p PatientResponse) FullName() string {
	return p.FirstName + " " + p.LastName
}
