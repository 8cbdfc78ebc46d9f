package dto

type CreateAppointmentRequest struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Duration  int    `json:"duration" validate:"gte=0"`
	Type      string `json:"type" validate:"omitempty,oneof=bilan essai reglage controle suivi"`
	Status    string `json:"status" validate:"omitempty,oneof=planned confirmed completed cancelled"`
	Notes     string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID *string `json:"patientId" validate:"omitempty,min=1"`
	Date      *string `json:"date" validate:"omitempty,isodate"`
	Duration  *int    `json:"duration" validate:"omitempty,gte=0"`
	Type      *string `json:"type" validate:"omitempty,oneof=bilan essai reglage controle suivi"`
	Status    *string `json:"status" validate:"omitempty,oneof=planned confirmed completed cancelled"`
	Notes     *string `json:"notes"`
}

type AppointmentResponse struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Duration  int    `json:"duration"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
}
