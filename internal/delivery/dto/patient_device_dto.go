package dto

import "github.com/br70-Solution/voxia-app/internal/domain/entity"

type CreatePatientDeviceRequest struct {
	ID            string              `json:"id" validate:"omitempty,max=64"`
	PatientID     string              `json:"patientId" validate:"required"`
	HearingAidID  string              `json:"hearingAidId" validate:"required"`
	Ear           string              `json:"ear" validate:"omitempty,oneof=left right both"`
	DateInstalled string              `json:"dateInstalled"`
	Warranty      string              `json:"warranty"`
	Status        string              `json:"status" validate:"omitempty,oneof=active maintenance replaced"`
	Adjustments   []entity.Adjustment `json:"adjustments" validate:"dive"`
}

type UpdatePatientDeviceRequest struct {
	PatientID     *string              `json:"patientId" validate:"omitempty,min=1"`
	HearingAidID  *string              `json:"hearingAidId" validate:"omitempty,min=1"`
	Ear           *string              `json:"ear" validate:"omitempty,oneof=left right both"`
	DateInstalled *string              `json:"dateInstalled"`
	Warranty      *string              `json:"warranty"`
	Status        *string              `json:"status" validate:"omitempty,oneof=active maintenance replaced"`
	Adjustments   *[]entity.Adjustment `json:"adjustments"`
}

type PatientDeviceResponse struct {
	ID            string              `json:"id"`
	PatientID     string              `json:"patientId"`
	HearingAidID  string              `json:"hearingAidId"`
	Ear           string              `json:"ear"`
	DateInstalled string              `json:"dateInstalled"`
	Warranty      string              `json:"warranty"`
	Status        string              `json:"status"`
	Adjustments   []entity.Adjustment `json:"adjustments"`
}

// LastSatisfaction is the satisfaction of the most recent adjustment, 0 when none.
func (d PatientDeviceResponse) LastSatisfaction() int {
	if len(d.Adjustments) == 0 {
		return 0
	}
	return d.Adjustments[len(d.Adjustments)-1].Satisfaction
}
