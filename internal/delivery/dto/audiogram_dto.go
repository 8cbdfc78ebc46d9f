package dto

import "github.com/br70-Solution/voxia-app/internal/domain/entity"

type CreateAudiogramRequest struct {
	ID        string                 `json:"id" validate:"omitempty,max=64"`
	PatientID string                 `json:"patientId" validate:"required"`
	Date      string                 `json:"date" validate:"required,isodate"`
	Type      string                 `json:"type" validate:"required,oneof=initial controle post-appareillage"`
	RightEar  entity.AudiometricData `json:"rightEar"`
	LeftEar   entity.AudiometricData `json:"leftEar"`
	Notes     string                 `json:"notes"`
}

type UpdateAudiogramRequest struct {
	PatientID *string                 `json:"patientId" validate:"omitempty,min=1"`
	Date      *string                 `json:"date" validate:"omitempty,isodate"`
	Type      *string                 `json:"type" validate:"omitempty,oneof=initial controle post-appareillage"`
	RightEar  *entity.AudiometricData `json:"rightEar"`
	LeftEar   *entity.AudiometricData `json:"leftEar"`
	Notes     *string                 `json:"notes"`
}

type AudiogramResponse struct {
	ID        string                 `json:"id"`
	PatientID string                 `json:"patientId"`
	Date      string                 `json:"date"`
	Type      string                 `json:"type"`
	RightEar  entity.AudiometricData `json:"rightEar"`
	LeftEar   entity.AudiometricData `json:"leftEar"`
	Notes     string                 `json:"notes"`
}
