package handler

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type HearingAidHandler struct {
	*crudHandler[dto.CreateHearingAidRequest, dto.UpdateHearingAidRequest, dto.HearingAidResponse]
}

func NewHearingAidHandler(hearingAidUsecase usecase.HearingAidUsecase, validator *validator.CustomValidator) *HearingAidHandler {
	return &HearingAidHandler{
		crudHandler: &crudHandler[dto.CreateHearingAidRequest, dto.UpdateHearingAidRequest, dto.HearingAidResponse]{
			usecase:   hearingAidUsecase,
			validator: validator,
			name:      "Hearing aid",
			plural:    "hearing aids",
		},
	}
}
