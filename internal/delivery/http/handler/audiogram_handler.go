package handler

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type AudiogramHandler struct {
	*crudHandler[dto.CreateAudiogramRequest, dto.UpdateAudiogramRequest, dto.AudiogramResponse]
}

func NewAudiogramHandler(audiogramUsecase usecase.AudiogramUsecase, validator *validator.CustomValidator) *AudiogramHandler {
	return &AudiogramHandler{
		crudHandler: &crudHandler[dto.CreateAudiogramRequest, dto.UpdateAudiogramRequest, dto.AudiogramResponse]{
			usecase:   audiogramUsecase,
			validator: validator,
			name:      "Audiogram",
			plural:    "audiograms",
		},
	}
}
