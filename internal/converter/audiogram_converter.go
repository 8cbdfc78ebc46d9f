package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"gorm.io/datatypes"
)

func AudiogramRequestToEntity(req *dto.CreateAudiogramRequest) *entity.Audiogram {
	return &entity.Audiogram{
		ID:        idOrNew(req.ID),
		PatientID: req.PatientID,
		Date:      req.Date,
		Type:      req.Type,
		RightEar:  datatypes.NewJSONType(req.RightEar.Normalize()),
		LeftEar:   datatypes.NewJSONType(req.LeftEar.Normalize()),
		Notes:     req.Notes,
	}
}

func ApplyAudiogramUpdate(audiogram *entity.Audiogram, req *dto.UpdateAudiogramRequest) {
	set(&audiogram.PatientID, req.PatientID)
	set(&audiogram.Date, req.Date)
	set(&audiogram.Type, req.Type)
	set(&audiogram.Notes, req.Notes)
	if req.RightEar != nil {
		audiogram.RightEar = datatypes.NewJSONType(req.RightEar.Normalize())
	}
	if req.LeftEar != nil {
		audiogram.LeftEar = datatypes.NewJSONType(req.LeftEar.Normalize())
	}
}

func AudiogramToResponse(audiogram *entity.Audiogram) *dto.AudiogramResponse {
	if audiogram == nil {
		return nil
	}

	return &dto.AudiogramResponse{
		ID:        audiogram.ID,
		PatientID: audiogram.PatientID,
		Date:      audiogram.Date,
		Type:      audiogram.Type,
		RightEar:  audiogram.RightEar.Data().Normalize(),
		LeftEar:   audiogram.LeftEar.Data().Normalize(),
		Notes:     audiogram.Notes,
	}
}

func AudiogramsToResponses(audiograms []entity.Audiogram) []dto.AudiogramResponse {
	responses := make([]dto.AudiogramResponse, len(audiograms))
	for i := range audiograms {
		responses[i] = *AudiogramToResponse(&audiograms[i])
	}
	return responses
}
