package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func HearingAidRequestToEntity(req *dto.CreateHearingAidRequest) *entity.HearingAid {
	return &entity.HearingAid{
		ID:         idOrNew(req.ID),
		Brand:      req.Brand,
		Model:      req.Model,
		Technology: req.Technology,
		Type:       req.Type,
		Price:      req.Price,
		Features:   stringsOrEmpty(req.Features),
		Image:      req.Image,
	}
}

func ApplyHearingAidUpdate(aid *entity.HearingAid, req *dto.UpdateHearingAidRequest) {
	set(&aid.Brand, req.Brand)
	set(&aid.Model, req.Model)
	set(&aid.Technology, req.Technology)
	set(&aid.Type, req.Type)
	set(&aid.Price, req.Price)
	set(&aid.Image, req.Image)
	if req.Features != nil {
		aid.Features = stringsOrEmpty(*req.Features)
	}
}

func HearingAidToResponse(aid *entity.HearingAid) *dto.HearingAidResponse {
	if aid == nil {
		return nil
	}

	return &dto.HearingAidResponse{
		ID:         aid.ID,
		Brand:      aid.Brand,
		Model:      aid.Model,
		Technology: aid.Technology,
		Type:       aid.Type,
		Price:      aid.Price,
		Features:   stringsOrEmpty(aid.Features),
		Image:      aid.Image,
	}
}

func HearingAidsToResponses(aids []entity.HearingAid) []dto.HearingAidResponse {
	responses := make([]dto.HearingAidResponse, len(aids))
	for i := range aids {
		responses[i] = *HearingAidToResponse(&aids[i])
	}
	return responses
}
