package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func PatientDeviceRequestToEntity(req *dto.CreatePatientDeviceRequest) *entity.PatientDevice {
	return &entity.PatientDevice{
		ID:            idOrNew(req.ID),
		PatientID:     req.PatientID,
		HearingAidID:  req.HearingAidID,
		Ear:           req.Ear,
		DateInstalled: req.DateInstalled,
		Warranty:      req.Warranty,
		Status:        req.Status,
		Adjustments:   entity.NormalizeAdjustments(req.Adjustments),
	}
}

func ApplyPatientDeviceUpdate(device *entity.PatientDevice, req *dto.UpdatePatientDeviceRequest) {
	set(&device.PatientID, req.PatientID)
	set(&device.HearingAidID, req.HearingAidID)
	set(&device.Ear, req.Ear)
	set(&device.DateInstalled, req.DateInstalled)
	set(&device.Warranty, req.Warranty)
	set(&device.Status, req.Status)
	if req.Adjustments != nil {
		device.Adjustments = entity.NormalizeAdjustments(*req.Adjustments)
	}
}

func PatientDeviceToResponse(device *entity.PatientDevice) *dto.PatientDeviceResponse {
	if device == nil {
		return nil
	}

	return &dto.PatientDeviceResponse{
		ID:            device.ID,
		PatientID:     device.PatientID,
		HearingAidID:  device.HearingAidID,
		Ear:           device.Ear,
		DateInstalled: device.DateInstalled,
		Warranty:      device.Warranty,
		Status:        device.Status,
		Adjustments:   entity.NormalizeAdjustments(device.Adjustments),
	}
}

func PatientDevicesToResponses(devices []entity.PatientDevice) []dto.PatientDeviceResponse {
	responses := make([]dto.PatientDeviceResponse, len(devices))
	for i := range devices {
		responses[i] = *PatientDeviceToResponse(&devices[i])
	}
	return responses
}
