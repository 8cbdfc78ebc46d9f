package dto

// SeedRequest carries the groups to replace. A nil group is left untouched,
// an empty one clears its table.
type SeedRequest struct {
	Users          []CreateUserRequest          `json:"users"`
	Patients       []CreatePatientRequest       `json:"patients"`
	Audiograms     []CreateAudiogramRequest     `json:"audiograms"`
	HearingAids    []CreateHearingAidRequest    `json:"hearingAids"`
	PatientDevices []CreatePatientDeviceRequest `json:"patientDevices"`
	Appointments   []CreateAppointmentRequest   `json:"appointments"`
	Invoices       []CreateInvoiceRequest       `json:"invoices"`
	Expenses       []CreateExpenseRequest       `json:"expenses"`
	StockItems     []CreateStockItemRequest     `json:"stockItems"`
}

// SeedResponse reports how many rows each replaced group now holds.
type SeedResponse struct {
	Replaced map[string]int `json:"replaced"`
}
