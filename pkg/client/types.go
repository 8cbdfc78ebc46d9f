package client

import (
	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

// Records as the API returns them.
type (
	User          = dto.UserResponse
	Patient       = dto.PatientResponse
	Audiogram     = dto.AudiogramResponse
	HearingAid    = dto.HearingAidResponse
	PatientDevice = dto.PatientDeviceResponse
	Appointment   = dto.AppointmentResponse
	Invoice       = dto.InvoiceResponse
	Expense       = dto.ExpenseResponse
	StockItem     = dto.StockItemResponse
)

// Create payloads. An empty ID is filled in before the record is stored.
type (
	NewUser          = dto.CreateUserRequest
	NewPatient       = dto.CreatePatientRequest
	NewAudiogram     = dto.CreateAudiogramRequest
	NewHearingAid    = dto.CreateHearingAidRequest
	NewPatientDevice = dto.CreatePatientDeviceRequest
	NewAppointment   = dto.CreateAppointmentRequest
	NewInvoice       = dto.CreateInvoiceRequest
	NewExpense       = dto.CreateExpenseRequest
	NewStockItem     = dto.CreateStockItemRequest
)

// Partial updates. Nil fields are left unchanged.
type (
	UserPatch          = dto.UpdateUserRequest
	PatientPatch       = dto.UpdatePatientRequest
	AudiogramPatch     = dto.UpdateAudiogramRequest
	HearingAidPatch    = dto.UpdateHearingAidRequest
	PatientDevicePatch = dto.UpdatePatientDeviceRequest
	AppointmentPatch   = dto.UpdateAppointmentRequest
	InvoicePatch       = dto.UpdateInvoiceRequest
	ExpensePatch       = dto.UpdateExpenseRequest
	StockItemPatch     = dto.UpdateStockItemRequest
)

type (
	AudiometricData     = entity.AudiometricData
	Adjustment          = entity.Adjustment
	InvoiceItem         = entity.InvoiceItem
	LoginRequest        = dto.LoginRequest
	LoginResponse       = dto.LoginResponse
	LogoutRequest       = dto.LogoutRequest
	RefreshTokenRequest = dto.RefreshTokenRequest
	TokenResponse       = dto.TokenResponse
	RestockRequest      = dto.RestockRequest
	SeedRequest         = dto.SeedRequest
	SeedResponse        = dto.SeedResponse
)

type (
	Dataset        = analytics.Dataset
	Dashboard      = analytics.Dashboard
	DeviceUsage    = analytics.DeviceUsage
	TypeCount      = analytics.TypeCount
	Statistics     = analytics.Statistics
	Bucket         = analytics.Bucket
	CategoryTotal  = analytics.CategoryTotal
	Range          = analytics.Range
	StockSummary   = analytics.StockSummary
	InvoiceSummary = analytics.InvoiceSummary
	ExpenseSummary = analytics.ExpenseSummary
)

const (
	RangeDay      = analytics.RangeDay
	RangeWeek     = analytics.RangeWeek
	RangeMonth    = analytics.RangeMonth
	Range6Months  = analytics.Range6Months
	Range12Months = analytics.Range12Months
)

const (
	RoleAdmin            = entity.RoleAdmin
	RoleAudioprothesiste = entity.RoleAudioprothesiste
	RoleAssistant        = entity.RoleAssistant

	AudiogramInitial          = entity.AudiogramInitial
	AudiogramControle         = entity.AudiogramControle
	AudiogramPostAppareillage = entity.AudiogramPostAppareillage

	DeviceActive      = entity.DeviceActive
	DeviceMaintenance = entity.DeviceMaintenance
	DeviceReplaced    = entity.DeviceReplaced

	AppointmentPlanned   = entity.AppointmentPlanned
	AppointmentConfirmed = entity.AppointmentConfirmed
	AppointmentCompleted = entity.AppointmentCompleted
	AppointmentCancelled = entity.AppointmentCancelled

	InvoicePending = entity.InvoicePending
	InvoicePaid    = entity.InvoicePaid
	InvoiceOverdue = entity.InvoiceOverdue

	ExpensePaid      = entity.ExpensePaid
	ExpensePending   = entity.ExpensePending
	ExpenseCancelled = entity.ExpenseCancelled
)
