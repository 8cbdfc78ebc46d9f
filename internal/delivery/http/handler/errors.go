package handler

import (
	"errors"
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
)

var notFoundErrors = []error{
	usecase.ErrUserNotFound,
	usecase.ErrPatientNotFound,
	usecase.ErrAudiogramNotFound,
	usecase.ErrHearingAidNotFound,
	usecase.ErrPatientDeviceNotFound,
	usecase.ErrAppointmentNotFound,
	usecase.ErrInvoiceNotFound,
	usecase.ErrExpenseNotFound,
	usecase.ErrStockItemNotFound,
}

func isNotFound(err error) bool {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// writeUsecaseError maps a usecase error to its status code. fallback is the
// message for unexpected failures.
func writeUsecaseError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case isNotFound(err):
		response.NotFound(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrDuplicateKey):
		response.Conflict(w, capitalize(err.Error()))
	case errors.Is(err, usecase.ErrMissingParent):
		response.BadRequest(w, capitalize(err.Error()))
	default:
		response.InternalServerError(w, fallback)
	}
}

func capitalize(message string) string {
	if message == "" {
		return message
	}
	first := message[0]
	if first >= 'a' && first <= 'z' {
		first -= 'a' - 'A'
	}
	return string(first) + message[1:]
}
