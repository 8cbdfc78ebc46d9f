// Package analytics derives the dashboard, statistics and summary read models
// from the nine clinic collections. Every function is pure: callers pass the
// collections and the reference time.
package analytics

import (
	"strings"
	"time"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
)

// Dataset is a snapshot of every collection.
type Dataset struct {
	Users          []dto.UserResponse          `json:"users"`
	Patients       []dto.PatientResponse       `json:"patients"`
	Audiograms     []dto.AudiogramResponse     `json:"audiograms"`
	HearingAids    []dto.HearingAidResponse    `json:"hearingAids"`
	PatientDevices []dto.PatientDeviceResponse `json:"patientDevices"`
	Appointments   []dto.AppointmentResponse   `json:"appointments"`
	Invoices       []dto.InvoiceResponse       `json:"invoices"`
	Expenses       []dto.ExpenseResponse       `json:"expenses"`
	StockItems     []dto.StockItemResponse     `json:"stockItems"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime reads the date formats found in stored records. Values without a
// zone are read in loc. The boolean is false when nothing matched.
func ParseTime(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		var (
			t   time.Time
			err error
		)
		if strings.Contains(layout, "Z07") {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, loc)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func within(value string, start, end time.Time) bool {
	t, ok := ParseTime(value, start.Location())
	if !ok {
		return false
	}
	return !t.Before(start) && !t.After(end)
}
