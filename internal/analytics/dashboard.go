package analytics

import (
	"sort"
	"time"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"

	"github.com/shopspring/decimal"
)

const upcomingLimit = 5

type DeviceUsage struct {
	HearingAidID string `json:"hearingAidId"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Count        int    `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type Dashboard struct {
	TotalPatients        int                       `json:"totalPatients"`
	NewPatientsThisMonth int                       `json:"newPatientsThisMonth"`
	UpcomingAppointments int                       `json:"upcomingAppointments"`
	TotalRevenue         decimal.Decimal           `json:"totalRevenue"`
	AverageSatisfaction  float64                   `json:"averageSatisfaction"`
	DeviceUsage          []DeviceUsage             `json:"deviceUsage"`
	AppointmentsByType   []TypeCount               `json:"appointmentsByType"`
	NextAppointments     []dto.AppointmentResponse `json:"nextAppointments"`
}

var dashboardAppointmentTypes = []string{"bilan", "essai", "reglage", "controle"}

// BuildDashboard computes the home page figures as of now.
func BuildDashboard(ds Dataset, now time.Time) Dashboard {
	loc := now.Location()
	previousMonth := startOfMonth(startOfMonth(now).AddDate(0, -1, 0))
	nextWeek := now.AddDate(0, 0, 7)

	dashboard := Dashboard{
		TotalPatients:       len(ds.Patients),
		TotalRevenue:        decimal.Zero,
		AverageSatisfaction: AverageSatisfaction(ds.PatientDevices),
		DeviceUsage:         []DeviceUsage{},
		AppointmentsByType:  make([]TypeCount, 0, len(dashboardAppointmentTypes)),
		NextAppointments:    []dto.AppointmentResponse{},
	}

	for _, p := range ds.Patients {
		if t, ok := ParseTime(p.CreatedAt, loc); ok && !t.Before(previousMonth) {
			dashboard.NewPatientsThisMonth++
		}
	}

	type upcoming struct {
		at          time.Time
		appointment dto.AppointmentResponse
	}
	var future []upcoming
	for _, a := range ds.Appointments {
		t, ok := ParseTime(a.Date, loc)
		if !ok || !t.After(now) {
			continue
		}
		if t.Before(nextWeek) {
			dashboard.UpcomingAppointments++
		}
		future = append(future, upcoming{at: t, appointment: a})
	}
	sort.SliceStable(future, func(i, j int) bool { return future[i].at.Before(future[j].at) })
	for i := 0; i < len(future) && i < upcomingLimit; i++ {
		dashboard.NextAppointments = append(dashboard.NextAppointments, future[i].appointment)
	}

	for _, inv := range ds.Invoices {
		dashboard.TotalRevenue = dashboard.TotalRevenue.Add(inv.Amount)
	}

	fittings := make(map[string]int)
	for _, d := range ds.PatientDevices {
		fittings[d.HearingAidID]++
	}
	for _, aid := range ds.HearingAids {
		if n := fittings[aid.ID]; n > 0 {
			dashboard.DeviceUsage = append(dashboard.DeviceUsage, DeviceUsage{
				HearingAidID: aid.ID,
				Brand:        aid.Brand,
				Model:        aid.Model,
				Count:        n,
			})
		}
	}

	for _, kind := range dashboardAppointmentTypes {
		count := 0
		for _, a := range ds.Appointments {
			if a.Type == kind {
				count++
			}
		}
		dashboard.AppointmentsByType = append(dashboard.AppointmentsByType, TypeCount{Type: kind, Count: count})
	}

	return dashboard
}

// AverageSatisfaction is the mean of each fitting's latest adjustment score.
// Fittings without adjustments count as 0.
func AverageSatisfaction(devices []dto.PatientDeviceResponse) float64 {
	if len(devices) == 0 {
		return 0
	}
	sum := 0
	for _, d := range devices {
		sum += d.LastSatisfaction()
	}
	return float64(sum) / float64(len(devices))
}
