package client

import (
	"encoding/json"
	"slices"

	"github.com/br70-Solution/voxia-app/internal/converter"
)

// collection describes how the Store keeps and syncs one kind of record.
type collection[C, U, R any] struct {
	path  string
	slot  func(*Dataset) *[]R
	id    func(*R) string
	build func(*C) R
	// clone copies the nested slices of a record. Nil when R has none.
	clone func(R) R
}

func (c collection[C, U, R]) copyOf(r R) R {
	if c.clone == nil {
		return r
	}
	return c.clone(r)
}

func (c collection[C, U, R]) copyAll(records []R) []R {
	if records == nil {
		return nil
	}
	out := make([]R, len(records))
	for i := range records {
		out[i] = c.copyOf(records[i])
	}
	return out
}

func buildUser(req *NewUser) User {
	return *converter.UserToResponse(converter.UserRequestToEntity(req))
}

func buildPatient(req *NewPatient) Patient {
	return *converter.PatientToResponse(converter.PatientRequestToEntity(req))
}

func buildAudiogram(req *NewAudiogram) Audiogram {
	return *converter.AudiogramToResponse(converter.AudiogramRequestToEntity(req))
}

func buildHearingAid(req *NewHearingAid) HearingAid {
	return *converter.HearingAidToResponse(converter.HearingAidRequestToEntity(req))
}

func buildPatientDevice(req *NewPatientDevice) PatientDevice {
	return *converter.PatientDeviceToResponse(converter.PatientDeviceRequestToEntity(req))
}

func buildAppointment(req *NewAppointment) Appointment {
	return *converter.AppointmentToResponse(converter.AppointmentRequestToEntity(req))
}

func buildInvoice(req *NewInvoice) Invoice {
	return *converter.InvoiceToResponse(converter.InvoiceRequestToEntity(req))
}

func buildExpense(req *NewExpense) Expense {
	return *converter.ExpenseToResponse(converter.ExpenseRequestToEntity(req))
}

func buildStockItem(req *NewStockItem) StockItem {
	return *converter.StockItemToResponse(converter.StockItemRequestToEntity(req))
}

func cloneAudiometricData(d AudiometricData) AudiometricData {
	return AudiometricData{
		Frequencies:    slices.Clone(d.Frequencies),
		AirConduction:  slices.Clone(d.AirConduction),
		BoneConduction: slices.Clone(d.BoneConduction),
	}
}

func cloneAudiogram(r Audiogram) Audiogram {
	r.RightEar = cloneAudiometricData(r.RightEar)
	r.LeftEar = cloneAudiometricData(r.LeftEar)
	return r
}

func cloneHearingAid(r HearingAid) HearingAid {
	r.Features = slices.Clone(r.Features)
	return r
}

func clonePatientDevice(r PatientDevice) PatientDevice {
	if r.Adjustments == nil {
		return r
	}
	adjustments := make([]Adjustment, len(r.Adjustments))
	for i, a := range r.Adjustments {
		a.Issues = slices.Clone(a.Issues)
		adjustments[i] = a
	}
	r.Adjustments = adjustments
	return r
}

func cloneInvoice(r Invoice) Invoice {
	r.Items = slices.Clone(r.Items)
	return r
}

var (
	userCollection = collection[NewUser, UserPatch, User]{
		path:  "/users",
		slot:  func(d *Dataset) *[]User { return &d.Users },
		id:    func(r *User) string { return r.ID },
		build: buildUser,
	}
	patientCollection = collection[NewPatient, PatientPatch, Patient]{
		path:  "/patients",
		slot:  func(d *Dataset) *[]Patient { return &d.Patients },
		id:    func(r *Patient) string { return r.ID },
		build: buildPatient,
	}
	audiogramCollection = collection[NewAudiogram, AudiogramPatch, Audiogram]{
		path:  "/audiograms",
		slot:  func(d *Dataset) *[]Audiogram { return &d.Audiograms },
		id:    func(r *Audiogram) string { return r.ID },
		build: buildAudiogram,
		clone: cloneAudiogram,
	}
	hearingAidCollection = collection[NewHearingAid, HearingAidPatch, HearingAid]{
		path:  "/hearing-aids",
		slot:  func(d *Dataset) *[]HearingAid { return &d.HearingAids },
		id:    func(r *HearingAid) string { return r.ID },
		build: buildHearingAid,
		clone: cloneHearingAid,
	}
	patientDeviceCollection = collection[NewPatientDevice, PatientDevicePatch, PatientDevice]{
		path:  "/patient-devices",
		slot:  func(d *Dataset) *[]PatientDevice { return &d.PatientDevices },
		id:    func(r *PatientDevice) string { return r.ID },
		build: buildPatientDevice,
		clone: clonePatientDevice,
	}
	appointmentCollection = collection[NewAppointment, AppointmentPatch, Appointment]{
		path:  "/appointments",
		slot:  func(d *Dataset) *[]Appointment { return &d.Appointments },
		id:    func(r *Appointment) string { return r.ID },
		build: buildAppointment,
	}
	invoiceCollection = collection[NewInvoice, InvoicePatch, Invoice]{
		path:  "/invoices",
		slot:  func(d *Dataset) *[]Invoice { return &d.Invoices },
		id:    func(r *Invoice) string { return r.ID },
		build: buildInvoice,
		clone: cloneInvoice,
	}
	expenseCollection = collection[NewExpense, ExpensePatch, Expense]{
		path:  "/expenses",
		slot:  func(d *Dataset) *[]Expense { return &d.Expenses },
		id:    func(r *Expense) string { return r.ID },
		build: buildExpense,
	}
	stockItemCollection = collection[NewStockItem, StockItemPatch, StockItem]{
		path:  "/stock-items",
		slot:  func(d *Dataset) *[]StockItem { return &d.StockItems },
		id:    func(r *StockItem) string { return r.ID },
		build: buildStockItem,
	}
)

func buildAll[C, R any](reqs []C, build func(*C) R) []R {
	records := make([]R, len(reqs))
	for i := range reqs {
		records[i] = build(&reqs[i])
	}
	return records
}

func datasetFromSeed(req *SeedRequest) Dataset {
	return Dataset{
		Users:          buildAll(req.Users, buildUser),
		Patients:       buildAll(req.Patients, buildPatient),
		Audiograms:     buildAll(req.Audiograms, buildAudiogram),
		HearingAids:    buildAll(req.HearingAids, buildHearingAid),
		PatientDevices: buildAll(req.PatientDevices, buildPatientDevice),
		Appointments:   buildAll(req.Appointments, buildAppointment),
		Invoices:       buildAll(req.Invoices, buildInvoice),
		Expenses:       buildAll(req.Expenses, buildExpense),
		StockItems:     buildAll(req.StockItems, buildStockItem),
	}
}

// stampAll overlays each built record onto its request, so the request
// carries the generated id and defaults.
func stampAll[C, R any](reqs []C, records []R) ([]C, error) {
	if reqs == nil {
		return nil, nil
	}
	out := make([]C, len(reqs))
	for i := range reqs {
		stamped, err := mergePatch(reqs[i], records[i])
		if err != nil {
			return nil, err
		}
		out[i] = stamped
	}
	return out, nil
}

// stampSeed copies req with the ids the Store generated, so the server
// stores the same records.
func stampSeed(req *SeedRequest, ds Dataset) (*SeedRequest, error) {
	out := &SeedRequest{}
	steps := []func() error{
		func() (err error) { out.Users, err = stampAll(req.Users, ds.Users); return },
		func() (err error) { out.Patients, err = stampAll(req.Patients, ds.Patients); return },
		func() (err error) { out.Audiograms, err = stampAll(req.Audiograms, ds.Audiograms); return },
		func() (err error) { out.HearingAids, err = stampAll(req.HearingAids, ds.HearingAids); return },
		func() (err error) { out.PatientDevices, err = stampAll(req.PatientDevices, ds.PatientDevices); return },
		func() (err error) { out.Appointments, err = stampAll(req.Appointments, ds.Appointments); return },
		func() (err error) { out.Invoices, err = stampAll(req.Invoices, ds.Invoices); return },
		func() (err error) { out.Expenses, err = stampAll(req.Expenses, ds.Expenses); return },
		func() (err error) { out.StockItems, err = stampAll(req.StockItems, ds.StockItems); return },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// cloneDataset copies every collection down to the nested slices.
func cloneDataset(ds Dataset) Dataset {
	return Dataset{
		Users:          userCollection.copyAll(ds.Users),
		Patients:       patientCollection.copyAll(ds.Patients),
		Audiograms:     audiogramCollection.copyAll(ds.Audiograms),
		HearingAids:    hearingAidCollection.copyAll(ds.HearingAids),
		PatientDevices: patientDeviceCollection.copyAll(ds.PatientDevices),
		Appointments:   appointmentCollection.copyAll(ds.Appointments),
		Invoices:       invoiceCollection.copyAll(ds.Invoices),
		Expenses:       expenseCollection.copyAll(ds.Expenses),
		StockItems:     stockItemCollection.copyAll(ds.StockItems),
	}
}

// mergePatch overlays the non-null fields of patch onto current.
func mergePatch[R any](current R, patch interface{}) (R, error) {
	var merged R

	fields, err := jsonFields(current)
	if err != nil {
		return merged, err
	}
	changes, err := jsonFields(patch)
	if err != nil {
		return merged, err
	}
	for key, value := range changes {
		if string(value) == "null" {
			continue
		}
		fields[key] = value
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return merged, err
	}
	err = json.Unmarshal(raw, &merged)
	return merged, err
}

func jsonFields(v interface{}) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
