package client

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is the CRUD endpoint group of one collection.
type Resource[C, U, R any] struct {
	client *Client
	path   string
}

func (r Resource[C, U, R]) Path() string {
	return r.path
}

func (r Resource[C, U, R]) List(ctx context.Context) ([]R, error) {
	var records []R
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []R{}
	}
	return records, nil
}

// Search lists the records matching term. Only searchable collections honour it.
func (r Resource[C, U, R]) Search(ctx context.Context, term string) ([]R, error) {
	var records []R
	if err := r.client.do(ctx, http.MethodGet, r.path+"?q="+url.QueryEscape(term), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r Resource[C, U, R]) Get(ctx context.Context, id string) (*R, error) {
	var record R
	if err := r.client.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r Resource[C, U, R]) Create(ctx context.Context, req C) (*R, error) {
	var record R
	if err := r.client.do(ctx, http.MethodPost, r.path, req, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r Resource[C, U, R]) Update(ctx context.Context, id string, patch U) (*R, error) {
	var record R
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), patch, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r Resource[C, U, R]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Users() Resource[NewUser, UserPatch, User] {
	return Resource[NewUser, UserPatch, User]{client: c, path: "/users"}
}

func (c *Client) Patients() Resource[NewPatient, PatientPatch, Patient] {
	return Resource[NewPatient, PatientPatch, Patient]{client: c, path: "/patients"}
}

func (c *Client) Audiograms() Resource[NewAudiogram, AudiogramPatch, Audiogram] {
	return Resource[NewAudiogram, AudiogramPatch, Audiogram]{client: c, path: "/audiograms"}
}

func (c *Client) HearingAids() Resource[NewHearingAid, HearingAidPatch, HearingAid] {
	return Resource[NewHearingAid, HearingAidPatch, HearingAid]{client: c, path: "/hearing-aids"}
}

func (c *Client) PatientDevices() Resource[NewPatientDevice, PatientDevicePatch, PatientDevice] {
	return Resource[NewPatientDevice, PatientDevicePatch, PatientDevice]{client: c, path: "/patient-devices"}
}

func (c *Client) Appointments() Resource[NewAppointment, AppointmentPatch, Appointment] {
	return Resource[NewAppointment, AppointmentPatch, Appointment]{client: c, path: "/appointments"}
}

func (c *Client) Invoices() Resource[NewInvoice, InvoicePatch, Invoice] {
	return Resource[NewInvoice, InvoicePatch, Invoice]{client: c, path: "/invoices"}
}

func (c *Client) Expenses() Resource[NewExpense, ExpensePatch, Expense] {
	return Resource[NewExpense, ExpensePatch, Expense]{client: c, path: "/expenses"}
}

func (c *Client) StockItems() Resource[NewStockItem, StockItemPatch, StockItem] {
	return Resource[NewStockItem, StockItemPatch, StockItem]{client: c, path: "/stock-items"}
}
