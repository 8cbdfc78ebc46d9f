package client

import (
	"reflect"
	"strings"
	"testing"
)

// exported lists every type the package re-exports.
var exported = []interface{}{
	User{}, Patient{}, Audiogram{}, HearingAid{}, PatientDevice{}, Appointment{}, Invoice{}, Expense{}, StockItem{},
	NewUser{}, NewPatient{}, NewAudiogram{}, NewHearingAid{}, NewPatientDevice{}, NewAppointment{}, NewInvoice{}, NewExpense{}, NewStockItem{},
	UserPatch{}, PatientPatch{}, AudiogramPatch{}, HearingAidPatch{}, PatientDevicePatch{}, AppointmentPatch{}, InvoicePatch{}, ExpensePatch{}, StockItemPatch{},
	AudiometricData{}, Adjustment{}, InvoiceItem{},
	LoginRequest{}, LoginResponse{}, LogoutRequest{}, RefreshTokenRequest{}, TokenResponse{},
	RestockRequest{}, SeedRequest{}, SeedResponse{},
	Dataset{}, Dashboard{}, DeviceUsage{}, TypeCount{}, Statistics{}, Bucket{}, CategoryTotal{}, Range(""),
	StockSummary{}, InvoiceSummary{}, ExpenseSummary{},
}

func TestNestedTypesAreExported(t *testing.T) {
	known := make(map[reflect.Type]bool, len(exported))
	for _, v := range exported {
		known[reflect.TypeOf(v)] = true
	}

	seen := map[reflect.Type]bool{}
	var walk func(typ reflect.Type, path string)
	walk = func(typ reflect.Type, path string) {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			walk(typ.Elem(), path)
			return
		case reflect.Map:
			walk(typ.Key(), path)
			walk(typ.Elem(), path)
			return
		}
		if typ.Name() == "" || seen[typ] {
			return
		}
		seen[typ] = true
		if !strings.Contains(typ.PkgPath(), "/internal/") {
			return
		}
		if !known[typ] {
			t.Errorf("%s: %s has no alias in package client", path, typ)
		}
		if typ.Kind() != reflect.Struct {
			return
		}
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			walk(field.Type, path+"."+field.Name)
		}
	}

	for _, v := range exported {
		typ := reflect.TypeOf(v)
		walk(typ, typ.Name())
	}
}
