package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Patient not found"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Patients().Get(t.Context(), "42")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("want *APIError, got %v", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Patient not found" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestBearerTokenIsSent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	records, err := New(srv.URL, WithToken("abc")).Expenses().List(t.Context())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("want an empty list, got %v", records)
	}
	if got != "Bearer abc" {
		t.Fatalf("authorization header %q", got)
	}
}

func TestMergePatchKeepsUnsetFields(t *testing.T) {
	phone := "0600"
	merged, err := mergePatch(Patient{ID: "1", FirstName: "Jean", Phone: "0100", Age: 60}, PatientPatch{Phone: &phone})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if merged.Phone != "0600" || merged.FirstName != "Jean" || merged.Age != 60 || merged.ID != "1" {
		t.Fatalf("merged = %+v", merged)
	}
}
