package validator

import "testing"

type appointmentForm struct {
	PatientID string  `json:"patientId" validate:"required"`
	Date      string  `json:"date" validate:"required,isodate"`
	Moved     *string `json:"moved" validate:"omitempty,isodate"`
	Status    string  `json:"status" validate:"omitempty,oneof=planned confirmed"`
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&appointmentForm{Date: "demain", Status: "lost"})
	if err == nil {
		t.Fatalf("invalid form accepted")
	}

	fields := v.FormatValidationErrors(err)
	if fields["patientId"] != "patientId is required" {
		t.Fatalf("patientId message = %q", fields["patientId"])
	}
	if fields["date"] == "" {
		t.Fatalf("date error missing: %v", fields)
	}
	if fields["status"] != "status must be one of: planned confirmed" {
		t.Fatalf("status message = %q", fields["status"])
	}
}

func TestIsoDateTag(t *testing.T) {
	v := NewValidator()
	for _, date := range []string{"2024-05-15", "2024-05-15T10:00", "2024-05-15T10:00:00.000Z", "2024-05-15 10:00:00"} {
		if err := v.Validate(&appointmentForm{PatientID: "1", Date: date}); err != nil {
			t.Fatalf("date %q rejected: %v", date, err)
		}
	}

	bad := "15/05/2024"
	if err := v.Validate(&appointmentForm{PatientID: "1", Date: "2024-05-15", Moved: &bad}); err == nil {
		t.Fatalf("date %q accepted", bad)
	}
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	if got := NewValidator().FormatValidationErrors(nil); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}
