package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/br70-Solution/voxia-app/config"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/fixtures"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/cache"
	"github.com/br70-Solution/voxia-app/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testAPI struct {
	t         *testing.T
	container *Container
	token     string
}

func newTestAPI(t *testing.T, authEnabled bool) *testAPI {
	t.Helper()

	cfg := &config.Config{
		App:   config.AppConfig{Env: "test", CORSOrigin: "*"},
		DB:    config.DBConfig{Driver: database.DriverSQLite, Path: ":memory:"},
		Redis: config.RedisConfig{CacheTTL: time.Minute},
		JWT: config.JWTConfig{
			Secret:        "test-secret",
			AccessExpiry:  15 * time.Minute,
			RefreshExpiry: time.Hour,
		},
		Auth: config.AuthConfig{Enabled: authEnabled, BcryptCost: bcrypt.MinCost},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.NewConnection(cfg.DB, log, false)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	if err := database.Migrate(db, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &testAPI{
		t:         t,
		container: NewContainer(cfg, db, log, cache.NewMemory(), cache.NewMemory()),
	}
}

func (a *testAPI) seedDemo() {
	a.t.Helper()
	if _, err := a.container.Seed.Seed(a.t.Context(), fixtures.Demo(time.Now())); err != nil {
		a.t.Fatalf("seed demo data: %v", err)
	}
}

func (a *testAPI) raw(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	rec := httptest.NewRecorder()
	a.container.Handler.ServeHTTP(rec, req)
	return rec
}

// call sends the request, checks the status and decodes data into out.
func (a *testAPI) call(method, path string, body interface{}, wantStatus int, out interface{}) {
	a.t.Helper()

	rec := a.raw(method, path, body)
	if rec.Code != wantStatus {
		a.t.Fatalf("%s %s: status %d, want %d (body %s)", method, path, rec.Code, wantStatus, rec.Body.String())
	}
	if out == nil {
		return
	}

	var resp apiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		a.t.Fatalf("%s %s: decode envelope: %v", method, path, err)
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		a.t.Fatalf("%s %s: decode data: %v", method, path, err)
	}
}

func (a *testAPI) login(email, password string) map[string]interface{} {
	a.t.Helper()

	var login map[string]interface{}
	a.call(http.MethodPost, "/api/login", map[string]string{"email": email, "password": password}, http.StatusOK, &login)
	token, _ := login["accessToken"].(string)
	if token == "" {
		a.t.Fatalf("login returned no access token")
	}
	a.token = token
	return login
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t, true)
	rec := api.raw(http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("health status %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestPatientRoundTrip(t *testing.T) {
	api := newTestAPI(t, false)

	patient := map[string]interface{}{
		"id":        "p1",
		"firstName": "Jean",
		"lastName":  "Dupont",
		"age":       67,
		"gender":    "M",
		"phone":     "0611",
	}
	var created map[string]interface{}
	api.call(http.MethodPost, "/api/patients", patient, http.StatusOK, &created)
	if created["id"] != "p1" || created["firstName"] != "Jean" {
		t.Fatalf("unexpected created patient: %v", created)
	}
	if created["createdAt"] == "" {
		t.Fatalf("createdAt not filled in")
	}

	var all []map[string]interface{}
	api.call(http.MethodGet, "/api/patients", nil, http.StatusOK, &all)
	if len(all) != 1 || all[0]["lastName"] != "Dupont" {
		t.Fatalf("unexpected patient list: %v", all)
	}

	var updated map[string]interface{}
	api.call(http.MethodPut, "/api/patients/p1", map[string]string{"phone": "0622"}, http.StatusOK, &updated)
	if updated["phone"] != "0622" {
		t.Fatalf("phone not updated: %v", updated)
	}
	if updated["firstName"] != "Jean" || updated["age"] != float64(67) {
		t.Fatalf("partial update changed other fields: %v", updated)
	}

	var fetched map[string]interface{}
	api.call(http.MethodGet, "/api/patients/p1", nil, http.StatusOK, &fetched)
	if fetched["phone"] != "0622" {
		t.Fatalf("stored phone = %v", fetched["phone"])
	}

	api.call(http.MethodDelete, "/api/patients/p1", nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/patients/p1", nil, http.StatusNotFound, nil)
	api.call(http.MethodDelete, "/api/patients/p1", nil, http.StatusNotFound, nil)
	api.call(http.MethodPut, "/api/patients/p1", map[string]string{"phone": "0"}, http.StatusNotFound, nil)
}

func invoiceLines(t *testing.T, raw json.RawMessage) interface{} {
	var invoice dto.InvoiceResponse
	if err := json.Unmarshal(raw, &invoice); err != nil {
		t.Fatalf("decode invoice: %v", err)
	}
	lines := []string{"amount " + invoice.Amount.StringFixed(2)}
	for _, item := range invoice.Items {
		lines = append(lines, fmt.Sprintf("%s x%d @%s = %s", item.Description, item.Quantity, item.UnitPrice.StringFixed(2), item.Total.StringFixed(2)))
	}
	return lines
}

func TestNestedFieldsRoundTrip(t *testing.T) {
	api := newTestAPI(t, false)

	api.call(http.MethodPost, "/api/patients", map[string]interface{}{"id": "p1", "firstName": "Jean", "lastName": "Dupont"}, http.StatusOK, nil)
	api.call(http.MethodPost, "/api/hearing-aids", map[string]interface{}{"id": "h0", "brand": "Oticon", "model": "Real 1"}, http.StatusOK, nil)

	leftBefore := entity.AudiometricData{Frequencies: []int{500, 1000, 2000}, AirConduction: []float64{15, 20, 35}, BoneConduction: []float64{10, 15, 30}}
	leftAfter := entity.AudiometricData{Frequencies: []int{500, 1000}, AirConduction: []float64{25, 30}, BoneConduction: []float64{}}
	right := entity.AudiometricData{Frequencies: []int{250, 500, 1000}, AirConduction: []float64{20, 25.5, 30}, BoneConduction: []float64{10, 15, 20}}

	tests := []struct {
		name        string
		path        string
		create      map[string]interface{}
		update      map[string]interface{}
		nested      func(t *testing.T, raw json.RawMessage) interface{}
		wantCreated interface{}
		wantUpdated interface{}
	}{
		{
			name: "hearing aid features",
			path: "/api/hearing-aids",
			create: map[string]interface{}{
				"id": "h1", "brand": "Phonak", "model": "Lumity", "type": "RIC", "technology": "premium",
				"price": 1900, "features": []string{"Bluetooth", "Rechargeable"},
			},
			update: map[string]interface{}{"features": []string{"Bluetooth", "IA Vocal", "Étanche"}},
			nested: func(t *testing.T, raw json.RawMessage) interface{} {
				var aid dto.HearingAidResponse
				if err := json.Unmarshal(raw, &aid); err != nil {
					t.Fatalf("decode hearing aid: %v", err)
				}
				return []interface{}{aid.Brand, aid.Features}
			},
			wantCreated: []interface{}{"Phonak", []string{"Bluetooth", "Rechargeable"}},
			wantUpdated: []interface{}{"Phonak", []string{"Bluetooth", "IA Vocal", "Étanche"}},
		},
		{
			name: "audiogram thresholds",
			path: "/api/audiograms",
			create: map[string]interface{}{
				"id": "a1", "patientId": "p1", "date": "2025-01-10", "type": "initial",
				"rightEar": right, "leftEar": leftBefore,
			},
			update: map[string]interface{}{"leftEar": leftAfter},
			nested: func(t *testing.T, raw json.RawMessage) interface{} {
				var audiogram dto.AudiogramResponse
				if err := json.Unmarshal(raw, &audiogram); err != nil {
					t.Fatalf("decode audiogram: %v", err)
				}
				return []entity.AudiometricData{audiogram.RightEar, audiogram.LeftEar}
			},
			wantCreated: []entity.AudiometricData{right, leftBefore},
			wantUpdated: []entity.AudiometricData{right, leftAfter},
		},
		{
			name: "fitting adjustments",
			path: "/api/patient-devices",
			create: map[string]interface{}{
				"id": "d1", "patientId": "p1", "hearingAidId": "h0", "ear": "both", "status": "active",
				"adjustments": []entity.Adjustment{
					{ID: "1", Date: "2025-01-10", Notes: "Premier réglage", Satisfaction: 3, Issues: []string{"Larsen", "Son métallique"}},
				},
			},
			update: map[string]interface{}{
				"adjustments": []entity.Adjustment{
					{ID: "1", Date: "2025-01-10", Notes: "Premier réglage", Satisfaction: 3, Issues: []string{"Larsen", "Son métallique"}},
					{ID: "2", Date: "2025-02-10", Notes: "Gain aigus -2 dB", Satisfaction: 5, Issues: []string{}},
				},
			},
			nested: func(t *testing.T, raw json.RawMessage) interface{} {
				var device dto.PatientDeviceResponse
				if err := json.Unmarshal(raw, &device); err != nil {
					t.Fatalf("decode fitting: %v", err)
				}
				return []interface{}{device.Ear, device.Adjustments}
			},
			wantCreated: []interface{}{"both", []entity.Adjustment{
				{ID: "1", Date: "2025-01-10", Notes: "Premier réglage", Satisfaction: 3, Issues: []string{"Larsen", "Son métallique"}},
			}},
			wantUpdated: []interface{}{"both", []entity.Adjustment{
				{ID: "1", Date: "2025-01-10", Notes: "Premier réglage", Satisfaction: 3, Issues: []string{"Larsen", "Son métallique"}},
				{ID: "2", Date: "2025-02-10", Notes: "Gain aigus -2 dB", Satisfaction: 5, Issues: []string{}},
			}},
		},
		{
			name: "invoice items",
			path: "/api/invoices",
			create: map[string]interface{}{
				"id": "i1", "patientId": "p1", "date": "2025-01-10", "status": "pending",
				"items": []map[string]interface{}{
					{"description": "Phonak Lumity", "quantity": 2, "unitPrice": 1900, "total": 3800},
					{"description": "Piles 312", "quantity": 1, "unitPrice": 6.5, "total": 6.5},
				},
			},
			update: map[string]interface{}{
				"items": []map[string]interface{}{
					{"description": "Chargeur", "quantity": 1, "unitPrice": 49.5, "total": 49.5},
				},
			},
			nested:      invoiceLines,
			wantCreated: []string{"amount 3806.50", "Phonak Lumity x2 @1900.00 = 3800.00", "Piles 312 x1 @6.50 = 6.50"},
			wantUpdated: []string{"amount 49.50", "Chargeur x1 @49.50 = 49.50"},
		},
	}

	for _, tt := range tests {
		id, _ := tt.create["id"].(string)
		item := tt.path + "/" + id

		var created json.RawMessage
		api.call(http.MethodPost, tt.path, tt.create, http.StatusOK, &created)
		if got := tt.nested(t, created); !reflect.DeepEqual(got, tt.wantCreated) {
			t.Fatalf("%s: created %v, want %v", tt.name, got, tt.wantCreated)
		}

		var fetched json.RawMessage
		api.call(http.MethodGet, item, nil, http.StatusOK, &fetched)
		if got := tt.nested(t, fetched); !reflect.DeepEqual(got, tt.wantCreated) {
			t.Fatalf("%s: stored %v, want %v", tt.name, got, tt.wantCreated)
		}

		var updated json.RawMessage
		api.call(http.MethodPut, item, tt.update, http.StatusOK, &updated)
		if got := tt.nested(t, updated); !reflect.DeepEqual(got, tt.wantUpdated) {
			t.Fatalf("%s: updated %v, want %v", tt.name, got, tt.wantUpdated)
		}

		var listed []json.RawMessage
		api.call(http.MethodGet, tt.path, nil, http.StatusOK, &listed)
		found := false
		for _, raw := range listed {
			var ref struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(raw, &ref); err != nil {
				t.Fatalf("%s: decode list entry: %v", tt.name, err)
			}
			if ref.ID != id {
				continue
			}
			found = true
			if got := tt.nested(t, raw); !reflect.DeepEqual(got, tt.wantUpdated) {
				t.Fatalf("%s: listed %v, want %v", tt.name, got, tt.wantUpdated)
			}
		}
		if !found {
			t.Fatalf("%s: %s missing from the list", tt.name, id)
		}
	}
}

func TestCreateGeneratesID(t *testing.T) {
	api := newTestAPI(t, false)

	var created map[string]interface{}
	api.call(http.MethodPost, "/api/expenses", map[string]interface{}{
		"date":     "2025-01-10",
		"category": "loyer",
		"amount":   1500,
	}, http.StatusOK, &created)

	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("no id generated: %v", created)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	api := newTestAPI(t, false)

	api.call(http.MethodPost, "/api/patients", map[string]string{"firstName": "Jean"}, http.StatusBadRequest, nil)
	api.call(http.MethodPost, "/api/hearing-aids", map[string]string{"brand": "Phonak", "model": "X", "type": "XYZ"}, http.StatusBadRequest, nil)
	api.call(http.MethodPost, "/api/expenses", map[string]interface{}{
		"date":     "15/01/2025",
		"category": "loyer",
		"amount":   100,
	}, http.StatusBadRequest, nil)
}

func TestChildOfUnknownPatientIsRejected(t *testing.T) {
	api := newTestAPI(t, false)

	api.call(http.MethodPost, "/api/appointments", map[string]interface{}{
		"patientId": "missing",
		"date":      "2025-01-10T10:00",
		"duration":  30,
	}, http.StatusBadRequest, nil)
}

func TestDuplicateUserEmailConflicts(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	api.call(http.MethodPost, "/api/users", map[string]string{
		"name":     "Copy",
		"email":    "admin@audiocare.fr",
		"password": "secret",
		"role":     "assistant",
	}, http.StatusConflict, nil)
}

func TestDeletePatientCascades(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	// Fill the list cache first so the delete has to invalidate it.
	var audiograms []map[string]interface{}
	api.call(http.MethodGet, "/api/audiograms", nil, http.StatusOK, &audiograms)
	if len(audiograms) != 2 {
		t.Fatalf("want 2 demo audiograms, got %d", len(audiograms))
	}

	api.call(http.MethodDelete, "/api/patients/1", nil, http.StatusOK, nil)

	api.call(http.MethodGet, "/api/audiograms", nil, http.StatusOK, &audiograms)
	for _, a := range audiograms {
		if a["patientId"] == "1" {
			t.Fatalf("audiogram %v survived its patient", a["id"])
		}
	}

	var invoices []map[string]interface{}
	api.call(http.MethodGet, "/api/invoices", nil, http.StatusOK, &invoices)
	for _, inv := range invoices {
		if inv["patientId"] == "1" {
			t.Fatalf("invoice %v survived its patient", inv["id"])
		}
	}

	var devices []map[string]interface{}
	api.call(http.MethodGet, "/api/patient-devices", nil, http.StatusOK, &devices)
	if len(devices) != 0 {
		t.Fatalf("fittings of patient 1 survived: %v", devices)
	}
}

func TestDeleteHearingAidCascadesToFittings(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	api.call(http.MethodDelete, "/api/hearing-aids/1", nil, http.StatusOK, nil)

	var devices []map[string]interface{}
	api.call(http.MethodGet, "/api/patient-devices", nil, http.StatusOK, &devices)
	if len(devices) != 0 {
		t.Fatalf("fittings of hearing aid 1 survived: %v", devices)
	}
}

func TestLoginUpdatesLastLogin(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	before := time.Now().Add(-time.Second)
	login := api.login("admin@audiocare.fr", fixtures.DemoPassword)

	if _, ok := login["password"]; ok {
		t.Fatalf("login response exposes the password")
	}
	stamp, _ := login["lastLogin"].(string)
	at, err := time.Parse(time.RFC3339Nano, stamp)
	if err != nil {
		t.Fatalf("lastLogin %q: %v", stamp, err)
	}
	if at.Before(before) {
		t.Fatalf("lastLogin %v not updated to the call time", at)
	}

	api.call(http.MethodPost, "/api/login", map[string]string{"email": "admin@audiocare.fr", "password": "wrong"}, http.StatusUnauthorized, nil)
	api.call(http.MethodPost, "/api/login", map[string]string{"email": "nobody@audiocare.fr", "password": "wrong"}, http.StatusUnauthorized, nil)

	var user map[string]interface{}
	api.call(http.MethodGet, "/api/users/1", nil, http.StatusOK, &user)
	if user["lastLogin"] != stamp {
		t.Fatalf("failed login changed lastLogin: %v, want %v", user["lastLogin"], stamp)
	}
	if _, ok := user["password"]; ok {
		t.Fatalf("user response exposes the password")
	}
}

func TestSeedReplacesOnlyPresentGroups(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	var result struct {
		Replaced map[string]int `json:"replaced"`
	}
	api.call(http.MethodPost, "/api/seed", map[string]interface{}{
		"stockItems": []interface{}{},
		"expenses": []map[string]interface{}{
			{"id": "e1", "date": "2025-01-01", "category": "loyer", "amount": 100},
		},
	}, http.StatusOK, &result)
	if result.Replaced["stock-items"] != 0 || result.Replaced["expenses"] != 1 {
		t.Fatalf("unexpected replaced counts: %v", result.Replaced)
	}
	if _, ok := result.Replaced["patients"]; ok {
		t.Fatalf("patients reported as replaced")
	}

	var stock, expenses, patients []map[string]interface{}
	api.call(http.MethodGet, "/api/stock-items", nil, http.StatusOK, &stock)
	api.call(http.MethodGet, "/api/expenses", nil, http.StatusOK, &expenses)
	api.call(http.MethodGet, "/api/patients", nil, http.StatusOK, &patients)

	if len(stock) != 0 {
		t.Fatalf("stock not cleared: %d items", len(stock))
	}
	if len(expenses) != 1 || expenses[0]["id"] != "e1" {
		t.Fatalf("expenses not replaced: %v", expenses)
	}
	if len(patients) != 5 {
		t.Fatalf("absent group touched: %d patients", len(patients))
	}
}

func TestSeedIsAllOrNothing(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	// The appointment references a patient the payload does not contain.
	api.call(http.MethodPost, "/api/seed", map[string]interface{}{
		"expenses":     []interface{}{},
		"appointments": []map[string]interface{}{{"id": "a1", "patientId": "ghost", "date": "2025-01-01"}},
	}, http.StatusBadRequest, nil)

	var expenses []map[string]interface{}
	api.call(http.MethodGet, "/api/expenses", nil, http.StatusOK, &expenses)
	if len(expenses) != 8 {
		t.Fatalf("failed seed changed expenses: %d left", len(expenses))
	}
}

func TestSeedIfEmptyRunsOnce(t *testing.T) {
	api := newTestAPI(t, false)

	seeded, err := api.container.Seed.SeedIfEmpty(t.Context(), fixtures.Demo(time.Now()))
	if err != nil || !seeded {
		t.Fatalf("first SeedIfEmpty = %v, %v", seeded, err)
	}
	seeded, err = api.container.Seed.SeedIfEmpty(t.Context(), fixtures.Demo(time.Now()))
	if err != nil || seeded {
		t.Fatalf("second SeedIfEmpty = %v, %v", seeded, err)
	}
}

func TestRestock(t *testing.T) {
	api := newTestAPI(t, false)

	api.call(http.MethodPost, "/api/stock-items", map[string]interface{}{
		"id":            "s1",
		"name":          "Pile 312",
		"category":      "piles",
		"sku":           "PIL-312",
		"brand":         "Rayovac",
		"unit":          "plaquette",
		"quantity":      2,
		"minQuantity":   5,
		"maxQuantity":   40,
		"purchasePrice": 2.5,
		"salePrice":     6,
		"location":      "Tiroir A",
		"supplier":      "Audio Distribution",
		"notes":         "Lot de 6",
		"lastRestock":   "2024-01-01T00:00:00.000Z",
	}, http.StatusOK, nil)

	var before map[string]interface{}
	api.call(http.MethodGet, "/api/stock-items/s1", nil, http.StatusOK, &before)

	var item map[string]interface{}
	api.call(http.MethodPost, "/api/stock-items/s1/restock", map[string]int{"quantity": 3}, http.StatusOK, &item)
	if item["quantity"] != float64(5) {
		t.Fatalf("quantity after restock = %v", item["quantity"])
	}
	if stamp, _ := item["lastRestock"].(string); stamp == "" || stamp == before["lastRestock"] {
		t.Fatalf("lastRestock not stamped: %v", item["lastRestock"])
	}

	var after map[string]interface{}
	api.call(http.MethodGet, "/api/stock-items/s1", nil, http.StatusOK, &after)
	if len(after) != len(before) {
		t.Fatalf("restock changed the field set: %v, was %v", after, before)
	}
	for key, was := range before {
		if key == "quantity" || key == "lastRestock" {
			continue
		}
		if !reflect.DeepEqual(after[key], was) {
			t.Fatalf("restock changed %s: %v, was %v", key, after[key], was)
		}
	}
	if after["quantity"] != float64(5) || after["lastRestock"] != item["lastRestock"] {
		t.Fatalf("stored item = %v", after)
	}

	var listed []map[string]interface{}
	api.call(http.MethodGet, "/api/stock-items", nil, http.StatusOK, &listed)
	if len(listed) != 1 || listed[0]["quantity"] != float64(5) {
		t.Fatalf("cached list not refreshed after restock: %v", listed)
	}

	api.call(http.MethodPost, "/api/stock-items/missing/restock", map[string]int{"quantity": 3}, http.StatusNotFound, nil)
	api.call(http.MethodPost, "/api/stock-items/s1/restock", map[string]int{"quantity": 0}, http.StatusBadRequest, nil)
}

func TestSearch(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	var patients []map[string]interface{}
	api.call(http.MethodGet, "/api/patients?q=DUPONT", nil, http.StatusOK, &patients)
	if len(patients) != 1 || patients[0]["id"] != "1" {
		t.Fatalf("search by last name: %v", patients)
	}
}

func TestReadModels(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	var dashboard struct {
		TotalPatients int `json:"totalPatients"`
	}
	api.call(http.MethodGet, "/api/dashboard", nil, http.StatusOK, &dashboard)
	if dashboard.TotalPatients != 5 {
		t.Fatalf("totalPatients = %d", dashboard.TotalPatients)
	}

	api.call(http.MethodGet, "/api/statistics?range=month", nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/statistics?range=decade", nil, http.StatusBadRequest, nil)
	api.call(http.MethodGet, "/api/stock-items/summary", nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/invoices/summary", nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/expenses/summary", nil, http.StatusOK, nil)
}

func TestExportAndInvoicePDF(t *testing.T) {
	api := newTestAPI(t, false)
	api.seedDemo()

	rec := api.raw(http.MethodGet, "/api/export", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("export status %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")) {
		t.Fatalf("export is not a zip based workbook")
	}

	rec = api.raw(http.MethodGet, "/api/invoices/INV-2023-001/pdf", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("pdf status %d: %s", rec.Code, rec.Body.String())
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("invoice download is not a PDF")
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type %q", got)
	}

	api.call(http.MethodGet, "/api/invoices/missing/pdf", nil, http.StatusNotFound, nil)
}

func TestAuthEnabled(t *testing.T) {
	api := newTestAPI(t, true)
	api.seedDemo()

	api.call(http.MethodGet, "/api/patients", nil, http.StatusUnauthorized, nil)

	api.token = "not-a-token"
	api.call(http.MethodGet, "/api/patients", nil, http.StatusUnauthorized, nil)

	api.login("admin@audiocare.fr", fixtures.DemoPassword)
	api.call(http.MethodGet, "/api/patients", nil, http.StatusOK, nil)

	var me map[string]interface{}
	api.call(http.MethodGet, "/api/me", nil, http.StatusOK, &me)
	if me["id"] != "1" {
		t.Fatalf("me = %v", me)
	}

	api.call(http.MethodPost, "/api/logout", nil, http.StatusOK, nil)
	api.call(http.MethodGet, "/api/me", nil, http.StatusUnauthorized, nil)
}

func TestNonAdminRestrictions(t *testing.T) {
	api := newTestAPI(t, true)
	api.seedDemo()

	api.login("assistant@audiocare.fr", fixtures.DemoPassword)

	api.call(http.MethodPost, "/api/seed", map[string]interface{}{"expenses": []interface{}{}}, http.StatusForbidden, nil)
	api.call(http.MethodGet, "/api/export", nil, http.StatusForbidden, nil)
	api.call(http.MethodDelete, "/api/users/2", nil, http.StatusForbidden, nil)
	api.call(http.MethodPut, "/api/users/2", map[string]string{"name": "X"}, http.StatusForbidden, nil)
	api.call(http.MethodPut, "/api/users/3", map[string]string{"role": "admin"}, http.StatusForbidden, nil)

	var self map[string]interface{}
	api.call(http.MethodPut, "/api/users/3", map[string]string{"name": "Sophie"}, http.StatusOK, &self)
	if self["name"] != "Sophie" || self["role"] != "assistant" {
		t.Fatalf("self update = %v", self)
	}
}

func TestRefreshTokenRotates(t *testing.T) {
	api := newTestAPI(t, true)
	api.seedDemo()

	login := api.login("admin@audiocare.fr", fixtures.DemoPassword)
	refresh, _ := login["refreshToken"].(string)

	var tokens map[string]interface{}
	api.call(http.MethodPost, "/api/refresh-token", map[string]string{"refreshToken": refresh}, http.StatusOK, &tokens)
	if tokens["accessToken"] == "" {
		t.Fatalf("no new access token")
	}

	// A refresh token is single use.
	api.call(http.MethodPost, "/api/refresh-token", map[string]string{"refreshToken": refresh}, http.StatusUnauthorized, nil)
}

func TestPreflight(t *testing.T) {
	api := newTestAPI(t, true)

	rec := api.raw(http.MethodOptions, "/api/patients", nil)
	if rec.Code != http.StatusOK && rec.Code != http.StatusNoContent {
		t.Fatalf("preflight status %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "DELETE") {
		t.Fatalf("preflight allow methods = %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
}
