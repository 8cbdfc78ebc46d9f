package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// A Wednesday.
var referenceNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func money(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", value, err)
	}
	return d
}

func assertMoney(t *testing.T, what string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(money(t, want)) {
		t.Fatalf("%s = %s, want %s", what, got, want)
	}
}

func adjustments(scores ...int) []entity.Adjustment {
	out := make([]entity.Adjustment, 0, len(scores))
	for _, s := range scores {
		out = append(out, entity.Adjustment{Satisfaction: s})
	}
	return out
}

func TestBuildDashboard(t *testing.T) {
	ds := Dataset{
		Patients: []dto.PatientResponse{
			{ID: "1", FirstName: "Jean", LastName: "Dupont", CreatedAt: "2024-05-02T09:00:00.000Z"},
			{ID: "2", FirstName: "Marie", LastName: "Martin", CreatedAt: "2024-04-01"},
			{ID: "3", FirstName: "Paul", LastName: "Durand", CreatedAt: "2024-03-31T23:00:00.000Z"},
		},
		Appointments: []dto.AppointmentResponse{
			{ID: "a1", Date: "2024-05-16T09:00", Type: "bilan"},
			{ID: "a2", Date: "2024-05-25T09:00", Type: "essai"},
			{ID: "a3", Date: "2024-05-10T09:00", Type: "reglage"},
			{ID: "a4", Date: "2024-05-15T11:00", Type: "bilan"},
		},
		Invoices: []dto.InvoiceResponse{
			{ID: "INV-1", Amount: money(t, "100.50")},
			{ID: "INV-2", Amount: money(t, "200")},
		},
		HearingAids: []dto.HearingAidResponse{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}},
		PatientDevices: []dto.PatientDeviceResponse{
			{ID: "d1", HearingAidID: "h2", Adjustments: adjustments(4)},
			{ID: "d2", HearingAidID: "h2"},
			{ID: "d3", HearingAidID: "h1", Adjustments: adjustments(2, 5)},
		},
	}

	dashboard := BuildDashboard(ds, referenceNow)

	if dashboard.TotalPatients != 3 {
		t.Fatalf("totalPatients = %d, want 3", dashboard.TotalPatients)
	}
	if dashboard.NewPatientsThisMonth != 2 {
		t.Fatalf("newPatientsThisMonth = %d, want 2", dashboard.NewPatientsThisMonth)
	}
	if dashboard.UpcomingAppointments != 2 {
		t.Fatalf("upcomingAppointments = %d, want 2", dashboard.UpcomingAppointments)
	}
	assertMoney(t, "totalRevenue", dashboard.TotalRevenue, "300.5")
	if dashboard.AverageSatisfaction != 3 {
		t.Fatalf("averageSatisfaction = %v, want 3", dashboard.AverageSatisfaction)
	}

	var next []string
	for _, a := range dashboard.NextAppointments {
		next = append(next, a.ID)
	}
	if len(next) != 3 || next[0] != "a4" || next[1] != "a1" || next[2] != "a2" {
		t.Fatalf("nextAppointments = %v, want [a4 a1 a2]", next)
	}

	if len(dashboard.DeviceUsage) != 2 {
		t.Fatalf("deviceUsage = %+v, want 2 entries", dashboard.DeviceUsage)
	}
	if u := dashboard.DeviceUsage[0]; u.HearingAidID != "h1" || u.Count != 1 {
		t.Fatalf("deviceUsage[0] = %+v", u)
	}
	if u := dashboard.DeviceUsage[1]; u.HearingAidID != "h2" || u.Count != 2 {
		t.Fatalf("deviceUsage[1] = %+v", u)
	}

	want := map[string]int{"bilan": 2, "essai": 1, "reglage": 1, "controle": 0}
	if len(dashboard.AppointmentsByType) != len(want) {
		t.Fatalf("appointmentsByType = %+v", dashboard.AppointmentsByType)
	}
	for _, tc := range dashboard.AppointmentsByType {
		if want[tc.Type] != tc.Count {
			t.Fatalf("appointmentsByType[%s] = %d, want %d", tc.Type, tc.Count, want[tc.Type])
		}
	}
}

func TestBuildDashboardLimitsNextAppointments(t *testing.T) {
	var ds Dataset
	for day := 16; day < 24; day++ {
		ds.Appointments = append(ds.Appointments, dto.AppointmentResponse{
			Date: time.Date(2024, time.May, day, 9, 0, 0, 0, time.UTC).Format(time.RFC3339),
			Type: "controle",
		})
	}

	dashboard := BuildDashboard(ds, referenceNow)
	if len(dashboard.NextAppointments) != upcomingLimit {
		t.Fatalf("nextAppointments = %d, want %d", len(dashboard.NextAppointments), upcomingLimit)
	}
	if dashboard.UpcomingAppointments != 7 {
		t.Fatalf("upcomingAppointments = %d, want 7", dashboard.UpcomingAppointments)
	}
}

func TestAverageSatisfactionWithoutFittings(t *testing.T) {
	if got := AverageSatisfaction(nil); got != 0 {
		t.Fatalf("AverageSatisfaction(nil) = %v, want 0", got)
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("")
	if err != nil || r != Range6Months {
		t.Fatalf("ParseRange(\"\") = %q, %v", r, err)
	}
	r, err = ParseRange("week")
	if err != nil || r != RangeWeek {
		t.Fatalf("ParseRange(week) = %q, %v", r, err)
	}
	if _, err := ParseRange("decade"); !errors.Is(err, ErrUnknownRange) {
		t.Fatalf("ParseRange(decade) error = %v, want ErrUnknownRange", err)
	}
}

func TestStatisticsBuckets(t *testing.T) {
	cases := []struct {
		r    Range
		want int
	}{
		{RangeDay, 1},
		{RangeWeek, 7},
		{RangeMonth, 5},
		{Range6Months, 6},
		{Range12Months, 12},
	}
	for _, tc := range cases {
		stats := BuildStatistics(Dataset{}, tc.r, referenceNow)
		if len(stats.Buckets) != tc.want {
			t.Fatalf("%s: %d buckets, want %d", tc.r, len(stats.Buckets), tc.want)
		}
	}

	stats := BuildStatistics(Dataset{}, Range6Months, referenceNow)
	if stats.Buckets[0].Label != "déc." || stats.Buckets[5].Label != "mai" {
		t.Fatalf("labels = %q .. %q", stats.Buckets[0].Label, stats.Buckets[5].Label)
	}
}

func TestBuildStatisticsWeek(t *testing.T) {
	ds := Dataset{
		Invoices: []dto.InvoiceResponse{
			{ID: "INV-1", Date: "2024-05-14", Amount: money(t, "100")},
			{ID: "INV-2", Date: "2023-01-10", Amount: money(t, "999")},
		},
		Expenses: []dto.ExpenseResponse{
			{ID: "e1", Date: "2024-05-14", Category: "loyer", Amount: money(t, "40")},
			{ID: "e2", Date: "2024-05-15", Category: "fournitures", Amount: money(t, "60")},
			{ID: "e3", Date: "2024-01-01", Category: "loyer", Amount: money(t, "500")},
		},
		Appointments:   []dto.AppointmentResponse{{ID: "a1", Date: "2024-05-14T14:30"}},
		PatientDevices: []dto.PatientDeviceResponse{{ID: "d1"}, {ID: "d2"}},
	}

	stats := BuildStatistics(ds, RangeWeek, referenceNow)

	assertMoney(t, "totalRevenue", stats.TotalRevenue, "100")
	assertMoney(t, "totalExpenses", stats.TotalExpenses, "100")
	assertMoney(t, "netProfit", stats.NetProfit, "0")

	if len(stats.ExpensesByCategory) != 2 {
		t.Fatalf("expensesByCategory = %+v", stats.ExpensesByCategory)
	}
	if stats.ExpensesByCategory[0].Category != "fournitures" || stats.ExpensesByCategory[1].Category != "loyer" {
		t.Fatalf("categories not sorted by amount: %+v", stats.ExpensesByCategory)
	}

	b := stats.Buckets[5]
	if b.Label != "14 mai" {
		t.Fatalf("bucket label = %q, want 14 mai", b.Label)
	}
	assertMoney(t, "bucket revenue", b.Revenue, "100")
	assertMoney(t, "bucket profit", b.Profit, "60")
	if b.Appointments != 1 {
		t.Fatalf("bucket appointments = %d, want 1", b.Appointments)
	}

	if stats.Fittings != 2 || stats.EquipmentRate != 2 {
		t.Fatalf("fittings = %d, equipmentRate = %v", stats.Fittings, stats.EquipmentRate)
	}
}

func TestSummarizeStock(t *testing.T) {
	items := []dto.StockItemResponse{
		{ID: "STK-001", Quantity: 10, MinQuantity: 3, PurchasePrice: money(t, "2.50")},
		{ID: "STK-002", Quantity: 3, MinQuantity: 3, PurchasePrice: money(t, "10")},
		{ID: "STK-003", Quantity: 0, MinQuantity: 1, PurchasePrice: money(t, "99")},
	}

	summary := SummarizeStock(items)
	if summary.TotalItems != 3 || summary.TotalQuantity != 13 {
		t.Fatalf("summary = %+v", summary)
	}
	assertMoney(t, "stockValue", summary.StockValue, "55")
	if len(summary.LowStock) != 2 || summary.LowStock[0].ID != "STK-002" || summary.LowStock[1].ID != "STK-003" {
		t.Fatalf("lowStock = %+v", summary.LowStock)
	}
}

func TestSummarizeInvoicesAndExpenses(t *testing.T) {
	invoices := []dto.InvoiceResponse{
		{Status: entity.InvoicePaid, Amount: money(t, "100")},
		{Status: entity.InvoicePaid, Amount: money(t, "50")},
		{Status: entity.InvoicePending, Amount: money(t, "20")},
		{Status: entity.InvoiceOverdue, Amount: money(t, "5")},
	}
	inv := SummarizeInvoices(invoices)
	if inv.Count != 4 {
		t.Fatalf("count = %d, want 4", inv.Count)
	}
	assertMoney(t, "paidRevenue", inv.PaidRevenue, "150")
	assertMoney(t, "pendingAmount", inv.PendingAmount, "20")
	assertMoney(t, "overdueAmount", inv.OverdueAmount, "5")

	expenses := []dto.ExpenseResponse{
		{Status: entity.ExpensePaid, Amount: money(t, "30")},
		{Status: entity.ExpensePending, Amount: money(t, "12")},
		{Status: entity.ExpenseCancelled, Amount: money(t, "1000")},
	}
	exp := SummarizeExpenses(expenses)
	if exp.Count != 3 {
		t.Fatalf("count = %d, want 3", exp.Count)
	}
	assertMoney(t, "paid", exp.Paid, "30")
	assertMoney(t, "pending", exp.Pending, "12")
}

func TestItemTotal(t *testing.T) {
	assertMoney(t, "ItemTotal", ItemTotal(3, money(t, "1.10")), "3.3")
}

func TestSearch(t *testing.T) {
	patients := []dto.PatientResponse{
		{ID: "1", FirstName: "Jean", LastName: "Dupont"},
		{ID: "2", FirstName: "Marie", LastName: "Martin"},
	}
	if got := SearchPatients(patients, "DUPONT"); len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("SearchPatients(DUPONT) = %+v", got)
	}
	if got := SearchPatients(patients, "marie martin"); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("SearchPatients(full name) = %+v", got)
	}
	if got := SearchPatients(patients, ""); len(got) != 2 {
		t.Fatalf("SearchPatients(\"\") = %d results, want 2", len(got))
	}

	invoices := []dto.InvoiceResponse{
		{ID: "INV-2024-001", PatientID: "1"},
		{ID: "INV-2024-002", PatientID: "2"},
	}
	if got := SearchInvoices(invoices, patients, "martin"); len(got) != 1 || got[0].ID != "INV-2024-002" {
		t.Fatalf("SearchInvoices(martin) = %+v", got)
	}
	if got := SearchInvoices(invoices, patients, "INV-2024-001"); len(got) != 1 || got[0].ID != "INV-2024-001" {
		t.Fatalf("SearchInvoices(id) = %+v", got)
	}
	if got := SearchInvoices(invoices, patients, "inv-2024"); len(got) != 0 {
		t.Fatalf("SearchInvoices(lowercase id) = %+v, want none", got)
	}

	items := []dto.StockItemResponse{
		{ID: "STK-001", Name: "Piles 312", SKU: "BAT-312", Brand: "Rayovac", Category: "piles"},
		{ID: "STK-002", Name: "Dômes", SKU: "DOM-M", Brand: "Phonak", Category: "accessoires"},
	}
	if got := SearchStockItems(items, "phonak"); len(got) != 1 || got[0].ID != "STK-002" {
		t.Fatalf("SearchStockItems(phonak) = %+v", got)
	}
	if got := SearchStockItems(items, "bat-"); len(got) != 1 || got[0].ID != "STK-001" {
		t.Fatalf("SearchStockItems(bat-) = %+v", got)
	}

	expenses := []dto.ExpenseResponse{
		{ID: "e1", Description: "Loyer mai", Category: "loyer"},
		{ID: "e2", Description: "Commande piles", Supplier: "Rayovac", Category: "fournitures"},
	}
	if got := SearchExpenses(expenses, "RAYOVAC"); len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("SearchExpenses(RAYOVAC) = %+v", got)
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		value string
		want  time.Time
	}{
		{"2024-05-15T10:00:00.000Z", time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)},
		{"2024-05-15T10:00", time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)},
		{"2024-05-15 10:00:00", time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)},
		{" 2024-05-15 ", time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, ok := ParseTime(tc.value, time.UTC)
		if !ok || !got.Equal(tc.want) {
			t.Fatalf("ParseTime(%q) = %v, %v; want %v", tc.value, got, ok, tc.want)
		}
	}
	for _, bad := range []string{"", "hier", "15/05/2024"} {
		if _, ok := ParseTime(bad, time.UTC); ok {
			t.Fatalf("ParseTime(%q) succeeded", bad)
		}
	}
}

func TestSubMonthsClampsToMonthEnd(t *testing.T) {
	got := subMonths(time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC), 1)
	want := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("subMonths = %v, want %v", got, want)
	}
}
