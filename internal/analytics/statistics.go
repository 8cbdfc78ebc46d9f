package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Range string

const (
	RangeDay      Range = "day"
	RangeWeek     Range = "week"
	RangeMonth    Range = "month"
	Range6Months  Range = "6months"
	Range12Months Range = "12months"
)

const DefaultRange = Range6Months

var ErrUnknownRange = errors.New("unknown statistics range")

// ParseRange accepts the range names; "" selects the default.
func ParseRange(value string) (Range, error) {
	switch r := Range(value); r {
	case "":
		return DefaultRange, nil
	case RangeDay, RangeWeek, RangeMonth, Range6Months, Range12Months:
		return r, nil
	default:
		return "", ErrUnknownRange
	}
}

type Bucket struct {
	Label        string          `json:"label"`
	Start        time.Time       `json:"start"`
	End          time.Time       `json:"end"`
	Revenue      decimal.Decimal `json:"revenue"`
	Expenses     decimal.Decimal `json:"expenses"`
	Profit       decimal.Decimal `json:"profit"`
	Appointments int             `json:"appointments"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type Statistics struct {
	Range               Range           `json:"range"`
	Start               time.Time       `json:"start"`
	End                 time.Time       `json:"end"`
	Buckets             []Bucket        `json:"buckets"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	TotalPatients       int             `json:"totalPatients"`
	ExpensesByCategory  []CategoryTotal `json:"expensesByCategory"`
	AverageSatisfaction float64         `json:"averageSatisfaction"`
	Fittings            int             `json:"fittings"`
	EquipmentRate       float64         `json:"equipmentRate"`
}

type bucketKind int

const (
	bucketDay bucketKind = iota
	bucketWeek
	bucketMonth
)

func rangeBounds(r Range, now time.Time) (time.Time, time.Time, bucketKind) {
	switch r {
	case RangeDay:
		return startOfDay(now), endOfDay(now), bucketDay
	case RangeWeek:
		return now.AddDate(0, 0, -6), now, bucketDay
	case RangeMonth:
		return subMonths(now, 1), now, bucketWeek
	case Range12Months:
		return subMonths(now, 11), now, bucketMonth
	default:
		return subMonths(now, 5), now, bucketMonth
	}
}

func buckets(start, end time.Time, kind bucketKind) []Bucket {
	var out []Bucket
	switch kind {
	case bucketDay:
		for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
			out = append(out, Bucket{Label: dayLabel(d), Start: d, End: endOfDay(d)})
		}
	case bucketWeek:
		for w := startOfWeek(start); !w.After(end); w = w.AddDate(0, 0, 7) {
			out = append(out, Bucket{Label: weekLabel(w), Start: w, End: endOfWeek(w)})
		}
	default:
		for m := startOfMonth(start); !m.After(end); m = m.AddDate(0, 1, 0) {
			out = append(out, Bucket{Label: monthLabel(m), Start: m, End: endOfMonth(m)})
		}
	}
	return out
}

// BuildStatistics aggregates revenue, expenses and activity over r ending at now.
func BuildStatistics(ds Dataset, r Range, now time.Time) Statistics {
	start, end, kind := rangeBounds(r, now)

	stats := Statistics{
		Range:               r,
		Start:               start,
		End:                 end,
		Buckets:             buckets(start, end, kind),
		TotalRevenue:        decimal.Zero,
		TotalExpenses:       decimal.Zero,
		TotalPatients:       len(ds.Patients),
		ExpensesByCategory:  []CategoryTotal{},
		AverageSatisfaction: AverageSatisfaction(ds.PatientDevices),
		Fittings:            len(ds.PatientDevices),
	}

	for i := range stats.Buckets {
		b := &stats.Buckets[i]
		b.Revenue = decimal.Zero
		b.Expenses = decimal.Zero
		for _, inv := range ds.Invoices {
			if within(inv.Date, b.Start, b.End) {
				b.Revenue = b.Revenue.Add(inv.Amount)
			}
		}
		for _, exp := range ds.Expenses {
			if within(exp.Date, b.Start, b.End) {
				b.Expenses = b.Expenses.Add(exp.Amount)
			}
		}
		for _, a := range ds.Appointments {
			if within(a.Date, b.Start, b.End) {
				b.Appointments++
			}
		}
		b.Profit = b.Revenue.Sub(b.Expenses)
	}

	for _, inv := range ds.Invoices {
		if within(inv.Date, start, end) {
			stats.TotalRevenue = stats.TotalRevenue.Add(inv.Amount)
		}
	}

	byCategory := make(map[string]decimal.Decimal)
	var order []string
	for _, exp := range ds.Expenses {
		if !within(exp.Date, start, end) {
			continue
		}
		stats.TotalExpenses = stats.TotalExpenses.Add(exp.Amount)
		if _, seen := byCategory[exp.Category]; !seen {
			order = append(order, exp.Category)
		}
		byCategory[exp.Category] = byCategory[exp.Category].Add(exp.Amount)
	}
	for _, category := range order {
		stats.ExpensesByCategory = append(stats.ExpensesByCategory, CategoryTotal{Category: category, Amount: byCategory[category]})
	}
	sort.SliceStable(stats.ExpensesByCategory, func(i, j int) bool {
		return stats.ExpensesByCategory[i].Amount.GreaterThan(stats.ExpensesByCategory[j].Amount)
	})

	stats.NetProfit = stats.TotalRevenue.Sub(stats.TotalExpenses)

	patients := len(ds.Patients)
	if patients == 0 {
		patients = 1
	}
	stats.EquipmentRate = float64(len(ds.PatientDevices)) / float64(patients)

	return stats
}
