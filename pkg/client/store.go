package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const DefaultLoadTimeout = 5 * time.Second

var (
	ErrStoreClosed     = errors.New("store is closed")
	ErrNotLoggedIn     = errors.New("no user is logged in")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type Options struct {
	Mode Mode
	// BaseURL is used when Client is nil.
	BaseURL string
	Client  *Client
	// Timeout bounds each background write.
	Timeout time.Duration
	// LoadTimeout bounds the first live load in ModeAuto.
	LoadTimeout time.Duration
	Logger      *logrus.Logger
	Now         func() time.Time
}

func (o *Options) setDefaults() {
	if o.Mode == "" {
		o.Mode = ModeAuto
	}
	if o.Client == nil {
		o.Client = New(o.BaseURL)
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.LoadTimeout <= 0 {
		o.LoadTimeout = DefaultLoadTimeout
	}
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Result is the remote outcome of a mutation already applied locally.
type Result struct {
	done chan struct{}
	err  error
}

func newResult() *Result {
	return &Result{done: make(chan struct{})}
}

func finished(err error) *Result {
	r := newResult()
	r.err = err
	close(r.done)
	return r
}

// Wait blocks until the server answered and returns its error, if any.
func (r *Result) Wait() error {
	<-r.done
	return r.err
}

func (r *Result) Done() <-chan struct{} {
	return r.done
}

// Store is the client-side copy of the clinic data. Reads return copies.
// Mutations change the local copy at once, then sync in the background.
// The local copy is never rolled back when a sync fails.
type Store struct {
	source  Source
	log     *logrus.Logger
	now     func() time.Time
	timeout time.Duration

	mu      sync.RWMutex
	data    Dataset
	current *User
	closed  bool
	pending sync.WaitGroup
}

// Open selects the data source for opts.Mode and loads the nine collections.
func Open(ctx context.Context, opts Options) (*Store, error) {
	opts.setDefaults()

	switch opts.Mode {
	case ModeFixture:
		return openFixture(ctx, opts)

	case ModeLive:
		source := NewLiveSource(opts.Client)
		data, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load data: %w", err)
		}
		return NewStore(source, data, opts), nil

	case ModeAuto:
		source := NewLiveSource(opts.Client)
		loadCtx, cancel := context.WithTimeout(ctx, opts.LoadTimeout)
		data, err := source.Load(loadCtx)
		cancel()
		if err != nil {
			opts.Logger.Warnf("API at %s unavailable, using demo data: %v", opts.Client.BaseURL(), err)
			return openFixture(ctx, opts)
		}
		return NewStore(source, data, opts), nil

	default:
		return nil, fmt.Errorf("unknown store mode %q", opts.Mode)
	}
}

func openFixture(ctx context.Context, opts Options) (*Store, error) {
	source := NewFixtureSource(opts.Now())
	data, err := source.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewStore(source, data, opts), nil
}

// NewStore wraps an already loaded dataset.
func NewStore(source Source, data Dataset, opts Options) *Store {
	opts.setDefaults()
	return &Store{
		source:  source,
		log:     opts.Logger,
		now:     opts.Now,
		timeout: opts.Timeout,
		data:    cloneDataset(data),
	}
}

func (s *Store) Mode() Mode {
	return s.source.Mode()
}

// Close waits for every pending write. Later mutations fail with ErrStoreClosed.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.pending.Wait()
}

// async runs fn in the background. The caller holds s.mu.
func (s *Store) async(what string, fn func(ctx context.Context) error) *Result {
	result := newResult()
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		result.err = fn(ctx)
		if result.err != nil {
			s.log.Warnf("Failed to sync %s: %+v", what, result.err)
		}
		close(result.done)
	}()
	return result
}

// send forwards op to the source. The caller holds s.mu.
func (s *Store) send(op Operation) *Result {
	if a, ok := s.source.(applier); ok {
		if err := a.Apply(op); err != nil {
			return finished(err)
		}
	}
	return s.async(op.Method+" "+op.Path, func(ctx context.Context) error {
		return s.source.Send(ctx, op)
	})
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}

func add[C, U, R any](s *Store, col collection[C, U, R], req C) (R, *Result) {
	record := col.build(&req)

	// Send what was stored locally, generated id and defaults included.
	sent, err := mergePatch(req, record)
	if err != nil {
		var zero R
		return zero, finished(fmt.Errorf("failed to prepare request: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		var zero R
		return zero, finished(ErrStoreClosed)
	}

	items := col.slot(&s.data)
	*items = append(*items, col.copyOf(record))
	return record, s.send(Operation{Method: http.MethodPost, Path: col.path, Body: sent})
}

// update patches the local record when present and always sends the patch.
func update[C, U, R any](s *Store, col collection[C, U, R], id string, patch U) (R, *Result) {
	var merged R

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return merged, finished(ErrStoreClosed)
	}

	items := *col.slot(&s.data)
	for i := range items {
		if col.id(&items[i]) != id {
			continue
		}
		var err error
		merged, err = mergePatch(items[i], patch)
		if err != nil {
			return merged, finished(fmt.Errorf("failed to apply patch: %w", err))
		}
		items[i] = col.copyOf(merged)
		break
	}
	return merged, s.send(Operation{Method: http.MethodPut, Path: itemPath(col.path, id), Body: patch})
}

// remove drops the record locally, runs the cascades, then sends the delete.
func remove[C, U, R any](s *Store, col collection[C, U, R], id string, cascades ...func(*Dataset)) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return finished(ErrStoreClosed)
	}

	removeWhere(col.slot(&s.data), func(r *R) bool { return col.id(r) == id })
	for _, cascade := range cascades {
		cascade(&s.data)
	}
	return s.send(Operation{Method: http.MethodDelete, Path: itemPath(col.path, id)})
}

func removeWhere[R any](items *[]R, match func(*R) bool) {
	*items = slices.DeleteFunc(*items, func(r R) bool { return match(&r) })
}

func find[C, U, R any](s *Store, col collection[C, U, R], id string) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range *col.slot(&s.data) {
		if col.id(&r) == id {
			return col.copyOf(r), true
		}
	}
	var zero R
	return zero, false
}

func list[C, U, R any](s *Store, col collection[C, U, R]) []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return col.copyAll(*col.slot(&s.data))
}

// Snapshot copies every collection.
func (s *Store) Snapshot() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDataset(s.data)
}

func (s *Store) Users() []User                   { return list(s, userCollection) }
func (s *Store) Patients() []Patient             { return list(s, patientCollection) }
func (s *Store) Audiograms() []Audiogram         { return list(s, audiogramCollection) }
func (s *Store) HearingAids() []HearingAid       { return list(s, hearingAidCollection) }
func (s *Store) PatientDevices() []PatientDevice { return list(s, patientDeviceCollection) }
func (s *Store) Appointments() []Appointment     { return list(s, appointmentCollection) }
func (s *Store) Invoices() []Invoice             { return list(s, invoiceCollection) }
func (s *Store) Expenses() []Expense             { return list(s, expenseCollection) }
func (s *Store) StockItems() []StockItem         { return list(s, stockItemCollection) }

func (s *Store) User(id string) (User, bool)             { return find(s, userCollection, id) }
func (s *Store) Patient(id string) (Patient, bool)       { return find(s, patientCollection, id) }
func (s *Store) HearingAid(id string) (HearingAid, bool) { return find(s, hearingAidCollection, id) }
func (s *Store) Invoice(id string) (Invoice, bool)       { return find(s, invoiceCollection, id) }
func (s *Store) StockItem(id string) (StockItem, bool)   { return find(s, stockItemCollection, id) }

// CurrentUser returns the logged in user, or nil.
func (s *Store) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	user := *s.current
	return &user
}

// Login checks the credentials right away. It returns ErrInvalidCredentials
// on a mismatch and the transport error when the server could not be reached.
func (s *Store) Login(ctx context.Context, email, password string) (*User, error) {
	user, err := s.source.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Users {
		local := &s.data.Users[i]
		if local.ID != user.ID {
			continue
		}
		// Without a server the local record is the freshest one.
		if s.source.Mode() != ModeLive {
			lastLogin := user.LastLogin
			*user = *local
			user.LastLogin = lastLogin
		}
		*local = *user
		break
	}
	current := *user
	s.current = &current
	return user, nil
}

func (s *Store) Logout() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	if s.closed {
		return finished(ErrStoreClosed)
	}
	return s.async("logout", s.source.Logout)
}

// UpdateProfile patches the logged in user.
func (s *Store) UpdateProfile(patch UserPatch) (User, *Result) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current == nil {
		return User{}, finished(ErrNotLoggedIn)
	}

	user, result := update(s, userCollection, current.ID, patch)

	s.mu.Lock()
	if s.current != nil && s.current.ID == current.ID {
		if merged, err := mergePatch(*s.current, patch); err == nil {
			s.current = &merged
		}
	}
	s.mu.Unlock()
	return user, result
}

func (s *Store) AddUser(req NewUser) (User, *Result) { return add(s, userCollection, req) }
func (s *Store) UpdateUser(id string, patch UserPatch) (User, *Result) {
	return update(s, userCollection, id, patch)
}
func (s *Store) DeleteUser(id string) *Result { return remove(s, userCollection, id) }

func (s *Store) AddPatient(req NewPatient) (Patient, *Result) { return add(s, patientCollection, req) }
func (s *Store) UpdatePatient(id string, patch PatientPatch) (Patient, *Result) {
	return update(s, patientCollection, id, patch)
}

// DeletePatient also drops the patient's audiograms, fittings, appointments
// and invoices, as the server does.
func (s *Store) DeletePatient(id string) *Result {
	return remove(s, patientCollection, id, func(d *Dataset) {
		removeWhere(&d.Audiograms, func(r *Audiogram) bool { return r.PatientID == id })
		removeWhere(&d.PatientDevices, func(r *PatientDevice) bool { return r.PatientID == id })
		removeWhere(&d.Appointments, func(r *Appointment) bool { return r.PatientID == id })
		removeWhere(&d.Invoices, func(r *Invoice) bool { return r.PatientID == id })
	})
}

func (s *Store) AddAudiogram(req NewAudiogram) (Audiogram, *Result) {
	return add(s, audiogramCollection, req)
}
func (s *Store) UpdateAudiogram(id string, patch AudiogramPatch) (Audiogram, *Result) {
	return update(s, audiogramCollection, id, patch)
}
func (s *Store) DeleteAudiogram(id string) *Result { return remove(s, audiogramCollection, id) }

func (s *Store) AddHearingAid(req NewHearingAid) (HearingAid, *Result) {
	return add(s, hearingAidCollection, req)
}
func (s *Store) UpdateHearingAid(id string, patch HearingAidPatch) (HearingAid, *Result) {
	return update(s, hearingAidCollection, id, patch)
}

// DeleteHearingAid also drops the fittings of that model.
func (s *Store) DeleteHearingAid(id string) *Result {
	return remove(s, hearingAidCollection, id, func(d *Dataset) {
		removeWhere(&d.PatientDevices, func(r *PatientDevice) bool { return r.HearingAidID == id })
	})
}

func (s *Store) AddPatientDevice(req NewPatientDevice) (PatientDevice, *Result) {
	return add(s, patientDeviceCollection, req)
}
func (s *Store) UpdatePatientDevice(id string, patch PatientDevicePatch) (PatientDevice, *Result) {
	return update(s, patientDeviceCollection, id, patch)
}
func (s *Store) DeletePatientDevice(id string) *Result {
	return remove(s, patientDeviceCollection, id)
}

func (s *Store) AddAppointment(req NewAppointment) (Appointment, *Result) {
	return add(s, appointmentCollection, req)
}
func (s *Store) UpdateAppointment(id string, patch AppointmentPatch) (Appointment, *Result) {
	return update(s, appointmentCollection, id, patch)
}
func (s *Store) DeleteAppointment(id string) *Result { return remove(s, appointmentCollection, id) }

func (s *Store) AddInvoice(req NewInvoice) (Invoice, *Result) { return add(s, invoiceCollection, req) }
func (s *Store) UpdateInvoice(id string, patch InvoicePatch) (Invoice, *Result) {
	return update(s, invoiceCollection, id, patch)
}
func (s *Store) DeleteInvoice(id string) *Result { return remove(s, invoiceCollection, id) }

func (s *Store) AddExpense(req NewExpense) (Expense, *Result) { return add(s, expenseCollection, req) }
func (s *Store) UpdateExpense(id string, patch ExpensePatch) (Expense, *Result) {
	return update(s, expenseCollection, id, patch)
}
func (s *Store) DeleteExpense(id string) *Result { return remove(s, expenseCollection, id) }

func (s *Store) AddStockItem(req NewStockItem) (StockItem, *Result) {
	return add(s, stockItemCollection, req)
}
func (s *Store) UpdateStockItem(id string, patch StockItemPatch) (StockItem, *Result) {
	return update(s, stockItemCollection, id, patch)
}
func (s *Store) DeleteStockItem(id string) *Result { return remove(s, stockItemCollection, id) }

// Restock adds quantity to the item and stamps lastRestock.
func (s *Store) Restock(id string, quantity int) (StockItem, *Result) {
	var restocked StockItem
	if quantity <= 0 {
		return restocked, finished(ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return restocked, finished(ErrStoreClosed)
	}

	for i := range s.data.StockItems {
		item := &s.data.StockItems[i]
		if item.ID == id {
			item.Quantity += quantity
			item.LastRestock = entity.Timestamp(s.now())
			restocked = *item
			break
		}
	}

	op := Operation{
		Method: http.MethodPost,
		Path:   itemPath(stockItemCollection.path, id) + "/restock",
		Body:   RestockRequest{Quantity: quantity},
	}
	return restocked, s.send(op)
}

// Seed replaces each collection whose group is present in req. Replacing
// patients or hearing aids clears the dependent collections req leaves out.
func (s *Store) Seed(req *SeedRequest) *Result {
	seeded := datasetFromSeed(req)
	sent, err := stampSeed(req, seeded)
	if err != nil {
		return finished(fmt.Errorf("failed to prepare request: %w", err))
	}
	seeded = cloneDataset(seeded)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return finished(ErrStoreClosed)
	}

	if req.Users != nil {
		s.data.Users = seeded.Users
	}
	if req.Patients != nil {
		s.data.Patients = seeded.Patients
		s.data.Audiograms = nil
		s.data.PatientDevices = nil
		s.data.Appointments = nil
		s.data.Invoices = nil
	}
	if req.HearingAids != nil {
		s.data.HearingAids = seeded.HearingAids
		s.data.PatientDevices = nil
	}
	if req.Audiograms != nil {
		s.data.Audiograms = seeded.Audiograms
	}
	if req.PatientDevices != nil {
		s.data.PatientDevices = seeded.PatientDevices
	}
	if req.Appointments != nil {
		s.data.Appointments = seeded.Appointments
	}
	if req.Invoices != nil {
		s.data.Invoices = seeded.Invoices
	}
	if req.Expenses != nil {
		s.data.Expenses = seeded.Expenses
	}
	if req.StockItems != nil {
		s.data.StockItems = seeded.StockItems
	}

	return s.send(Operation{Method: http.MethodPost, Path: "/seed", Body: sent})
}

func (s *Store) Dashboard() Dashboard {
	return analytics.BuildDashboard(s.Snapshot(), s.now())
}

func (s *Store) Statistics(r Range) Statistics {
	return analytics.BuildStatistics(s.Snapshot(), r, s.now())
}

func (s *Store) StockSummary() StockSummary {
	return analytics.SummarizeStock(s.StockItems())
}

func (s *Store) LowStock() []StockItem {
	return analytics.LowStock(s.StockItems())
}

func (s *Store) InvoiceSummary() InvoiceSummary {
	return analytics.SummarizeInvoices(s.Invoices())
}

func (s *Store) ExpenseSummary() ExpenseSummary {
	return analytics.SummarizeExpenses(s.Expenses())
}

func (s *Store) SearchPatients(term string) []Patient {
	return analytics.SearchPatients(s.Patients(), term)
}

func (s *Store) SearchStockItems(term string) []StockItem {
	return analytics.SearchStockItems(s.StockItems(), term)
}

func (s *Store) SearchInvoices(term string) []Invoice {
	ds := s.Snapshot()
	return analytics.SearchInvoices(ds.Invoices, ds.Patients, term)
}

func (s *Store) SearchExpenses(term string) []Expense {
	return analytics.SearchExpenses(s.Expenses(), term)
}
