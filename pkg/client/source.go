package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/fixtures"

	"golang.org/x/sync/errgroup"
)

// Mode names where a Store reads and writes its data.
type Mode string

const (
	// ModeLive loads from and writes to the API.
	ModeLive Mode = "live"
	// ModeFixture works on the built-in demo dataset without any network access.
	ModeFixture Mode = "fixture"
	// ModeAuto tries the API once and falls back to the fixture source.
	ModeAuto Mode = "auto"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Operation is one write sent to a Source.
type Operation struct {
	Method string
	Path   string
	Body   interface{}
}

// Source is where a Store loads its initial data and sends its writes.
type Source interface {
	Mode() Mode
	Load(ctx context.Context) (Dataset, error)
	Login(ctx context.Context, email, password string) (*User, error)
	Logout(ctx context.Context) error
	Send(ctx context.Context, op Operation) error
}

// applier is a Source that keeps state of its own in step with the Store.
type applier interface {
	Apply(op Operation) error
}

// Dataset loads the nine collections in parallel.
func (c *Client) Dataset(ctx context.Context) (*Dataset, error) {
	var ds Dataset
	g, ctx := errgroup.WithContext(ctx)
	g.Go(fetch(ctx, c.Users(), &ds.Users))
	g.Go(fetch(ctx, c.Patients(), &ds.Patients))
	g.Go(fetch(ctx, c.Audiograms(), &ds.Audiograms))
	g.Go(fetch(ctx, c.HearingAids(), &ds.HearingAids))
	g.Go(fetch(ctx, c.PatientDevices(), &ds.PatientDevices))
	g.Go(fetch(ctx, c.Appointments(), &ds.Appointments))
	g.Go(fetch(ctx, c.Invoices(), &ds.Invoices))
	g.Go(fetch(ctx, c.Expenses(), &ds.Expenses))
	g.Go(fetch(ctx, c.StockItems(), &ds.StockItems))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func fetch[C, U, R any](ctx context.Context, r Resource[C, U, R], dst *[]R) func() error {
	return func() error {
		records, err := r.List(ctx)
		if err != nil {
			return err
		}
		*dst = records
		return nil
	}
}

// LiveSource reads and writes through the API.
type LiveSource struct {
	client *Client
}

func NewLiveSource(c *Client) *LiveSource {
	return &LiveSource{client: c}
}

func (s *LiveSource) Mode() Mode {
	return ModeLive
}

func (s *LiveSource) Load(ctx context.Context) (Dataset, error) {
	ds, err := s.client.Dataset(ctx)
	if err != nil {
		return Dataset{}, err
	}
	return *ds, nil
}

func (s *LiveSource) Login(ctx context.Context, email, password string) (*User, error) {
	login, err := s.client.Login(ctx, email, password)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	user := login.UserResponse
	return &user, nil
}

func (s *LiveSource) Logout(ctx context.Context) error {
	return s.client.Logout(ctx)
}

func (s *LiveSource) Send(ctx context.Context, op Operation) error {
	return s.client.do(ctx, op.Method, op.Path, op.Body, nil)
}

// FixtureSource serves the demo dataset. Writes stay local.
type FixtureSource struct {
	dataset Dataset

	mu sync.RWMutex
	// accounts is keyed by user id.
	accounts map[string]account
}

type account struct {
	password string
	user     User
}

// NewFixtureSource builds the demo dataset with dates relative to now.
func NewFixtureSource(now time.Time) *FixtureSource {
	demo := fixtures.Demo(now)
	s := &FixtureSource{dataset: datasetFromSeed(demo)}
	s.resetAccounts(demo.Users)
	return s
}

// resetAccounts replaces every account, as a users seed does on the server.
// The caller holds s.mu or owns s.
func (s *FixtureSource) resetAccounts(users []NewUser) {
	s.accounts = make(map[string]account, len(users))
	for i := range users {
		req := users[i]
		if req.Password == "" {
			req.Password = fixtures.DemoPassword
		}
		s.putAccount(req)
	}
}

func (s *FixtureSource) putAccount(req NewUser) {
	user := buildUser(&req)
	s.accounts[user.ID] = account{password: req.Password, user: user}
}

func (s *FixtureSource) Mode() Mode {
	return ModeFixture
}

func (s *FixtureSource) Load(ctx context.Context) (Dataset, error) {
	return cloneDataset(s.dataset), nil
}

// Login checks the accounts as the writes applied so far left them.
func (s *FixtureSource) Login(ctx context.Context, email, password string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if !strings.EqualFold(acc.user.Email, email) || acc.password != password {
			continue
		}
		user := acc.user
		user.LastLogin = entity.Now()
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

func (s *FixtureSource) Logout(ctx context.Context) error {
	return nil
}

// Apply updates the accounts for a user write. The Store calls it before
// queueing op, so a login right after the write already sees it.
func (s *FixtureSource) Apply(op Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if op.Method == http.MethodPost && op.Path == "/seed" {
		if req, ok := op.Body.(*SeedRequest); ok && req != nil && req.Users != nil {
			s.resetAccounts(req.Users)
		}
		return nil
	}
	if op.Method == http.MethodPost && op.Path == userCollection.path {
		if req, ok := op.Body.(NewUser); ok && req.Password != "" {
			s.putAccount(req)
		}
		return nil
	}

	id, ok := userID(op.Path)
	if !ok {
		return nil
	}
	switch op.Method {
	case http.MethodDelete:
		delete(s.accounts, id)
	case http.MethodPut:
		patch, ok := op.Body.(UserPatch)
		acc, found := s.accounts[id]
		if !ok || !found {
			return nil
		}
		user, err := mergePatch(acc.user, patch)
		if err != nil {
			return fmt.Errorf("failed to apply patch: %w", err)
		}
		acc.user = user
		if patch.Password != nil {
			acc.password = *patch.Password
		}
		s.accounts[id] = acc
	}
	return nil
}

// Send accepts every write without touching the network.
func (s *FixtureSource) Send(ctx context.Context, op Operation) error {
	return nil
}

func userID(path string) (string, bool) {
	escaped, ok := strings.CutPrefix(path, userCollection.path+"/")
	if !ok || escaped == "" {
		return "", false
	}
	id, err := url.PathUnescape(escaped)
	if err != nil {
		return "", false
	}
	return id, true
}
