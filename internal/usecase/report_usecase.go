package usecase

import (
	"context"
	"time"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReportUsecase serves the read models computed over every collection.
type ReportUsecase interface {
	Dataset(ctx context.Context) (*analytics.Dataset, error)
	Dashboard(ctx context.Context) (*analytics.Dashboard, error)
	Statistics(ctx context.Context, r analytics.Range) (*analytics.Statistics, error)
	Export(ctx context.Context) ([]byte, error)
	InvoicePDF(ctx context.Context, id string) ([]byte, error)
}

type reportUsecase struct {
	log            *logrus.Logger
	users          UserUsecase
	patients       PatientUsecase
	audiograms     AudiogramUsecase
	hearingAids    HearingAidUsecase
	patientDevices PatientDeviceUsecase
	appointments   AppointmentUsecase
	invoices       InvoiceUsecase
	expenses       ExpenseUsecase
	stockItems     StockItemUsecase
	now            func() time.Time
}

func NewReportUsecase(
	log *logrus.Logger,
	users UserUsecase,
	patients PatientUsecase,
	audiograms AudiogramUsecase,
	hearingAids HearingAidUsecase,
	patientDevices PatientDeviceUsecase,
	appointments AppointmentUsecase,
	invoices InvoiceUsecase,
	expenses ExpenseUsecase,
	stockItems StockItemUsecase,
) ReportUsecase {
	return &reportUsecase{
		log:            log,
		users:          users,
		patients:       patients,
		audiograms:     audiograms,
		hearingAids:    hearingAids,
		patientDevices: patientDevices,
		appointments:   appointments,
		invoices:       invoices,
		expenses:       expenses,
		stockItems:     stockItems,
		now:            time.Now,
	}
}

func load[T any](ctx context.Context, dst *[]T, list func(context.Context) ([]T, error)) func() error {
	return func() error {
		items, err := list(ctx)
		if err != nil {
			return err
		}
		*dst = items
		return nil
	}
}

func (u *reportUsecase) Dataset(ctx context.Context) (*analytics.Dataset, error) {
	var ds analytics.Dataset

	g, gctx := errgroup.WithContext(ctx)
	g.Go(load(gctx, &ds.Users, u.users.GetAll))
	g.Go(load(gctx, &ds.Patients, u.patients.GetAll))
	g.Go(load(gctx, &ds.Audiograms, u.audiograms.GetAll))
	g.Go(load(gctx, &ds.HearingAids, u.hearingAids.GetAll))
	g.Go(load(gctx, &ds.PatientDevices, u.patientDevices.GetAll))
	g.Go(load(gctx, &ds.Appointments, u.appointments.GetAll))
	g.Go(load(gctx, &ds.Invoices, u.invoices.GetAll))
	g.Go(load(gctx, &ds.Expenses, u.expenses.GetAll))
	g.Go(load(gctx, &ds.StockItems, u.stockItems.GetAll))

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dataset: %+v", err)
		return nil, err
	}
	return &ds, nil
}

func (u *reportUsecase) Dashboard(ctx context.Context) (*analytics.Dashboard, error) {
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := analytics.BuildDashboard(*ds, u.now())
	return &dashboard, nil
}

func (u *reportUsecase) Statistics(ctx context.Context, r analytics.Range) (*analytics.Statistics, error) {
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	stats := analytics.BuildStatistics(*ds, r, u.now())
	return &stats, nil
}

func (u *reportUsecase) Export(ctx context.Context) ([]byte, error) {
	ds, err := u.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	workbook, err := service.ExportWorkbook(*ds)
	if err != nil {
		u.log.Warnf("Failed to build export workbook: %+v", err)
		return nil, err
	}
	return workbook, nil
}

func (u *reportUsecase) InvoicePDF(ctx context.Context, id string) ([]byte, error) {
	invoice, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patient, err := u.patients.GetByID(ctx, invoice.PatientID)
	if err != nil && err != ErrPatientNotFound {
		return nil, err
	}

	document, err := service.InvoicePDF(invoice, patient)
	if err != nil {
		u.log.Warnf("Failed to render invoice pdf: %+v", err)
		return nil, err
	}
	return document, nil
}
