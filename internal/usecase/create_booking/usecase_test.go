package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/CMS-SchedulingService/internal/infra/storage/booking"
	"github.com/m04kA/CMS-SchedulingService/internal/service/pricing"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 1)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.created = append(f.created, b)
	return b, nil
}

func (f *fakeBookingRepo) GetByAssigneeWithFilter(_ context.Context, _ domain.AssigneeBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeUnavailRepo struct {
	windows []*domain.UnavailabilityWindow
}

func (f *fakeUnavailRepo) GetForAssigneeInRange(_ context.Context, _, _ *int64, _, _ time.Time) ([]*domain.UnavailabilityWindow, error) {
	return f.windows, nil
}

type fakeResolver struct {
	err error
}

func (f *fakeResolver) Resolve(_ context.Context, req *pricing.Request) (*pricing.Resolution, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pricing.Resolution{
		Price:   2500,
		JobName: req.JobName,
	}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow  = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	testDate = time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
)

func newTestUseCase(repo *fakeBookingRepo, unavail *fakeUnavailRepo, resolver *fakeResolver) *UseCase {
	uc := NewUseCase(repo, unavail, resolver, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		CustomerID:  42,
		StaffID:     ptr.Ptr(int64(7)),
		Date:        testDate,
		StartTime:   "10:00",
		EndTime:     "12:00",
		PriceMode:   "custom",
		JobName:     ptr.Ptr("Мойка витрин"),
		CustomPrice: ptr.Ptr(2500.0),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeUnavailRepo{}, &fakeResolver{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 2500.0, resp.ResolvedPrice)
	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusPending, repo.created[0].Status)
}

func TestExecute_InputValidation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnavailRepo{}, &fakeResolver{})

	t.Run("both staff and team set", func(t *testing.T) {
		req := validRequest()
		req.TeamID = ptr.Ptr(int64(3))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("no assignee", func(t *testing.T) {
		req := validRequest()
		req.StaffID = nil

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("end before start within one day", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "12:00"
		req.EndTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("end before start with endDate equal to date", func(t *testing.T) {
		// EndDate, совпадающий с датой, не делает работу многодневной
		req := validRequest()
		req.EndDate = ptr.Ptr(req.Date)
		req.StartTime = "12:00"
		req.EndTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("date in the past", func(t *testing.T) {
		req := validRequest()
		req.Date = testNow.AddDate(0, 0, -1)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown price mode", func(t *testing.T) {
		req := validRequest()
		req.PriceMode = "discount"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_PricingErrors(t *testing.T) {
	t.Run("missing package", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnavailRepo{}, &fakeResolver{err: pricing.ErrMissingPackage})

		req := validRequest()
		req.PriceMode = "package"
		req.JobName = nil
		req.CustomPrice = nil

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingPackage)
	})

	t.Run("no matching tier", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeUnavailRepo{}, &fakeResolver{err: pricing.ErrNoMatchingTier})

		req := validRequest()
		req.PriceMode = "package"
		req.PackageID = ptr.Ptr(int64(5))
		req.JobName = nil
		req.CustomPrice = nil

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNoMatchingTier)
	})
}

func TestExecute_AssigneeUnavailable(t *testing.T) {
	unavail := &fakeUnavailRepo{
		windows: []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(7)), StartDate: testDate, FullDay: true, Reason: ptr.Ptr("отпуск")},
		},
	}
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, unavail, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAssigneeUnavailable)
	assert.Empty(t, repo.created)
}

func TestExecute_ScheduleConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:        99,
				StaffID:   ptr.Ptr(int64(7)),
				Date:      testDate,
				StartTime: "11:00",
				EndTime:   "13:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &fakeUnavailRepo{}, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
	assert.Empty(t, repo.created)
}

func TestExecute_TouchingIntervalsAllowed(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:        99,
				StaffID:   ptr.Ptr(int64(7)),
				Date:      testDate,
				StartTime: "12:00",
				EndTime:   "14:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, &fakeUnavailRepo{}, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestExecute_SlotTakenAtCommit(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeUnavailRepo{}, &fakeResolver{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrScheduleConflict)
}
