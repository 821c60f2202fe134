package check_schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CMS-SchedulingService/internal/domain"
	"github.com/m04kA/CMS-SchedulingService/pkg/ptr"
)

type fakeBookingRepo struct {
	existing []*domain.Booking
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

type fakeTxManager struct{}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var checkDate = time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)

func checkRequest() *Request {
	return &Request{
		StaffID:   ptr.Ptr(int64(7)),
		Date:      checkDate,
		StartTime: "10:00",
		EndTime:   "12:00",
	}
}

func TestExecute_FreeInterval(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeUnavailRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), checkRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.ConflictBookingIDs)
	assert.Nil(t, resp.UnavailableReason)
}

func TestExecute_ConflictReported(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:        4,
				StaffID:   ptr.Ptr(int64(7)),
				Date:      checkDate,
				StartTime: "11:00",
				EndTime:   "13:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakeUnavailRepo{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), checkRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, []int64{4}, resp.ConflictBookingIDs)
}

func TestExecute_ExcludedBookingIgnored(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{
				ID:        4,
				StaffID:   ptr.Ptr(int64(7)),
				Date:      checkDate,
				StartTime: "10:00",
				EndTime:   "12:00",
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := NewUseCase(repo, &fakeUnavailRepo{}, fakeTxManager{}, nopLogger{})

	req := checkRequest()
	req.ExcludeBookingID = ptr.Ptr(int64(4))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Available)
}

func TestExecute_UnavailableWindow(t *testing.T) {
	unavail := &fakeUnavailRepo{
		windows: []*domain.UnavailabilityWindow{
			{StaffID: ptr.Ptr(int64(7)), StartDate: checkDate, FullDay: true, Reason: ptr.Ptr("больничный")},
		},
	}
	uc := NewUseCase(&fakeBookingRepo{}, unavail, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), checkRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.NotNil(t, resp.UnavailableReason)
	assert.Contains(t, *resp.UnavailableReason, "больничный")
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeUnavailRepo{}, fakeTxManager{}, nopLogger{})

	t.Run("both staff and team set", func(t *testing.T) {
		req := checkRequest()
		req.TeamID = ptr.Ptr(int64(2))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("end before start with endDate equal to date", func(t *testing.T) {
		req := checkRequest()
		req.EndDate = ptr.Ptr(req.Date)
		req.StartTime = "12:00"
		req.EndTime = "10:00"

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
