package review

import (
	"context"
	"testing"

	"fieldserve/internal/domain"
	"fieldserve/internal/events"
	"fieldserve/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	rv.ID = 1
	return args.Error(0)
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ExistsByReservation(ctx context.Context, reservationID int64) (bool, error) {
	args := m.Called(ctx, reservationID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByStatus(ctx context.Context, status domain.ReviewStatus) ([]domain.Review, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByRating(ctx context.Context, rating int) ([]domain.Review, error) {
	args := m.Called(ctx, rating)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Review, error) {
	args := m.Called(ctx, technicianID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	return args.Error(0)
}

type mockReservationGetter struct {
	mock.Mock
}

func (m *mockReservationGetter) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type mockActorGetter struct {
	mock.Mock
}

func (m *mockActorGetter) GetByID(ctx context.Context, id int64) (*domain.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(e events.Event) {
	m.Called(e)
}

func TestService_Create_ReservationNotCompleted(t *testing.T) {
	reviews := new(mockReviewRepo)
	reservations := new(mockReservationGetter)
	bus := new(mockPublisher)

	reservations.On("GetByID", mock.Anything, int64(9)).Return(&domain.Reservation{
		ID: 9, Status: domain.ReservationConfirmed,
	}, nil)

	svc := NewService(reviews, reservations, new(mockActorGetter), bus)

	_, err := svc.Create(context.Background(), CreateReviewRequest{ReservationID: 9, Rating: 5})

	assert.True(t, apperr.IsInvalidState(err))
	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateReview(t *testing.T) {
	reviews := new(mockReviewRepo)
	reservations := new(mockReservationGetter)

	reservations.On("GetByID", mock.Anything, int64(9)).Return(&domain.Reservation{
		ID: 9, Status: domain.ReservationCompleted,
	}, nil)
	reviews.On("ExistsByReservation", mock.Anything, int64(9)).Return(true, nil)

	svc := NewService(reviews, reservations, new(mockActorGetter), new(mockPublisher))

	_, err := svc.Create(context.Background(), CreateReviewRequest{ReservationID: 9, Rating: 4})

	assert.True(t, apperr.IsConflict(err))
}

func TestService_Create_PublishesEvent(t *testing.T) {
	reviews := new(mockReviewRepo)
	reservations := new(mockReservationGetter)
	actors := new(mockActorGetter)
	bus := new(mockPublisher)

	reservations.On("GetByID", mock.Anything, int64(9)).Return(&domain.Reservation{
		ID: 9, TechnicianID: 2, Status: domain.ReservationCompleted,
	}, nil)
	reviews.On("ExistsByReservation", mock.Anything, int64(9)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	actors.On("GetByID", mock.Anything, int64(2)).Return(&domain.Actor{ID: 2, Email: "tech@example.com"}, nil)
	bus.On("Publish", mock.MatchedBy(func(e events.Event) bool {
		p, ok := e.Payload.(events.ReviewCreated)
		return ok && p.TechnicianEmail == "tech@example.com" && p.Rating == 5
	})).Return()

	svc := NewService(reviews, reservations, actors, bus)

	rv, err := svc.Create(context.Background(), CreateReviewRequest{ReservationID: 9, Rating: 5, Comment: "great"})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReviewActive, rv.Status)
	bus.AssertExpectations(t)
}

func TestService_Update_MarksEdited(t *testing.T) {
	reviews := new(mockReviewRepo)

	reviews.On("GetByID", mock.Anything, int64(1)).Return(&domain.Review{
		ID: 1, Rating: 3, Status: domain.ReviewActive,
	}, nil)
	reviews.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(reviews, new(mockReservationGetter), new(mockActorGetter), new(mockPublisher))

	rv, err := svc.Update(context.Background(), 1, UpdateReviewRequest{Comment: "better", Rating: 4})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReviewEdited, rv.Status)
	assert.Equal(t, 4, rv.Rating)
}

func TestService_AverageRating_Rounding(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"half up", []int{5, 4}, 4.5},
		{"third", []int{4, 4, 5}, 4.3},
		{"single", []int{3}, 3.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := new(mockReviewRepo)
			rows := make([]domain.Review, 0, len(tc.ratings))
			for _, r := range tc.ratings {
				rows = append(rows, domain.Review{Rating: r, Status: domain.ReviewActive})
			}
			reviews.On("ListByTechnician", mock.Anything, int64(2)).Return(rows, nil)

			svc := NewService(reviews, new(mockReservationGetter), new(mockActorGetter), new(mockPublisher))

			assert.Equal(t, tc.want, svc.AverageRatingForTechnician(context.Background(), 2))
		})
	}
}

func TestService_AverageRating_SkipsDeleted(t *testing.T) {
	reviews := new(mockReviewRepo)

	reviews.On("ListByTechnician", mock.Anything, int64(2)).Return([]domain.Review{
		{Rating: 5, Status: domain.ReviewActive},
		{Rating: 1, Status: domain.ReviewDeleted},
	}, nil)

	svc := NewService(reviews, new(mockReservationGetter), new(mockActorGetter), new(mockPublisher))

	assert.Equal(t, 5.0, svc.AverageRatingForTechnician(context.Background(), 2))
}

func TestService_AverageRating_NoReviews(t *testing.T) {
	reviews := new(mockReviewRepo)

	reviews.On("ListByTechnician", mock.Anything, int64(2)).Return([]domain.Review{}, nil)

	svc := NewService(reviews, new(mockReservationGetter), new(mockActorGetter), new(mockPublisher))

	assert.Equal(t, 0.0, svc.AverageRatingForTechnician(context.Background(), 2))
}
