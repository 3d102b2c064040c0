package schedule

import (
	"context"
	"testing"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) Create(ctx context.Context, s *domain.AvailabilitySlot) error {
	args := m.Called(ctx, s)
	s.ID = 1
	return args.Error(0)
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.AvailabilitySlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilitySlot), args.Error(1)
}

func (m *mockSlotRepo) List(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *mockSlotRepo) ListByDay(ctx context.Context, day domain.Weekday) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *mockSlotRepo) ListAvailable(ctx context.Context) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *mockSlotRepo) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.AvailabilitySlot, error) {
	args := m.Called(ctx, technicianID)
	return args.Get(0).([]domain.AvailabilitySlot), args.Error(1)
}

func (m *mockSlotRepo) Update(ctx context.Context, s *domain.AvailabilitySlot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockSlotRepo) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockSlotRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockSlotRepo) Attach(ctx context.Context, technicianID, slotID int64) error {
	args := m.Called(ctx, technicianID, slotID)
	return args.Error(0)
}

func (m *mockSlotRepo) Detach(ctx context.Context, technicianID, slotID int64) error {
	args := m.Called(ctx, technicianID, slotID)
	return args.Error(0)
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

func TestService_CreateSlot_Success(t *testing.T) {
	slots := new(mockSlotRepo)
	actors := new(mockActorGetter)

	slots.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(slots, actors)

	slot, err := svc.CreateSlot(context.Background(), CreateSlotRequest{
		DayOfWeek: "monday",
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, slot.Status)
}

func TestService_CreateSlot_BadWindow(t *testing.T) {
	slots := new(mockSlotRepo)
	actors := new(mockActorGetter)

	svc := NewService(slots, actors)

	_, err := svc.CreateSlot(context.Background(), CreateSlotRequest{
		DayOfWeek: "monday",
		StartTime: "12:00",
		EndTime:   "09:00",
	})

	var v *apperr.ValidationError
	assert.ErrorAs(t, err, &v)
	slots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_AttachTechnician_NotATechnician(t *testing.T) {
	slots := new(mockSlotRepo)
	actors := new(mockActorGetter)

	slots.On("GetByID", mock.Anything, int64(2)).Return(&domain.AvailabilitySlot{ID: 2}, nil)
	actors.On("GetByID", mock.Anything, int64(9)).Return(&domain.Actor{ID: 9, Role: domain.RoleCustomer}, nil)

	svc := NewService(slots, actors)

	err := svc.AttachTechnician(context.Background(), 2, 9)

	var v *apperr.ValidationError
	assert.ErrorAs(t, err, &v)
	slots.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
}
