package catalog

import (
	"context"
	"testing"

	"fieldserve/internal/domain"
	"fieldserve/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	s.ID = 1
	return args.Error(0)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByName(ctx context.Context, name string) (*domain.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *mockServiceRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) ListByCategory(ctx context.Context, c domain.ServiceCategory) ([]domain.Service, error) {
	args := m.Called(ctx, c)
	return args.Get(0).([]domain.Service), args.Error(1)
}

func (m *mockServiceRepo) CountByCategory(ctx context.Context, c domain.ServiceCategory) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, s *domain.Service) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *mockServiceRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockOfferingRepo struct {
	mock.Mock
}

func (m *mockOfferingRepo) Create(ctx context.Context, o *domain.Offering) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOfferingRepo) Get(ctx context.Context, technicianID, serviceID int64) (*domain.Offering, error) {
	args := m.Called(ctx, technicianID, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offering), args.Error(1)
}

func (m *mockOfferingRepo) Exists(ctx context.Context, technicianID, serviceID int64) (bool, error) {
	args := m.Called(ctx, technicianID, serviceID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOfferingRepo) List(ctx context.Context) ([]domain.Offering, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Offering), args.Error(1)
}

func (m *mockOfferingRepo) ListByTechnician(ctx context.Context, technicianID int64) ([]domain.Offering, error) {
	args := m.Called(ctx, technicianID)
	return args.Get(0).([]domain.Offering), args.Error(1)
}

func (m *mockOfferingRepo) UpdateBaseRate(ctx context.Context, technicianID, serviceID int64, rate float64) error {
	args := m.Called(ctx, technicianID, serviceID, rate)
	return args.Error(0)
}

func (m *mockOfferingRepo) Delete(ctx context.Context, technicianID, serviceID int64) error {
	args := m.Called(ctx, technicianID, serviceID)
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

func TestService_CreateService_DuplicateName(t *testing.T) {
	services := new(mockServiceRepo)
	offerings := new(mockOfferingRepo)
	actors := new(mockActorGetter)

	services.On("ExistsByName", mock.Anything, "Pipe repair").Return(true, nil)

	svc := NewService(services, offerings, actors)

	_, err := svc.CreateService(context.Background(), CreateServiceRequest{
		Name:     "Pipe repair",
		Category: "plumbing",
	})

	assert.True(t, apperr.IsConflict(err))
}

func TestService_CreateOffering_Success(t *testing.T) {
	services := new(mockServiceRepo)
	offerings := new(mockOfferingRepo)
	actors := new(mockActorGetter)

	actors.On("GetByID", mock.Anything, int64(3)).Return(&domain.Actor{ID: 3, Role: domain.RoleTechnician}, nil)
	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{ID: 5}, nil)
	offerings.On("Exists", mock.Anything, int64(3), int64(5)).Return(false, nil)
	offerings.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(services, offerings, actors)

	o, err := svc.CreateOffering(context.Background(), CreateOfferingRequest{
		TechnicianID: 3,
		ServiceID:    5,
		BaseRate:     80,
	})

	assert.NoError(t, err)
	assert.Equal(t, float64(80), o.BaseRate)
	offerings.AssertExpectations(t)
}

func TestService_CreateOffering_DuplicatePair(t *testing.T) {
	services := new(mockServiceRepo)
	offerings := new(mockOfferingRepo)
	actors := new(mockActorGetter)

	actors.On("GetByID", mock.Anything, int64(3)).Return(&domain.Actor{ID: 3, Role: domain.RoleTechnician}, nil)
	services.On("GetByID", mock.Anything, int64(5)).Return(&domain.Service{ID: 5}, nil)
	offerings.On("Exists", mock.Anything, int64(3), int64(5)).Return(true, nil)

	svc := NewService(services, offerings, actors)

	_, err := svc.CreateOffering(context.Background(), CreateOfferingRequest{
		TechnicianID: 3,
		ServiceID:    5,
	})

	assert.True(t, apperr.IsConflict(err))
}

func TestService_CreateOffering_MissingService(t *testing.T) {
	services := new(mockServiceRepo)
	offerings := new(mockOfferingRepo)
	actors := new(mockActorGetter)

	actors.On("GetByID", mock.Anything, int64(3)).Return(&domain.Actor{ID: 3, Role: domain.RoleTechnician}, nil)
	services.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(services, offerings, actors)

	_, err := svc.CreateOffering(context.Background(), CreateOfferingRequest{
		TechnicianID: 3,
		ServiceID:    99,
	})

	assert.True(t, apperr.IsNotFound(err))
}
