package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	servicestore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeServiceRepo struct {
	service   *domain.Service
	getErr    error
	deleteErr error
	deleted   bool
	updated   *domain.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	out := *svc
	out.ID = 5
	return &out, nil
}

func (f *fakeServiceRepo) GetByIDAndBusiness(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.getErr
}

func (f *fakeServiceRepo) ListByBusiness(_ context.Context, _ int64) ([]*domain.Service, error) {
	if f.service == nil {
		return nil, nil
	}
	return []*domain.Service{f.service}, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc *domain.Service) error {
	f.updated = svc
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, _, _ int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = true
	return nil
}

type fakeAppointmentRepo struct {
	activeCount int64
}

func (f *fakeAppointmentRepo) CountActiveByService(_ context.Context, _ int64) (int64, error) {
	return f.activeCount, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func haircut() *domain.Service {
	return &domain.Service{ID: 5, BusinessID: 1, Name: "Haircut", Price: 50, Duration: 60}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates service", func(t *testing.T) {
		svc := NewService(&fakeServiceRepo{}, &fakeAppointmentRepo{}, noopLogger{})

		resp, err := svc.Create(ctx, models.CreateServiceRequest{
			BusinessID:      1,
			Name:            "  Haircut  ",
			Price:           50,
			DurationMinutes: 60,
		})
		require.NoError(t, err)
		assert.Equal(t, "Haircut", resp.Name)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("validation", func(t *testing.T) {
		svc := NewService(&fakeServiceRepo{}, &fakeAppointmentRepo{}, noopLogger{})

		cases := map[string]models.CreateServiceRequest{
			"empty name":     {BusinessID: 1, Name: "  ", Price: 50, DurationMinutes: 60},
			"negative price": {BusinessID: 1, Name: "Haircut", Price: -1, DurationMinutes: 60},
			"zero duration":  {BusinessID: 1, Name: "Haircut", Price: 50, DurationMinutes: 0},
		}
		for name, req := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := svc.Create(ctx, req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps other fields", func(t *testing.T) {
		repo := &fakeServiceRepo{service: haircut()}
		svc := NewService(repo, &fakeAppointmentRepo{}, noopLogger{})

		resp, err := svc.Update(ctx, models.UpdateServiceRequest{
			ID:         5,
			BusinessID: 1,
			Price:      ptr.Ptr(65.0),
		})
		require.NoError(t, err)
		assert.Equal(t, 65.0, resp.Price)
		assert.Equal(t, "Haircut", resp.Name)
		assert.Equal(t, 60, resp.DurationMinutes)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := &fakeServiceRepo{getErr: servicestore.ErrServiceNotFound}
		svc := NewService(repo, &fakeAppointmentRepo{}, noopLogger{})

		_, err := svc.Update(ctx, models.UpdateServiceRequest{ID: 99, BusinessID: 1})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes unused service", func(t *testing.T) {
		repo := &fakeServiceRepo{service: haircut()}
		svc := NewService(repo, &fakeAppointmentRepo{activeCount: 0}, noopLogger{})

		require.NoError(t, svc.Delete(ctx, 5, 1))
		assert.True(t, repo.deleted)
	})

	t.Run("active appointments block deletion", func(t *testing.T) {
		repo := &fakeServiceRepo{service: haircut()}
		svc := NewService(repo, &fakeAppointmentRepo{activeCount: 3}, noopLogger{})

		err := svc.Delete(ctx, 5, 1)
		assert.ErrorIs(t, err, ErrServiceInUse)
		assert.False(t, repo.deleted)
	})

	t.Run("unknown service", func(t *testing.T) {
		repo := &fakeServiceRepo{getErr: servicestore.ErrServiceNotFound}
		svc := NewService(repo, &fakeAppointmentRepo{}, noopLogger{})

		assert.ErrorIs(t, svc.Delete(ctx, 99, 1), ErrServiceNotFound)
	})
}
