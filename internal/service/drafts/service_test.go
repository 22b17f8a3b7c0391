package drafts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evelo00/barbershop-Front-sub000/internal/domain"
	draftRepo "github.com/Evelo00/barbershop-Front-sub000/internal/infra/storage/draft"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/ptr"
	"github.com/Evelo00/barbershop-Front-sub000/pkg/types"
)

type fakeRepo struct {
	drafts map[string]*domain.BookingDraft
	err    error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{drafts: make(map[string]*domain.BookingDraft)}
}

func (f *fakeRepo) Create(_ context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	stored := *d
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.drafts[d.ID] = &stored
	return &stored, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.BookingDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.drafts[id]
	if !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	return d, nil
}

func (f *fakeRepo) Update(_ context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.drafts[d.ID]; !ok {
		return nil, draftRepo.ErrDraftNotFound
	}
	stored := *d
	stored.UpdatedAt = time.Now()
	f.drafts[d.ID] = &stored
	return &stored, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.drafts[id]; !ok {
		return draftRepo.ErrDraftNotFound
	}
	delete(f.drafts, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_CreateAndGet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, noopLogger{})

	created, err := svc.Create(context.Background())
	require.NoError(t, err)
	require.NoError(t, uuid.Validate(created.ID))
	assert.False(t, created.IsComplete())

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestService_Update(t *testing.T) {
	t.Run("step by step fills the draft", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopLogger{})
		created, err := svc.Create(context.Background())
		require.NoError(t, err)

		date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
		updated, err := svc.Update(context.Background(), &domain.BookingDraft{
			ID:          created.ID,
			ServiceID:   ptr.Ptr(int64(1)),
			Date:        &date,
			StartTime:   ptr.Ptr(types.TimeString("10:00")),
			ClientName:  ptr.Ptr("Ivan"),
			ClientPhone: ptr.Ptr("+79990001122"),
		})

		require.NoError(t, err)
		assert.True(t, updated.IsComplete())
	})

	t.Run("rejects invalid start time", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopLogger{})
		created, err := svc.Create(context.Background())
		require.NoError(t, err)

		_, err = svc.Update(context.Background(), &domain.BookingDraft{
			ID:        created.ID,
			StartTime: ptr.Ptr(types.TimeString("25:99")),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown draft", func(t *testing.T) {
		svc := NewService(newFakeRepo(), noopLogger{})

		_, err := svc.Update(context.Background(), &domain.BookingDraft{ID: uuid.NewString()})

		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}

func TestService_Clear(t *testing.T) {
	t.Run("removes the draft", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, noopLogger{})
		created, err := svc.Create(context.Background())
		require.NoError(t, err)

		require.NoError(t, svc.Clear(context.Background(), created.ID))

		_, err = svc.Get(context.Background(), created.ID)
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := NewService(newFakeRepo(), noopLogger{})

		err := svc.Clear(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_RepositoryFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo, noopLogger{})

	_, err := svc.Create(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}
