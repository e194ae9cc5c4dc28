package outbox

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

type fakeOutboxRepo struct {
	entries map[string]*models.ProfileMirrorEntry
	nextID  int
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{entries: map[string]*models.ProfileMirrorEntry{}}
}

func (r *fakeOutboxRepo) Enqueue(_ context.Context, entry *models.ProfileMirrorEntry) (string, error) {
	r.nextID++
	entry.ID = fmt.Sprintf("entry-%d", r.nextID)
	if entry.Status == "" {
		entry.Status = models.MirrorStatusPending
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return entry.ID, nil
}

func (r *fakeOutboxRepo) ListPending(_ context.Context, limit int) ([]*models.ProfileMirrorEntry, error) {
	var out []*models.ProfileMirrorEntry
	for _, e := range r.entries {
		if e.Status == models.MirrorStatusPending {
			cp := *e
			out = append(out, &cp)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeOutboxRepo) Update(_ context.Context, entry *models.ProfileMirrorEntry) error {
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	upsertErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, uid string) (*models.User, error) {
	u, ok := r.users[uid]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Upsert(_ context.Context, user *models.User) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func enqueue(t *testing.T, repo *fakeOutboxRepo, uid string) string {
	t.Helper()
	id, err := repo.Enqueue(context.Background(), &models.ProfileMirrorEntry{
		UID:         uid,
		Email:       uid + "@example.com",
		DisplayName: "Test User",
		Status:      models.MirrorStatusPending,
	})
	require.NoError(t, err)
	return id
}

func TestDrainWritesMirrorAndMarksDone(t *testing.T) {
	outboxRepo := newFakeOutboxRepo()
	userRepo := newFakeUserRepo()
	id := enqueue(t, outboxRepo, "uid-1")

	w := NewWorker(outboxRepo, userRepo, "@every 1m", 5, zap.NewNop())
	w.Drain(context.Background())

	user, err := userRepo.GetByID(context.Background(), "uid-1")
	require.NoError(t, err)
	assert.Equal(t, "uid-1@example.com", user.Email)
	assert.Equal(t, "Test User", user.DisplayName)

	entry := outboxRepo.entries[id]
	assert.Equal(t, models.MirrorStatusDone, entry.Status)
	assert.Empty(t, entry.LastError)
}

func TestDrainIncrementsAttemptsOnFailure(t *testing.T) {
	outboxRepo := newFakeOutboxRepo()
	userRepo := newFakeUserRepo()
	userRepo.upsertErr = errors.New("firestore unavailable")
	id := enqueue(t, outboxRepo, "uid-1")

	w := NewWorker(outboxRepo, userRepo, "@every 1m", 5, zap.NewNop())
	w.Drain(context.Background())

	entry := outboxRepo.entries[id]
	assert.Equal(t, models.MirrorStatusPending, entry.Status)
	assert.Equal(t, 1, entry.Attempts)
	assert.Contains(t, entry.LastError, "firestore unavailable")
}

func TestDrainMarksFailedAtMaxAttempts(t *testing.T) {
	outboxRepo := newFakeOutboxRepo()
	userRepo := newFakeUserRepo()
	userRepo.upsertErr = errors.New("firestore unavailable")
	id := enqueue(t, outboxRepo, "uid-1")

	w := NewWorker(outboxRepo, userRepo, "@every 1m", 2, zap.NewNop())
	w.Drain(context.Background())
	w.Drain(context.Background())

	entry := outboxRepo.entries[id]
	assert.Equal(t, models.MirrorStatusFailed, entry.Status)
	assert.Equal(t, 2, entry.Attempts)

	// Failed entries are no longer drained.
	userRepo.upsertErr = nil
	w.Drain(context.Background())
	_, err := userRepo.GetByID(context.Background(), "uid-1")
	assert.Error(t, err)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	w := NewWorker(newFakeOutboxRepo(), newFakeUserRepo(), "not a schedule", 5, zap.NewNop())
	assert.Error(t, w.Start())
}
