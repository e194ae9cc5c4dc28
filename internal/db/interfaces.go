package db

import (
	"context"
	"errors"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("document not found")

// UserRepository defines storage operations for profile mirror documents.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, uid string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

// DesignRepository defines storage operations for design documents.
type DesignRepository interface {
	Create(ctx context.Context, design *models.Design) (string, error)
	GetByID(ctx context.Context, designID string) (*models.Design, error)
	ListByUserID(ctx context.Context, userID string) ([]*models.Design, error)
	Update(ctx context.Context, design *models.Design) error
	Delete(ctx context.Context, designID string) error
}

// OutboxRepository defines storage operations for profile-mirror outbox
// entries.
type OutboxRepository interface {
	Enqueue(ctx context.Context, entry *models.ProfileMirrorEntry) (string, error)
	ListPending(ctx context.Context, limit int) ([]*models.ProfileMirrorEntry, error)
	Update(ctx context.Context, entry *models.ProfileMirrorEntry) error
}
