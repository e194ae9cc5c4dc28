package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

const profileOutboxCollection = "profile_outbox"

// firestoreOutboxRepository implements OutboxRepository on Firestore.
type firestoreOutboxRepository struct {
	client *firestore.Client
}

// NewFirestoreOutboxRepository creates a Firestore-backed OutboxRepository.
func NewFirestoreOutboxRepository(client *firestore.Client) OutboxRepository {
	return &firestoreOutboxRepository{client: client}
}

// Enqueue records a failed profile-mirror write for later retry.
func (r *firestoreOutboxRepository) Enqueue(ctx context.Context, entry *models.ProfileMirrorEntry) (string, error) {
	docRef := r.client.Collection(profileOutboxCollection).NewDoc()
	entry.ID = docRef.ID
	if entry.Status == "" {
		entry.Status = models.MirrorStatusPending
	}

	if _, err := docRef.Create(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to enqueue outbox entry for uid '%s': %w", entry.UID, err)
	}
	return docRef.ID, nil
}

// ListPending returns up to limit entries still awaiting a successful retry,
// oldest first.
func (r *firestoreOutboxRepository) ListPending(ctx context.Context, limit int) ([]*models.ProfileMirrorEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	iter := r.client.Collection(profileOutboxCollection).
		Where("status", "==", models.MirrorStatusPending).
		OrderBy("createdAt", firestore.Asc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var entries []*models.ProfileMirrorEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate pending outbox entries: %w", err)
		}

		var entry models.ProfileMirrorEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode outbox entry (ID: %s): %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, &entry)
	}

	return entries, nil
}

// Update persists the entry's status, attempt counter and last error.
func (r *firestoreOutboxRepository) Update(ctx context.Context, entry *models.ProfileMirrorEntry) error {
	if entry.ID == "" {
		return errors.New("outbox entry ID cannot be empty for Update operation")
	}
	_, err := r.client.Collection(profileOutboxCollection).Doc(entry.ID).Set(ctx, entry, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update outbox entry '%s': %w", entry.ID, err)
	}
	return nil
}
