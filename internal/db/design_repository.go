package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

const designsCollection = "designs"

// firestoreDesignRepository implements DesignRepository on Firestore.
// Designs live in one top-level collection filtered by the owner's userId
// field; ownership enforcement happens in the service layer.
type firestoreDesignRepository struct {
	client *firestore.Client
}

// NewFirestoreDesignRepository creates a Firestore-backed DesignRepository.
func NewFirestoreDesignRepository(client *firestore.Client) DesignRepository {
	return &firestoreDesignRepository{client: client}
}

// Create adds a new design document with an auto-generated ID and returns it.
func (r *firestoreDesignRepository) Create(ctx context.Context, design *models.Design) (string, error) {
	docRef := r.client.Collection(designsCollection).NewDoc()
	design.ID = docRef.ID

	if _, err := docRef.Create(ctx, design); err != nil {
		return "", fmt.Errorf("failed to create design: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a design document by its ID.
func (r *firestoreDesignRepository) GetByID(ctx context.Context, designID string) (*models.Design, error) {
	if designID == "" {
		return nil, errors.New("designID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(designsCollection).Doc(designID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("design with ID '%s' not found: %w", designID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get design with ID '%s': %w", designID, err)
	}

	var design models.Design
	if err := docSnap.DataTo(&design); err != nil {
		return nil, fmt.Errorf("failed to decode design data for ID '%s': %w", designID, err)
	}
	design.ID = docSnap.Ref.ID

	return &design, nil
}

// ListByUserID retrieves all designs owned by a user, most recently updated
// first.
func (r *firestoreDesignRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Design, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for ListByUserID operation")
	}

	iter := r.client.Collection(designsCollection).
		Where("userId", "==", userID).
		OrderBy("updatedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var designs []*models.Design
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate designs for user '%s': %w", userID, err)
		}

		var design models.Design
		if err := doc.DataTo(&design); err != nil {
			return nil, fmt.Errorf("failed to decode design data (ID: %s): %w", doc.Ref.ID, err)
		}
		design.ID = doc.Ref.ID
		designs = append(designs, &design)
	}

	return designs, nil
}

// Update overwrites the editable fields of an existing design. createdAt
// and ownership fields are left untouched; updatedAt is refreshed server
// side.
func (r *firestoreDesignRepository) Update(ctx context.Context, design *models.Design) error {
	if design.ID == "" {
		return errors.New("design ID cannot be empty for Update operation")
	}

	updates := []firestore.Update{
		{Path: "name", Value: design.Name},
		{Path: "dimensions", Value: design.Dimensions},
		{Path: "wallColor", Value: design.WallColor},
		{Path: "floorColor", Value: design.FloorColor},
		{Path: "floorType", Value: design.FloorType},
		{Path: "floorTexture", Value: design.FloorTexture},
		{Path: "furniture", Value: design.Furniture},
		{Path: "templateId", Value: design.TemplateID},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}

	_, err := r.client.Collection(designsCollection).Doc(design.ID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("design with ID '%s' not found for update: %w", design.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update design with ID '%s': %w", design.ID, err)
	}
	return nil
}

// Delete removes a design document.
func (r *firestoreDesignRepository) Delete(ctx context.Context, designID string) error {
	if designID == "" {
		return errors.New("designID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(designsCollection).Doc(designID).Delete(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("design with ID '%s' not found for deletion: %w", designID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete design with ID '%s': %w", designID, err)
	}
	return nil
}
