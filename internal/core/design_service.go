package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/cache"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/db"
	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// designService implements DesignService on a DesignRepository with a
// read-through cache for list responses.
type designService struct {
	designRepo db.DesignRepository
	cache      cache.Cache
	logger     *zap.Logger
}

// NewDesignService creates a DesignService. The cache may be a disabled
// instance; the service degrades to straight repository reads.
func NewDesignService(designRepo db.DesignRepository, c cache.Cache, logger *zap.Logger) DesignService {
	return &designService{designRepo: designRepo, cache: c, logger: logger}
}

// Create validates and persists a new design owned by the caller.
func (s *designService) Create(ctx context.Context, userID, userEmail string, req models.SaveDesignRequest) (*models.Design, error) {
	if err := validateSaveRequest(userID, req); err != nil {
		return nil, err
	}

	design := &models.Design{
		UserID:       userID,
		UserEmail:    userEmail,
		Name:         req.Name,
		Dimensions:   req.Dimensions,
		WallColor:    req.WallColor,
		FloorColor:   req.FloorColor,
		FloorType:    req.FloorType,
		FloorTexture: req.FloorTexture,
		Furniture:    req.Furniture,
		TemplateID:   req.TemplateID,
	}
	if design.Furniture == nil {
		design.Furniture = []models.FurnitureInstance{}
	}

	if _, err := s.designRepo.Create(ctx, design); err != nil {
		return nil, fmt.Errorf("failed to create design: %w", err)
	}

	s.invalidateList(ctx, userID)
	return design, nil
}

// List returns the caller's designs, most recently updated first, serving
// from the cache when possible.
func (s *designService) List(ctx context.Context, userID string) ([]*models.Design, error) {
	key := cache.DesignListKey(userID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var designs []*models.Design
		if err := json.Unmarshal([]byte(cached), &designs); err == nil {
			return designs, nil
		}
		// Undecodable entries are dropped and rebuilt from the store.
		s.logger.Warn("Dropping undecodable design-list cache entry", zap.String("userID", userID))
		if err := s.cache.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to drop design-list cache entry", zap.Error(err))
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("Design-list cache read failed", zap.String("userID", userID), zap.Error(err))
	}

	designs, err := s.designRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list designs for user '%s': %w", userID, err)
	}
	if designs == nil {
		designs = []*models.Design{}
	}

	if payload, err := json.Marshal(designs); err == nil {
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			s.logger.Warn("Design-list cache write failed", zap.String("userID", userID), zap.Error(err))
		}
	}

	return designs, nil
}

// Get returns one design after confirming ownership.
func (s *designService) Get(ctx context.Context, userID, designID string) (*models.Design, error) {
	return s.getOwned(ctx, userID, designID)
}

// Update overwrites every editable field of an owned design.
func (s *designService) Update(ctx context.Context, userID, designID string, req models.SaveDesignRequest) (*models.Design, error) {
	if err := validateSaveRequest(userID, req); err != nil {
		return nil, err
	}

	design, err := s.getOwned(ctx, userID, designID)
	if err != nil {
		return nil, err
	}

	design.Name = req.Name
	design.Dimensions = req.Dimensions
	design.WallColor = req.WallColor
	design.FloorColor = req.FloorColor
	design.FloorType = req.FloorType
	design.FloorTexture = req.FloorTexture
	design.Furniture = req.Furniture
	design.TemplateID = req.TemplateID
	if design.Furniture == nil {
		design.Furniture = []models.FurnitureInstance{}
	}

	if err := s.designRepo.Update(ctx, design); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: design '%s'", ErrDesignNotFound, designID)
		}
		return nil, fmt.Errorf("failed to update design '%s': %w", designID, err)
	}

	s.invalidateList(ctx, userID)
	return design, nil
}

// Delete removes an owned design. The ownership check runs before any store
// mutation, so a non-owned design is never touched.
func (s *designService) Delete(ctx context.Context, userID, designID string) error {
	if _, err := s.getOwned(ctx, userID, designID); err != nil {
		return err
	}

	if err := s.designRepo.Delete(ctx, designID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: design '%s'", ErrDesignNotFound, designID)
		}
		return fmt.Errorf("failed to delete design '%s': %w", designID, err)
	}

	s.invalidateList(ctx, userID)
	return nil
}

// getOwned fetches a design and enforces that userID owns it: absent
// documents are ErrDesignNotFound, foreign ones ErrForbidden.
func (s *designService) getOwned(ctx context.Context, userID, designID string) (*models.Design, error) {
	design, err := s.designRepo.GetByID(ctx, designID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: design '%s'", ErrDesignNotFound, designID)
		}
		return nil, fmt.Errorf("failed to get design '%s': %w", designID, err)
	}
	if design.UserID != userID {
		return nil, fmt.Errorf("%w: design '%s' is not owned by caller", ErrForbidden, designID)
	}
	return design, nil
}

func (s *designService) invalidateList(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, cache.DesignListKey(userID)); err != nil {
		s.logger.Warn("Failed to invalidate design-list cache", zap.String("userID", userID), zap.Error(err))
	}
}

func validateSaveRequest(userID string, req models.SaveDesignRequest) error {
	if userID == "" {
		return fmt.Errorf("%w: a signed-in user is required", ErrValidation)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: design name is required", ErrValidation)
	}
	return nil
}
