package core

import (
	"context"

	"github.com/HGWhappuarachchi/FurnishDesignStudio/internal/models"
)

// AuthService covers signup, login and profile reads against the identity
// provider and the profile mirror.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (string, error)
	Login(ctx context.Context, idToken string) (*models.LoginResponse, error)
	Profile(ctx context.Context, uid string) (*models.UserProfile, error)
}

// DesignService covers design CRUD with per-user ownership enforcement.
type DesignService interface {
	Create(ctx context.Context, userID, userEmail string, req models.SaveDesignRequest) (*models.Design, error)
	List(ctx context.Context, userID string) ([]*models.Design, error)
	Get(ctx context.Context, userID, designID string) (*models.Design, error)
	Update(ctx context.Context, userID, designID string, req models.SaveDesignRequest) (*models.Design, error)
	Delete(ctx context.Context, userID, designID string) error
}

// EditorService implements the stateless editor operations: template
// application, catalog placement, drag repositioning, recoloring and the 3D
// viewer conversion. All of it is pure computation over the static catalog
// and the units package, so clients on any stack produce identical designs.
type EditorService interface {
	ApplyTemplate(templateID string) (*models.EditorState, error)
	AddFurniture(itemID string) (*models.FurnitureInstance, error)
	MoveFurniture(furniture []models.FurnitureInstance, itemID string, roomX, roomY float64) ([]models.FurnitureInstance, error)
	RecolorFurniture(furniture []models.FurnitureInstance, itemID, color string) ([]models.FurnitureInstance, error)
	Viewer(req models.ViewerRequest) *models.ViewerPayload
}
