package repository

import (
	"context"
	"errors"

	"flavour_fusion/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateEmail is returned when an insert violates the unique email index
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// FindByEmail returns nil, nil when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// RecipeRepository defines operations for recipe data
type RecipeRepository interface {
	FindAll(ctx context.Context) ([]model.Recipe, error)
	// FindByID returns nil, nil when the recipe does not exist.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	// Update applies patch to one recipe and reports how many documents matched the id.
	Update(ctx context.Context, id primitive.ObjectID, patch model.RecipePatch) (int64, error)
}
