package mongodb

import (
	"context"
	"errors"
	"fmt"

	"flavour_fusion/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecipeRepository stores recipes in the recipes collection
type RecipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *mongo.Database) *RecipeRepository {
	return &RecipeRepository{coll: db.Collection(recipesCollection)}
}

// FindAll returns every recipe in natural order
func (r *RecipeRepository) FindAll(ctx context.Context) ([]model.Recipe, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer cursor.Close(ctx)

	recipes := []model.Recipe{}
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipes: %w", err)
	}
	return recipes, nil
}

// FindByID retrieves a recipe by its ObjectID
func (r *RecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find recipe by ID: %w", err)
	}
	return &recipe, nil
}

// Create inserts a new recipe and sets its ID
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	res, err := r.coll.InsertOne(ctx, recipe)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		recipe.ID = id
	}
	return nil
}

// Update sets the patched fields on one recipe
func (r *RecipeRepository) Update(ctx context.Context, id primitive.ObjectID, patch model.RecipePatch) (int64, error) {
	set := bson.M{}
	for k, v := range patch {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return 0, fmt.Errorf("failed to update recipe: %w", err)
	}
	return res.MatchedCount, nil
}
