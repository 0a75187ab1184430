package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flavour_fusion/internal/model"

	"github.com/jackc/pgx/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeRepository stores recipes in the recipes table
type RecipeRepository struct {
	db Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func decodeRecipe(id string, raw []byte) (model.Recipe, error) {
	var recipe model.Recipe
	if err := json.Unmarshal(raw, &recipe); err != nil {
		return recipe, fmt.Errorf("failed to decode recipe %s: %w", id, err)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return recipe, fmt.Errorf("invalid recipe id %q: %w", id, err)
	}
	recipe.ID = oid
	return recipe, nil
}

// FindAll returns every recipe in insertion order
func (r *RecipeRepository) FindAll(ctx context.Context) ([]model.Recipe, error) {
	rows, err := r.db.Query(ctx, `SELECT id, doc FROM recipes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := []model.Recipe{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipe, err := decodeRecipe(id, raw)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipe rows: %w", err)
	}
	return recipes, nil
}

// FindByID retrieves a recipe by its ID
func (r *RecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	var raw []byte
	var rowID string
	err := r.db.QueryRow(ctx, `SELECT id, doc FROM recipes WHERE id = $1`, id.Hex()).Scan(&rowID, &raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find recipe by ID: %w", err)
	}

	recipe, err := decodeRecipe(rowID, raw)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a new recipe and sets its ID
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	stored := *recipe
	stored.ID = primitive.NewObjectID()

	doc, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode recipe: %w", err)
	}

	if _, err := r.db.Exec(ctx, `INSERT INTO recipes (id, doc) VALUES ($1, $2)`, stored.ID.Hex(), doc); err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	recipe.ID = stored.ID
	return nil
}

// Update merges patch into the stored document
func (r *RecipeRepository) Update(ctx context.Context, id primitive.ObjectID, patch model.RecipePatch) (int64, error) {
	doc, err := json.Marshal(patch)
	if err != nil {
		return 0, fmt.Errorf("failed to encode recipe patch: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, `UPDATE recipes SET doc = doc || $1::jsonb WHERE id = $2`, doc, id.Hex())
	if err != nil {
		return 0, fmt.Errorf("failed to update recipe: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
