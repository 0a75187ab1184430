package service

import (
	"context"
	"fmt"
	"time"

	"flavour_fusion/internal/config"
	"flavour_fusion/internal/model"
	"flavour_fusion/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeService defines operations for recipes
type RecipeService interface {
	List(ctx context.Context) ([]model.Recipe, error)
	GetByID(ctx context.Context, id string) (*model.Recipe, error)
	Create(ctx context.Context, fields map[string]any) error
	Update(ctx context.Context, id string, fields map[string]any) error
}

type recipeService struct {
	repo   repository.RecipeRepository
	images config.Images
	now    func() time.Time
}

// NewRecipeService creates a new RecipeService. New recipes get the placeholder images from images.
func NewRecipeService(repo repository.RecipeRepository, images config.Images) RecipeService {
	return &recipeService{repo: repo, images: images, now: time.Now}
}

func (s *recipeService) List(ctx context.Context) ([]model.Recipe, error) {
	recipes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	return recipes, nil
}

func (s *recipeService) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	oid, err := parseRecipeID(id)
	if err != nil {
		return nil, err
	}

	recipe, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe %s: %w", id, err)
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *recipeService) Create(ctx context.Context, fields map[string]any) error {
	for _, name := range model.RecipeContentFields {
		if !truthy(fields[name]) {
			return newValidationError(MsgAllFieldsRequired)
		}
	}
	for _, name := range model.RecipeContentFields {
		if err := checkStringField(name, fields[name]); err != nil {
			return err
		}
	}

	recipe := &model.Recipe{
		RecipeImage:      s.images.RecipeImage,
		IngredientsImage: s.images.IngredientsImage,
		Title:            fields[model.FieldTitle].(string),
		Subtitle:         fields[model.FieldSubtitle].(string),
		AuthorName:       fields[model.FieldAuthorName].(string),
		Description:      fields[model.FieldDescription].(string),
		Category:         fields[model.FieldCategory].(string),
		PrepTime:         fields[model.FieldPrepTime],
		CookTime:         fields[model.FieldCookTime],
		TotalTime:        fields[model.FieldTotalTime],
		Servings:         fields[model.FieldServings],
		Ingredients:      fields[model.FieldIngredients],
		Instructions:     fields[model.FieldInstructions],
		CreatedAt:        s.now().Format(model.RecipeDateLayout),
	}

	if err := s.repo.Create(ctx, recipe); err != nil {
		return fmt.Errorf("failed to create recipe in repo: %w", err)
	}
	return nil
}

func (s *recipeService) Update(ctx context.Context, id string, fields map[string]any) error {
	patch := model.RecipePatch{}
	for _, name := range model.RecipeUpdatableFields {
		if v, ok := fields[name]; ok && truthy(v) {
			if err := checkStringField(name, v); err != nil {
				return err
			}
			patch[name] = v
		}
	}
	if len(patch) == 0 {
		return newValidationError(MsgNoValidUpdateFields)
	}

	oid, err := parseRecipeID(id)
	if err != nil {
		return err
	}

	matched, err := s.repo.Update(ctx, oid, patch)
	if err != nil {
		return fmt.Errorf("failed to update recipe %s: %w", id, err)
	}
	if matched == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func parseRecipeID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidRecipeID
	}
	return oid, nil
}

func checkStringField(name string, v any) error {
	if !model.RecipeStringFields[name] {
		return nil
	}
	if _, ok := v.(string); !ok {
		return newValidationError(fmt.Sprintf(msgFieldMustBeStringFmt, name))
	}
	return nil
}
