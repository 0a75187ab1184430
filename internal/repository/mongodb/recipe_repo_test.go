package mongodb

import (
	"context"
	"testing"

	"flavour_fusion/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const recipesNS = "flavour_fusion_recipes.recipes"

func recipeDoc(id primitive.ObjectID, title string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "recipe_image", Value: "https://img/recipe.png"},
		{Key: "ingredients_image", Value: "https://img/ingredients.png"},
		{Key: "title", Value: title},
		{Key: "subtitle", Value: "Fluffy"},
		{Key: "author_name", Value: "Sam"},
		{Key: "description", Value: "Breakfast classic"},
		{Key: "category", Value: "breakfast"},
		{Key: "prep_time", Value: "10 min"},
		{Key: "cook_time", Value: "15 min"},
		{Key: "total_time", Value: "25 min"},
		{Key: "servings", Value: int32(4)},
		{Key: "ingredients", Value: bson.A{"flour", "milk", "eggs"}},
		{Key: "instructions", Value: "Mix and fry."},
		{Key: "created_at", Value: "2025-06-20"},
	}
}

func TestRecipeRepository_FindAll(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every document", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch,
			recipeDoc(id1, "Pancakes"),
			recipeDoc(id2, "Waffles"),
		))

		repo := NewRecipeRepository(mt.DB)
		recipes, err := repo.FindAll(context.Background())

		require.NoError(mt, err)
		require.Len(mt, recipes, 2)
		assert.Equal(mt, id1, recipes[0].ID)
		assert.Equal(mt, "Pancakes", recipes[0].Title)
		assert.Equal(mt, int32(4), recipes[0].Servings)
		assert.Equal(mt, "Waffles", recipes[1].Title)
	})

	mt.Run("empty collection yields empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch))

		repo := NewRecipeRepository(mt.DB)
		recipes, err := repo.FindAll(context.Background())

		require.NoError(mt, err)
		assert.NotNil(mt, recipes)
		assert.Empty(mt, recipes)
	})

	mt.Run("command error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad query",
			Name:    "BadValue",
		}))

		repo := NewRecipeRepository(mt.DB)
		_, err := repo.FindAll(context.Background())
		assert.Error(mt, err)
	})
}

func TestRecipeRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch, recipeDoc(id, "Pancakes")))

		repo := NewRecipeRepository(mt.DB)
		recipe, err := repo.FindByID(context.Background(), id)

		require.NoError(mt, err)
		require.NotNil(mt, recipe)
		assert.Equal(mt, id, recipe.ID)
		assert.Equal(mt, "2025-06-20", recipe.CreatedAt)
		assert.Equal(mt, "Mix and fry.", recipe.Instructions)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, recipesNS, mtest.FirstBatch))

		repo := NewRecipeRepository(mt.DB)
		recipe, err := repo.FindByID(context.Background(), primitive.NewObjectID())

		assert.NoError(mt, err)
		assert.Nil(mt, recipe)
	})
}

func TestRecipeRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		repo := NewRecipeRepository(mt.DB)
		recipe := &model.Recipe{Title: "Pancakes", CreatedAt: "2025-06-20"}
		err := repo.Create(context.Background(), recipe)

		require.NoError(mt, err)
		assert.False(mt, recipe.ID.IsZero())
	})

	mt.Run("write error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "document failed validation",
		}))

		repo := NewRecipeRepository(mt.DB)
		err := repo.Create(context.Background(), &model.Recipe{Title: "Pancakes"})
		assert.Error(mt, err)
	})
}

func TestRecipeRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		repo := NewRecipeRepository(mt.DB)
		matched, err := repo.Update(context.Background(), primitive.NewObjectID(), model.RecipePatch{"title": "Crepes"})

		require.NoError(mt, err)
		assert.Equal(mt, int64(1), matched)
	})

	mt.Run("no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		repo := NewRecipeRepository(mt.DB)
		matched, err := repo.Update(context.Background(), primitive.NewObjectID(), model.RecipePatch{"title": "Crepes"})

		require.NoError(mt, err)
		assert.Equal(mt, int64(0), matched)
	})
}
