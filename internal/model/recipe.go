package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// RecipeDateLayout is the format of Recipe.CreatedAt. Recipes keep the calendar day only.
const RecipeDateLayout = "2006-01-02"

// Recipe document field names
const (
	FieldRecipeImage      = "recipe_image"
	FieldIngredientsImage = "ingredients_image"
	FieldTitle            = "title"
	FieldSubtitle         = "subtitle"
	FieldAuthorName       = "author_name"
	FieldDescription      = "description"
	FieldCategory         = "category"
	FieldPrepTime         = "prep_time"
	FieldCookTime         = "cook_time"
	FieldTotalTime        = "total_time"
	FieldServings         = "servings"
	FieldIngredients      = "ingredients"
	FieldInstructions     = "instructions"
	FieldCreatedAt        = "created_at"
)

// RecipeContentFields must all be present and truthy when a recipe is created.
var RecipeContentFields = []string{
	FieldTitle,
	FieldSubtitle,
	FieldAuthorName,
	FieldDescription,
	FieldCategory,
	FieldPrepTime,
	FieldCookTime,
	FieldTotalTime,
	FieldServings,
	FieldIngredients,
	FieldInstructions,
}

// RecipeUpdatableFields may appear in a partial update. created_at and _id never do.
var RecipeUpdatableFields = append([]string{FieldRecipeImage, FieldIngredientsImage}, RecipeContentFields...)

// RecipeStringFields hold plain text and are rejected when given any other JSON type.
var RecipeStringFields = map[string]bool{
	FieldRecipeImage:      true,
	FieldIngredientsImage: true,
	FieldTitle:            true,
	FieldSubtitle:         true,
	FieldAuthorName:       true,
	FieldDescription:      true,
	FieldCategory:         true,
}

// Recipe is a stored recipe document. Time, servings, ingredients and
// instructions are kept exactly as the client sent them.
type Recipe struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RecipeImage      string             `bson:"recipe_image" json:"recipe_image"`
	IngredientsImage string             `bson:"ingredients_image" json:"ingredients_image"`
	Title            string             `bson:"title" json:"title"`
	Subtitle         string             `bson:"subtitle" json:"subtitle"`
	AuthorName       string             `bson:"author_name" json:"author_name"`
	Description      string             `bson:"description" json:"description"`
	Category         string             `bson:"category" json:"category"`
	PrepTime         any                `bson:"prep_time" json:"prep_time"`
	CookTime         any                `bson:"cook_time" json:"cook_time"`
	TotalTime        any                `bson:"total_time" json:"total_time"`
	Servings         any                `bson:"servings" json:"servings"`
	Ingredients      any                `bson:"ingredients" json:"ingredients"`
	Instructions     any                `bson:"instructions" json:"instructions"`
	CreatedAt        string             `bson:"created_at" json:"created_at"`
}

// RecipePatch is a sparse set of field changes keyed by document field name.
type RecipePatch map[string]any
