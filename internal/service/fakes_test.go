package service

import (
	"context"
	"encoding/json"

	"flavour_fusion/internal/model"
	"flavour_fusion/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users     map[string]*model.User
	findErr   error
	createErr error
	created   []*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.users[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	r.users[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[email], nil
}

type fakeRecipeRepo struct {
	recipes   []model.Recipe
	nilList   bool
	err       error
	created   []*model.Recipe
	patches   []model.RecipePatch
	updatedID primitive.ObjectID
}

func (r *fakeRecipeRepo) FindAll(context.Context) ([]model.Recipe, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.nilList {
		return nil, nil
	}
	return r.recipes, nil
}

func (r *fakeRecipeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			return &r.recipes[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRecipeRepo) Create(_ context.Context, recipe *model.Recipe) error {
	if r.err != nil {
		return r.err
	}
	recipe.ID = primitive.NewObjectID()
	r.recipes = append(r.recipes, *recipe)
	r.created = append(r.created, recipe)
	return nil
}

func (r *fakeRecipeRepo) Update(_ context.Context, id primitive.ObjectID, patch model.RecipePatch) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.updatedID = id
	r.patches = append(r.patches, patch)
	for i := range r.recipes {
		if r.recipes[i].ID == id {
			patched, err := applyPatch(r.recipes[i], patch)
			if err != nil {
				return 0, err
			}
			r.recipes[i] = patched
			return 1, nil
		}
	}
	return 0, nil
}

// applyPatch merges patch into recipe the way $set does: named keys are
// replaced, everything else is left alone.
func applyPatch(recipe model.Recipe, patch model.RecipePatch) (model.Recipe, error) {
	raw, err := json.Marshal(recipe)
	if err != nil {
		return recipe, err
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return recipe, err
	}
	for k, v := range patch {
		doc[k] = v
	}
	if raw, err = json.Marshal(doc); err != nil {
		return recipe, err
	}
	var patched model.Recipe
	if err := json.Unmarshal(raw, &patched); err != nil {
		return recipe, err
	}
	return patched, nil
}
