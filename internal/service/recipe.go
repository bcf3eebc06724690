package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"cookbook/internal/repository"
)

var ErrNilRecipe = errors.New("recipe document is required")

// RecipeService defines the use cases for handling recipes.
type RecipeService interface {
	// Create inserts a recipe document, defaulting its image field to "" when
	// absent or empty. All other fields pass through unvalidated.
	Create(ctx context.Context, doc bson.M) error

	// List returns every recipe with no filter, sort, or pagination.
	List(ctx context.Context) ([]bson.M, error)
}

// recipeService is a concrete implementation of RecipeService.
type recipeService struct {
	repo repository.RecipeRepository
}

// NewRecipeService constructs a new RecipeService.
func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeService{repo: repo}
}

func (s *recipeService) Create(ctx context.Context, doc bson.M) error {
	if doc == nil {
		return ErrNilRecipe
	}

	// Copy so the caller's map is never mutated
	out := make(bson.M, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}

	// The image field always exists on stored recipes; an absent or non-string
	// value becomes the empty string.
	image := ""
	if s, ok := doc["image"].(string); ok {
		image = s
	}
	out["image"] = image

	return s.repo.Insert(ctx, out)
}

func (s *recipeService) List(ctx context.Context) ([]bson.M, error) {
	return s.repo.FindAll(ctx)
}
