package usecase

import (
	"context"
	"errors"
	"strings"

	"fintrack-api/internal/category"
	"fintrack-api/internal/category/repository"
	"fintrack-api/internal/model"

	"github.com/google/uuid"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip category.CreateInput) (model.Category, error) {
	name := strings.TrimSpace(ip.Name)

	taken, err := uc.repo.ExistsByName(ctx, sc, name, "")
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Create.ExistsByName: %v", err)
		return model.Category{}, err
	}
	if taken {
		return model.Category{}, category.ErrCategoryNameExists
	}

	cat, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Category: model.Category{
			ID:   uuid.NewString(),
			Name: name,
			Icon: ip.Icon,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Create: %v", err)
		return model.Category{}, err
	}

	return cat, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip category.UpdateInput) (model.Category, error) {
	cat, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Category{}, category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.category.usecase.Update.Detail: %v", err)
		return model.Category{}, err
	}

	name := strings.TrimSpace(ip.Name)

	taken, err := uc.repo.ExistsByName(ctx, sc, name, cat.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Update.ExistsByName: %v", err)
		return model.Category{}, err
	}
	if taken {
		return model.Category{}, category.ErrCategoryNameExists
	}

	cat.Name = name
	cat.Icon = ip.Icon

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Category: cat})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Category{}, category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.category.usecase.Update: %v", err)
		return model.Category{}, err
	}

	return updated, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.category.usecase.Delete: %v", err)
		return err
	}

	return nil
}
