package usecases

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"quickdesk/internal/application/category/dto"
	"quickdesk/internal/domain/category"
	"quickdesk/internal/shared/errors"
	"quickdesk/internal/shared/logger"
)

// CategoryCache holds the full category list. Cache failures never fail a request.
// SetIfVersion stores the list only when no Invalidate ran after Version was read.
type CategoryCache interface {
	Get(ctx context.Context) ([]*dto.CategoryDTO, bool, error)
	Version(ctx context.Context) (int64, error)
	SetIfVersion(ctx context.Context, categories []*dto.CategoryDTO, version int64) (bool, error)
	Invalidate(ctx context.Context) error
}

const categoryLoadTimeout = 10 * time.Second

type ListCategoriesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CategoryDTO, error)
}

type CreateCategoryExecutor interface {
	Execute(ctx context.Context, name string) (*dto.CategoryDTO, error)
}

type ListCategoriesUseCase struct {
	categoryRepo category.Repository
	cache        CategoryCache
	loadGroup    singleflight.Group
	logger       logger.Interface
}

func NewListCategoriesUseCase(categoryRepo category.Repository, cache CategoryCache, logger logger.Interface) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) ([]*dto.CategoryDTO, error) {
	cached, ok, err := uc.cache.Get(ctx)
	if err != nil {
		uc.logger.Warnw("category cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}

	// Concurrent misses share one store query and one cache fill. The load
	// outlives any single caller's cancellation.
	ch := uc.loadGroup.DoChan("categories", func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), categoryLoadTimeout)
		defer cancel()
		return uc.load(loadCtx)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			uc.logger.Errorw("failed to list categories", "error", res.Err)
			return nil, fmt.Errorf("failed to list categories: %w", res.Err)
		}
		return res.Val.([]*dto.CategoryDTO), nil
	}
}

func (uc *ListCategoriesUseCase) load(ctx context.Context) ([]*dto.CategoryDTO, error) {
	version, versionErr := uc.cache.Version(ctx)
	if versionErr != nil {
		uc.logger.Warnw("category cache version read failed", "error", versionErr)
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := dto.ToCategoryDTOList(categories)

	if versionErr != nil {
		return result, nil
	}
	stored, err := uc.cache.SetIfVersion(ctx, result, version)
	if err != nil {
		uc.logger.Warnw("category cache write failed", "error", err)
	} else if !stored {
		uc.logger.Debugw("category cache write skipped", "version", version)
	}
	return result, nil
}

type CreateCategoryUseCase struct {
	categoryRepo category.Repository
	cache        CategoryCache
	logger       logger.Interface
}

func NewCreateCategoryUseCase(categoryRepo category.Repository, cache CategoryCache, logger logger.Interface) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (uc *CreateCategoryUseCase) Execute(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	c, err := category.NewCategory(name)
	if err != nil {
		return nil, errors.NewValidationError("Category name is required", err.Error())
	}

	if err := uc.categoryRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save category", "error", err)
		return nil, fmt.Errorf("failed to save category: %w", err)
	}

	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warnw("category cache invalidation failed", "error", err)
	}

	uc.logger.Infow("category created", "category_id", c.ID(), "name", c.Name())
	return dto.ToCategoryDTO(c), nil
}
