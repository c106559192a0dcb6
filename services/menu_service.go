package services

import (
	"context"
	"math"

	"bistro-backend/models"
	"bistro-backend/repositories"
)

type MenuService struct {
	menuRepo *repositories.MenuRepository
}

func NewMenuService() *MenuService {
	return &MenuService{
		menuRepo: repositories.NewMenuRepository(),
	}
}

func (s *MenuService) GetAllItems(ctx context.Context, category string, page, limit int) (*models.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.menuRepo.GetAllItems(ctx, category, page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginatedResponse{
		Success: true,
		Message: "Menu retrieved successfully",
		Data:    items,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *MenuService) GetItemByID(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.menuRepo.GetItemByID(ctx, id)
}

func (s *MenuService) CreateItem(ctx context.Context, req models.CreateMenuItemRequest) (*models.MenuItem, error) {
	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) UpdateItem(ctx context.Context, id int, req models.UpdateMenuItemRequest) (*models.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Price > 0 {
		item.Price = req.Price
	}
	if req.Stock != nil {
		item.Stock = req.Stock
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(ctx context.Context, id int) error {
	return s.menuRepo.DeleteItem(ctx, id)
}
