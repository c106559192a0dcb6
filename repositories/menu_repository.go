package repositories

import (
	"context"
	"errors"
	"time"

	"bistro-backend/config"
	"bistro-backend/models"
	"bistro-backend/utils"

	"github.com/jackc/pgx/v5"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) GetAllItems(ctx context.Context, category string, page, limit int) ([]models.MenuItem, int, error) {
	offset := (page - 1) * limit

	countQuery := `SELECT COUNT(*) FROM menu_items WHERE is_available = true`
	listQuery := `SELECT id, name, description, category, price, stock, is_available, created_at, updated_at
	              FROM menu_items WHERE is_available = true`

	countArgs := []interface{}{}
	listArgs := []interface{}{}
	if category != "" {
		countQuery += ` AND category = $1`
		listQuery += ` AND category = $1 ORDER BY name LIMIT $2 OFFSET $3`
		countArgs = append(countArgs, category)
		listArgs = append(listArgs, category, limit, offset)
	} else {
		listQuery += ` ORDER BY name LIMIT $1 OFFSET $2`
		listArgs = append(listArgs, limit, offset)
	}

	var total int
	if err := config.DB.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Category,
			&item.Price, &item.Stock, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, rows.Err()
}

func (r *MenuRepository) GetItemByID(ctx context.Context, id int) (*models.MenuItem, error) {
	query := `SELECT id, name, description, category, price, stock, is_available, created_at, updated_at
	          FROM menu_items WHERE id = $1`

	var item models.MenuItem
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Category,
		&item.Price, &item.Stock, &item.IsAvailable, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFoundError("Menu item %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, description, category, price, stock, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		item.Name, item.Description, item.Category, item.Price, item.Stock, item.IsAvailable, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *MenuRepository) UpdateItem(ctx context.Context, item *models.MenuItem) error {
	query := `UPDATE menu_items SET name = $1, description = $2, category = $3, price = $4,
	          stock = $5, is_available = $6, updated_at = $7 WHERE id = $8`
	_, err := config.DB.Exec(ctx, query,
		item.Name, item.Description, item.Category, item.Price,
		item.Stock, item.IsAvailable, time.Now(), item.ID,
	)
	return err
}

// DeleteItem is a soft delete; historical order lines keep their snapshot
// of the item's name and price either way.
func (r *MenuRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := config.DB.Exec(ctx, `UPDATE menu_items SET is_available = false, updated_at = $1 WHERE id = $2`, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.NotFoundError("Menu item %d not found", id)
	}
	return nil
}
