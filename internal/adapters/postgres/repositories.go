package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"foodcourt/internal/core/domain"
)

type restaurantRepo struct{ q querier }

func (r *restaurantRepo) List(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.q.Query(ctx, listRestaurantsSQL)
	if err != nil {
		return nil, fmt.Errorf("postgres: list restaurants: %w", err)
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		var rec domain.Restaurant
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Location); err != nil {
			return nil, fmt.Errorf("postgres: scan restaurant: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *restaurantRepo) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	var rec domain.Restaurant
	err := r.q.QueryRow(ctx, getRestaurantSQL, id).Scan(&rec.ID, &rec.Name, &rec.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get restaurant %s: %w", id, err)
	}
	return &rec, nil
}

func (r *restaurantRepo) Create(ctx context.Context, rec *domain.Restaurant) error {
	_, err := r.q.Exec(ctx, insertRestaurantSQL, rec.ID, rec.Name, rec.Location)
	if err != nil {
		return fmt.Errorf("postgres: insert restaurant: %w", err)
	}
	return nil
}

func (r *restaurantRepo) Update(ctx context.Context, rec *domain.Restaurant) error {
	_, err := r.q.Exec(ctx, updateRestaurantSQL, rec.ID, rec.Name, rec.Location)
	if err != nil {
		return fmt.Errorf("postgres: update restaurant %s: %w", rec.ID, err)
	}
	return nil
}

func (r *restaurantRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, deleteRestaurantSQL, id)
	if err != nil {
		return fmt.Errorf("postgres: delete restaurant %s: %w", id, err)
	}
	return nil
}

type categoryRepo struct{ q querier }

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("postgres: list categories: %w", err)
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var rec domain.Category
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return nil, fmt.Errorf("postgres: scan category: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *categoryRepo) Get(ctx context.Context, id string) (*domain.Category, error) {
	var rec domain.Category
	err := r.q.QueryRow(ctx, getCategorySQL, id).Scan(&rec.ID, &rec.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get category %s: %w", id, err)
	}
	return &rec, nil
}

func (r *categoryRepo) Create(ctx context.Context, rec *domain.Category) error {
	_, err := r.q.Exec(ctx, insertCategorySQL, rec.ID, rec.Name)
	if err != nil {
		return fmt.Errorf("postgres: insert category: %w", err)
	}
	return nil
}

func (r *categoryRepo) Update(ctx context.Context, rec *domain.Category) error {
	_, err := r.q.Exec(ctx, updateCategorySQL, rec.ID, rec.Name)
	if err != nil {
		return fmt.Errorf("postgres: update category %s: %w", rec.ID, err)
	}
	return nil
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, deleteCategorySQL, id)
	if err != nil {
		return fmt.Errorf("postgres: delete category %s: %w", id, err)
	}
	return nil
}

type menuRepo struct{ q querier }

func (r *menuRepo) List(ctx context.Context) ([]domain.Menu, error) {
	rows, err := r.q.Query(ctx, listMenusSQL)
	if err != nil {
		return nil, fmt.Errorf("postgres: list menus: %w", err)
	}
	defer rows.Close()
	return scanMenus(rows)
}

func (r *menuRepo) Get(ctx context.Context, id string) (*domain.Menu, error) {
	var rec domain.Menu
	err := r.q.QueryRow(ctx, getMenuSQL, id).Scan(
		&rec.ID, &rec.Name, &rec.ImageURL, &rec.Price, &rec.Stock, &rec.RestaurantID, &rec.CategoryID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get menu %s: %w", id, err)
	}
	return &rec, nil
}

func (r *menuRepo) ListByIDs(ctx context.Context, ids []string) ([]domain.Menu, error) {
	rows, err := r.q.Query(ctx, listMenusByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("postgres: list menus by ids: %w", err)
	}
	defer rows.Close()
	return scanMenus(rows)
}

func (r *menuRepo) Create(ctx context.Context, rec *domain.Menu) error {
	_, err := r.q.Exec(ctx, insertMenuSQL,
		rec.ID, rec.Name, rec.ImageURL, rec.Price, rec.Stock, rec.RestaurantID, rec.CategoryID)
	if err != nil {
		return fmt.Errorf("postgres: insert menu: %w", err)
	}
	return nil
}

func (r *menuRepo) Update(ctx context.Context, rec *domain.Menu) error {
	_, err := r.q.Exec(ctx, updateMenuSQL,
		rec.ID, rec.Name, rec.ImageURL, rec.Price, rec.Stock, rec.RestaurantID, rec.CategoryID)
	if err != nil {
		return fmt.Errorf("postgres: update menu %s: %w", rec.ID, err)
	}
	return nil
}

func (r *menuRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, deleteMenuSQL, id)
	if err != nil {
		return fmt.Errorf("postgres: delete menu %s: %w", id, err)
	}
	return nil
}

func (r *menuRepo) DecrementStock(ctx context.Context, id string, by int) (bool, error) {
	tag, err := r.q.Exec(ctx, decrementStockSQL, id, by)
	if err != nil {
		return false, fmt.Errorf("postgres: decrement stock of %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanMenus(rows pgx.Rows) ([]domain.Menu, error) {
	var out []domain.Menu
	for rows.Next() {
		var rec domain.Menu
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.ImageURL, &rec.Price, &rec.Stock,
			&rec.RestaurantID, &rec.CategoryID); err != nil {
			return nil, fmt.Errorf("postgres: scan menu: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type userRepo struct{ q querier }

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec domain.User
	err := r.q.QueryRow(ctx, getUserByUsernameSQL, username).Scan(
		&rec.ID, &rec.Username, &rec.Password, &rec.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get user %s: %w", username, err)
	}
	return &rec, nil
}

func (r *userRepo) Create(ctx context.Context, rec *domain.User) error {
	_, err := r.q.Exec(ctx, insertUserSQL, rec.ID, rec.Username, rec.Password, rec.Role)
	if err != nil {
		return fmt.Errorf("postgres: insert user: %w", err)
	}
	return nil
}

type orderRepo struct{ q querier }

func (r *orderRepo) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.q.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("postgres: list orders: %w", err)
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var rec domain.Order
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Address, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan order: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *orderRepo) Get(ctx context.Context, id string) (*domain.Order, error) {
	var rec domain.Order
	err := r.q.QueryRow(ctx, getOrderSQL, id).Scan(
		&rec.ID, &rec.UserID, &rec.Address, &rec.Status, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: get order %s: %w", id, err)
	}
	return &rec, nil
}

func (r *orderRepo) Create(ctx context.Context, rec *domain.Order) error {
	_, err := r.q.Exec(ctx, insertOrderSQL,
		rec.ID, rec.UserID, rec.Address, rec.Status, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("postgres: insert order: %w", err)
	}
	for _, l := range rec.Lines {
		if _, err := r.q.Exec(ctx, insertOrderLineSQL, l.ID, l.OrderID, l.MenuID, l.Count); err != nil {
			return fmt.Errorf("postgres: insert order line: %w", err)
		}
	}
	return nil
}

func (r *orderRepo) ListLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.q.Query(ctx, listOrderLinesSQL, orderID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list lines of %s: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.OrderLine
	for rows.Next() {
		var rec domain.OrderLine
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.MenuID, &rec.Count); err != nil {
			return nil, fmt.Errorf("postgres: scan order line: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *orderRepo) SetStatus(ctx context.Context, id string, status domain.Status) error {
	_, err := r.q.Exec(ctx, setOrderStatusSQL, id, string(status))
	if err != nil {
		return fmt.Errorf("postgres: set status of %s: %w", id, err)
	}
	return nil
}
