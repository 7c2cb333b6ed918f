package postgres

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id       UUID PRIMARY KEY,
	name     TEXT NOT NULL,
	location TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
	id   UUID PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS menus (
	id            UUID PRIMARY KEY,
	name          TEXT NOT NULL,
	image_url     TEXT NOT NULL,
	price         DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	stock         INTEGER NOT NULL CHECK (stock >= 0),
	restaurant_id UUID NOT NULL REFERENCES restaurants(id),
	category_id   UUID NOT NULL REFERENCES categories(id)
);

CREATE TABLE IF NOT EXISTS users (
	id       UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role     TEXT NOT NULL DEFAULT 'user'
);

CREATE TABLE IF NOT EXISTS orders (
	id         UUID PRIMARY KEY,
	user_id    UUID NOT NULL REFERENCES users(id),
	address    TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'received',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS order_lines (
	id       UUID PRIMARY KEY,
	order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
	menu_id  UUID NOT NULL REFERENCES menus(id),
	count    INTEGER NOT NULL CHECK (count >= 1)
);
`

// Restaurant queries
const (
	listRestaurantsSQL  = `SELECT id, name, location FROM restaurants ORDER BY name`
	getRestaurantSQL    = `SELECT id, name, location FROM restaurants WHERE id = $1`
	insertRestaurantSQL = `INSERT INTO restaurants (id, name, location) VALUES ($1, $2, $3)`
	updateRestaurantSQL = `UPDATE restaurants SET name = $2, location = $3 WHERE id = $1`
	deleteRestaurantSQL = `DELETE FROM restaurants WHERE id = $1`
)

// Category queries
const (
	listCategoriesSQL = `SELECT id, name FROM categories ORDER BY name`
	getCategorySQL    = `SELECT id, name FROM categories WHERE id = $1`
	insertCategorySQL = `INSERT INTO categories (id, name) VALUES ($1, $2)`
	updateCategorySQL = `UPDATE categories SET name = $2 WHERE id = $1`
	deleteCategorySQL = `DELETE FROM categories WHERE id = $1`
)

// Menu queries
const (
	listMenusSQL = `
		SELECT id, name, image_url, price, stock, restaurant_id, category_id
		FROM menus ORDER BY name`

	getMenuSQL = `
		SELECT id, name, image_url, price, stock, restaurant_id, category_id
		FROM menus WHERE id = $1`

	listMenusByIDsSQL = `
		SELECT id, name, image_url, price, stock, restaurant_id, category_id
		FROM menus WHERE id = ANY($1)`

	insertMenuSQL = `
		INSERT INTO menus (id, name, image_url, price, stock, restaurant_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateMenuSQL = `
		UPDATE menus SET name = $2, image_url = $3, price = $4, stock = $5,
			restaurant_id = $6, category_id = $7
		WHERE id = $1`

	deleteMenuSQL = `DELETE FROM menus WHERE id = $1`

	// The stock guard: the decrement only applies when enough stock is
	// left, so concurrent orders can never drive it negative.
	decrementStockSQL = `UPDATE menus SET stock = stock - $2 WHERE id = $1 AND stock >= $2`
)

// User queries
const (
	getUserByUsernameSQL = `SELECT id, username, password, role FROM users WHERE username = $1`
	insertUserSQL        = `INSERT INTO users (id, username, password, role) VALUES ($1, $2, $3, $4)`
)

// Order queries
const (
	listOrdersSQL = `
		SELECT id, user_id, address, status, created_at
		FROM orders ORDER BY created_at ASC`

	getOrderSQL = `
		SELECT id, user_id, address, status, created_at
		FROM orders WHERE id = $1`

	insertOrderSQL = `
		INSERT INTO orders (id, user_id, address, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	insertOrderLineSQL = `
		INSERT INTO order_lines (id, order_id, menu_id, count)
		VALUES ($1, $2, $3, $4)`

	listOrderLinesSQL = `
		SELECT id, order_id, menu_id, count
		FROM order_lines WHERE order_id = $1`

	setOrderStatusSQL = `UPDATE orders SET status = $2 WHERE id = $1`
)
