package domain

// Restaurant is a place menus belong to.
type Restaurant struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Category groups menus (e.g. "drinks", "mains").
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Menu is a single orderable item. Stock is decremented by order creation
// and set absolutely by menu updates; it is never observed negative.
type Menu struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ImageURL     string  `json:"imageUrl"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	RestaurantID string  `json:"restaurantId"`
	CategoryID   string  `json:"categoryId"`
}

// MenuDetails is a menu with its restaurant and category resolved.
// Either reference may be nil if the referenced record has been deleted.
type MenuDetails struct {
	Menu
	Restaurant *Restaurant `json:"restaurant"`
	Category   *Category   `json:"category"`
}
