package httpx

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createRestaurantRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type updateRestaurantRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

type createMenuRequest struct {
	Name         string  `json:"name"`
	ImageURL     string  `json:"imageUrl"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	RestaurantID string  `json:"restaurantId"`
	CategoryID   string  `json:"categoryId"`
}

type updateMenuRequest struct {
	Name         *string  `json:"name"`
	ImageURL     *string  `json:"imageUrl"`
	Price        *float64 `json:"price"`
	Stock        *int     `json:"stock"`
	RestaurantID *string  `json:"restaurantId"`
	CategoryID   *string  `json:"categoryId"`
}

type createOrderMenu struct {
	MenuID string `json:"menuId"`
	Count  int    `json:"count"`
}

type createOrderRequest struct {
	Address string            `json:"address"`
	Menus   []createOrderMenu `json:"menus"`
}
