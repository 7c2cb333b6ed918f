package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodcourt/internal/core/service"
)

type RestaurantsHandler struct {
	restaurants *service.Restaurants
}

func NewRestaurantsHandler(restaurants *service.Restaurants) *RestaurantsHandler {
	return &RestaurantsHandler{restaurants: restaurants}
}

func (h *RestaurantsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.restaurants.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(data) == 0 {
		writeFailure(w, http.StatusNotFound, "Restaurant not found")
		return
	}
	writeData(w, "Get all restaurants successful", data)
}

func (h *RestaurantsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.restaurants.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Get restaurant by id successful", data)
}

func (h *RestaurantsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRestaurantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.restaurants.Create(r.Context(), req.Name, req.Location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Create restaurant successful", data)
}

func (h *RestaurantsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRestaurantRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.restaurants.Update(r.Context(), chi.URLParam(r, "id"), service.UpdateRestaurantInput{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Update restaurant successful", data)
}

func (h *RestaurantsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.restaurants.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Delete restaurant successful", nil)
}
