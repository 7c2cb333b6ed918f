package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodcourt/internal/core/service"
)

type MenusHandler struct {
	menus *service.Menus
}

func NewMenusHandler(menus *service.Menus) *MenusHandler {
	return &MenusHandler{menus: menus}
}

func (h *MenusHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.menus.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(data) == 0 {
		writeFailure(w, http.StatusNotFound, "Menu not found")
		return
	}
	writeData(w, "Get all menus successful", data)
}

func (h *MenusHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.menus.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Get menu by id successful", data)
}

func (h *MenusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMenuRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.menus.Create(r.Context(), service.CreateMenuInput{
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Stock:        req.Stock,
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Create menu successful", data)
}

func (h *MenusHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMenuRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.menus.Update(r.Context(), chi.URLParam(r, "id"), service.UpdateMenuInput{
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Stock:        req.Stock,
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Update menu successful", data)
}

func (h *MenusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.menus.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Delete menu successful", nil)
}
