package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"foodcourt/internal/core/service"
)

type CategoriesHandler struct {
	categories *service.Categories
}

func NewCategoriesHandler(categories *service.Categories) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

func (h *CategoriesHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	data, err := h.categories.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if len(data) == 0 {
		writeFailure(w, http.StatusNotFound, "Category not found")
		return
	}
	writeData(w, "Get all categories successful", data)
}

func (h *CategoriesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.categories.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Get category by id successful", data)
}

func (h *CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Create category successful", data)
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	data, err := h.categories.Update(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Update category successful", data)
}

func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, "Delete category successful", nil)
}
