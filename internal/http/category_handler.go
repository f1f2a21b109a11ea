package http

import (
	"fmt"
	"net/http"

	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type categoryHandler struct {
	categorySvc service.CategoryService
}

func newCategoryHandler(categorySvc service.CategoryService) *categoryHandler {
	return &categoryHandler{
		categorySvc: categorySvc,
	}
}

func (h *categoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.categorySvc.ListCategories(r.Context())
	if err != nil {
		return fmt.Errorf("category service list categories: %w", err)
	}

	items := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}

	return writeJSON(w, http.StatusOK, items)
}

func (h *categoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "category_id")
	if err != nil {
		return err
	}

	category, err := h.categorySvc.GetCategory(r.Context(), id)
	if err != nil {
		return fmt.Errorf("category service get category: %w", err)
	}

	return writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *categoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) error {
	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	category, err := h.categorySvc.CreateCategory(r.Context(), service.CreateCategoryParams{
		Name: req.Name,
	})
	if err != nil {
		return fmt.Errorf("category service create category: %w", err)
	}

	return writeJSON(w, http.StatusCreated, toCategoryResponse(category))
}

func (h *categoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "category_id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	category, err := h.categorySvc.UpdateCategory(r.Context(), service.UpdateCategoryParams{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		return fmt.Errorf("category service update category: %w", err)
	}

	return writeJSON(w, http.StatusOK, toCategoryResponse(category))
}

func (h *categoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "category_id")
	if err != nil {
		return err
	}

	if err := h.categorySvc.DeleteCategory(r.Context(), id); err != nil {
		return fmt.Errorf("category service delete category: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
