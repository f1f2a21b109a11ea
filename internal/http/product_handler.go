package http

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/shop-admin/internal/service"
)

type productRequest struct {
	Name        string          `json:"name"`
	Sku         string          `json:"sku"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int64           `json:"category_id"`

	// Only read on create.
	InitialQuantity int `json:"initial_quantity"`
	Threshold       int `json:"threshold"`
}

type productHandler struct {
	productSvc service.ProductService
}

func newProductHandler(productSvc service.ProductService) *productHandler {
	return &productHandler{
		productSvc: productSvc,
	}
}

func (h *productHandler) ListProducts(w http.ResponseWriter, r *http.Request) error {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		return fmt.Errorf("product service list products: %w", err)
	}

	items := make([]productResponse, 0, len(products))
	for _, product := range products {
		items = append(items, toProductResponse(product))
	}

	return writeJSON(w, http.StatusOK, items)
}

func (h *productHandler) GetProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		return fmt.Errorf("product service get product: %w", err)
	}

	return writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *productHandler) CreateProduct(w http.ResponseWriter, r *http.Request) error {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	product, err := h.productSvc.CreateProduct(r.Context(), service.CreateProductParams{
		Name:            req.Name,
		Sku:             req.Sku,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		InitialQuantity: req.InitialQuantity,
		Threshold:       req.Threshold,
	})
	if err != nil {
		return fmt.Errorf("product service create product: %w", err)
	}

	return writeJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *productHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), service.UpdateProductParams{
		ID:          id,
		Name:        req.Name,
		Sku:         req.Sku,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return fmt.Errorf("product service update product: %w", err)
	}

	return writeJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *productHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) error {
	id, err := pathInt64(r, "product_id")
	if err != nil {
		return err
	}

	if err := h.productSvc.DeleteProduct(r.Context(), id); err != nil {
		return fmt.Errorf("product service delete product: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
