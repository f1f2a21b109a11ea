package apperr

import "github.com/tuanvumaihuynh/shop-admin/pkg/zerror"

const (
	ValidationErrorCode   = "VALIDATION_FAILED"
	CategoryNotFoundCode  = "CATEGORY_NOT_FOUND"
	ProductNotFoundCode   = "PRODUCT_NOT_FOUND"
	InventoryNotFoundCode = "INVENTORY_NOT_FOUND"
	InventoryNegativeCode = "INVENTORY_NEGATIVE"
	InventoryOverflowCode = "INVENTORY_OVERFLOW"
	CategoryInUseCode     = "CATEGORY_IN_USE"
	ProductInUseCode      = "PRODUCT_IN_USE"
)

var (
	ValidationErr = zerror.NewValidationFailed(ValidationErrorCode, "validation error")

	CategoryNotFoundErr  = zerror.NewNotFound(CategoryNotFoundCode, "category not found")
	ProductNotFoundErr   = zerror.NewNotFound(ProductNotFoundCode, "product not found")
	InventoryNotFoundErr = zerror.NewNotFound(InventoryNotFoundCode, "inventory not found")

	InventoryNegativeErr = zerror.NewBadRequest(InventoryNegativeCode, "inventory cannot be negative")
	InventoryOverflowErr = zerror.NewBadRequest(InventoryOverflowCode, "inventory quantity out of range")

	CategoryInUseErr = zerror.NewConflict(CategoryInUseCode, "category still has products")
	ProductInUseErr  = zerror.NewConflict(ProductInUseCode, "product is referenced by inventory history or orders")
)
