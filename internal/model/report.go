package model

import "github.com/shopspring/decimal"

type SalesSummary struct {
	ProductID     int64           `json:"product_id"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalSales    decimal.Decimal `json:"total_sales"`
}
