package dto

import "github.com/shopspring/decimal"

// StockValueResponse respuesta de GET /api/reports/stock-value.
type StockValueResponse struct {
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
}

// ReportProductsResponse respuesta de reportes que listan productos.
type ReportProductsResponse struct {
	Total int               `json:"total"`
	Items []ProductResponse `json:"items"`
}
