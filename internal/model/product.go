package model

import "github.com/shopspring/decimal"

func init() {
	// The data files store prices as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. ItemCode is immutable once assigned;
// Price stays positive and Stock never goes below zero.
type Product struct {
	ItemCode string          `json:"item_code"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
}

// Value returns price * stock for this product.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
