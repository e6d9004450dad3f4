package model

import "github.com/shopspring/decimal"

// BestSeller is one row of the best-sellers report: the accumulated sales
// of a single item code across the whole transaction ledger.
type BestSeller struct {
	ItemCode          string          `json:"item_code"`
	Name              string          `json:"name"`
	TotalQuantitySold int             `json:"total_quantity_sold"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
}
