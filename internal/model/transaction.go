package model

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Ledgers written by the original app carry local timestamps with no
// offset, e.g. "2025-11-14T10:21:33.123456".
const isoNoOffset = "2006-01-02T15:04:05.999999999"

// SaleTime is the ledger timestamp. It marshals as RFC 3339 and
// unmarshals both RFC 3339 and the offsetless ISO-8601 form, so ledgers
// from the original app keep loading.
type SaleTime struct {
	time.Time
}

// Now returns the current moment as a SaleTime.
func Now() SaleTime {
	return SaleTime{Time: time.Now()}
}

func (t SaleTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339Nano))
}

func (t *SaleTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// Offsetless stamps were written with the writer's local clock.
		parsed, err = time.ParseInLocation(isoNoOffset, s, time.Local)
	}
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Transaction is one recorded sale. It snapshots the product at sale time,
// so it stays valid even if the product is later repriced or deleted.
// Transactions are never mutated after creation.
type Transaction struct {
	Timestamp   SaleTime        `json:"timestamp"`
	ItemCode    string          `json:"item_code"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	PriceAtSale decimal.Decimal `json:"price_at_sale"`
	Revenue     decimal.Decimal `json:"revenue"`
}
