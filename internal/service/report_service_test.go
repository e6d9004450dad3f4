package service

import (
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saleOf(code, name string, qty int, price string) model.Transaction {
	p := dec(price)
	return model.Transaction{
		Timestamp:   model.Now(),
		ItemCode:    code,
		Name:        name,
		Quantity:    qty,
		PriceAtSale: p,
		Revenue:     p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestBestSellersOrdersByQuantitySold(t *testing.T) {
	transactions := []model.Transaction{
		saleOf("AAA001", "Anvil", 1, "10.00"),
		saleOf("AAA001", "Anvil", 1, "10.00"),
		saleOf("BBB002", "Bolt", 5, "2.00"),
	}

	sellers := BestSellers(transactions, 5)

	require.Len(t, sellers, 2)
	assert.Equal(t, "BBB002", sellers[0].ItemCode)
	assert.Equal(t, 5, sellers[0].TotalQuantitySold)
	assert.Equal(t, "AAA001", sellers[1].ItemCode)
	assert.Equal(t, 2, sellers[1].TotalQuantitySold)
}

func TestBestSellersAggregatesPerItem(t *testing.T) {
	transactions := []model.Transaction{
		saleOf("WID001", "Widget", 3, "9.99"),
		saleOf("WID001", "Widget", 2, "9.99"),
		saleOf("GAD002", "Gadget", 1, "3.50"),
	}

	sellers := BestSellers(transactions, 5)

	require.Len(t, sellers, 2)
	widget := sellers[0]
	assert.Equal(t, "WID001", widget.ItemCode)
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, 5, widget.TotalQuantitySold)
	assert.True(t, widget.TotalRevenue.Equal(dec("49.95")), "revenue was %s", widget.TotalRevenue)
}

func TestBestSellersTiesKeepEncounterOrder(t *testing.T) {
	transactions := []model.Transaction{
		saleOf("CCC003", "Clamp", 4, "1.00"),
		saleOf("AAA001", "Anvil", 4, "1.00"),
		saleOf("BBB002", "Bolt", 4, "1.00"),
	}

	sellers := BestSellers(transactions, 5)

	require.Len(t, sellers, 3)
	assert.Equal(t, "CCC003", sellers[0].ItemCode)
	assert.Equal(t, "AAA001", sellers[1].ItemCode)
	assert.Equal(t, "BBB002", sellers[2].ItemCode)
}

func TestBestSellersTruncatesToTopN(t *testing.T) {
	var transactions []model.Transaction
	for i, code := range []string{"AAA001", "BBB002", "CCC003", "DDD004"} {
		transactions = append(transactions, saleOf(code, "Item", 10-i, "1.00"))
	}

	top2 := BestSellers(transactions, 2)
	require.Len(t, top2, 2)
	assert.Equal(t, "AAA001", top2[0].ItemCode)
	assert.Equal(t, "BBB002", top2[1].ItemCode)

	// Fewer distinct items than topN returns all of them.
	assert.Len(t, BestSellers(transactions, 10), 4)
	assert.Empty(t, BestSellers(nil, 5))
}

func TestBestSellersIsPure(t *testing.T) {
	transactions := []model.Transaction{
		saleOf("AAA001", "Anvil", 1, "10.00"),
		saleOf("BBB002", "Bolt", 5, "2.00"),
		saleOf("AAA001", "Anvil", 2, "10.00"),
	}
	originalOrder := []string{transactions[0].ItemCode, transactions[1].ItemCode, transactions[2].ItemCode}

	first := BestSellers(transactions, 5)
	second := BestSellers(transactions, 5)

	assert.Equal(t, first, second)
	assert.Equal(t, originalOrder, []string{
		transactions[0].ItemCode, transactions[1].ItemCode, transactions[2].ItemCode,
	}, "input must not be reordered")
	assert.Equal(t, 1, transactions[0].Quantity, "input must not be mutated")
}

func TestTopSellersReadsLedger(t *testing.T) {
	store := storage.New(t.TempDir())
	ledger := repository.NewLedgerRepo(store)
	require.NoError(t, ledger.Append(saleOf("WID001", "Widget", 3, "9.99")))

	svc := NewReportService(ledger)
	sellers, err := svc.TopSellers(DefaultTopN)
	require.NoError(t, err)
	require.Len(t, sellers, 1)
	assert.Equal(t, 3, sellers[0].TotalQuantitySold)
}
