package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRoundTrip(t *testing.T) {
	store := storage.New(t.TempDir())

	catalog, err := NewCatalogRepo(store)
	require.NoError(t, err)
	catalog.Insert(model.Product{ItemCode: "WID001", Name: "Widget", Price: decimal.RequireFromString("9.99"), Stock: 50})
	catalog.Insert(model.Product{ItemCode: "GAD002", Name: "Gadget", Price: decimal.RequireFromString("3.50"), Stock: 7})
	require.NoError(t, catalog.Save())

	reloaded, err := NewCatalogRepo(store)
	require.NoError(t, err)
	products := reloaded.All()
	require.Len(t, products, 2)
	assert.Equal(t, "WID001", products[0].ItemCode)
	assert.Equal(t, "GAD002", products[1].ItemCode)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("9.99")))
}

func TestCatalogFindReturnsLiveReference(t *testing.T) {
	store := storage.New(t.TempDir())
	catalog, err := NewCatalogRepo(store)
	require.NoError(t, err)
	catalog.Insert(model.Product{ItemCode: "WID001", Name: "Widget", Price: decimal.NewFromInt(5), Stock: 10})

	p := catalog.Find("WID001")
	require.NotNil(t, p)
	p.Stock = 3

	assert.Equal(t, 3, catalog.Find("WID001").Stock)
	assert.Nil(t, catalog.Find("MISSING"))
}

func TestCatalogRemove(t *testing.T) {
	store := storage.New(t.TempDir())
	catalog, err := NewCatalogRepo(store)
	require.NoError(t, err)
	catalog.Insert(model.Product{ItemCode: "WID001", Name: "Widget", Price: decimal.NewFromInt(5), Stock: 10})

	assert.True(t, catalog.Remove("WID001"))
	assert.False(t, catalog.Remove("WID001"))
	assert.Empty(t, catalog.All())
}

func TestLedgerAppendPreservesOrder(t *testing.T) {
	store := storage.New(t.TempDir())
	ledger := NewLedgerRepo(store)

	for i, code := range []string{"AAA001", "BBB002", "AAA001"} {
		tx := model.Transaction{
			Timestamp:   model.Now(),
			ItemCode:    code,
			Name:        "Item " + code,
			Quantity:    i + 1,
			PriceAtSale: decimal.NewFromInt(10),
			Revenue:     decimal.NewFromInt(int64((i + 1) * 10)),
		}
		require.NoError(t, ledger.Append(tx))
	}

	transactions, err := ledger.FindAll()
	require.NoError(t, err)
	require.Len(t, transactions, 3)
	assert.Equal(t, []string{"AAA001", "BBB002", "AAA001"}, []string{
		transactions[0].ItemCode, transactions[1].ItemCode, transactions[2].ItemCode,
	})
	assert.Equal(t, 2, transactions[1].Quantity)
}

// The ledger holds no cache: a second repository over the same store sees
// appends from the first immediately.
func TestLedgerReadsStorageOnEveryCall(t *testing.T) {
	store := storage.New(t.TempDir())
	writer := NewLedgerRepo(store)
	reader := NewLedgerRepo(store)

	before, err := reader.FindAll()
	require.NoError(t, err)
	assert.Empty(t, before)

	require.NoError(t, writer.Append(model.Transaction{
		Timestamp: model.Now(), ItemCode: "WID001", Name: "Widget",
		Quantity: 1, PriceAtSale: decimal.NewFromInt(2), Revenue: decimal.NewFromInt(2),
	}))

	after, err := reader.FindAll()
	require.NoError(t, err)
	require.Len(t, after, 1)
}

// Ledgers written by the original app carry offsetless local timestamps.
// Loading one must yield its rows, not an empty ledger, and a later append
// must keep them.
func TestLedgerAcceptsOriginalTimestampFormat(t *testing.T) {
	dir := t.TempDir()
	fixture := `[
    {
        "timestamp": "2025-11-14T10:21:33.123456",
        "item_code": "WID001",
        "name": "Widget",
        "quantity": 3,
        "price_at_sale": 9.99,
        "revenue": 29.97
    }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, storage.TransactionsFile), []byte(fixture), 0o644))
	ledger := NewLedgerRepo(storage.New(dir))

	transactions, err := ledger.FindAll()
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "WID001", transactions[0].ItemCode)
	assert.Equal(t, 3, transactions[0].Quantity)
	assert.True(t, transactions[0].Revenue.Equal(decimal.RequireFromString("29.97")))
	want := time.Date(2025, 11, 14, 10, 21, 33, 123456000, time.Local)
	assert.True(t, transactions[0].Timestamp.Equal(want), "timestamp was %s", transactions[0].Timestamp)

	require.NoError(t, ledger.Append(model.Transaction{
		Timestamp: model.Now(), ItemCode: "GAD002", Name: "Gadget",
		Quantity: 1, PriceAtSale: decimal.NewFromInt(2), Revenue: decimal.NewFromInt(2),
	}))

	after, err := ledger.FindAll()
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "WID001", after[0].ItemCode, "original rows must survive the append")
	assert.Equal(t, "GAD002", after[1].ItemCode)
}

func TestUserRoundTripAndLookups(t *testing.T) {
	store := storage.New(t.TempDir())
	users := NewUserRepo(store)

	alice := &model.User{ID: "1", Username: "alice"}
	require.NoError(t, alice.SetPassword("hunter2x"))
	require.NoError(t, users.Create(alice))

	bob := &model.User{ID: "2", Username: "bob"}
	require.NoError(t, bob.SetPassword("swordfish"))
	require.NoError(t, users.Create(bob))

	all, err := users.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].Username)

	byName, err := users.FindByUsername("  alice ")
	require.NoError(t, err)
	assert.Equal(t, "1", byName.ID)
	assert.True(t, byName.CheckPassword("hunter2x"))

	byID, err := users.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "bob", byID.Username)

	_, err = users.FindByUsername("ALICE")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = users.FindByID("99")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
