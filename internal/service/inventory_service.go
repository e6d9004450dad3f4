package service

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/ws"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold marks products considered close to running out.
const DefaultLowStockThreshold = 10

type InventoryService interface {
	AddProduct(name string, price decimal.Decimal, stock int) (*model.Product, error)
	UpdateDetails(itemCode string, stockAdjustment *int, newPrice *decimal.Decimal) (*model.Product, error)
	DeleteProduct(itemCode string) error
	FindProduct(itemCode string) *model.Product
	SearchProducts(query string) []model.Product
	TotalValue(products []model.Product) decimal.Decimal
	LowStock(products []model.Product, threshold int) []model.Product
	RecordSale(itemCode string, quantity int) (*model.Transaction, error)
	Transactions() ([]model.Transaction, error)
}

type inventoryService struct {
	catalog repository.CatalogRepository
	ledger  repository.LedgerRepository
	wsHub   *ws.Hub
}

func NewInventoryService(catalog repository.CatalogRepository, ledger repository.LedgerRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		catalog: catalog,
		ledger:  ledger,
		wsHub:   hub,
	}
}

// nextItemCode builds a code from the first three letters of the name plus
// a monotonically increasing sequence: one more than the highest numeric
// suffix already in the catalog. Deleting products therefore never frees a
// sequence number for reuse.
func nextItemCode(name string, products []model.Product) string {
	prefix := name
	if runes := []rune(name); len(runes) > 3 {
		prefix = string(runes[:3])
	}
	prefix = strings.ToUpper(prefix)

	maxSeq := 0
	for _, p := range products {
		if seq, ok := trailingNumber(p.ItemCode); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxSeq+1)
}

// trailingNumber parses the digit run at the end of an item code.
func trailingNumber(code string) (int, bool) {
	i := len(code)
	for i > 0 && code[i-1] >= '0' && code[i-1] <= '9' {
		i--
	}
	if i == len(code) {
		return 0, false
	}
	n := 0
	for _, c := range code[i:] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func (s *inventoryService) AddProduct(name string, price decimal.Decimal, stock int) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price.Sign() <= 0 || stock < 0 {
		return nil, ErrInvalidInput
	}

	itemCode := nextItemCode(name, s.catalog.All())
	if s.catalog.Find(itemCode) != nil {
		return nil, ErrDuplicateCode
	}

	product := model.Product{
		ItemCode: itemCode,
		Name:     name,
		Price:    price,
		Stock:    stock,
	}
	s.catalog.Insert(product)
	s.saveCatalog()

	s.wsHub.Notify("product_created", map[string]interface{}{
		"product": product,
		"message": fmt.Sprintf("Product '%s' added as %s", product.Name, product.ItemCode),
	})

	return s.catalog.Find(itemCode), nil
}

func (s *inventoryService) UpdateDetails(itemCode string, stockAdjustment *int, newPrice *decimal.Decimal) (*model.Product, error) {
	product := s.catalog.Find(itemCode)
	if product == nil {
		return nil, ErrProductNotFound
	}

	// Validate both fields before touching either, so a rejected update
	// leaves the product exactly as it was.
	if stockAdjustment != nil && product.Stock+*stockAdjustment < 0 {
		return nil, ErrStockBelowZero
	}
	if newPrice != nil && newPrice.Sign() <= 0 {
		return nil, ErrInvalidPrice
	}

	if stockAdjustment != nil {
		product.Stock += *stockAdjustment
	}
	if newPrice != nil {
		product.Price = *newPrice
	}
	s.saveCatalog()

	s.wsHub.Notify("product_updated", map[string]interface{}{
		"product": *product,
		"message": fmt.Sprintf("Product %s updated", product.ItemCode),
	})

	return product, nil
}

func (s *inventoryService) DeleteProduct(itemCode string) error {
	if !s.catalog.Remove(itemCode) {
		return ErrProductNotFound
	}
	s.saveCatalog()

	s.wsHub.Notify("product_deleted", map[string]interface{}{
		"item_code": itemCode,
		"message":   fmt.Sprintf("Product %s deleted", itemCode),
	})

	return nil
}

func (s *inventoryService) FindProduct(itemCode string) *model.Product {
	return s.catalog.Find(itemCode)
}

// SearchProducts returns the catalog filtered by a case-insensitive
// substring match on item code or name, sorted by item code. An empty
// query returns the whole catalog.
func (s *inventoryService) SearchProducts(query string) []model.Product {
	query = strings.TrimSpace(query)
	codeQuery := strings.ToUpper(query)
	nameQuery := strings.ToLower(query)

	var results []model.Product
	for _, p := range s.catalog.All() {
		if query == "" ||
			strings.Contains(strings.ToUpper(p.ItemCode), codeQuery) ||
			strings.Contains(strings.ToLower(p.Name), nameQuery) {
			results = append(results, p)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ItemCode < results[j].ItemCode
	})
	return results
}

func (s *inventoryService) TotalValue(products []model.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Value())
	}
	return total
}

func (s *inventoryService) LowStock(products []model.Product, threshold int) []model.Product {
	var low []model.Product
	for _, p := range products {
		if p.Stock <= threshold {
			low = append(low, p)
		}
	}
	return low
}

// RecordSale decrements stock and appends the sale to the ledger as one
// logical operation: the ledger entry is persisted before the stock moves,
// and a failed append leaves the catalog untouched.
func (s *inventoryService) RecordSale(itemCode string, quantity int) (*model.Transaction, error) {
	itemCode = strings.ToUpper(strings.TrimSpace(itemCode))

	product := s.catalog.Find(itemCode)
	if product == nil {
		return nil, ErrProductNotFound
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if product.Stock < quantity {
		return nil, ErrInsufficientStock
	}

	tx := model.Transaction{
		Timestamp:   model.Now(),
		ItemCode:    product.ItemCode,
		Name:        product.Name,
		Quantity:    quantity,
		PriceAtSale: product.Price,
		Revenue:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if err := s.ledger.Append(tx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	product.Stock -= quantity
	s.saveCatalog()

	s.wsHub.Notify("sale_recorded", map[string]interface{}{
		"transaction": tx,
		"new_stock":   product.Stock,
		"message":     fmt.Sprintf("Sale of %d x %s recorded", tx.Quantity, tx.Name),
	})

	return &tx, nil
}

func (s *inventoryService) Transactions() ([]model.Transaction, error) {
	return s.ledger.FindAll()
}

// saveCatalog persists the catalog after a mutation. A write failure is
// reported but does not undo the in-memory change; storage catches up on
// the next successful save.
func (s *inventoryService) saveCatalog() {
	if err := s.catalog.Save(); err != nil {
		log.Printf("Error: could not save inventory file: %v", err)
	}
}
