package repository

import (
	"go-stockroom/internal/model"
	"go-stockroom/internal/storage"
)

// CatalogRepository holds the live product catalog. The collection is
// loaded from storage once, mutated in memory, and written back whole
// on Save. This is the only collection cached for the process lifetime;
// the ledger and user repositories re-read storage on every call.
type CatalogRepository interface {
	All() []model.Product
	Find(itemCode string) *model.Product
	Insert(product model.Product)
	Remove(itemCode string) bool
	Save() error
}

type catalogRepo struct {
	store    *storage.Store
	products []model.Product
}

// NewCatalogRepo loads the product collection. When the file is corrupt
// the repository starts empty and the error is returned alongside so the
// caller can log it.
func NewCatalogRepo(store *storage.Store) (CatalogRepository, error) {
	r := &catalogRepo{store: store}
	err := store.Load(storage.ProductsFile, &r.products)
	if err != nil {
		r.products = nil
	}
	return r, err
}

func (r *catalogRepo) All() []model.Product {
	return r.products
}

func (r *catalogRepo) Find(itemCode string) *model.Product {
	for i := range r.products {
		if r.products[i].ItemCode == itemCode {
			return &r.products[i]
		}
	}
	return nil
}

func (r *catalogRepo) Insert(product model.Product) {
	r.products = append(r.products, product)
}

func (r *catalogRepo) Remove(itemCode string) bool {
	for i := range r.products {
		if r.products[i].ItemCode == itemCode {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true
		}
	}
	return false
}

func (r *catalogRepo) Save() error {
	products := r.products
	if products == nil {
		products = []model.Product{}
	}
	return r.store.Save(storage.ProductsFile, products)
}
