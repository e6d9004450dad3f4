package handler

import (
	"errors"
	"log"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"
	"go-stockroom/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrDuplicateUsername):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrStorageUnavailable):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

type CreateProductRequest struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"positive_decimal"`
	Stock int             `json:"stock" validate:"gte=0"`
}

type UpdateProductRequest struct {
	StockAdjustment *int             `json:"stock_adjustment"`
	Price           *decimal.Decimal `json:"price"`
}

type RecordSaleRequest struct {
	ItemCode string `json:"item_code" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'",
		})
	}

	product, err := h.service.AddProduct(req.Name, req.Price, req.Stock)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// GetProducts lists the catalog, optionally filtered by ?q= (substring match
// on item code or name), with the filtered view's total value and low-stock
// count alongside.
func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	query := c.Query("q")

	products := h.service.SearchProducts(query)
	if products == nil {
		products = []model.Product{}
	}
	lowStock := h.service.LowStock(products, service.DefaultLowStockThreshold)

	return c.JSON(fiber.Map{
		"products":        products,
		"total_value":     h.service.TotalValue(products),
		"low_stock_count": len(lowStock),
		"query":           query,
	})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	itemCode := c.Params("code")

	var req UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateDetails(itemCode, req.StockAdjustment, req.Price)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	itemCode := c.Params("code")

	if err := h.service.DeleteProduct(itemCode); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product " + itemCode + " deleted"})
}

func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	var req RecordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&req); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'",
		})
	}

	tx, err := h.service.RecordSale(req.ItemCode, req.Quantity)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": tx})
}

func (h *InventoryHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.Transactions()
	if err != nil {
		log.Printf("ledger read degraded to empty: %v", err)
	}
	if transactions == nil {
		transactions = []model.Transaction{}
	}
	return c.JSON(transactions)
}
