package handler

import (
	"log"
	"strconv"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetBestSellers returns the top N products by quantity sold.
// Query params: top_n (default 5)
func (h *ReportHandler) GetBestSellers(c *fiber.Ctx) error {
	topN, err := strconv.Atoi(c.Query("top_n", ""))
	if err != nil || topN <= 0 {
		topN = service.DefaultTopN
	}

	sellers, err := h.service.TopSellers(topN)
	if err != nil {
		log.Printf("ledger read degraded to empty: %v", err)
	}
	if sellers == nil {
		sellers = []model.BestSeller{}
	}

	return c.JSON(fiber.Map{
		"top_n":        topN,
		"best_sellers": sellers,
	})
}
