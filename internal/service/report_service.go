package service

import (
	"sort"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
)

// DefaultTopN is how many best sellers the report returns by default.
const DefaultTopN = 5

type ReportService interface {
	TopSellers(topN int) ([]model.BestSeller, error)
}

type reportService struct {
	ledger repository.LedgerRepository
}

func NewReportService(ledger repository.LedgerRepository) ReportService {
	return &reportService{ledger: ledger}
}

func (s *reportService) TopSellers(topN int) ([]model.BestSeller, error) {
	transactions, err := s.ledger.FindAll()
	if err != nil {
		return nil, err
	}
	return BestSellers(transactions, topN), nil
}

// BestSellers aggregates the given transactions per item code and returns
// the topN items by total quantity sold, ties keeping first-seen order.
// It is a pure function: the input is never mutated.
func BestSellers(transactions []model.Transaction, topN int) []model.BestSeller {
	index := make(map[string]int)
	var summary []model.BestSeller

	for _, tx := range transactions {
		i, ok := index[tx.ItemCode]
		if !ok {
			i = len(summary)
			index[tx.ItemCode] = i
			summary = append(summary, model.BestSeller{
				ItemCode: tx.ItemCode,
				Name:     tx.Name,
			})
		}
		summary[i].TotalQuantitySold += tx.Quantity
		summary[i].TotalRevenue = summary[i].TotalRevenue.Add(tx.Revenue)
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].TotalQuantitySold > summary[j].TotalQuantitySold
	})

	if topN > 0 && topN < len(summary) {
		summary = summary[:topN]
	}
	return summary
}
