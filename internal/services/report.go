package services

import "fmt"

// Report aggregates the whole sales history. Sales whose book has been
// deleted are excluded from both totals.
type Report struct {
	TotalSales   int64
	TotalRevenue int64
}

// ReportingService aggregates the sales ledger into totals.
type ReportingService struct {
	sales SaleStore
}

func NewReportingService(sales SaleStore) *ReportingService {
	return &ReportingService{sales: sales}
}

func (s *ReportingService) GenerateReport() (*Report, error) {
	totalSales, totalRevenue, err := s.sales.AggregateTotals()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sales: %w", err)
	}
	return &Report{
		TotalSales:   totalSales,
		TotalRevenue: totalRevenue,
	}, nil
}
