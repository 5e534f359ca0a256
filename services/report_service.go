package services

import (
	"time"

	"backend/repository"
)

type ReportService struct {
	Repo *repository.ReportRepository
}

func NewReportService(repo *repository.ReportRepository) *ReportService {
	return &ReportService{Repo: repo}
}

type SalesReport struct {
	From     string                  `json:"from"`
	To       string                  `json:"to"`
	Totals   repository.SalesTotals  `json:"totals"`
	ByDay    []repository.DailySales `json:"byDay"`
	TopItems []repository.TopItem    `json:"topItems"`
}

// Sales aggregates the range [from, to) — callers pass the day after the
// last wanted day as `to`.
func (s *ReportService) Sales(from, to time.Time, topLimit int) (*SalesReport, error) {
	totals, err := s.Repo.SalesTotals(from, to)
	if err != nil {
		return nil, err
	}
	byDay, err := s.Repo.SalesByDay(from, to)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopItems(from, to, topLimit)
	if err != nil {
		return nil, err
	}
	return &SalesReport{
		From: from.Format("2006-01-02"), To: to.Format("2006-01-02"),
		Totals: *totals, ByDay: byDay, TopItems: top,
	}, nil
}

type ProcurementReport struct {
	From       string                       `json:"from"`
	To         string                       `json:"to"`
	Totals     repository.ProcurementTotals `json:"totals"`
	BySupplier []repository.SupplierSpend   `json:"bySupplier"`
}

func (s *ReportService) Procurement(from, to time.Time) (*ProcurementReport, error) {
	totals, err := s.Repo.ProcurementTotals(from, to)
	if err != nil {
		return nil, err
	}
	bySupplier, err := s.Repo.SpendBySupplier(from, to)
	if err != nil {
		return nil, err
	}
	return &ProcurementReport{
		From: from.Format("2006-01-02"), To: to.Format("2006-01-02"),
		Totals: *totals, BySupplier: bySupplier,
	}, nil
}
