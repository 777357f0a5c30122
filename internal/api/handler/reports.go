package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/vfg2006/cloud-spend-api/internal/usecases/reporting"
)

func reportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", kind, now.Format("20060102-150405"))
}

// GetBudgetReport exporta em CSV gastos e orçamentos da dimensão
func GetBudgetReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dim, err := parseDimension(r)
		if err != nil {
			writeUsecaseError(w, r, "report.budget.parse", err)
			return
		}
		window, err := parseWindow(r)
		if err != nil {
			writeUsecaseError(w, r, "report.budget.parse", err)
			return
		}
		ids, err := parseIds(r)
		if err != nil {
			writeUsecaseError(w, r, "report.budget.parse", err)
			return
		}

		table, err := service.BudgetReport(r.Context(), window, ids, dim)
		if err != nil {
			writeUsecaseError(w, r, "report.budget", err)
			return
		}

		writeCSV(w, r, reportFilename("budget-"+string(dim), time.Now()), table)
	}
}

// GetOverUnderReport exporta por time o comparativo entre gasto e orçamento
func GetOverUnderReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := parseWindow(r)
		if err != nil {
			writeUsecaseError(w, r, "report.over_under.parse", err)
			return
		}
		ids, err := parseIds(r)
		if err != nil {
			writeUsecaseError(w, r, "report.over_under.parse", err)
			return
		}

		table, err := service.OverUnderReport(r.Context(), window, ids)
		if err != nil {
			writeUsecaseError(w, r, "report.over_under", err)
			return
		}

		writeCSV(w, r, reportFilename("over-under", time.Now()), table)
	}
}

// GetItemCostReport exporta o custo por item de métrica
func GetItemCostReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := parseWindow(r)
		if err != nil {
			writeUsecaseError(w, r, "report.items.parse", err)
			return
		}
		ids, err := parseIds(r)
		if err != nil {
			writeUsecaseError(w, r, "report.items.parse", err)
			return
		}

		table, err := service.ItemCostReport(r.Context(), window, ids)
		if err != nil {
			writeUsecaseError(w, r, "report.items", err)
			return
		}

		writeCSV(w, r, reportFilename("items", time.Now()), table)
	}
}
