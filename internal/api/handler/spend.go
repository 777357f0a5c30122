package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/workload"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

// GetSpend retorna os pontos de gasto agregados pela dimensão da rota
func GetSpend(service spending.Spender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSpendRequest(r)
		if err != nil {
			writeUsecaseError(w, r, "spend.parse", err)
			return
		}

		points, err := service.GetSpend(r.Context(), req)
		if err != nil {
			writeUsecaseError(w, r, "spend.get", err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"dimension": req.Dimension,
			"points":    len(points),
		}).Debug("spend: consulta concluída")

		writeJSON(w, r, http.StatusOK, points)
	}
}

// GetForecast projeta os gastos dos próximos meses
func GetForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseSpendRequest(r)
		if err != nil {
			writeUsecaseError(w, r, "forecast.parse", err)
			return
		}

		points, err := service.EstimateSpend(r.Context(), req)
		if err != nil {
			writeUsecaseError(w, r, "forecast.estimate", err)
			return
		}

		writeJSON(w, r, http.StatusOK, points)
	}
}

// GetWorkload agrupa por dia os custos de um projeto de um único provider
func GetWorkload(service workload.WorkloadGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, err := parseWindow(r)
		if err != nil {
			writeUsecaseError(w, r, "workload.parse", err)
			return
		}
		ids, err := parseIds(r)
		if err != nil {
			writeUsecaseError(w, r, "workload.parse", err)
			return
		}
		providerID, projectID, err := workload.Scope(ids)
		if err != nil {
			writeUsecaseError(w, r, "workload.scope", err)
			return
		}

		window.Format = domain.FormatDaily
		window = domain.ResolveWindow(window, now())

		points, err := service.GetWorkload(r.Context(), window, providerID, projectID)
		if err != nil {
			writeUsecaseError(w, r, "workload.get", err)
			return
		}

		writeJSON(w, r, http.StatusOK, points)
	}
}
