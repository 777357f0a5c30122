package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao codificar resposta")
	}
}

func writeCSV(w http.ResponseWriter, r *http.Request, filename string, table domain.Table) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if err := reporting.WriteCSV(w, table); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: erro ao escrever CSV")
	}
}

// writeUsecaseError registra e traduz um erro vindo dos casos de uso
func writeUsecaseError(w http.ResponseWriter, r *http.Request, op string, err error) {
	apiErr := apiErrors.WriteDomainError(w, err)
	logger := log.ForContext(r.Context()).WithError(err).WithField("op", op)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error("handler: falha na operação")
	} else {
		logger.Warn("handler: requisição rejeitada")
	}
}
