package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/administering"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
)

func listHandler[T any](op string, list func(ctx context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := list(r.Context())
		if err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, r, http.StatusOK, items)
	}
}

func createHandler[T any](op string, create func(ctx context.Context, v *T) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var v T
		if err := decodeBody(r, &v); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := create(r.Context(), &v)
		if err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}
		writeJSON(w, r, http.StatusCreated, created)
	}
}

// updateHandler usa o :id da rota, ignorando o id do corpo
func updateHandler[T any](op string, setID func(v *T, id int), update func(ctx context.Context, v *T) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}

		var v T
		if err := decodeBody(r, &v); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		setID(&v, id)

		if err := update(r.Context(), &v); err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}
		writeJSON(w, r, http.StatusOK, v)
	}
}

func deleteHandler(op string, del func(ctx context.Context, id int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}

		if err := del(r.Context(), id); err != nil {
			writeUsecaseError(w, r, op, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ListBudgets aceita id, provider_id, team_id e os prefixos month e amount
func ListBudgets(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			filter domain.BudgetFilter
			err    error
		)
		if filter.ID, err = optionalInt(r, "id"); err != nil {
			writeUsecaseError(w, r, "budget.list", err)
			return
		}
		if filter.ProviderID, err = optionalInt(r, "provider_id"); err != nil {
			writeUsecaseError(w, r, "budget.list", err)
			return
		}
		if filter.TeamID, err = optionalInt(r, "team_id"); err != nil {
			writeUsecaseError(w, r, "budget.list", err)
			return
		}
		filter.MonthPrefix = r.URL.Query().Get("month")
		filter.AmountPrefix = optionalPrefix(r, "amount")

		listHandler("budget.list", func(ctx context.Context) ([]domain.BudgetEntry, error) {
			return service.ListBudgets(ctx, filter)
		}).ServeHTTP(w, r)
	}
}

func CloneBudgets(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CloneRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.CloneBudgets(r.Context(), req)
		if err != nil {
			writeUsecaseError(w, r, "budget.clone", err)
			return
		}
		writeJSON(w, r, http.StatusOK, result)
	}
}

// ListProjects filtra por prvid e teamid
func ListProjects(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := parseIds(r)
		if err != nil {
			writeUsecaseError(w, r, "project.list", err)
			return
		}

		listHandler("project.list", func(ctx context.Context) ([]domain.Project, error) {
			return service.ListProjects(ctx, ids)
		}).ServeHTTP(w, r)
	}
}

// GetReferenceLists devolve de uma vez as listas usadas nos seletores
func GetReferenceLists(service administering.Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lists, err := service.ReferenceLists(r.Context())
		if err != nil {
			writeUsecaseError(w, r, "reference.lists", err)
			return
		}
		writeJSON(w, r, http.StatusOK, lists)
	}
}
