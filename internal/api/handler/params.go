package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

// parseIds lê prvid, teamid, prjid e divid da query
func parseIds(r *http.Request) (domain.Ids, error) {
	q := r.URL.Query()
	var (
		ids domain.Ids
		err error
	)

	if ids.Providers, err = domain.ParseIDs("prvid", q.Get("prvid")); err != nil {
		return domain.Ids{}, errors.Wrap(err, "parse ids")
	}
	if ids.Teams, err = domain.ParseIDs("teamid", q.Get("teamid")); err != nil {
		return domain.Ids{}, errors.Wrap(err, "parse ids")
	}
	if ids.Project, err = domain.ParseID("prjid", q.Get("prjid")); err != nil {
		return domain.Ids{}, errors.Wrap(err, "parse ids")
	}
	if ids.Divisions, err = domain.ParseIDs("divid", q.Get("divid")); err != nil {
		return domain.Ids{}, errors.Wrap(err, "parse ids")
	}

	return ids, nil
}

func parseWindow(r *http.Request) (domain.Window, error) {
	q := r.URL.Query()
	w, err := domain.ParseWindow(q.Get("format"), q.Get("time_start"), q.Get("time_end"))
	if err != nil {
		return domain.Window{}, errors.Wrap(err, "parse window")
	}
	return w, nil
}

func parseDimension(r *http.Request) (domain.Dimension, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("dimension")
	dim, err := domain.ParseDimension(raw)
	if err != nil {
		return "", errors.Wrap(err, "parse dimension")
	}
	return dim, nil
}

func parseFlag(r *http.Request, name string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WithStack(domain.NewFilterError(name, raw))
	}
	return v, nil
}

// parseSpendRequest monta a consulta de gastos a partir da rota e da query
func parseSpendRequest(r *http.Request) (domain.SpendRequest, error) {
	dim, err := parseDimension(r)
	if err != nil {
		return domain.SpendRequest{}, err
	}
	window, err := parseWindow(r)
	if err != nil {
		return domain.SpendRequest{}, err
	}
	ids, err := parseIds(r)
	if err != nil {
		return domain.SpendRequest{}, err
	}
	addBudget, err := parseFlag(r, "budget")
	if err != nil {
		return domain.SpendRequest{}, err
	}

	return domain.SpendRequest{Window: window, Ids: ids, Dimension: dim, AddBudget: addBudget}, nil
}

func pathID(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domain.NewFilterError("id", raw))
	}
	return id, nil
}

// optionalInt trata "" e "0" como ausência de filtro, como fazem os grids
func optionalInt(r *http.Request, name string) (*int, error) {
	v, err := domain.ParseID(name, r.URL.Query().Get(name))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return v, nil
}

func optionalPrefix(r *http.Request, name string) string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "0" {
		return ""
	}
	return raw
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}
