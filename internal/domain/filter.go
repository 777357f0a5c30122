package domain

import (
	"strconv"
	"strings"
)

// Ids restringe uma consulta por dimensão. Uma lista nil não filtra;
// uma lista vazia (não nil) não casa com nenhuma linha.
type Ids struct {
	Providers []int `json:"providers,omitempty"`
	Teams     []int `json:"teams,omitempty"`
	Project   *int  `json:"project,omitempty"`
	Divisions []int `json:"divisions,omitempty"`
}

// WithTeams retorna uma cópia com o filtro de times substituído
func (ids Ids) WithTeams(teams []int) Ids {
	ids.Teams = teams
	return ids
}

// SingleProvider retorna o único provider do filtro
func (ids Ids) SingleProvider() (int, bool) {
	if len(ids.Providers) != 1 {
		return 0, false
	}
	return ids.Providers[0], true
}

// ParseIDs interpreta uma lista separada por vírgulas.
// "" e "0" significam ausência de filtro.
func ParseIDs(field, raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, NewFilterError(field, raw)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ParseID aplica a mesma normalização de ParseIDs para um único id
func ParseID(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, nil
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, NewFilterError(field, raw)
	}
	return &id, nil
}

// ParseWindow monta uma Window a partir dos parâmetros externos (segundos Unix)
func ParseWindow(format, start, end string) (Window, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return Window{}, err
	}

	w := Window{Format: f}
	if w.Start, err = parseEpoch("time_start", start); err != nil {
		return Window{}, err
	}
	if w.End, err = parseEpoch("time_end", end); err != nil {
		return Window{}, err
	}
	return w, nil
}

func parseEpoch(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, NewFilterError(field, raw)
	}
	return &v, nil
}
