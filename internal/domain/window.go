package domain

import (
	"time"
)

// Format define a granularidade dos buckets de data
type Format string

const (
	FormatMonthly Format = "monthly"
	FormatDaily   Format = "daily"
)

const (
	// LagSeconds é a latência dos dados de billing (2 dias)
	LagSeconds = 172800
	// ForecastPeriodSeconds é o horizonte mínimo de uma projeção (3 meses de 29 dias)
	ForecastPeriodSeconds = 3 * 29 * 86400

	MonthLayout = "2006-01"
	DayLayout   = "2006-01-02"
)

// Layout retorna o layout Go usado para rotular os buckets
func (f Format) Layout() string {
	if f == FormatDaily {
		return DayLayout
	}
	return MonthLayout
}

// SQLPattern retorna o padrão do to_char equivalente ao Layout
func (f Format) SQLPattern() string {
	if f == FormatDaily {
		return "YYYY-MM-DD"
	}
	return "YYYY-MM"
}

func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatMonthly:
		return FormatMonthly, nil
	case FormatDaily:
		return FormatDaily, nil
	}
	return "", NewFilterError("format", raw)
}

// Window é o intervalo de tempo de uma consulta, em segundos Unix
type Window struct {
	Format Format `json:"format"`
	Start  *int64 `json:"start,omitempty"`
	End    *int64 `json:"end,omitempty"`
}

func (w Window) IsResolved() bool {
	return w.Start != nil && w.End != nil
}

// StartTime e EndTime só devem ser usados em janelas resolvidas
func (w Window) StartTime(loc *time.Location) time.Time {
	return time.Unix(*w.Start, 0).In(loc)
}

func (w Window) EndTime(loc *time.Location) time.Time {
	return time.Unix(*w.End, 0).In(loc)
}

// Contains verifica se o instante está entre start e end, inclusive
func (w Window) Contains(t time.Time) bool {
	if !w.IsResolved() {
		return false
	}
	unix := t.Unix()
	return unix >= *w.Start && unix <= *w.End
}

// ResolveWindow preenche os limites ausentes de acordo com o formato.
// Mensal: do primeiro dia de dois meses atrás até o último segundo do mês corrente.
// Diário: de 29 dias antes do fim até now - LagSeconds.
func ResolveWindow(w Window, now time.Time) Window {
	if w.Format == "" {
		w.Format = FormatMonthly
	}
	if w.IsResolved() {
		return w
	}

	loc := now.Location()
	var start, end time.Time

	switch w.Format {
	case FormatDaily:
		end = now.Add(-LagSeconds * time.Second)
		y, m, d := end.Date()
		start = time.Date(y, m, d-29, 0, 0, 0, 0, loc)
	default:
		y, m, _ := now.Date()
		end = time.Date(y, m+1, 1, 0, 0, 0, 0, loc).Add(-time.Second)
		start = time.Date(y, m-2, 1, 0, 0, 0, 0, loc)
	}

	startUnix, endUnix := start.Unix(), end.Unix()
	return Window{Format: w.Format, Start: &startUnix, End: &endUnix}
}

func FirstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// LastDayOfMonth retorna 00:00 do último dia do mês de t
func LastDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location())
}

// ParseMonth interpreta um rótulo YYYY-MM como o primeiro instante do mês
func ParseMonth(month string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, month, loc)
	if err != nil {
		return time.Time{}, NewFilterError("month", month)
	}
	return t, nil
}
