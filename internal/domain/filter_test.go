package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []int
		wantErr bool
	}{
		{name: "vazio não filtra", raw: "", want: nil},
		{name: "zero não filtra", raw: "0", want: nil},
		{name: "um id", raw: "4", want: []int{4}},
		{name: "lista com espaços", raw: "1, 2,3", want: []int{1, 2, 3}},
		{name: "valor não numérico", raw: "1,abc", wantErr: true},
		{name: "vírgula sobrando", raw: "1,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIDs("teamid", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFilter))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	got, err := ParseID("prjid", "0")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = ParseID("prjid", "12")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)

	_, err = ParseID("prjid", "x")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("daily", "100", "")
	require.NoError(t, err)
	assert.Equal(t, FormatDaily, w.Format)
	require.NotNil(t, w.Start)
	assert.Equal(t, int64(100), *w.Start)
	assert.Nil(t, w.End)

	_, err = ParseWindow("weekly", "", "")
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = ParseWindow("monthly", "ontem", "")
	var filterErr *FilterError
	require.ErrorAs(t, err, &filterErr)
	assert.Equal(t, "time_start", filterErr.Field)
}

func TestStoreError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("metric.SumCost", ErrStoreUnavailable, cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrWriteFailed)
	assert.Contains(t, err.Error(), "metric.SumCost")
}
