package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	const file = `
rules:
  - group: Compute
    match: "BoxUsage|SpotUsage"
    scale_factor: "0.5"
    scale_unit: vCPU-hours
  - group: Storage
    match: EBS
`
	rules, err := ParseRules(strings.NewReader(file), 7)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "Compute", rules[0].GroupName)
	assert.Equal(t, 7, rules[0].ProviderID)
	assert.Equal(t, 1, rules[0].Rank)
	require.True(t, rules[0].ScaleFactor.Valid)
	assert.Equal(t, "0.5", rules[0].ScaleFactor.Decimal.String())
	assert.Equal(t, "vCPU-hours", *rules[0].ScaleUnit)

	assert.Equal(t, 2, rules[1].Rank)
	assert.False(t, rules[1].ScaleFactor.Valid)
	assert.Nil(t, rules[1].ScaleUnit)
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr string
	}{
		{name: "expressão inválida", file: "rules:\n  - group: X\n    match: \"(\"\n", wantErr: "regra 1 (X)"},
		{name: "sem grupo", file: "rules:\n  - match: A\n", wantErr: "sem group"},
		{name: "campo desconhecido", file: "rules:\n  - group: X\n    regex: A\n", wantErr: "yaml inválido"},
		{name: "fator inválido", file: "rules:\n  - group: X\n    match: A\n    scale_factor: dois\n", wantErr: "scale_factor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules(strings.NewReader(tt.file), 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRules_Empty(t *testing.T) {
	rules, err := ParseRules(strings.NewReader(""), 1)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
