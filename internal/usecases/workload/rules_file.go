package workload

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// RulesFile é o formato YAML de importação das regras de um provider.
// A ordem no arquivo define o rank.
//
//	rules:
//	  - group: Compute
//	    match: "BoxUsage|SpotUsage"
//	    scale_factor: "0.5"
//	    scale_unit: vCPU-hours
type RulesFile struct {
	Rules []RuleEntry `yaml:"rules"`
}

type RuleEntry struct {
	Group       string  `yaml:"group"`
	Match       string  `yaml:"match"`
	ScaleFactor *string `yaml:"scale_factor"`
	ScaleUnit   *string `yaml:"scale_unit"`
}

// ParseRules lê e valida o arquivo. Diferente da classificação em tempo de
// consulta, uma expressão inválida aqui rejeita o arquivo inteiro.
func ParseRules(r io.Reader, providerID int) ([]domain.MatchRule, error) {
	var file RulesFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("workload: yaml inválido: %w", err)
	}

	rules := make([]domain.MatchRule, 0, len(file.Rules))
	for i, entry := range file.Rules {
		group := strings.TrimSpace(entry.Group)
		if group == "" {
			return nil, fmt.Errorf("workload: regra %d sem group", i+1)
		}
		if _, err := regexp.Compile(anchored(entry.Match)); err != nil {
			return nil, fmt.Errorf("workload: regra %d (%s): %w", i+1, group, err)
		}

		rule := domain.MatchRule{
			ProviderID: providerID,
			GroupName:  group,
			TextMatch:  entry.Match,
			ScaleUnit:  entry.ScaleUnit,
			Rank:       i + 1,
		}
		if entry.ScaleFactor != nil {
			factor, err := decimal.NewFromString(strings.TrimSpace(*entry.ScaleFactor))
			if err != nil {
				return nil, fmt.Errorf("workload: regra %d (%s) scale_factor: %w", i+1, group, err)
			}
			rule.ScaleFactor = decimal.NewNullDecimal(factor)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
