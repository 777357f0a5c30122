package workload

import (
	"context"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

// Bucket é o grupo de workload atribuído a uma métrica
type Bucket struct {
	Name        string
	ScaleFactor *decimal.Decimal
	ScaleUnit   *string
}

type compiledRule struct {
	pattern *regexp.Regexp
	bucket  Bucket
}

// Bucketer classifica nomes de métrica pela primeira regra que casar
type Bucketer struct {
	rules []compiledRule
}

// NewBucketer compila as regras na ordem recebida. O padrão é ancorado no
// início do nome; regras com expressão inválida são ignoradas.
func NewBucketer(ctx context.Context, rules []domain.MatchRule) *Bucketer {
	b := &Bucketer{rules: make([]compiledRule, 0, len(rules))}

	for _, rule := range rules {
		pattern, err := regexp.Compile(anchored(rule.TextMatch))
		if err != nil {
			log.ForContext(ctx).WithError(err).WithFields(log.Fields{
				"rule_id":    rule.ID,
				"text_match": rule.TextMatch,
			}).Warn("workload: regra com expressão inválida ignorada")
			continue
		}

		bucket := Bucket{Name: rule.GroupName, ScaleUnit: rule.ScaleUnit}
		if rule.ScaleFactor.Valid {
			factor := rule.ScaleFactor.Decimal
			bucket.ScaleFactor = &factor
		}

		b.rules = append(b.rules, compiledRule{pattern: pattern, bucket: bucket})
	}

	return b
}

func anchored(textMatch string) string {
	return "^(?:" + textMatch + ")"
}

// Classify retorna o bucket da métrica; sem regra, o próprio nome vira o bucket
func (b *Bucketer) Classify(metricName string) Bucket {
	for _, rule := range b.rules {
		if rule.pattern.MatchString(metricName) {
			return rule.bucket
		}
	}
	return Bucket{Name: metricName}
}

// ClassifyAll monta o mapa id da métrica -> bucket
func (b *Bucketer) ClassifyAll(metricTypes map[int]string) map[int]Bucket {
	buckets := make(map[int]Bucket, len(metricTypes))
	for id, name := range metricTypes {
		buckets[id] = b.Classify(name)
	}
	return buckets
}
