// Package migration aplica o schema embutido no binário
package migration

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

//go:embed schema.sql
var schema string

// Statements divide o schema em comandos, descartando linhas vazias
func Statements() []string {
	parts := strings.Split(schema, ";")
	stmts := make([]string, 0, len(parts))
	for _, part := range parts {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Apply executa todo o schema em uma única transação. Os comandos são idempotentes.
func Apply(ctx context.Context, conn postgres.Conn) error {
	stmts := Statements()

	err := conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		for i, stmt := range stmts {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("migration: comando %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.ForContext(ctx).WithField("statements", len(stmts)).Info("migration: schema aplicado")
	return nil
}
