package repository

import (
	"context"

	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type ProviderRepository interface {
	ListProviders(ctx context.Context) ([]domain.Provider, error)
}

type providerRepository struct {
	conn postgres.Queryer
}

func NewProviderRepository(conn postgres.Queryer) ProviderRepository {
	return &providerRepository{
		conn: conn,
	}
}

func (r *providerRepository) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	query, args, err := providersQuery(nil).ToSql()
	if err != nil {
		return nil, buildError("provider.ListProviders", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("provider.ListProviders", query, args, err)
	}
	defer rows.Close()

	providers := make([]domain.Provider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, readError("provider.ListProviders", query, args, err)
		}
		providers = append(providers, p)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("provider.ListProviders", query, args, err)
	}

	return providers, nil
}
