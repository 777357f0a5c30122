package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/infrastructure/migration"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/config"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/administering"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/workload"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

// app concentra as dependências externas dos comandos
type app struct {
	connect func(ctx context.Context) (postgres.Conn, error)
}

func defaultApp() *app {
	return &app{
		connect: func(ctx context.Context) (postgres.Conn, error) {
			cfg, err := config.NewConfig()
			if err != nil {
				return nil, err
			}
			if _, err := log.Configure(log.Options{Level: cfg.App.LogLevel}); err != nil {
				return nil, err
			}
			return postgres.NewConnection(ctx, cfg.Database)
		},
	}
}

func (a *app) withConn(ctx context.Context, fn func(conn postgres.Conn) error) error {
	conn, err := a.connect(ctx)
	if err != nil {
		return fmt.Errorf("conectar ao banco: %w", err)
	}
	defer conn.Close()
	return fn(conn)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "spendctl",
		Short:        "Operações de manutenção do cloud-spend-api",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(a),
		newRulesCmd(a),
		newBudgetsCmd(a),
		newForecastCmd(a),
	)
	return root
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema embutido em uma transação",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withConn(cmd.Context(), func(conn postgres.Conn) error {
				if err := migration.Apply(cmd.Context(), conn); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema aplicado (%d comandos)\n", len(migration.Statements()))
				return nil
			})
		},
	}
}

func newRulesCmd(a *app) *cobra.Command {
	rules := &cobra.Command{
		Use:   "rules",
		Short: "Regras de classificação de workload",
	}

	var (
		providerID int
		file       string
	)
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Substitui as regras de um provider pelas do arquivo YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if providerID <= 0 {
				return fmt.Errorf("--provider é obrigatório")
			}

			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			parsed, err := workload.ParseRules(f, providerID)
			if err != nil {
				return err
			}

			return a.withConn(cmd.Context(), func(conn postgres.Conn) error {
				repo := repository.NewMatchRuleRepository(conn)
				if err := repo.ReplaceForProvider(cmd.Context(), providerID, parsed); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d regras importadas para o provider %d\n", len(parsed), providerID)
				return nil
			})
		},
	}
	importCmd.Flags().IntVar(&providerID, "provider", 0, "id do provider")
	importCmd.Flags().StringVar(&file, "file", "", "arquivo YAML com as regras")
	_ = importCmd.MarkFlagRequired("file")

	rules.AddCommand(importCmd)
	return rules
}

func newBudgetsCmd(a *app) *cobra.Command {
	budgets := &cobra.Command{
		Use:   "budgets",
		Short: "Manutenção de orçamentos",
	}

	var (
		req        domain.CloneRequest
		providerID int
		teamID     int
	)
	cloneCmd := &cobra.Command{
		Use:   "clone",
		Short: "Copia os orçamentos de um mês para outro sem sobrescrever os existentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("provider") {
				req.ProviderID = &providerID
			}
			if cmd.Flags().Changed("team") {
				req.TeamID = &teamID
			}
			if err := req.Validate(); err != nil {
				return err
			}

			return a.withConn(cmd.Context(), func(conn postgres.Conn) error {
				admin := administering.NewService(
					repository.NewBudgetRepository(conn),
					repository.NewTeamRepository(conn),
					repository.NewProjectRepository(conn),
					repository.NewDivisionRepository(conn),
					repository.NewProviderRepository(conn),
				)

				result, err := admin.CloneBudgets(cmd.Context(), req)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d orçamentos copiados de %s para %s\n", result.Cloned, result.Source, result.Target)
				return nil
			})
		},
	}
	cloneCmd.Flags().StringVar(&req.Source, "from", "", "mês de origem (YYYY-MM)")
	cloneCmd.Flags().StringVar(&req.Target, "to", "", "mês de destino (YYYY-MM)")
	cloneCmd.Flags().IntVar(&providerID, "provider", 0, "restringe a um provider")
	cloneCmd.Flags().IntVar(&teamID, "team", 0, "restringe a um time")

	budgets.AddCommand(cloneCmd)
	return budgets
}

func newForecastCmd(a *app) *cobra.Command {
	var (
		dimension string
		providers string
		teams     string
		budget    bool
	)

	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Imprime a projeção de gastos dos próximos meses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := forecastRequest(dimension, providers, teams, budget)
			if err != nil {
				return err
			}

			return a.withConn(cmd.Context(), func(conn postgres.Conn) error {
				metrics := repository.NewMetricRepository(conn)
				spender := spending.NewService(
					repository.NewReferenceRepository(conn),
					metrics,
					repository.NewBudgetRepository(conn),
				)

				points, err := forecasting.NewService(metrics, spender).EstimateSpend(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printPoints(cmd.OutOrStdout(), points)
			})
		},
	}
	cmd.Flags().StringVar(&dimension, "dimension", string(domain.DimensionProvider), "provider ou team")
	cmd.Flags().StringVar(&providers, "prvid", "", "ids de provider separados por vírgula")
	cmd.Flags().StringVar(&teams, "teamid", "", "ids de time separados por vírgula")
	cmd.Flags().BoolVar(&budget, "budget", false, "inclui a série de orçamento")
	return cmd
}

func forecastRequest(dimension, providers, teams string, budget bool) (domain.SpendRequest, error) {
	dim, err := domain.ParseDimension(dimension)
	if err != nil {
		return domain.SpendRequest{}, err
	}

	var ids domain.Ids
	if ids.Providers, err = domain.ParseIDs("prvid", providers); err != nil {
		return domain.SpendRequest{}, err
	}
	if ids.Teams, err = domain.ParseIDs("teamid", teams); err != nil {
		return domain.SpendRequest{}, err
	}

	return domain.SpendRequest{
		Window:    domain.Window{Format: domain.FormatMonthly},
		Ids:       ids,
		Dimension: dim,
		AddBudget: budget,
	}, nil
}

func printPoints(w io.Writer, points []domain.SpendPoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tNAME\tSERIES\tSPEND")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", p.Month, p.Label, p.Series, p.Spend)
	}
	return tw.Flush()
}
