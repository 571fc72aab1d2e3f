package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	postgresRepo "github.com/iho/savingsgl/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/savingsgl/internal/adapter/repository/redis"
	"github.com/iho/savingsgl/internal/domain"
	"github.com/iho/savingsgl/internal/infrastructure/config"
	"github.com/iho/savingsgl/internal/infrastructure/logger"
	"github.com/iho/savingsgl/internal/infrastructure/postgres"
	"github.com/iho/savingsgl/internal/infrastructure/redis"
	"github.com/iho/savingsgl/internal/usecase"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "savingsgl",
		Short:         "Savings GL posting tools",
		Long:          `Dry-run posting rules and fees, manage the schema and mapping cache, and inspect posted journal groups.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the worker ops server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(dispatchCmd(), feeCmd(), migrateCmd(), cacheCmd(), inspectCmd())
	return rootCmd
}

func dispatchCmd() *cobra.Command {
	var (
		transactionPath string
		chartPath       string
		basisName       string
	)

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Print the posting instructions for a transaction without writing them",
		RunE: func(cmd *cobra.Command, args []string) error {
			basis, err := domain.ParseAccountingBasis(basisName)
			if err != nil {
				return err
			}

			var txn domain.Transaction
			if err := readJSONFile(transactionPath, &txn); err != nil {
				return fmt.Errorf("read transaction: %w", err)
			}

			var chart domain.Chart
			if err := readJSONFile(chartPath, &chart); err != nil {
				return fmt.Errorf("read chart: %w", err)
			}
			if chart.Basis == "" {
				chart.Basis = basis
			}
			if chart.ProductID == "" {
				chart.ProductID = txn.ProductID
			}

			instructions, err := usecase.NewPostingRuleDispatcher().Dispatch(txn, basis, &chart)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), instructions)
		},
	}

	cmd.Flags().StringVar(&transactionPath, "transaction", "", "Path to a transaction JSON file")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Path to a chart of accounts JSON file")
	cmd.Flags().StringVar(&basisName, "basis", string(domain.BasisCash), "Accounting basis (cash or accrual)")
	_ = cmd.MarkFlagRequired("transaction")
	_ = cmd.MarkFlagRequired("chart")

	return cmd
}

// feeQuoter computes the fee an account charge owes on a transaction amount.
type feeQuoter interface {
	Quote(ctx context.Context, accountID, accountChargeID string, amount decimal.Decimal) (usecase.FeeComputation, error)
}

type postingFeeQuoter struct {
	accounts usecase.SavingsAccountRepository
	service  *usecase.PostingService
}

func (q *postingFeeQuoter) Quote(ctx context.Context, accountID, accountChargeID string, amount decimal.Decimal) (usecase.FeeComputation, error) {
	account, err := q.accounts.GetByID(ctx, accountID)
	if err != nil {
		return usecase.FeeComputation{}, err
	}
	return q.service.ApplyChargeFee(ctx, accountChargeID, account, amount)
}

var newFeeQuoter = func(ctx context.Context, persist bool, log zerolog.Logger) (feeQuoter, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
		DatabaseURL:     cfg.DatabaseURL,
		MaxConns:        2,
		MinConns:        1,
		MaxConnLifetime: cfg.DatabaseMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	accountRepo := postgresRepo.NewSavingsAccountRepository(pool)
	accountChargeRepo := postgresRepo.NewAccountChargeRepository(pool)
	calculator := usecase.NewChargeFeeCalculator(
		usecase.NewChargeOverrideResolver(postgresRepo.NewOverrideRepository(pool)),
		accountChargeRepo,
		log,
	)

	// Only the fee path of the service is used here.
	service := usecase.NewPostingService(
		postgresRepo.NewTxManager(pool),
		accountRepo,
		nil,
		nil,
		accountChargeRepo,
		nil,
		nil,
		nil,
		calculator,
		nil,
		nil,
		log,
		nil,
		usecase.PostingOptions{PersistCappedPercentage: persist},
	)

	return &postingFeeQuoter{accounts: accountRepo, service: service}, pool.Close, nil
}

func feeCmd() *cobra.Command {
	var (
		accountID       string
		accountChargeID string
		amountText      string
		persist         bool
	)

	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Compute the fee an account charge owes on an amount",
		Long: `Resolve overrides and caps for an account charge and print the amount owed.
With --persist a cap back-solved percentage is stored on the account charge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(amountText)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountText, err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			quoter, closeFn, err := newFeeQuoter(ctx, persist, cliLogger(cmd))
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := quoter.Quote(ctx, accountID, accountChargeID, amount)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Savings account id")
	cmd.Flags().StringVar(&accountChargeID, "account-charge", "", "Account charge id")
	cmd.Flags().StringVar(&amountText, "amount", "", "Transaction amount the fee applies to")
	cmd.Flags().BoolVar(&persist, "persist", false, "Store a cap back-solved percentage")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("account-charge")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// schemaMigrator is satisfied by *postgres.Migrator.
type schemaMigrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
}

var newMigrator = func(log zerolog.Logger) (schemaMigrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, log), nil
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(fn func(m schemaMigrator, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			m, err := newMigrator(cliLogger(cmd))
			if err != nil {
				return err
			}
			return fn(m, cmd.OutOrStdout())
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: run(func(m schemaMigrator, out io.Writer) error {
				return m.Up()
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back every migration",
			RunE: run(func(m schemaMigrator, out io.Writer) error {
				return m.Down()
			}),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: run(func(m schemaMigrator, out io.Writer) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "version: %d\ndirty: %v\n", version, dirty)
				return nil
			}),
		},
	)

	return cmd
}

// mappingInvalidator is satisfied by *redisRepo.AccountMappingCache.
type mappingInvalidator interface {
	Invalidate(ctx context.Context, productID string) error
}

var newMappingInvalidator = func(ctx context.Context, log zerolog.Logger) (mappingInvalidator, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client, err := redis.NewClient(ctx, cfg.RedisURL, 1)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	cache := redisRepo.NewAccountMappingCache(client, nil, cfg.ChartCacheTTL, log)
	return cache, func() { _ = client.Close() }, nil
}

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the account mapping cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "invalidate <product-id>...",
		Short: "Drop cached charts and income accounts of products after their mappings change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			invalidator, closeFn, err := newMappingInvalidator(ctx, cliLogger(cmd))
			if err != nil {
				return err
			}
			defer closeFn()

			for _, productID := range args {
				if err := invalidator.Invalidate(ctx, productID); err != nil {
					return fmt.Errorf("invalidate %s: %w", productID, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "invalidated %s\n", productID)
			}
			return nil
		},
	})

	return cmd
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect posted journal groups and fee splits",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "group <group-transaction-id>",
			Short: "Show the entries of a posted group and whether it balances",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return fetch(cmd.OutOrStdout(), "/v1/groups/"+url.PathEscape(args[0]))
			},
		},
		&cobra.Command{
			Use:   "splits <external-transaction-id>",
			Short: "Show the fee split audits of an external transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return fetch(cmd.OutOrStdout(), "/v1/fee-splits/"+url.PathEscape(args[0]))
			},
		},
	)

	return cmd
}

// fetch GETs path from the ops server and pretty-prints the JSON body.
func fetch(out io.Writer, path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to parse response (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	if err := printJSON(out, payload); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func cliLogger(cmd *cobra.Command) zerolog.Logger {
	return logger.NewWithWriter(logger.Config{Level: "info", Format: "console"}, cmd.ErrOrStderr())
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
