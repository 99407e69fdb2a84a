package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hishabkitab/backend/internal/adapter/http/dto"
	"github.com/hishabkitab/backend/internal/domain"
	"github.com/hishabkitab/backend/internal/infrastructure/auth"
	"github.com/hishabkitab/backend/internal/infrastructure/config"
	"github.com/hishabkitab/backend/internal/infrastructure/logger"
	"github.com/hishabkitab/backend/internal/infrastructure/postgres"
)

type apiClient struct {
	baseURL string
	owner   string
	token   string
	http    *http.Client
}

var (
	baseURL string
	timeout time.Duration
	owner   string
	token   string
	asJSON  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hishabkitab",
		Short:         "Hishab Kitab CLI tool",
		Long:          `A command line interface for the Hishab Kitab bookkeeping API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Hishab Kitab API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&owner, "owner", "", "Owner ID sent as X-Owner-ID when auth is disabled")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("HISHABKITAB_TOKEN"), "Bearer token")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print raw JSON responses")

	rootCmd.AddCommand(customerCmd(), cashbookCmd(), stockCmd(), migrateCmd(), tokenCmd())

	return rootCmd
}

func client() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		owner:   owner,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// getJSON fetches path and decodes the JSON body into out.
func (c *apiClient) getJSON(path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if c.owner != "" {
		req.Header.Set("X-Owner-ID", c.owner)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("%s (status %d): %s", apiErr.Error, resp.StatusCode, apiErr.Message)
			}
			return fmt.Errorf("%s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	return json.Unmarshal(body, out)
}

func customerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Customer ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "balance <customer-id>",
		Short: "Show a customer's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp dto.CustomerResponse
			if err := client().getJSON("/customers/"+url.PathEscape(args[0]), nil, &resp); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				printJSON(out, resp)
				return nil
			}
			fmt.Fprintf(out, "%s (%s)\n", resp.Name, resp.ID)
			fmt.Fprintf(out, "Balance: %s\n", resp.Balance.String())
			fmt.Fprintln(out, resp.BalanceLabel)
			return nil
		},
	})

	return cmd
}

func cashbookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cashbook",
		Short: "Cashbook operations",
	}

	var from, to, category string
	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show cashbook totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			for key, val := range map[string]string{"from": from, "to": to, "category": category} {
				if val != "" {
					query.Set(key, val)
				}
			}

			var resp dto.CashbookOverviewResponse
			if err := client().getJSON("/cashbook", query, &resp); err != nil {
				return err
			}

			if asJSON {
				printJSON(cmd.OutOrStdout(), resp.Summary)
				return nil
			}
			printSummary(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	summary.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	summary.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	summary.Flags().StringVar(&category, "category", "", "Only this category")

	cmd.AddCommand(summary)
	return cmd
}

func printSummary(w io.Writer, resp dto.CashbookOverviewResponse) {
	s := resp.Summary
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Total balance", s.TotalBalance},
		{"Today's balance", s.TodaysBalance},
		{"Cash in hand", s.CashBalance},
		{"Online", s.OnlineBalance},
		{"Total in", s.TotalIn},
		{"Total out", s.TotalOut},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-16s %s\n", row.label+":", domain.FormatAmount(row.value))
	}

	if len(resp.Categories) > 0 {
		fmt.Fprintln(w)
		for _, c := range resp.Categories {
			fmt.Fprintf(w, "%-20s %12s  (%d entries)\n", truncate(c.Name, 20), domain.FormatAmount(c.Balance), c.EntriesCount)
		}
	}
}

func stockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Inventory operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "reconcile",
		Short: "Check product stock against the movement log",
		RunE: func(cmd *cobra.Command, args []string) error {
			var report dto.ReconciliationReportResponse
			if err := client().getJSON("/products/reconciliation", nil, &report); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				printJSON(out, report)
			} else {
				fmt.Fprintf(out, "Products checked: %d, reconciled: %d\n", report.TotalProducts, report.ReconciledProducts)
				for _, d := range report.Discrepancies {
					fmt.Fprintf(out, "  %s %-20s recorded=%s calculated=%s diff=%s\n",
						d.ProductID, truncate(d.Name, 20), d.RecordedStock, d.CalculatedStock, d.Difference)
				}
			}

			if len(report.Discrepancies) > 0 {
				return fmt.Errorf("stock reconciliation FAILED: %d discrepancies", len(report.Discrepancies))
			}
			if !asJSON {
				fmt.Fprintln(out, "Stock reconciliation PASSED")
			}
			return nil
		},
	})

	return cmd
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations (reads DATABASE_URL, MIGRATIONS_PATH)",
	}

	migrator := func(cmd *cobra.Command) (*postgres.Migrator, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console", Output: cmd.ErrOrStderr()})
		return postgres.NewMigrator(cfg.DatabaseURL, cfg.MigrationsPath, log), nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := migrator(cmd)
				if err != nil {
					return err
				}
				return m.Up()
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := migrator(cmd)
				if err != nil {
					return err
				}
				return m.Down()
			},
		},
	)

	return cmd
}

func tokenCmd() *cobra.Command {
	var (
		email    string
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <owner-id>",
		Short: "Issue a bearer token for an owner (reads JWT_SECRET)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			tok, err := auth.NewJWTManager(secret, duration).Generate(domain.Owner{ID: args[0], Email: email})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().DurationVar(&duration, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
