package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/iho/takeledger/internal/adapter/http/dto"
	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/auth"
	"github.com/iho/takeledger/internal/infrastructure/postgres"
)

// Migrations are applied through this so tests can stub them.
var (
	migrateUp      = postgres.RunMigrations
	migrateDown    = postgres.RunMigrationsDown
	migrateVersion = postgres.MigrationVersion
)

var hundred = decimal.NewFromInt(100)

type options struct {
	baseURL string
	token   string
	timeout time.Duration
	as      string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "takeledger-cli",
		Short:         "Takeledger CLI tool",
		Long:          `A command line interface for the team take ledger.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:8080", "Base URL of the takeledger API")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("TAKELEDGER_TOKEN"), "Bearer token")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Request timeout")
	root.PersistentFlags().StringVar(&opts.as, "as", "", "Recorder participant ID when the server runs without auth")

	root.AddCommand(
		teamCmd(opts),
		takeCmd(opts),
		memberCmd(opts),
		auditCmd(opts),
		tokenCmd(),
		migrateCmd(),
	)

	return root
}

func (o *options) client() *apiClient {
	return newAPIClient(o.baseURL, o.token, o.timeout)
}

func teamPath(slug string, rest ...string) string {
	p := "/api/v1/teams/" + url.PathEscape(slug)
	for _, r := range rest {
		p += "/" + url.PathEscape(r)
	}
	return p
}

func teamCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Team operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <slug>",
		Short: "Show a team and its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := opts.client().do(cmd.Context(), http.MethodGet, teamPath(args[0])+"/", nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "takes <slug>",
		Short: "Show the team's take distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := opts.client().do(cmd.Context(), http.MethodGet, teamPath(args[0], "takes"), nil)
			if err != nil {
				return err
			}

			var dist dto.DistributionResponse
			if err := json.Unmarshal(body, &dist); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			printDistribution(cmd.OutOrStdout(), &dist)
			return nil
		},
	})

	return cmd
}

func takeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Member take operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <slug> <member>",
		Short: "Show a member's current take",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := opts.client().do(cmd.Context(), http.MethodGet, teamPath(args[0], "members", args[1], "take"), nil)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), body)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <slug> <member> <amount>",
		Short: "Set a member's take",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.SetTakeRequest{Amount: args[2], RecorderID: opts.as}
			body, err := opts.client().do(cmd.Context(), http.MethodPut, teamPath(args[0], "members", args[1], "take"), req)
			if err != nil {
				return err
			}

			var resp dto.SetTakeResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recorded: %s\n", resp.Recorded.StringFixed(2))
			if resp.Throttled {
				fmt.Fprintf(out, "Throttled from %s\n", resp.Requested.StringFixed(2))
			}
			return nil
		},
	})

	return cmd
}

func memberCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Team membership operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <slug> <member>",
		Short: "Add a member to a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.AddMemberRequest{MemberID: args[1], RecorderID: opts.as}
			if _, err := opts.client().do(cmd.Context(), http.MethodPost, teamPath(args[0], "members"), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[1], args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <slug> <member>",
		Short: "Remove a member from a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.RemoveMemberRequest{RecorderID: opts.as}
			if _, err := opts.client().do(cmd.Context(), http.MethodDelete, teamPath(args[0], "members", args[1]), req); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[1], args[0])
			return nil
		},
	})

	return cmd
}

func auditCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check recorded balances against current takes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "team <slug>",
		Short: "Audit a team's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := opts.client().do(cmd.Context(), http.MethodGet, teamPath(args[0], "audit"), nil)
			if err != nil {
				return err
			}

			var resp dto.TeamAuditResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return reportAudit(cmd.OutOrStdout(), body, resp.Consistent)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "member <id>",
		Short: "Audit a participant's taking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := opts.client().do(cmd.Context(), http.MethodGet, "/api/v1/members/"+url.PathEscape(args[0])+"/audit", nil)
			if err != nil {
				return err
			}

			var resp dto.MemberAuditResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}
			return reportAudit(cmd.OutOrStdout(), body, resp.Consistent)
		},
	})

	return cmd
}

func reportAudit(out io.Writer, body []byte, consistent bool) error {
	if err := printJSON(out, body); err != nil {
		return err
	}
	if !consistent {
		return fmt.Errorf("audit FAILED: balances are inconsistent")
	}
	fmt.Fprintln(out, "Audit PASSED")
	return nil
}

func tokenCmd() *cobra.Command {
	var (
		secret   string
		username string
		admin    bool
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <participant-id>",
		Short: "Mint a bearer token for a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("--secret or JWT_SECRET is required")
			}
			if username == "" {
				username = args[0]
			}

			token, err := auth.NewJWTManager(secret, ttl).Generate(&domain.Member{
				ID:       args[0],
				Username: username,
				IsAdmin:  admin,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "Signing secret")
	cmd.Flags().StringVar(&username, "username", "", "Username claim (defaults to the participant ID)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant admin privileges")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")

	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL")
	cmd.PersistentFlags().StringVar(&path, "path", "migrations", "Migrations directory")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL is required")
			}
			return migrateUp(databaseURL, path)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL is required")
			}
			return migrateDown(databaseURL, path)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				return fmt.Errorf("--database-url or DATABASE_URL is required")
			}
			version, dirty, err := migrateVersion(databaseURL, path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Version: %d\n", version)
			if dirty {
				return fmt.Errorf("schema is dirty at version %d", version)
			}
			return nil
		},
	})

	return cmd
}

func printJSON(out io.Writer, body []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(out)
	return err
}

func printDistribution(out io.Writer, dist *dto.DistributionResponse) {
	fmt.Fprintf(out, "%-20s %10s %10s %10s %8s\n", "MEMBER", "NOMINAL", "ACTUAL", "BALANCE", "PERCENT")
	for _, e := range dist.Entries {
		fmt.Fprintf(out, "%-20s %10s %10s %10s %7s%%\n",
			truncate(e.MemberID, 20),
			e.Nominal.StringFixed(2),
			e.Actual.StringFixed(2),
			e.Balance.StringFixed(2),
			e.Percentage.Mul(hundred).StringFixed(1),
		)
	}
	fmt.Fprintf(out, "Budget: %s  Distributed: %s\n", dist.Budget.StringFixed(2), dist.TotalActual.StringFixed(2))
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
