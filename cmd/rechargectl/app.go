package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"minutes-recharge/cmd/bootstrap/components"
	"minutes-recharge/internal/domain/account"
	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/infra/db"
	"minutes-recharge/internal/infra/repository"
	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/config"
	"minutes-recharge/internal/pkg/jwt"
	"minutes-recharge/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func envelopeCmd() *cobra.Command {
	var (
		minutes   int64
		amount    string
		workspace string
	)
	cmd := &cobra.Command{
		Use:   "envelope",
		Short: "Assemble a payment envelope with the configured provider keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if workspace != "" {
				cfg.Wompi.WorkspaceID = workspace
			}

			amountCOP := recharge.PriceFor(minutes, cfg.Wompi.PricePerMinute)
			if amount != "" {
				if amountCOP, err = decimal.NewFromString(amount); err != nil {
					return fmt.Errorf("invalid --amount: %w", err)
				}
			}

			factory := components.NewEnvelopeFactory(cfg, clock.NewRealClock(), cliLogger())
			env, err := factory.Assemble(cmd.Context(), amountCOP, minutes, "")
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"reference":     env.Reference().String(),
				"amountCOP":     env.AmountCOP(),
				"amountInCents": env.AmountInCentsString(),
				"currency":      env.Currency().String(),
				"signature":     env.Signature(),
				"publicKey":     env.PublicKey(),
				"redirectUrl":   env.RedirectURL(),
				"buttonLabel":   env.ButtonLabel(),
			})
		},
	}

	cmd.Flags().Int64VarP(&minutes, "minutes", "m", 0, "Minutes to recharge")
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount in COP (defaults to minutes * price per minute)")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace id (defaults to WOMPI_WORKSPACE_ID)")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			conn, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := db.RunMigrations(conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage dashboard accounts",
	}
	cmd.AddCommand(accountCreateCmd())
	return cmd
}

func accountCreateCmd() *cobra.Command {
	var (
		email     string
		password  string
		workspace string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account bound to a workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			credentials, err := account.NewCredentials(email, password)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			conn, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			logger := cliLogger()
			clk := clock.NewRealClock()
			auth := usecase.NewAuthUseCase(
				repository.NewAccountRepository(conn, logger),
				jwt.NewService(cfg.JWT.Secret, 0, clk),
				clk,
			)

			acc, err := auth.Register(cmd.Context(), credentials, workspace)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s) in workspace %s\n", acc.Email, acc.ID, acc.WorkspaceID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Login email")
	cmd.Flags().StringVar(&password, "password", "", "Password, at least 8 characters")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace id")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("workspace")

	return cmd
}

func attemptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempt",
		Short: "Inspect recorded checkout attempts",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show [reference]",
		Short: "Show the stored attempt for a reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			conn, cleanup, err := db.Connect(cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			attempt, err := repository.NewCheckoutAttemptRepository(conn, cliLogger()).FindByReference(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %s\n", "status", attempt.Status)
			fmt.Fprintf(out, "%-14s %s\n", "workspace_id", attempt.WorkspaceID)
			fmt.Fprintf(out, "%-14s %d\n", "minutes", attempt.Minutes)
			fmt.Fprintf(out, "%-14s %d %s\n", "amount", attempt.AmountInCents, attempt.Currency)
			fmt.Fprintf(out, "%-14s %s\n", "created_at", attempt.CreatedAt.Format(time.RFC3339))
			return nil
		},
	})
	return cmd
}
