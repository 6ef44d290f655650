package main

import (
	"fmt"
	"log/slog"
	"os"

	"minutes-recharge/internal/domain/recharge"
	"minutes-recharge/internal/pkg/clock"

	"github.com/spf13/cobra"
)

func referenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Build or inspect checkout references",
	}
	cmd.AddCommand(referenceBuildCmd())
	cmd.AddCommand(referenceParseCmd())
	return cmd
}

func referenceBuildCmd() *cobra.Command {
	var (
		workspaceID string
		minutes     int64
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Print a new reference for workspace and minutes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := recharge.NewReference(workspaceID, minutes, clock.NewRealClock())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ref.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspaceID, "workspace", "w", "66666", "Workspace id")
	cmd.Flags().Int64VarP(&minutes, "minutes", "m", 0, "Minutes to recharge")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func referenceParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [reference]",
		Short: "Show the fields recovered from a reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := recharge.ParseReference(args[0])
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-14s %s\n", "completeness:", parsed.Completeness())
			if ws, ok := parsed.WorkspaceID(); ok {
				fmt.Fprintf(out, "%-14s %s\n", "workspace_id:", ws)
			}
			if m, ok := parsed.Minutes(); ok {
				fmt.Fprintf(out, "%-14s %d\n", "minutes:", m)
			}
			if ts, ok := parsed.Timestamp(); ok {
				fmt.Fprintf(out, "%-14s %d\n", "timestamp:", ts)
			}
			if t, ok := parsed.Type(); ok {
				fmt.Fprintf(out, "%-14s %s\n", "type:", t)
			}
			return nil
		},
	}
}

func signCmd() *cobra.Command {
	var (
		reference     string
		amountInCents int64
		currency      string
		secret        string
	)
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Compute the integrity signature for a payload",
		Long: `Computes SHA-256(reference + amountInCents + currency + secret).
The secret defaults to WOMPI_INTEGRITY_SECRET.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				secret = os.Getenv("WOMPI_INTEGRITY_SECRET")
			}
			signer := recharge.NewIntegritySigner(secret, slog.New(slog.DiscardHandler))
			sig, ok, err := signer.Sign(cmd.Context(), recharge.SignatureInput{
				Reference:     reference,
				AmountInCents: amountInCents,
				Currency:      currency,
			})
			if err != nil {
				return err
			}
			if !ok {
				return recharge.ErrSignatureUnavailable
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reference, "reference", "r", "", "Checkout reference")
	cmd.Flags().Int64VarP(&amountInCents, "amount-in-cents", "a", 0, "Amount in minor units")
	cmd.Flags().StringVarP(&currency, "currency", "c", recharge.DefaultCurrency.String(), "Currency code")
	cmd.Flags().StringVar(&secret, "secret", "", "Integrity secret")
	_ = cmd.MarkFlagRequired("reference")
	_ = cmd.MarkFlagRequired("amount-in-cents")

	return cmd
}
