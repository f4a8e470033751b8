// Package main provides the CLI entry point for equipmail.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/equipmail-go/pkg/equipmail"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/config"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/mail"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

var (
	configPath string
	envFile    string
	verbose    bool
	dryRun     bool
	outputPath string

	logger *zap.Logger
)

type jobFunc func(context.Context, *config.Config, mail.Sender, equipmail.Options) (*equipmail.Result, error)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "equipmail",
		Short: "Email equipment reports built from the equipment workbook",
		Long: `equipmail reads the equipment workbook and emails HTML reports:
the monthly list of laptops due for replacement and the daily digest
of purchase orders that need attention.

Run it from a scheduler (cron, systemd timer); each run is independent.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load environment variables from .env file
			if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
				return fmt.Errorf("failed to load env file: %w", err)
			}

			// Initialize logger
			zapConfig := zap.NewProductionConfig()
			if verbose {
				zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = zapConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "equipmail.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load before reading config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Render messages without sending them")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Write rendered messages to this file (default: stdout on dry run)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "laptops",
			Short: "Send the monthly laptop replacement report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, equipmail.RunLaptopReport)
			},
		},
		&cobra.Command{
			Use:   "orders",
			Short: "Send the daily order digest if any order needs attention",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, equipmail.RunOrderReport)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run the laptop report, then the order digest",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, equipmail.RunLaptopReport, equipmail.RunOrderReport)
			},
		},
	)

	return rootCmd
}

func run(cmd *cobra.Command, jobs ...jobFunc) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(!dryRun); err != nil {
		return err
	}

	sender, closeOut, err := newSender(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOut()

	opts := equipmail.DefaultOptions()
	opts.Logger = logger

	for _, job := range jobs {
		result, err := job(cmd.Context(), cfg, sender, opts)
		if err != nil {
			logger.Error("job failed", zap.Error(err))
			return err
		}
		logger.Info("job finished",
			zap.String("job", result.Job),
			zap.Bool("sent", result.Sent),
			zap.Int("skipped_rows", len(result.Skipped)))
	}
	return nil
}

// newSender returns the SMTP sender, or a recorder writing previews on a
// dry run. With --output the rendered messages are written to that file in
// both modes.
func newSender(cfg *config.Config, stdout io.Writer) (mail.Sender, func(), error) {
	var out io.Writer
	closeOut := func() {}
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create output file: %w", err)
		}
		out = f
		closeOut = func() { f.Close() }
	} else if dryRun {
		out = stdout
	}

	if dryRun {
		return &mail.Recorder{Out: out}, closeOut, nil
	}

	smtp := mail.NewSMTPSender(cfg.SMTP, logger)
	if out == nil {
		return smtp, closeOut, nil
	}
	return &teeSender{next: smtp, preview: &mail.Recorder{Out: out}}, closeOut, nil
}

// teeSender writes a preview of each message before sending it.
type teeSender struct {
	next    mail.Sender
	preview *mail.Recorder
}

func (s *teeSender) Send(ctx context.Context, msg models.Message) error {
	if err := s.preview.Send(ctx, msg); err != nil {
		return err
	}
	return s.next.Send(ctx, msg)
}
