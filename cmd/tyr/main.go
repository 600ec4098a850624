package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rozsival/tyr-worklog-creator/internal/batch"
	"github.com/rozsival/tyr-worklog-creator/internal/calendar"
	"github.com/rozsival/tyr-worklog-creator/internal/config"
	"github.com/rozsival/tyr-worklog-creator/internal/prompt"
	"github.com/rozsival/tyr-worklog-creator/internal/tempo"
	"github.com/rozsival/tyr-worklog-creator/pkg/dateutil"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tyr",
		Short: "Bulk worklog creator",
		Long:  "Create one worklog per selected workday of the current month against the Tempo GraphQL API",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Config file path")

	rootCmd.AddCommand(fillCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fillCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Select workdays of the current month and create one worklog per day",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			var holidays calendar.HolidaySet
			if cfg.Calendar.HolidaysFile != "" {
				holidays, err = calendar.LoadHolidays(cfg.Calendar.HolidaysFile, logger)
				if err != nil {
					return fmt.Errorf("failed to load holidays: %w", err)
				}
			}

			today := dateutil.Today()
			days := calendar.WorkdaysThrough(today, holidays)
			if len(days) == 0 {
				fmt.Println("No eligible workdays in the current month yet")
				return nil
			}

			logger.Info("Workdays resolved",
				zap.Time("today", today),
				zap.Int("count", len(days)))

			selected, err := prompt.SelectDays(calendar.GroupByWeek(days))
			if err != nil {
				return fmt.Errorf("day selection failed: %w", err)
			}
			if len(selected) == 0 {
				fmt.Println("No days selected, nothing to do")
				return nil
			}

			payload, err := prompt.CollectPayload(batch.Payload{
				TimeSpent: cfg.Defaults.GetTimeSpent(),
				Project:   cfg.Defaults.Project,
				Ticket:    cfg.Defaults.Ticket,
			})
			if err != nil {
				return fmt.Errorf("input collection failed: %w", err)
			}

			confirmed, err := prompt.Confirm(selected, payload)
			if err != nil {
				return fmt.Errorf("confirmation failed: %w", err)
			}
			if !confirmed {
				fmt.Println("Aborted, no worklogs created")
				return nil
			}

			if dryRun {
				fmt.Printf("[DRY RUN] Would create %d worklog(s):\n", len(selected))
				for _, day := range selected {
					fmt.Printf("  📋 %s  %s on %s: %s\n",
						day.Format("2006-01-02 Mon"), payload.TimeSpent, payload.Ticket, payload.Comment)
				}
				return nil
			}

			client := tempo.NewClient(cfg.Tempo.Endpoint, tempo.StaticToken(cfg.Tempo.Token), logger)
			submitter := batch.NewSubmitter(client, logger)

			result, err := submitter.Run(cmd.Context(), selected, payload)
			if err != nil {
				return err
			}

			for _, dayResult := range result.Days {
				if dayResult.State == batch.Succeeded {
					fmt.Printf("  ✅ %s  worklog %s\n",
						dayResult.Day.Format("2006-01-02 Mon"), dayResult.WorklogID)
				} else {
					fmt.Printf("  ❌ %s  %v\n",
						dayResult.Day.Format("2006-01-02 Mon"), dayResult.Err)
				}
			}

			fmt.Printf("\n%d worklog(s) created, %d failed in %s\n",
				result.Succeeded, result.Failed, result.Duration.Round(time.Millisecond))

			if result.Failed > 0 {
				return fmt.Errorf("%d of %d submissions failed", result.Failed, result.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the batch without creating worklogs")

	return cmd
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
