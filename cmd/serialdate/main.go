package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/wealthpath/serialdate/internal/apperror"
	"github.com/wealthpath/serialdate/internal/config"
	"github.com/wealthpath/serialdate/internal/logger"
	"github.com/wealthpath/serialdate/internal/model"
	"github.com/wealthpath/serialdate/internal/repository"
	"github.com/wealthpath/serialdate/internal/service"
	"github.com/wealthpath/serialdate/pkg/datetime"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		os.Exit(exitCode(os.Stderr, err))
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("serialdate", flag.ContinueOnError)
	date := fs.String("date", "", "Date (YYYY-MM-DD) to convert to a serial")
	serial := fs.Int("serial", 0, "Serial to convert to a date")
	add := fs.Int("add", 0, "Days to add to -date")
	tenor := fs.String("tenor", "", "Tenor to add to -date, e.g. 3M")
	end := fs.String("end", "", "With -date, print every date up to this one as CSV")
	calendar := fs.String("calendar", "", "Month (YYYY-MM) to render as a PDF calendar into -output")
	output := fs.String("output", "", "Output file (default: stdout)")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	doSync := fs.Bool("sync", false, "Materialise the registry into DATABASE_URL and exit")
	token := fs.String("token", "", "Print an admin token for this subject, signed with JWT_SECRET")
	tokenTTL := fs.Duration("token-ttl", time.Hour, "Lifetime of the -token token")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg := config.Load()
	dates := service.NewDateService(datetime.Default(), nil, cfg.MaxRangeDays)
	exports := service.NewExportService(dates)

	printRow := func(row *model.SerialDate) error {
		if *asJSON {
			return json.NewEncoder(stdout).Encode(row)
		}
		_, err := fmt.Fprintf(stdout, "%s\t%d\t%s\n", row.Date, row.Serial, row.Weekday)
		return err
	}

	switch {
	case *token != "":
		signed, err := service.GenerateToken(cfg.JWTSecret, *token, *tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, signed)
		return err

	case *doSync:
		return runSync(ctx, cfg)

	case *calendar != "":
		var year, month int
		if _, err := fmt.Sscanf(*calendar, "%d-%d", &year, &month); err != nil {
			return fmt.Errorf("calendar %q, expected YYYY-MM: %w", *calendar, datetime.ErrInvalidInput)
		}
		if *output == "" {
			return fmt.Errorf("-calendar needs -output: %w", datetime.ErrInvalidInput)
		}
		data, err := exports.ExportMonthPDF(ctx, year, month)
		if err != nil {
			return err
		}
		return os.WriteFile(*output, data, 0644)

	case *serial != 0:
		row, err := dates.FromSerial(ctx, *serial)
		if err != nil {
			return err
		}
		return printRow(row)

	case *date != "":
		d, err := datetime.ParseDate(*date)
		if err != nil {
			return err
		}
		if *end != "" {
			last, err := datetime.ParseDate(*end)
			if err != nil {
				return err
			}
			data, err := exports.ExportRangeCSV(ctx, d, last)
			if err != nil {
				return err
			}
			return writeOutput(*output, stdout, data)
		}

		var row *model.SerialDate
		switch {
		case *tenor != "":
			row, err = dates.AddTenor(ctx, d, *tenor)
		default:
			row, err = dates.AddDays(ctx, d, *add)
		}
		if err != nil {
			return err
		}
		return printRow(row)

	default:
		fs.Usage()
		return errUsage
	}
}

// exitCode reports err on stderr and returns 2 for bad input and 1 for
// everything else.
func exitCode(stderr io.Writer, err error) int {
	if errors.Is(err, errUsage) {
		return 2
	}
	fmt.Fprintf(stderr, "Error: %s\n", apperror.GetMessage(err))
	if apperror.GetStatusCode(apperror.FromDateError(err, "")) < http.StatusInternalServerError {
		return 2
	}
	return 1
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func runSync(ctx context.Context, cfg *config.Config) error {
	if !cfg.HasDatabase() {
		return errors.New("DATABASE_URL is not set")
	}
	log := logger.Init(cfg.Env)

	ctx, cancel := context.WithTimeout(ctx, cfg.SyncTimeout)
	defer cancel()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := repository.NewSerialDateRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	retry := service.DefaultRetryConfig()
	retry.MaxAttempts = cfg.SyncAttempts
	syncService := service.NewSyncService(repo, repository.NewSyncRunRepository(db), datetime.Default(), nil, cfg.SyncBatchSize).
		WithRetry(retry)
	run, err := syncService.Sync(ctx, service.TriggerCLI)
	if err != nil {
		return err
	}
	log.Info("Dimension table synced",
		"run_id", run.ID.String(),
		"rows_written", run.RowsWritten,
	)
	return nil
}
