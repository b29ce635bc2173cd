package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/paologalligit/moffi-booker/client"
	"github.com/paologalligit/moffi-booker/entities"
	"github.com/paologalligit/moffi-booker/header"
	"github.com/paologalligit/moffi-booker/persistence"
	"github.com/paologalligit/moffi-booker/utils"
	"github.com/paologalligit/moffi-booker/workflow"
)

func main() {
	email := flag.String("email", "", "Account email (falls back to MOFFI_EMAIL)")
	password := flag.String("password", "", "Account password (falls back to MOFFI_PASSWORD)")
	city := flag.String("city", "", "Building name to book in; empty just prints the catalog")
	workspace := flag.String("workspace", "", "Workspace name")
	seat := flag.String("seat", "", "Seat name")
	start := flag.String("start", "", "Reservation start day (2006-01-02)")
	end := flag.String("end", "", "Reservation end day (2006-01-02), optional")
	workers := flag.Int("workers", 10, "Number of concurrent workers")
	requestDelay := flag.Int("delay", 100, "Delay between requests in milliseconds")
	sessionFile := flag.String("session-file", "moffi_session.json", "Session persistence file")
	usePostgres := flag.Bool("pg", false, "Persist the session in postgres (DATABASE_URL) instead of a file")
	catalogFile := flag.String("catalog", "", "Load the catalog from a snapshot file instead of resolving")
	saveCatalog := flag.String("save-catalog", "", "Write the resolved catalog to a snapshot file")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	_ = godotenv.Load()
	if *email == "" {
		*email = os.Getenv("MOFFI_EMAIL")
	}
	if *password == "" {
		*password = os.Getenv("MOFFI_PASSWORD")
	}
	if v := os.Getenv("MOFFI_SESSION_FILE"); v != "" && *sessionFile == "moffi_session.json" {
		*sessionFile = v
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fatal("failed to build logger: %v", err)
		}
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store persistence.SessionStore
	if *usePostgres {
		pool, err := persistence.NewPostgresPool(ctx)
		if err != nil {
			fatal("failed to connect to postgres: %v", err)
		}
		defer pool.Close()
		if err := persistence.InitPostgresSchema(ctx, pool); err != nil {
			fatal("failed to init postgres schema: %v", err)
		}
		store = persistence.NewPostgresSessionStore(pool)
	} else {
		store = persistence.NewFileSessionStore(*sessionFile)
	}

	cookies, err := header.New(ctx, store)
	if err != nil {
		fatal("failed to load session: %v", err)
	}
	apiClient, err := client.New(cookies)
	if err != nil {
		fatal("failed to build client: %v", err)
	}

	booker := workflow.New(&workflow.Options{
		Client:       apiClient,
		Cookies:      cookies,
		Workers:      *workers,
		RequestDelay: *requestDelay,
		ShowProgress: true,
		Logger:       logger,
	})

	creds := entities.Credentials{Email: *email, Password: *password}
	if err := booker.SignIn(ctx, creds); err != nil {
		fatal("sign-in failed: %v", err)
	}
	fmt.Println("🔑 Signed in")

	if *catalogFile != "" {
		buildings, err := utils.ReadCatalogFromFile(*catalogFile)
		if err != nil {
			fatal("failed to load catalog snapshot: %v", err)
		}
		booker.UseCatalog(buildings)
		fmt.Printf("📂 Catalog loaded from %s (%d buildings)\n", *catalogFile, len(buildings))
	} else {
		buildings, err := booker.ResolveCatalog(ctx)
		if err != nil {
			fatal("failed to resolve catalog: %v", err)
		}
		fmt.Printf("\n🏠 Catalog resolved: %d buildings\n", len(buildings))
		if *saveCatalog != "" {
			if err := utils.WriteCatalogToFile(buildings, *saveCatalog); err != nil {
				fatal("failed to save catalog snapshot: %v", err)
			}
			fmt.Println("💾 Catalog written to", *saveCatalog)
		}
	}

	if *city == "" {
		printCatalog(booker.Catalog())
		return
	}

	sel := booker.Selection()
	if err := sel.SelectCity(*city); err != nil {
		fatal("%v", err)
	}
	if err := sel.SelectWorkspace(*workspace); err != nil {
		fatal("%v", err)
	}
	if err := sel.SelectSeat(*seat); err != nil {
		fatal("%v", err)
	}

	dateRange, err := parseDateRange(*start, *end)
	if err != nil {
		fatal("%v", err)
	}

	outcome, err := booker.Reserve(ctx, dateRange)
	if err != nil {
		fatal("reservation failed: %v", err)
	}
	switch outcome.Kind {
	case workflow.OutcomeAccepted:
		fmt.Println("🏁 Reservation accepted!")
		fmt.Println(string(outcome.Body))
	case workflow.OutcomeRejected:
		fmt.Println("❌ Reservation rejected by the server:")
		fmt.Println(string(outcome.Body))
		os.Exit(1)
	default:
		fmt.Println("❌ No usable answer from the server")
		os.Exit(1)
	}
}

func parseDateRange(start, end string) (entities.DateRange, error) {
	if start == "" {
		return entities.DateRange{}, fmt.Errorf("a start day is required to book (-start 2006-01-02)")
	}
	startDay, err := time.Parse("2006-01-02", start)
	if err != nil {
		return entities.DateRange{}, fmt.Errorf("invalid start day %q: %w", start, err)
	}
	dateRange := entities.DateRange{Start: startDay}
	if end != "" {
		endDay, err := time.Parse("2006-01-02", end)
		if err != nil {
			return entities.DateRange{}, fmt.Errorf("invalid end day %q: %w", end, err)
		}
		dateRange.End = &endDay
	}
	return dateRange, nil
}

func printCatalog(buildings []entities.Building) {
	for _, b := range buildings {
		fmt.Printf("🏢 %s\n", b.Name)
		for _, f := range b.Floors {
			fmt.Printf("  floor %d (%s)\n", f.Level, f.Name)
			for _, w := range f.Workspace {
				fmt.Printf("    %s: %d seats\n", w.Name, len(w.Seats))
			}
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
