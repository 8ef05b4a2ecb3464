package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/oauth2"

	tea "github.com/charmbracelet/bubbletea"

	"saker/internal/auth"
	"saker/internal/config"
	"saker/internal/demo"
	"saker/internal/hevy"
	"saker/internal/service"
	"saker/internal/store"
	"saker/internal/strava"
	"saker/internal/tui"
)

// demoSeed keeps the generated sample history identical across runs.
const demoSeed = 42

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	importPath := flag.String("import", "", "import a Hevy CSV export and exit")
	seedDemo := flag.Bool("demo", false, "regenerate the sample training history and exit")
	forceAuth := flag.Bool("auth", false, "run the Strava OAuth flow before starting")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Created an example config at %s/config.json.\n", configDir)
		fmt.Println("Add Strava API credentials there to enable syncing (https://www.strava.com/settings/api).")
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if *importPath != "" {
		return importHevy(db, *importPath)
	}

	if *seedDemo {
		return seedDemoData(db)
	}

	// First run with an empty database: seed the sample history so the
	// dashboard has something to show.
	if empty, err := storeIsEmpty(db); err != nil {
		return fmt.Errorf("checking store: %w", err)
	} else if empty {
		fmt.Println("No training data found. Generating a sample history...")
		if err := seedDemoData(db); err != nil {
			return err
		}
	}

	// Strava is optional: without credentials the dashboard still works
	// on imported and sample data.
	var syncSvc *service.SyncService
	if cfg.HasStrava() {
		client, err := stravaClient(ctx, db, cfg, *forceAuth)
		if err != nil {
			fmt.Printf("Strava setup failed: %v\n", err)
			fmt.Println("Continuing without sync. Re-run with -auth to reconnect.")
		} else {
			syncSvc = service.NewSyncService(client, db)
		}
	}

	querySvc := service.NewQueryService(db, cfg.Display.DistanceUnit)

	// Launch TUI
	app := tui.NewApp(db, querySvc, syncSvc)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// importHevy parses a Hevy CSV export and replaces the stored hevy
// rows with its contents.
func importHevy(db *store.DB, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sets, err := hevy.ParseCSV(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := db.ReplaceStrengthSets(store.SourceHevy, sets); err != nil {
		return fmt.Errorf("storing sets: %w", err)
	}

	fmt.Printf("Imported %d sets from %s.\n", len(sets), path)
	return nil
}

// seedDemoData replaces the demo-sourced rows with a fresh generated
// history.
func seedDemoData(db *store.DB) error {
	today := time.Now()

	rng := rand.New(rand.NewSource(demoSeed))
	sets := demo.StrengthSets(rng, today, demo.Days)
	if err := db.ReplaceStrengthSets(store.SourceDemo, sets); err != nil {
		return fmt.Errorf("storing sample sets: %w", err)
	}

	activities := demo.CardioActivities(rng, today, demo.Days)
	if err := db.ReplaceCardioActivities(store.SourceDemo, activities); err != nil {
		return fmt.Errorf("storing sample activities: %w", err)
	}

	fmt.Printf("Generated %d sample sets and %d sample activities.\n", len(sets), len(activities))
	return nil
}

func storeIsEmpty(db *store.DB) (bool, error) {
	sets, _, err := db.CountStrengthSets()
	if err != nil {
		return false, err
	}
	if sets > 0 {
		return false, nil
	}
	activities, err := db.ListCardioActivities()
	if err != nil {
		return false, err
	}
	return len(activities) == 0, nil
}

// stravaClient wires up an authenticated Strava API client, running
// the OAuth flow when needed.
func stravaClient(ctx context.Context, db *store.DB, cfg *config.Config, forceAuth bool) (*strava.Client, error) {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) || forceAuth {
		fmt.Println("Starting Strava OAuth flow...")
		if err := authenticate(ctx, db, oauthCfg); err != nil {
			return nil, err
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return nil, fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("checking auth: %w", err)
	}

	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	// Test token is valid by getting a fresh one
	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, oauthCfg); err != nil {
			return nil, err
		}
	}

	return strava.NewClient(tokenSource), nil
}

func authenticate(ctx context.Context, db *store.DB, oauthCfg *oauth2.Config) error {
	result, err := auth.Authenticate(ctx, oauthCfg)
	if err != nil {
		return err
	}

	storedAuth := &store.Auth{
		AthleteID:    result.AthleteID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	}
	if err := db.SaveAuth(storedAuth); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}

	fmt.Printf("Authenticated as athlete %d.\n", result.AthleteID)
	return nil
}
