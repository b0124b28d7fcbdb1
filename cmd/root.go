// Package cmd implements the automarket CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/automarket/internal/catalog"
	"github.com/theirongolddev/automarket/internal/config"
	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/model"
	"github.com/theirongolddev/automarket/internal/session"
	"github.com/theirongolddev/automarket/internal/store"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "automarket",
	Short:         "Car marketplace simulator",
	Long:          "Browse a car market, buy cars into your garage, list your own cars for sale and manage your balance.",
	RunE:          runMarket,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "  "+err.Error())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("data-dir", "d", "", "Directory holding automarket.db (default from config or XDG data dir)")
	pf.BoolP("user", "u", false, "Use the user market instead of the default market")
	pf.StringP("filter", "f", "", "Filter the market by field: year, price, speed, handling, acceleration, braking, drivetype")
	pf.String("below", "", "Keep cars whose --filter field is below this value (the drive type for drivetype)")
	pf.String("above", "", "Keep cars whose --filter field is above this value")
	pf.BoolP("quiet", "q", false, "Suppress progress output")
	pf.BoolP("verbose", "v", false, "Log diagnostics to stderr")

	viper.SetEnvPrefix("automarket")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(pf)
}

func quiet() bool { return viper.GetBool("quiet") }

// warnf prints a user-facing warning to stderr unless --quiet.
func warnf(format string, args ...any) {
	if quiet() {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

func newLogger() *log.Logger {
	if viper.GetBool("verbose") {
		return log.New(os.Stderr, "automarket: ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// runEnv is the state shared by a single command run.
type runEnv struct {
	cfg     config.Config
	dataDir string
	store   *store.Store // nil when the database could not be opened
	openErr error
	sess    *session.Session
	logger  *log.Logger
}

// offlineStorage stands in for the database when it cannot be opened: every
// load fails so the session starts from its defaults, and saves report why
// the database could not be opened.
type offlineStorage struct{ err error }

func (o offlineStorage) LoadCollection(model.Kind) (*model.Collection, error) { return nil, o.err }
func (o offlineStorage) SaveCollection(model.Kind, *model.Collection) error   { return o.err }
func (o offlineStorage) LoadAccount() (*model.Account, bool, error)           { return nil, false, o.err }
func (o offlineStorage) SaveAccount(*model.Account) error                     { return o.err }
func (o offlineStorage) AppendEvents(string, []model.Event) error             { return o.err }

// openSession loads config and storage and returns a session with the root
// filter flags applied. Storage problems are warnings; the session carries on
// with empty state.
func openSession() (*runEnv, error) {
	logger := newLogger()

	cfg, err := config.Load()
	if err != nil {
		warnf("Config unreadable (%v), using defaults", err)
		cfg = config.DefaultConfig()
	}

	dataDir := viper.GetString("data-dir")
	if dataDir == "" {
		dataDir = config.DataDir(cfg)
	}

	src, err := session.ParseSource(cfg.General.DefaultMarket)
	if err != nil {
		logger.Printf("config default_market: %v", err)
		src = session.SourceDefault
	}
	if viper.GetBool("user") {
		src = session.SourceUser
	}

	sess := session.New(session.Options{
		StartingBalance: decimal.NewFromInt(cfg.Account.StartingBalance),
		Increment:       decimal.NewFromInt(cfg.Account.Increment),
		Seed:            catalog.Default(),
		Source:          src,
		Logger:          logger,
	})

	env := &runEnv{cfg: cfg, dataDir: dataDir, sess: sess, logger: logger}

	st, err := store.Open(store.Path(dataDir))
	if err != nil {
		warnf("Storage unavailable, changes will not be saved")
		logger.Printf("open store: %v", err)
		env.openErr = err
		_ = sess.Load(offlineStorage{err: err})
	} else {
		env.store = st
		if err := sess.Load(st); err != nil {
			warnf("Some saved data could not be loaded: %v", err)
		}
	}

	if err := applyFilterFlags(sess); err != nil {
		env.close()
		return nil, err
	}
	return env, nil
}

// storage returns the session's persistence target.
func (e *runEnv) storage() session.Storage {
	if e.store == nil {
		return offlineStorage{err: e.openErr}
	}
	return e.store
}

// save writes dirty session state. Failures are returned so the command exits
// non-zero.
func (e *runEnv) save() error {
	if err := e.sess.Save(e.storage()); err != nil {
		return fmt.Errorf("changes not saved: %w", err)
	}
	return nil
}

func (e *runEnv) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Printf("close store: %v", err)
		}
	}
}

// applyFilterFlags turns --filter/--below/--above into the session's filter.
func applyFilterFlags(sess *session.Session) error {
	fieldName := viper.GetString("filter")
	below := viper.GetString("below")
	above := viper.GetString("above")

	if fieldName == "" {
		if below != "" || above != "" {
			return errors.New("--below and --above need --filter FIELD")
		}
		return nil
	}

	field, err := market.ParseField(fieldName)
	if err != nil {
		return err
	}

	var (
		cmp market.Comparison
		raw string
	)
	switch {
	case below != "" && above != "":
		return errors.New("use either --below or --above, not both")
	case above != "":
		cmp, raw = market.Above, above
	case below != "":
		cmp, raw = market.Below, below
	default:
		return fmt.Errorf("--filter %s needs --below or --above", field)
	}

	threshold, err := market.ParseThreshold(field, raw)
	if err != nil {
		return err
	}
	p, err := market.NewPredicate(field, cmp, threshold)
	if err != nil {
		return err
	}
	sess.Filter(p)
	return nil
}

// parseCarNumber converts a 1-based car number from the command line into a
// 0-based index.
func parseCarNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not a car number", s)
	}
	return n - 1, nil
}
