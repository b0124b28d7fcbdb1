// Package session holds the per-run marketplace state that the console and
// terminal UI adapters drive: the collections, the account, the event log, and
// which market is currently shown.
package session

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/model"
)

// ErrNotLoaded is returned by Save for state whose load failed. Writing it
// would replace the stored copy with whatever this session holds.
var ErrNotLoaded = errors.New("not saved because it failed to load")

// Storage is the persistence collaborator. Implementations replace whole
// collections on save.
type Storage interface {
	LoadCollection(kind model.Kind) (*model.Collection, error)
	SaveCollection(kind model.Kind, c *model.Collection) error
	LoadAccount() (*model.Account, bool, error)
	SaveAccount(a *model.Account) error
	AppendEvents(sessionID string, events []model.Event) error
}

// MarketSource selects which market the session browses.
type MarketSource int

const (
	SourceDefault MarketSource = iota
	SourceUser
)

func (s MarketSource) String() string {
	if s == SourceUser {
		return "user"
	}
	return "default"
}

// ParseSource maps "default" or "user" to a MarketSource.
func ParseSource(s string) (MarketSource, error) {
	switch s {
	case "", "default":
		return SourceDefault, nil
	case "user":
		return SourceUser, nil
	}
	return SourceDefault, fmt.Errorf("unknown market %q (want default or user)", s)
}

// Options configure a new Session.
type Options struct {
	StartingBalance decimal.Decimal
	Increment       decimal.Decimal
	Seed            []model.Car // used when the stored default market is empty
	Source          MarketSource
	Logger          *log.Logger
}

// Session owns all marketplace state for one run.
type Session struct {
	id string

	defaultMarket *model.Collection
	userMarket    *model.Collection
	garage        *model.Collection
	filtered      *model.Collection
	predicate     *market.Predicate
	source        MarketSource

	account *model.Account
	events  *market.EventLog
	engine  *market.Engine

	seed         []model.Car
	dirty        map[model.Kind]bool
	accountDirty bool
	savedEvents  int

	loadFailed        map[model.Kind]bool
	accountLoadFailed bool

	logger *log.Logger
}

// New returns a session with empty collections and the starting balance.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	start := opts.StartingBalance
	if start.IsNegative() {
		start = decimal.Zero
	}

	acct, _ := model.NewAccount(start)
	acct.SetIncrement(opts.Increment)

	events := market.NewEventLog()
	return &Session{
		id:            uuid.NewString(),
		defaultMarket: model.NewCollection(model.KindDefaultMarket),
		userMarket:    model.NewCollection(model.KindUserMarket),
		garage:        model.NewCollection(model.KindGarage),
		source:        opts.Source,
		account:       acct,
		events:        events,
		engine:        market.NewEngine(events),
		seed:          opts.Seed,
		dirty:         make(map[model.Kind]bool),
		loadFailed:    make(map[model.Kind]bool),
		logger:        logger,
	}
}

// ID is the session's unique identifier, stored with its events.
func (s *Session) ID() string { return s.id }

// Load replaces the session state from storage. A piece that fails to load is
// left empty and its error is joined into the result, so callers can warn and
// carry on. Pieces that failed are never written back by Save.
func (s *Session) Load(st Storage) error {
	var errs []error
	clear(s.loadFailed)
	s.accountLoadFailed = false

	for _, kind := range []model.Kind{model.KindDefaultMarket, model.KindUserMarket, model.KindGarage} {
		c, err := st.LoadCollection(kind)
		if err != nil {
			s.logger.Printf("load %s market: %v", kind, err)
			errs = append(errs, fmt.Errorf("loading %s: %w", kind, err))
			s.loadFailed[kind] = true
			continue
		}
		s.collection(kind).Replace(c.Cars())
	}

	if s.defaultMarket.Size() == 0 && len(s.seed) > 0 {
		s.defaultMarket.Replace(s.seed)
		if !s.loadFailed[model.KindDefaultMarket] {
			s.dirty[model.KindDefaultMarket] = true
		}
		s.logger.Printf("seeded default market with %d cars", len(s.seed))
	}

	acct, found, err := st.LoadAccount()
	switch {
	case err != nil:
		s.logger.Printf("load account: %v", err)
		errs = append(errs, fmt.Errorf("loading account: %w", err))
		s.accountLoadFailed = true
	case found:
		acct.SetIncrement(s.account.Increment())
		s.account = acct
	default:
		s.accountDirty = true
	}

	s.refilter()
	return errors.Join(errs...)
}

// Save writes the collections and account changed since the last save, plus
// any new events.
func (s *Session) Save(st Storage) error {
	var errs []error

	for _, kind := range []model.Kind{model.KindDefaultMarket, model.KindUserMarket, model.KindGarage} {
		if !s.dirty[kind] {
			continue
		}
		if s.loadFailed[kind] {
			errs = append(errs, fmt.Errorf("saving %s: %w", kind, ErrNotLoaded))
			continue
		}
		if err := st.SaveCollection(kind, s.collection(kind)); err != nil {
			errs = append(errs, fmt.Errorf("saving %s: %w", kind, err))
			continue
		}
		delete(s.dirty, kind)
	}

	if s.accountDirty && s.accountLoadFailed {
		errs = append(errs, fmt.Errorf("saving account: %w", ErrNotLoaded))
	} else if s.accountDirty {
		if err := st.SaveAccount(s.account); err != nil {
			errs = append(errs, fmt.Errorf("saving account: %w", err))
		} else {
			s.accountDirty = false
		}
	}

	if pending := s.events.Since(s.savedEvents); len(pending) > 0 {
		if err := st.AppendEvents(s.id, pending); err != nil {
			errs = append(errs, fmt.Errorf("saving events: %w", err))
		} else {
			s.savedEvents += len(pending)
		}
	}

	return errors.Join(errs...)
}

// Dirty reports whether anything needs saving.
func (s *Session) Dirty() bool {
	return len(s.dirty) > 0 || s.accountDirty || s.events.Len() > s.savedEvents
}

func (s *Session) collection(kind model.Kind) *model.Collection {
	switch kind {
	case model.KindUserMarket:
		return s.userMarket
	case model.KindGarage:
		return s.garage
	case model.KindFiltered:
		return s.ActiveMarket()
	default:
		return s.defaultMarket
	}
}

// Collection returns the collection of the given kind. KindFiltered returns
// the active market.
func (s *Session) Collection(kind model.Kind) *model.Collection {
	return s.collection(kind)
}

// Garage returns the owned cars.
func (s *Session) Garage() *model.Collection { return s.garage }

// Account returns the cash account.
func (s *Session) Account() *model.Account { return s.account }

// Source returns the market being browsed.
func (s *Session) Source() MarketSource { return s.source }

// UseMarket switches between the default and user markets and clears any filter.
func (s *Session) UseMarket(src MarketSource) {
	s.source = src
	s.ResetFilter()
}

func (s *Session) sourceMarket() *model.Collection {
	if s.source == SourceUser {
		return s.userMarket
	}
	return s.defaultMarket
}

// ActiveMarket is the filtered view when a filter is active, otherwise the
// selected source market.
func (s *Session) ActiveMarket() *model.Collection {
	if s.filtered != nil {
		return s.filtered
	}
	return s.sourceMarket()
}

// FilterActive reports whether the active market is a filtered view.
func (s *Session) FilterActive() bool { return s.filtered != nil }

// Predicate returns the active filter, if any.
func (s *Session) Predicate() (market.Predicate, bool) {
	if s.predicate == nil {
		return market.Predicate{}, false
	}
	return *s.predicate, true
}

// Filter derives a fresh view of the source market. It never narrows an
// existing view.
func (s *Session) Filter(p market.Predicate) *model.Collection {
	s.predicate = &p
	s.filtered = market.Apply(s.sourceMarket(), p)
	return s.filtered
}

// ResetFilter returns to the unfiltered source market.
func (s *Session) ResetFilter() {
	s.predicate = nil
	s.filtered = nil
}

func (s *Session) refilter() {
	if s.predicate != nil {
		s.filtered = market.Apply(s.sourceMarket(), *s.predicate)
	}
}

// Buy purchases the car at the 0-based index of the active market.
func (s *Session) Buy(index int) (market.Result, error) {
	res, err := s.engine.Buy(s.ActiveMarket(), index, s.account, s.garage)
	if err != nil {
		return res, err
	}
	s.dirty[model.KindGarage] = true
	s.accountDirty = true
	return res, nil
}

// List validates spec and adds the car to the user market.
func (s *Session) List(spec market.CarSpec) (market.Result, error) {
	res, err := s.engine.List(spec, s.userMarket)
	if err != nil {
		return res, err
	}
	s.dirty[model.KindUserMarket] = true
	if s.source == SourceUser {
		s.refilter()
	}
	return res, nil
}

// IncreaseBalance credits the configured increment.
func (s *Session) IncreaseBalance() decimal.Decimal {
	bal := s.account.IncreaseBalance()
	s.accountDirty = true
	s.events.Record(fmt.Sprintf("Increased balance by $%s to $%s",
		s.account.Increment().StringFixed(2), bal.StringFixed(2)))
	return bal
}

// SetBalance replaces the balance.
func (s *Session) SetBalance(value decimal.Decimal) error {
	if err := s.account.SetBalance(value); err != nil {
		return err
	}
	s.accountDirty = true
	s.events.Record(fmt.Sprintf("Set balance to $%s", value.StringFixed(2)))
	return nil
}

// Import adds cars to a persisted collection, replacing its contents when
// replace is set.
func (s *Session) Import(kind model.Kind, cars []model.Car, replace bool) error {
	if kind == model.KindFiltered {
		return fmt.Errorf("cannot import into the filtered view")
	}
	c := s.collection(kind)
	if replace {
		c.Replace(cars)
	} else {
		for _, car := range cars {
			c.Add(car)
		}
	}
	s.dirty[kind] = true
	s.refilter()

	verb := "Imported"
	if replace {
		verb = "Replaced"
	}
	s.events.Record(fmt.Sprintf("%s %s cars into the %s collection", verb, humanize.Comma(int64(len(cars))), kind))
	return nil
}

// Stats summarises the active market.
func (s *Session) Stats() model.MarketStats {
	return market.Stats(s.ActiveMarket())
}

// Events yields this session's events in order.
func (s *Session) Events() iter.Seq[model.Event] {
	return s.events.All()
}
