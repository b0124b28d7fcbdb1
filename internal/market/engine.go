package market

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/model"
)

// CarSpec is a listing request as entered by the user: one raw string per field.
type CarSpec struct {
	Manufacturer string
	Model        string
	Year         string
	Speed        string
	Handling     string
	Acceleration string
	Braking      string
	DriveType    string
	Price        string
}

// Parse validates the raw fields and builds the car.
func (s CarSpec) Parse() (model.Car, error) {
	year, err := parseNonNegative("year", s.Year)
	if err != nil {
		return model.Car{}, err
	}
	price, err := parseNonNegative("price", s.Price)
	if err != nil {
		return model.Car{}, err
	}

	ratings := [4]float64{}
	for i, r := range []struct{ name, raw string }{
		{"speed", s.Speed},
		{"handling", s.Handling},
		{"acceleration", s.Acceleration},
		{"braking", s.Braking},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.raw), 64)
		if err != nil {
			return model.Car{}, fmt.Errorf("%w: %s %q is not a number", model.ErrInvalidSpec, r.name, r.raw)
		}
		ratings[i] = v
	}

	dt, err := model.ParseDriveType(s.DriveType)
	if err != nil {
		return model.Car{}, err
	}

	car := model.Car{
		Manufacturer: strings.TrimSpace(s.Manufacturer),
		Model:        strings.TrimSpace(s.Model),
		Year:         int(year),
		Speed:        ratings[0],
		Handling:     ratings[1],
		Acceleration: ratings[2],
		Braking:      ratings[3],
		DriveType:    dt,
		Price:        price,
	}
	if err := car.Validate(); err != nil {
		return model.Car{}, err
	}
	return car, nil
}

func parseNonNegative(name, raw string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q must be a non-negative integer", model.ErrInvalidSpec, name, raw)
	}
	return v, nil
}

// Result describes a completed buy or list.
type Result struct {
	Car     model.Car
	Index   int // position in the source (buy) or destination (list) collection
	Balance decimal.Decimal
	Event   model.Event
}

// Engine executes buy and list transitions and records them in its log.
// It keeps no state of its own between calls.
type Engine struct {
	log *EventLog
}

// NewEngine returns an engine that records into log.
func NewEngine(log *EventLog) *Engine {
	return &Engine{log: log}
}

// Log returns the engine's event log.
func (e *Engine) Log() *EventLog {
	return e.log
}

// Buy debits the price of the car at index in source and appends it to garage.
// The car stays in source. On any error nothing changes.
func (e *Engine) Buy(source *model.Collection, index int, acct *model.Account, garage *model.Collection) (Result, error) {
	car, err := source.Get(index)
	if err != nil {
		return Result{}, fmt.Errorf("buying: %w", err)
	}

	if err := acct.Debit(decimal.NewFromInt(car.Price)); err != nil {
		return Result{}, fmt.Errorf("buying %s: %w", car.Title(), err)
	}

	garage.Add(car)
	ev := e.log.Record(fmt.Sprintf("Bought %s for $%s, balance $%s",
		car.Title(), humanize.Comma(car.Price), acct.Balance().StringFixed(2)))

	return Result{Car: car, Index: index, Balance: acct.Balance(), Event: ev}, nil
}

// List validates spec and appends the resulting car to userMarket.
func (e *Engine) List(spec CarSpec, userMarket *model.Collection) (Result, error) {
	car, err := spec.Parse()
	if err != nil {
		return Result{}, fmt.Errorf("listing car: %w", err)
	}

	userMarket.Add(car)
	ev := e.log.Record(fmt.Sprintf("Listed %s for $%s", car.Title(), humanize.Comma(car.Price)))

	return Result{Car: car, Index: userMarket.Size() - 1, Event: ev}, nil
}
