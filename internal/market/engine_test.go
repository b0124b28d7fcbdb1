package market

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/model"
)

func newAccount(t *testing.T, balance int64) *model.Account {
	t.Helper()
	a, err := model.NewAccount(decimal.NewFromInt(balance))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestBuy(t *testing.T) {
	log := NewEventLog()
	e := NewEngine(log)
	src := seedMarket()
	garage := model.NewCollection(model.KindGarage)
	acct := newAccount(t, 300_000)

	res, err := e.Buy(src, 0, acct, garage)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if res.Car.Title() != "2016 Audi R8" {
		t.Errorf("bought %s, want the R8", res.Car.Title())
	}
	if !res.Balance.Equal(decimal.NewFromInt(58_000)) {
		t.Errorf("Balance = %s, want 58000", res.Balance)
	}
	if garage.Size() != 1 {
		t.Errorf("garage size = %d, want 1", garage.Size())
	}
	if src.Size() != 12 {
		t.Errorf("source size = %d, want 12 (buy keeps the listing)", src.Size())
	}
	if log.Len() != 1 || !strings.Contains(res.Event.Description, "Audi R8") {
		t.Errorf("event = %+v, log len %d", res.Event, log.Len())
	}
}

func TestBuyInsufficientFundsChangesNothing(t *testing.T) {
	log := NewEventLog()
	e := NewEngine(log)
	src := seedMarket()
	garage := model.NewCollection(model.KindGarage)
	acct := newAccount(t, 1_000)

	_, err := e.Buy(src, 0, acct, garage)
	if !errors.Is(err, model.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
	if !acct.Balance().Equal(decimal.NewFromInt(1_000)) {
		t.Errorf("Balance = %s, want 1000", acct.Balance())
	}
	if garage.Size() != 0 || src.Size() != 12 || log.Len() != 0 {
		t.Errorf("state changed: garage %d, source %d, events %d", garage.Size(), src.Size(), log.Len())
	}
}

func TestBuyIndexOutOfRange(t *testing.T) {
	e := NewEngine(NewEventLog())
	garage := model.NewCollection(model.KindGarage)
	acct := newAccount(t, 10_000_000)

	for _, idx := range []int{-1, 12} {
		_, err := e.Buy(seedMarket(), idx, acct, garage)
		if !errors.Is(err, model.ErrIndexOutOfRange) {
			t.Errorf("Buy(%d) err = %v, want ErrIndexOutOfRange", idx, err)
			continue
		}
		// The engine reports the 0-based index it was given.
		if want := fmt.Sprintf("%d not in [0, 12)", idx); !strings.Contains(err.Error(), want) {
			t.Errorf("Buy(%d) err = %q, want it to mention %q", idx, err, want)
		}
	}
	if garage.Size() != 0 {
		t.Errorf("garage size = %d, want 0", garage.Size())
	}
}

func TestBuyFromFilteredView(t *testing.T) {
	e := NewEngine(NewEventLog())
	src := seedMarket()
	view, err := ApplyFilter(src, FieldPrice, int64(30_000))
	if err != nil {
		t.Fatal(err)
	}
	garage := model.NewCollection(model.KindGarage)
	acct := newAccount(t, 30_000)

	// Position 1 of the view is the AE86, position 8 of the source.
	res, err := e.Buy(view, 1, acct, garage)
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if res.Car.Model != "Trueno AE86" {
		t.Errorf("bought %s", res.Car.Title())
	}
	if !acct.Balance().Equal(decimal.NewFromInt(8_000)) {
		t.Errorf("Balance = %s, want 8000", acct.Balance())
	}
}

func validSpec() CarSpec {
	return CarSpec{
		Manufacturer: "Subaru",
		Model:        "Impreza WRX STI",
		Year:         "2004",
		Speed:        "7.1",
		Handling:     "7.9",
		Acceleration: "7.3",
		Braking:      "6.8",
		DriveType:    "awd",
		Price:        "38000",
	}
}

func TestList(t *testing.T) {
	log := NewEventLog()
	e := NewEngine(log)
	user := model.NewCollection(model.KindUserMarket)

	res, err := e.List(validSpec(), user)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := model.Car{
		Manufacturer: "Subaru", Model: "Impreza WRX STI", Year: 2004,
		Speed: 7.1, Handling: 7.9, Acceleration: 7.3, Braking: 6.8,
		DriveType: model.AWD, Price: 38_000,
	}
	if res.Car != want {
		t.Errorf("listed %+v, want %+v", res.Car, want)
	}
	got, err := user.Get(user.Size() - 1)
	if err != nil || got != want {
		t.Errorf("last user market car = %+v, %v", got, err)
	}
	if log.Len() != 1 {
		t.Errorf("log len = %d, want 1", log.Len())
	}
}

func TestListRejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CarSpec)
		wantErr error
	}{
		{"drive type", func(s *CarSpec) { s.DriveType = "XWD" }, model.ErrInvalidDriveType},
		{"year text", func(s *CarSpec) { s.Year = "two thousand" }, model.ErrInvalidSpec},
		{"negative price", func(s *CarSpec) { s.Price = "-1" }, model.ErrInvalidSpec},
		{"fractional price", func(s *CarSpec) { s.Price = "38000.50" }, model.ErrInvalidSpec},
		{"rating text", func(s *CarSpec) { s.Speed = "quick" }, model.ErrInvalidSpec},
		{"rating range", func(s *CarSpec) { s.Handling = "12" }, model.ErrInvalidSpec},
		{"rating NaN", func(s *CarSpec) { s.Speed = "NaN" }, model.ErrInvalidSpec},
		{"blank model", func(s *CarSpec) { s.Model = "  " }, model.ErrInvalidSpec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := NewEventLog()
			e := NewEngine(log)
			user := model.NewCollection(model.KindUserMarket)
			spec := validSpec()
			tt.mutate(&spec)

			if _, err := e.List(spec, user); !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if user.Size() != 0 || log.Len() != 0 {
				t.Errorf("state changed: user %d, events %d", user.Size(), log.Len())
			}
		})
	}
}
