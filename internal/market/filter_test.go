package market

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/theirongolddev/automarket/internal/catalog"
	"github.com/theirongolddev/automarket/internal/model"
)

func seedMarket() *model.Collection {
	return model.NewCollection(model.KindDefaultMarket, catalog.Default()...)
}

func titles(c *model.Collection) []string {
	var out []string
	for _, car := range c.All() {
		out = append(out, car.Title())
	}
	return out
}

func TestApplyFilter(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		threshold any
		want      []string
	}{
		{"price below 100k", FieldPrice, int64(100_000), []string{
			"1988 BMW M5", "1994 Mazda MX-5 Miata", "1985 Toyota Trueno AE86",
			"2018 Honda Civic Type R", "2015 Dodge Challenger", "2020 Chevrolet Stingray",
		}},
		{"year below 2000", FieldYear, 2000, []string{
			"1988 BMW M5", "1994 Mazda MX-5 Miata", "1985 Toyota Trueno AE86",
		}},
		{"speed below 6", FieldSpeed, 6.0, []string{
			"1994 Mazda MX-5 Miata", "1985 Toyota Trueno AE86",
		}},
		{"braking below integer 5", FieldBraking, 5, []string{
			"1994 Mazda MX-5 Miata", "1985 Toyota Trueno AE86",
		}},
		{"front wheel drive", FieldDriveType, model.FWD, []string{
			"2018 Honda Civic Type R",
		}},
		{"strict bound excludes equal", FieldPrice, int64(22_000), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := seedMarket()
			got, err := ApplyFilter(src, tt.field, tt.threshold)
			if err != nil {
				t.Fatalf("ApplyFilter: %v", err)
			}
			if got.Kind() != model.KindFiltered {
				t.Errorf("Kind = %s, want filtered", got.Kind())
			}
			gotTitles := titles(got)
			if len(gotTitles) != len(tt.want) {
				t.Fatalf("got %v, want %v", gotTitles, tt.want)
			}
			for i := range tt.want {
				if gotTitles[i] != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, gotTitles[i], tt.want[i])
				}
			}
			if src.Size() != 12 {
				t.Errorf("source size changed to %d", src.Size())
			}
		})
	}
}

func TestApplyFilterAbove(t *testing.T) {
	p, err := NewPredicate(FieldPrice, Above, int64(1_000_000))
	if err != nil {
		t.Fatalf("NewPredicate: %v", err)
	}
	got := titles(Apply(seedMarket(), p))
	if len(got) != 2 || got[0] != "2011 Bugatti Veyron" || got[1] != "2013 Ferrari LaFerrari" {
		t.Errorf("got %v", got)
	}
	if p.String() != "price > 1000000" {
		t.Errorf("String = %q", p.String())
	}
}

func TestApplyFilterRejectsMismatchedThreshold(t *testing.T) {
	tests := []struct {
		field     Field
		threshold any
	}{
		{FieldPrice, 99.5},
		{FieldYear, "2000"},
		{FieldSpeed, "fast"},
		{FieldDriveType, "AWD"},
		{FieldDriveType, model.DriveType("4WD")},
	}
	for _, tt := range tests {
		if _, err := ApplyFilter(seedMarket(), tt.field, tt.threshold); !errors.Is(err, model.ErrInvalidThreshold) {
			t.Errorf("%s with %#v: err = %v, want ErrInvalidThreshold", tt.field, tt.threshold, err)
		}
	}

	if _, err := NewPredicate(FieldDriveType, Above, model.AWD); !errors.Is(err, model.ErrInvalidThreshold) {
		t.Errorf("drivetype Above: err = %v, want ErrInvalidThreshold", err)
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v", f.String(), got, err)
		}
	}
	if got, err := ParseField("Drive"); err != nil || got != FieldDriveType {
		t.Errorf("ParseField(Drive) = %v, %v", got, err)
	}
	if _, err := ParseField("colour"); !errors.Is(err, model.ErrUnknownField) {
		t.Errorf("ParseField(colour) err = %v, want ErrUnknownField", err)
	}
}

func TestParseThreshold(t *testing.T) {
	v, err := ParseThreshold(FieldPrice, " 50000 ")
	if err != nil || v != int64(50_000) {
		t.Errorf("price: %#v, %v", v, err)
	}
	v, err = ParseThreshold(FieldHandling, "7.5")
	if err != nil || v != 7.5 {
		t.Errorf("handling: %#v, %v", v, err)
	}
	v, err = ParseThreshold(FieldDriveType, "awd")
	if err != nil || v != model.AWD {
		t.Errorf("drivetype: %#v, %v", v, err)
	}
	if _, err := ParseThreshold(FieldYear, "1999.5"); !errors.Is(err, model.ErrInvalidThreshold) {
		t.Errorf("year 1999.5: err = %v, want ErrInvalidThreshold", err)
	}
	if _, err := ParseThreshold(FieldDriveType, "4WD"); !errors.Is(err, model.ErrInvalidThreshold) {
		t.Errorf("4WD: err = %v, want ErrInvalidThreshold", err)
	}
	if _, err := ParseThreshold(FieldSpeed, "NaN"); !errors.Is(err, model.ErrInvalidThreshold) {
		t.Errorf("speed NaN: err = %v, want ErrInvalidThreshold", err)
	}
	if _, err := NewPredicate(FieldBraking, Below, math.NaN()); !errors.Is(err, model.ErrInvalidThreshold) {
		t.Errorf("braking NaN predicate: err = %v, want ErrInvalidThreshold", err)
	}
}

func TestZeroPredicateMatchesNothing(t *testing.T) {
	if got := Apply(seedMarket(), Predicate{}); got.Size() != 0 {
		t.Errorf("zero predicate matched %d cars", got.Size())
	}
}

func genCar() *rapid.Generator[model.Car] {
	return rapid.Custom(func(t *rapid.T) model.Car {
		return model.Car{
			Manufacturer: rapid.StringMatching(`[A-Z][a-z]{2,8}`).Draw(t, "make"),
			Model:        rapid.StringMatching(`[A-Z0-9]{1,6}`).Draw(t, "model"),
			Year:         rapid.IntRange(1950, 2030).Draw(t, "year"),
			Speed:        rapid.Float64Range(0, 10).Draw(t, "speed"),
			Handling:     rapid.Float64Range(0, 10).Draw(t, "handling"),
			Acceleration: rapid.Float64Range(0, 10).Draw(t, "acceleration"),
			Braking:      rapid.Float64Range(0, 10).Draw(t, "braking"),
			DriveType:    rapid.SampledFrom(model.DriveTypes).Draw(t, "drive"),
			Price:        rapid.Int64Range(0, 3_000_000).Draw(t, "price"),
		}
	})
}

func TestFilterIsOrderPreservingSubset(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cars := rapid.SliceOf(genCar()).Draw(t, "cars")
		src := model.NewCollection(model.KindUserMarket, cars...)
		threshold := rapid.Int64Range(0, 3_000_000).Draw(t, "threshold")

		got, err := ApplyFilter(src, FieldPrice, threshold)
		if err != nil {
			t.Fatalf("ApplyFilter: %v", err)
		}

		// Every output car satisfies the predicate and appears in source
		// order; every source car that satisfies it is present.
		j := 0
		for _, c := range src.All() {
			if c.Price >= threshold {
				continue
			}
			out, err := got.Get(j)
			if err != nil {
				t.Fatalf("missing match %d: %v", j, err)
			}
			if out != c {
				t.Fatalf("position %d: got %+v, want %+v", j, out, c)
			}
			j++
		}
		if j != got.Size() {
			t.Fatalf("filtered size %d, want %d", got.Size(), j)
		}

		again, err := ApplyFilter(src, FieldPrice, threshold)
		if err != nil {
			t.Fatalf("second ApplyFilter: %v", err)
		}
		if !got.Equal(again) {
			t.Fatalf("filtering twice gave different results: %v vs %v", titles(got), titles(again))
		}
		if src.Size() != len(cars) {
			t.Fatalf("source mutated")
		}
	})
}
