// Package market implements the filter and transaction engines that operate on
// marketplace collections.
package market

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/automarket/internal/model"
)

// Field is a filterable car attribute.
type Field int

const (
	FieldYear Field = iota
	FieldPrice
	FieldSpeed
	FieldHandling
	FieldAcceleration
	FieldBraking
	FieldDriveType
)

var fieldNames = [...]string{"year", "price", "speed", "handling", "acceleration", "braking", "drivetype"}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields returns every filterable field in menu order.
func Fields() []Field {
	return []Field{FieldYear, FieldPrice, FieldSpeed, FieldHandling, FieldAcceleration, FieldBraking, FieldDriveType}
}

// ParseField resolves a field name, case-insensitively. "drive" and
// "drive_type" are accepted for drivetype.
func ParseField(name string) (Field, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "drive", "drive_type", "drive-type":
		return FieldDriveType, nil
	}
	for i, fn := range fieldNames {
		if fn == n {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", model.ErrUnknownField, name)
}

func (f Field) isInteger() bool { return f == FieldYear || f == FieldPrice }
func (f Field) isRating() bool  { return f >= FieldSpeed && f <= FieldBraking }

// Comparison selects how a numeric field is compared with the threshold.
// The zero value is Below. Drive type is always compared for equality.
type Comparison int

const (
	Below Comparison = iota // strictly less than
	Above                   // strictly greater than
)

// Predicate is a field test bound at construction time.
type Predicate struct {
	Field      Field
	Comparison Comparison
	Threshold  any

	match func(model.Car) bool
}

// NewPredicate builds a predicate after checking the threshold's type against
// the field: integers for year and price, any number for the ratings, and a
// model.DriveType for drivetype.
func NewPredicate(field Field, cmp Comparison, threshold any) (Predicate, error) {
	p := Predicate{Field: field, Comparison: cmp, Threshold: threshold}

	switch {
	case field.isInteger():
		v, ok := asInt(threshold)
		if !ok {
			return Predicate{}, fmt.Errorf("%w: %s needs an integer, got %T", model.ErrInvalidThreshold, field, threshold)
		}
		get := intAccessor(field)
		p.match = compareInt(get, cmp, v)

	case field.isRating():
		v, ok := asFloat(threshold)
		if !ok || math.IsNaN(v) {
			return Predicate{}, fmt.Errorf("%w: %s needs a number, got %T", model.ErrInvalidThreshold, field, threshold)
		}
		get := ratingAccessor(field)
		p.match = compareFloat(get, cmp, v)

	case field == FieldDriveType:
		dt, ok := threshold.(model.DriveType)
		if !ok || !dt.Valid() {
			return Predicate{}, fmt.Errorf("%w: drivetype needs AWD, FWD or RWD, got %v", model.ErrInvalidThreshold, threshold)
		}
		if cmp != Below {
			return Predicate{}, fmt.Errorf("%w: drivetype only supports equality", model.ErrInvalidThreshold)
		}
		p.match = func(c model.Car) bool { return c.DriveType == dt }

	default:
		return Predicate{}, fmt.Errorf("%w: %s", model.ErrUnknownField, field)
	}

	return p, nil
}

// LessThan is the default filter: cars whose field is strictly below threshold,
// or of the given drive type.
func LessThan(field Field, threshold any) (Predicate, error) {
	return NewPredicate(field, Below, threshold)
}

// Match reports whether the car passes. A zero Predicate matches nothing.
func (p Predicate) Match(c model.Car) bool {
	if p.match == nil {
		return false
	}
	return p.match(c)
}

func (p Predicate) String() string {
	op := "<"
	switch {
	case p.Field == FieldDriveType:
		op = "="
	case p.Comparison == Above:
		op = ">"
	}
	return fmt.Sprintf("%s %s %v", p.Field, op, p.Threshold)
}

// ParseThreshold converts adapter text into the threshold type the field expects.
func ParseThreshold(field Field, raw string) (any, error) {
	s := strings.TrimSpace(raw)
	switch {
	case field.isInteger():
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s needs an integer, got %q", model.ErrInvalidThreshold, field, raw)
		}
		return v, nil
	case field.isRating():
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s needs a number, got %q", model.ErrInvalidThreshold, field, raw)
		}
		return v, nil
	case field == FieldDriveType:
		dt, err := model.ParseDriveType(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidThreshold, err)
		}
		return dt, nil
	}
	return nil, fmt.Errorf("%w: %s", model.ErrUnknownField, field)
}

// Apply returns a new filtered collection holding the cars of source that
// match p, in source order. source is not modified.
func Apply(source *model.Collection, p Predicate) *model.Collection {
	out := model.NewCollection(model.KindFiltered)
	for _, c := range source.All() {
		if p.Match(c) {
			out.Add(c)
		}
	}
	return out
}

// ApplyFilter is Apply with the default Below comparison.
func ApplyFilter(source *model.Collection, field Field, threshold any) (*model.Collection, error) {
	p, err := LessThan(field, threshold)
	if err != nil {
		return nil, err
	}
	return Apply(source, p), nil
}

func intAccessor(f Field) func(model.Car) int64 {
	if f == FieldYear {
		return func(c model.Car) int64 { return int64(c.Year) }
	}
	return func(c model.Car) int64 { return c.Price }
}

func ratingAccessor(f Field) func(model.Car) float64 {
	switch f {
	case FieldSpeed:
		return func(c model.Car) float64 { return c.Speed }
	case FieldHandling:
		return func(c model.Car) float64 { return c.Handling }
	case FieldAcceleration:
		return func(c model.Car) float64 { return c.Acceleration }
	default:
		return func(c model.Car) float64 { return c.Braking }
	}
}

func compareInt(get func(model.Car) int64, cmp Comparison, v int64) func(model.Car) bool {
	if cmp == Above {
		return func(c model.Car) bool { return get(c) > v }
	}
	return func(c model.Car) bool { return get(c) < v }
}

func compareFloat(get func(model.Car) float64, cmp Comparison, v float64) func(model.Car) bool {
	if cmp == Above {
		return func(c model.Car) bool { return get(c) > v }
	}
	return func(c model.Car) bool { return get(c) < v }
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
