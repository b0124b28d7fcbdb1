// Package model defines the marketplace data types: cars, accounts, collections and events.
package model

import (
	"fmt"
	"strings"
)

// DriveType is the drivetrain layout of a car.
type DriveType string

const (
	AWD DriveType = "AWD"
	FWD DriveType = "FWD"
	RWD DriveType = "RWD"
)

// DriveTypes lists every valid drive type in display order.
var DriveTypes = []DriveType{AWD, FWD, RWD}

// ParseDriveType accepts AWD, FWD or RWD in any case.
func ParseDriveType(s string) (DriveType, error) {
	dt := DriveType(strings.ToUpper(strings.TrimSpace(s)))
	if !dt.Valid() {
		return "", fmt.Errorf("%w: %q (want AWD, FWD or RWD)", ErrInvalidDriveType, s)
	}
	return dt, nil
}

// Valid reports whether dt is one of the known drive types.
func (dt DriveType) Valid() bool {
	switch dt {
	case AWD, FWD, RWD:
		return true
	}
	return false
}

// Ratings are scored on a closed 0-10 scale.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

// Car is a single listing. It is a value type: collections hand out copies,
// so a Car never changes after construction.
type Car struct {
	Manufacturer string    `json:"manufacturer"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Speed        float64   `json:"speed"`
	Handling     float64   `json:"handling"`
	Acceleration float64   `json:"acceleration"`
	Braking      float64   `json:"braking"`
	DriveType    DriveType `json:"driveType"`
	Price        int64     `json:"price"` // whole currency units
}

// Title renders "2016 Audi R8".
func (c Car) Title() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Manufacturer, c.Model)
}

// Validate checks the attribute ranges a stored or listed car must satisfy.
func (c Car) Validate() error {
	if strings.TrimSpace(c.Manufacturer) == "" {
		return fmt.Errorf("%w: manufacturer is empty", ErrInvalidSpec)
	}
	if strings.TrimSpace(c.Model) == "" {
		return fmt.Errorf("%w: model is empty", ErrInvalidSpec)
	}
	if c.Year < 0 {
		return fmt.Errorf("%w: year %d is negative", ErrInvalidSpec, c.Year)
	}
	if c.Price < 0 {
		return fmt.Errorf("%w: price %d is negative", ErrInvalidSpec, c.Price)
	}
	ratings := []struct {
		name  string
		value float64
	}{
		{"speed", c.Speed},
		{"handling", c.Handling},
		{"acceleration", c.Acceleration},
		{"braking", c.Braking},
	}
	for _, r := range ratings {
		if !(r.value >= MinRating && r.value <= MaxRating) {
			return fmt.Errorf("%w: %s %.1f outside %.0f-%.0f", ErrInvalidSpec, r.name, r.value, MinRating, MaxRating)
		}
	}
	if !c.DriveType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDriveType, string(c.DriveType))
	}
	return nil
}
