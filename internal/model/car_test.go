package model

import (
	"errors"
	"math"
	"testing"
)

func TestParseDriveType(t *testing.T) {
	tests := []struct {
		in   string
		want DriveType
	}{
		{"AWD", AWD},
		{"fwd", FWD},
		{" Rwd ", RWD},
	}
	for _, tt := range tests {
		got, err := ParseDriveType(tt.in)
		if err != nil {
			t.Errorf("ParseDriveType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDriveType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDriveType("XWD"); !errors.Is(err, ErrInvalidDriveType) {
		t.Errorf("ParseDriveType(XWD) err = %v, want ErrInvalidDriveType", err)
	}
}

func TestCarValidate(t *testing.T) {
	if err := testR8.Validate(); err != nil {
		t.Fatalf("valid car rejected: %v", err)
	}

	bad := testR8
	bad.Braking = 10.5
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("braking 10.5: err = %v, want ErrInvalidSpec", err)
	}

	bad = testR8
	bad.Speed = math.NaN()
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("speed NaN: err = %v, want ErrInvalidSpec", err)
	}

	bad = testR8
	bad.Price = -1
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("negative price: err = %v, want ErrInvalidSpec", err)
	}

	bad = testR8
	bad.DriveType = "4WD"
	if err := bad.Validate(); !errors.Is(err, ErrInvalidDriveType) {
		t.Errorf("4WD: err = %v, want ErrInvalidDriveType", err)
	}
}

func TestCarTitle(t *testing.T) {
	if got := testR8.Title(); got != "2016 Audi R8" {
		t.Errorf("Title = %q", got)
	}
}
