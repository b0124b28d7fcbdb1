package model

import (
	"fmt"
	"iter"
	"slices"
)

// Kind tags what a Collection holds.
type Kind int

const (
	KindDefaultMarket Kind = iota
	KindUserMarket
	KindGarage
	KindFiltered
)

var kindNames = [...]string{"default", "user", "garage", "filtered"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps "default", "user", "garage" or "filtered" to a Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown collection %q (want default, user, garage or filtered)", s)
}

// Collection is an ordered bag of cars. Cars are addressed by position,
// so insertion order is significant.
type Collection struct {
	kind Kind
	cars []Car
}

// NewCollection returns a collection of the given kind holding cars in order.
func NewCollection(kind Kind, cars ...Car) *Collection {
	return &Collection{kind: kind, cars: slices.Clone(cars)}
}

// Kind returns the collection's kind.
func (c *Collection) Kind() Kind {
	return c.kind
}

// Add appends a car.
func (c *Collection) Add(car Car) {
	c.cars = append(c.cars, car)
}

// Get returns the car at the 0-based index.
func (c *Collection) Get(index int) (Car, error) {
	if index < 0 || index >= len(c.cars) {
		return Car{}, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.cars))
	}
	return c.cars[index], nil
}

// Size returns the number of cars.
func (c *Collection) Size() int {
	return len(c.cars)
}

// All yields (index, car) pairs. Each iteration walks a snapshot taken when it
// starts, so adding cars mid-loop is not observed.
func (c *Collection) All() iter.Seq2[int, Car] {
	return func(yield func(int, Car) bool) {
		snapshot := slices.Clone(c.cars)
		for i, car := range snapshot {
			if !yield(i, car) {
				return
			}
		}
	}
}

// Cars returns a copy of the contents.
func (c *Collection) Cars() []Car {
	return slices.Clone(c.cars)
}

// Replace swaps the contents wholesale.
func (c *Collection) Replace(cars []Car) {
	c.cars = slices.Clone(cars)
}

// Equal reports whether both collections hold the same cars in the same order.
func (c *Collection) Equal(other *Collection) bool {
	if other == nil {
		return false
	}
	return slices.Equal(c.cars, other.cars)
}
