package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/automarket/internal/market"
	"github.com/theirongolddev/automarket/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// listingValues backs the listing form. It is held by pointer so the form's
// bindings survive App being copied on every Update.
type listingValues struct {
	spec market.CarSpec
}

func validateWholeNumber(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number, 0 or more")
	}
	return nil
}

func validateRating(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < model.MinRating || v > model.MaxRating {
		return fmt.Errorf("enter a rating from 0 to 10")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// NewListingForm builds the "list a car for sale" form, writing into spec.
func NewListingForm(spec *market.CarSpec) *huh.Form {
	driveOpts := make([]huh.Option[string], len(model.DriveTypes))
	for i, dt := range model.DriveTypes {
		driveOpts[i] = huh.NewOption(string(dt), string(dt))
	}
	if spec.DriveType == "" {
		spec.DriveType = string(model.RWD)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("List a car for sale").
				Description("The car is added to the user market."),
			huh.NewInput().Title("Manufacturer").Value(&spec.Manufacturer).Validate(validateRequired),
			huh.NewInput().Title("Model").Value(&spec.Model).Validate(validateRequired),
			huh.NewInput().Title("Year").Placeholder("2004").Value(&spec.Year).Validate(validateWholeNumber),
			huh.NewInput().Title("Price").Placeholder("38000").Value(&spec.Price).Validate(validateWholeNumber),
		),
		huh.NewGroup(
			huh.NewInput().Title("Speed (0-10)").Value(&spec.Speed).Validate(validateRating),
			huh.NewInput().Title("Handling (0-10)").Value(&spec.Handling).Validate(validateRating),
			huh.NewInput().Title("Acceleration (0-10)").Value(&spec.Acceleration).Validate(validateRating),
			huh.NewInput().Title("Braking (0-10)").Value(&spec.Braking).Validate(validateRating),
			huh.NewSelect[string]().Title("Drive type").Options(driveOpts...).Value(&spec.DriveType),
		),
	).WithShowHelp(true)
}

func (a App) startListing() (tea.Model, tea.Cmd) {
	a.listingVals = &listingValues{}
	a.listingForm = NewListingForm(&a.listingVals.spec)
	if a.width > 0 {
		a.listingForm = a.listingForm.WithWidth(a.width).WithHeight(a.height)
	}
	a.mode = modeListing
	return a, a.listingForm.Init()
}

func (a App) updateListingForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.listingForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.listingForm = f
	}

	switch a.listingForm.State {
	case huh.StateCompleted:
		res, err := a.sess.List(a.listingVals.spec)
		if err != nil {
			a.setError(err)
		} else {
			a.setFlash(fmt.Sprintf("Listed %s on the user market", res.Car.Title()))
		}
		a.closeListing()
		return a, nil
	case huh.StateAborted:
		a.closeListing()
		return a, nil
	}
	return a, cmd
}

func (a *App) closeListing() {
	a.listingForm = nil
	a.listingVals = nil
	a.mode = modeBrowse
}
