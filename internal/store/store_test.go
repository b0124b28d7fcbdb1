package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/automarket/internal/catalog"
	"github.com/theirongolddev/automarket/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(Path(t.TempDir()))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestCollectionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	for _, kind := range []model.Kind{model.KindDefaultMarket, model.KindUserMarket, model.KindGarage} {
		want := model.NewCollection(kind, catalog.Default()...)
		if err := s.SaveCollection(kind, want); err != nil {
			t.Fatalf("SaveCollection(%s): %v", kind, err)
		}

		got, err := s.LoadCollection(kind)
		if err != nil {
			t.Fatalf("LoadCollection(%s): %v", kind, err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: round trip changed collection", kind)
		}

		// Saving what was loaded leaves it unchanged.
		if err := s.SaveCollection(kind, got); err != nil {
			t.Fatal(err)
		}
		again, _ := s.LoadCollection(kind)
		if !again.Equal(want) {
			t.Errorf("%s: second round trip changed collection", kind)
		}
	}
}

func TestSaveCollectionReplaces(t *testing.T) {
	s := openTestStore(t)
	cars := catalog.Default()

	if err := s.SaveCollection(model.KindGarage, model.NewCollection(model.KindGarage, cars...)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveCollection(model.KindGarage, model.NewCollection(model.KindGarage, cars[3])); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadCollection(model.KindGarage)
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != 1 {
		t.Fatalf("size = %d, want 1", got.Size())
	}
	if car, _ := got.Get(0); car != cars[3] {
		t.Errorf("stored %+v", car)
	}

	counts, err := s.Counts()
	if err != nil {
		t.Fatal(err)
	}
	if counts[model.KindGarage] != 1 || counts[model.KindUserMarket] != 0 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestLoadCollectionNeverSaved(t *testing.T) {
	s := openTestStore(t)
	got, err := s.LoadCollection(model.KindUserMarket)
	if err != nil {
		t.Fatal(err)
	}
	if got.Size() != 0 || got.Kind() != model.KindUserMarket {
		t.Errorf("got %s with %d cars", got.Kind(), got.Size())
	}
}

func TestFilteredKindNotPersisted(t *testing.T) {
	s := openTestStore(t)
	if err := s.SaveCollection(model.KindFiltered, model.NewCollection(model.KindFiltered)); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("save err = %v", err)
	}
	if _, err := s.LoadCollection(model.KindFiltered); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("load err = %v", err)
	}
}

func TestAccountRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, found, err := s.LoadAccount(); err != nil || found {
		t.Fatalf("empty store: found=%v err=%v", found, err)
	}

	want, _ := model.NewAccount(decimal.RequireFromString("12345.67"))
	if err := s.SaveAccount(want); err != nil {
		t.Fatal(err)
	}
	got, found, err := s.LoadAccount()
	if err != nil || !found {
		t.Fatalf("LoadAccount: found=%v err=%v", found, err)
	}
	if !got.Balance().Equal(want.Balance()) {
		t.Errorf("balance = %s, want %s", got.Balance(), want.Balance())
	}

	_ = want.SetBalance(decimal.Zero)
	if err := s.SaveAccount(want); err != nil {
		t.Fatal(err)
	}
	got, _, _ = s.LoadAccount()
	if !got.Balance().IsZero() {
		t.Errorf("balance after overwrite = %s", got.Balance())
	}
}

func TestEvents(t *testing.T) {
	s := openTestStore(t)
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	if err := s.AppendEvents("first", []model.Event{
		{Seq: 1, At: at, Description: "Bought 2016 Audi R8"},
		{Seq: 2, At: at.Add(time.Minute), Description: "Set balance to $0.00"},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendEvents("second", []model.Event{
		{Seq: 1, At: at.Add(time.Hour), Description: "Listed 2004 Subaru Impreza"},
	}); err != nil {
		t.Fatal(err)
	}

	all, err := s.LoadEvents(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Description != "Bought 2016 Audi R8" || all[2].SessionID != "second" {
		t.Fatalf("LoadEvents(0) = %+v", all)
	}
	if !all[1].At.Equal(at.Add(time.Minute)) {
		t.Errorf("timestamp = %v", all[1].At)
	}

	recent, err := s.LoadEvents(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].Seq != 2 || recent[1].SessionID != "second" {
		t.Errorf("LoadEvents(2) = %+v", recent)
	}
}

func TestOpenUnavailable(t *testing.T) {
	// A regular file where the data directory should be.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := writeFile(blocker); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(filepath.Join(blocker, FileName)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0o600)
}
