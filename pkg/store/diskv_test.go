package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/semana/pkg/navigator"
	"tableflip.dev/semana/pkg/schedule"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) BasePath() string { return c.path }

func newTestStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	return p
}

func TestLoadAbsent(t *testing.T) {
	p := newTestStore(t)

	if _, err := p.Load(context.Background()); !errors.Is(err, ErrAbsent) {
		t.Errorf("Load() from empty store = %v, want ErrAbsent", err)
	}
	if _, err := p.LoadSelection(context.Background()); !errors.Is(err, ErrAbsent) {
		t.Errorf("LoadSelection() from empty store = %v, want ErrAbsent", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	data := schedule.Seed()

	if err := p.Save(ctx, data); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	if len(got) != len(data) {
		t.Fatalf("Load() returned %d accounts, want %d", len(got), len(data))
	}
	for userID, want := range data {
		acc, ok := got[userID]
		if !ok {
			t.Fatalf("Load() missing account %s", userID)
		}
		if acc.User != want.User {
			t.Errorf("account %s user = %+v, want %+v", userID, acc.User, want.User)
		}
		if !reflect.DeepEqual(acc.Planner, want.Planner) {
			t.Errorf("account %s planner does not round-trip", userID)
		}
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	data := schedule.Seed()

	if err := p.Save(ctx, data); err != nil {
		t.Fatalf("first Save() = %v", err)
	}
	if err := p.Save(ctx, data); err != nil {
		t.Fatalf("second Save() = %v", err)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if len(got) != len(data) {
		t.Errorf("Load() returned %d accounts after double save, want %d", len(got), len(data))
	}
}

func TestSaveErasesRemovedAccounts(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	data := schedule.Seed()

	if err := p.Save(ctx, data); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	delete(data, "user-2")
	if err := p.Save(ctx, data); err != nil {
		t.Fatalf("Save() after delete = %v", err)
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if _, ok := got["user-2"]; ok {
		t.Error("Load() still returns user-2 after it was removed")
	}
	if _, ok := got["user-1"]; !ok {
		t.Error("Load() lost user-1")
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	p := newTestStore(t)
	ctx := context.Background()
	want := navigator.Selection{UserID: "user-1", Year: 2024, MonthKey: "July 2024", Week: 2}

	if err := p.SaveSelection(ctx, want); err != nil {
		t.Fatalf("SaveSelection() = %v", err)
	}
	got, err := p.LoadSelection(ctx)
	if err != nil {
		t.Fatalf("LoadSelection() = %v", err)
	}
	if got != want {
		t.Errorf("LoadSelection() = %+v, want %+v", got, want)
	}
}
