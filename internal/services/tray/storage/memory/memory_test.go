package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/louisbranch/dicetray/internal/services/tray/storage"
)

func TestGetSettingsNotFound(t *testing.T) {
	store := NewStore()
	if _, err := store.GetSettings(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get settings error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestPutGetSettingsRoundTrip(t *testing.T) {
	store := NewStore()
	want := storage.Settings{UnitCount: 4, DefaultValue: 3, Sides: 8}
	if err := store.PutSettings(context.Background(), want); err != nil {
		t.Fatalf("put settings: %v", err)
	}

	got, err := store.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if got.UnitCount != 4 || got.DefaultValue != 3 || got.Sides != 8 {
		t.Fatalf("settings = %+v, want %+v", got, want)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be stamped")
	}
}

func TestCanceledContext(t *testing.T) {
	store := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := store.PutSettings(ctx, storage.Settings{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("put error = %v, want %v", err, context.Canceled)
	}
}
