package storage

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/eugenenazirov/scanner-map/internal/settings"
)

func TestNewMemoryStoreReturnsDefaults(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	got := store.Snapshot()
	if !reflect.DeepEqual(got, settings.Default()) {
		t.Fatalf("expected default settings, got %+v", got)
	}

	// ensure mutation safety
	got.MarkerClassification.Police[0] = "changed"
	got.Map.DefaultZoom = 1
	again := store.Snapshot()
	if again.MarkerClassification.Police[0] == "changed" || again.Map.DefaultZoom == 1 {
		t.Fatalf("expected defensive copy, got %+v", again)
	}
}

func TestNewMemoryStoreFromRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	cfg := settings.Default()
	cfg.Map.MinZoom = 20

	_, err := NewMemoryStoreFrom(cfg)
	if err == nil {
		t.Fatalf("expected error for invalid settings")
	}
	if !errors.Is(err, ErrInvalidSettings) || !errors.Is(err, settings.ErrInvalidSettings) {
		t.Fatalf("expected wrapped validation error, got %v", err)
	}
}

func TestNewMemoryStoreFromCopiesInput(t *testing.T) {
	t.Parallel()

	cfg := settings.Default()
	store, err := NewMemoryStoreFrom(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.MarkerClassification.Fire[0] = "changed"
	if store.Snapshot().MarkerClassification.Fire[0] != "MCFR" {
		t.Fatalf("store shares memory with caller")
	}
}

func TestApplyGeocodingKeysSetsOnce(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	g1, g2 := "G1", "G2"

	if update := store.ApplyGeocodingKeys(&g1, nil); !update.Google {
		t.Fatalf("expected google key to be set")
	}
	if update := store.ApplyGeocodingKeys(&g2, nil); update.Google {
		t.Fatalf("expected second assignment to be ignored")
	}

	snap := store.Snapshot()
	if snap.Geocoding.GoogleAPIKey == nil || *snap.Geocoding.GoogleAPIKey != "G1" {
		t.Fatalf("unexpected google key %v", snap.Geocoding.GoogleAPIKey)
	}
	if snap.Geocoding.LocationIQAPIKey != nil {
		t.Fatalf("expected locationiq key to stay nil")
	}
}

func TestConcurrentAccessIsSafe(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	var wg sync.WaitGroup
	const workers = 10

	wg.Add(workers * 2)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			store.ApplyGeocodingKeys(&key, &key)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Snapshot()
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	if snap.Geocoding.GoogleAPIKey == nil || snap.Geocoding.LocationIQAPIKey == nil {
		t.Fatalf("expected both keys to be set after concurrent writes")
	}
}
