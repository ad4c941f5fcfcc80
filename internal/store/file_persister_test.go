package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/testutil"
)

func TestFilePersisterMissingFileIsEmpty(t *testing.T) {
	p := NewFilePersister(filepath.Join(t.TempDir(), "nope.json"))
	subs, err := p.Load(context.Background())
	if err != nil || len(subs) != 0 {
		t.Fatalf("expected empty list, got %v err %v", subs, err)
	}
}

func TestFilePersisterSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "subscriptions.json")
	p := NewFilePersister(path)
	ctx := context.Background()

	want := []subscriptions.Subscription{
		testutil.SampleSubscription("1", "leafs", "TOR"),
		testutil.SampleSubscription("2", "bruins", "BOS"),
	}
	if err := p.Save(ctx, want); err != nil {
		t.Fatalf("expected save success, got %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away")
	}

	got, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("expected load success, got %v", err)
	}
	if len(got) != 2 || got[1].Topic != "bruins" || !got[0].CreatedAt.Equal(want[0].CreatedAt) {
		t.Fatalf("unexpected round trip %+v", got)
	}
}

func TestFilePersisterSaveEmptyWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	if err := NewFilePersister(path).Save(context.Background(), nil); err != nil {
		t.Fatalf("expected save success, got %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{\n  \"subscriptions\": []\n}" {
		t.Fatalf("unexpected document %q", data)
	}
}

func TestFilePersisterCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if _, err := NewFilePersister(path).Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
