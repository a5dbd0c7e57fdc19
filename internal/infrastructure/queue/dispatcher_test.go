package queue

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/infrastructure/db/memory"
)

func TestDispatcher_StoresAndPreservesActorOrder(t *testing.T) {
	repo := memory.NewActivityRepository(0)
	d := NewDispatcher(3, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	for i := 0; i < 20; i++ {
		d.Record(domain.ActivityLog{ID: fmt.Sprint(i), ActorID: "client1", Action: domain.ActivityLogin})
	}
	cancel()
	d.Wait()

	got, _ := repo.Recent(context.Background(), 100)
	if len(got) != 20 {
		t.Fatalf("expected 20 stored entries, got %d", len(got))
	}
	for i, e := range got {
		if want := fmt.Sprint(19 - i); e.ID != want {
			t.Fatalf("entry %d: expected id %s, got %s", i, want, e.ID)
		}
	}
}

func TestDispatcher_ShardIndexDeterministic(t *testing.T) {
	d := NewDispatcher(8, memory.NewActivityRepository(0), zerolog.Nop())
	for _, actor := range []string{"", "client1", "admin1", "provider3"} {
		a, b := d.shardIndex(actor), d.shardIndex(actor)
		if a != b || a < 0 || a >= 8 {
			t.Fatalf("unstable or out-of-range shard %d/%d for %q", a, b, actor)
		}
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	repo := memory.NewActivityRepository(0)
	d := NewDispatcher(1, repo, zerolog.Nop())

	// not started, so nothing drains the buffer
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(domain.ActivityLog{ID: fmt.Sprint(i), ActorID: "a"})
	}
	if n := len(d.workers[0]); n != channelBuffer {
		t.Fatalf("expected full buffer of %d, got %d", channelBuffer, n)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)
	d.Wait()

	got, _ := repo.Recent(context.Background(), 1000)
	if len(got) != channelBuffer {
		t.Fatalf("expected %d stored entries, got %d", channelBuffer, len(got))
	}
}
