package mongo

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// unreachableDB returns a database handle whose operations fail fast.
func unreachableDB(t *testing.T) *mongo.Database {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("skattajobs_test")
}

func TestFileStore_BucketPerCall(t *testing.T) {
	db := unreachableDB(t)
	a, err := newBucket(db)
	if err != nil {
		t.Fatalf("bucket: %v", err)
	}
	b, _ := newBucket(db)
	if a == b {
		t.Fatalf("each call must get its own bucket handle")
	}
}

func TestFileStore_ConcurrentSavesKeepTheirDeadlines(t *testing.T) {
	fs, err := NewFileStore(unreachableDB(t))
	if err != nil {
		t.Fatalf("file store: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(i+1)*100*time.Millisecond)
			defer cancel()
			errs <- fs.Save(ctx, "avatar-x.png", "image/png", strings.NewReader("png"))
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err == nil {
			t.Fatalf("save against an unreachable server must fail")
		}
	}
}
