//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// One container per test package. TestMain starts it before the first
// test and tears it down after the last one, tests isolate themselves
// by database name instead of by container.
var (
	sharedMu        sync.RWMutex
	sharedContainer *MongoDBContainer
	sharedErr       error
	sharedOnce      sync.Once
)

// GetSharedMongoDB starts the package-shared MongoDB container on first
// call and returns the same instance afterwards.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		sharedContainer, sharedErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return sharedContainer, sharedErr
}

// CleanupSharedMongoDB terminates the shared container. Call it from
// TestMain after m.Run.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedContainer == nil {
		return nil
	}
	return sharedContainer.Cleanup(ctx)
}

// SetupTestMainWithMongoDB wires the shared container into a package's
// TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		// Docker reaps the container eventually, so only warn.
		fmt.Fprintf(os.Stderr, "warning: cleanup of shared mongodb container failed: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container's connection URI.
// Panics when called before GetSharedMongoDB.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	if sharedContainer == nil {
		panic("shared mongodb container not started, call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name like TestCart/merges_lines into a
// MongoDB database name that is valid and unique per run.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
