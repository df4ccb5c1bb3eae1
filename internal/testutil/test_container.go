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

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
)

// GetSharedMongoDB returns the package-wide MongoDB container, starting
// it on first use. Pair with CleanupSharedMongoDB in TestMain.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedContainerErr
}

// CleanupSharedMongoDB terminates the shared container if one was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	if sharedContainer == nil {
		return nil
	}
	return sharedContainer.Cleanup(ctx)
}

// SetupTestMainWithMongoDB runs a package test suite against one shared
// MongoDB container. Usage:
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
		fmt.Fprintf(os.Stderr, "warning: cleanup of shared MongoDB container failed: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the shared container's connection URI.
// Panics when called before SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared MongoDB container not initialized; call GetSharedMongoDB first")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a valid, unique MongoDB database
// name so parallel tests never share state.
func SanitizeDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
