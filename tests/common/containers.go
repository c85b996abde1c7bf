package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	backendContainer *BackendContainer
	backendOnce      sync.Once
	backendStartErr  error
)

// BackendContainer runs an HTTP echo server standing in for the Coolify API.
// Every response body describes the request it received (method, path,
// headers and parsed JSON body).
type BackendContainer struct {
	container testcontainers.Container
	ctx       context.Context
	cancel    context.CancelFunc
	url       string
}

// URL returns the base URL of the backend.
func (b *BackendContainer) URL() string {
	return b.url
}

// CollectLogs saves container stdout/stderr to dir/.
func (b *BackendContainer) CollectLogs(dir string) {
	if b == nil || b.container == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	os.MkdirAll(dir, 0755)

	reader, err := b.container.Logs(ctx)
	if err != nil {
		return
	}
	defer reader.Close()

	logs, err := io.ReadAll(reader)
	if err != nil {
		return
	}
	os.WriteFile(filepath.Join(dir, "backend.log"), logs, 0644)
}

// Cleanup tears down the container.
// Uses a fresh context for teardown in case the main context expired.
func (b *BackendContainer) Cleanup() {
	if b == nil {
		return
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cleanupCancel()

	if b.container != nil {
		b.container.Terminate(cleanupCtx)
	}
	if b.cancel != nil {
		b.cancel()
	}
}

func startBackend(image string) (*BackendContainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)

	ctr, err := testcontainers.Run(ctx, image,
		testcontainers.WithExposedPorts("8080/tcp"),
		testcontainers.WithEnv(map[string]string{
			"HTTP_PORT": "8080",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").WithPort("8080/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("start backend: %w", err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		ctr.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("get backend host: %w", err)
	}

	mappedPort, err := ctr.MappedPort(ctx, "8080/tcp")
	if err != nil {
		ctr.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("get backend mapped port: %w", err)
	}

	return &BackendContainer{
		container: ctr,
		ctx:       ctx,
		cancel:    cancel,
		url:       fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}, nil
}

// StartBackendForTestMain starts the echo backend once per test process.
// When a backend URL is configured (COOLIFY_TEST_URL or test_config.toml) no
// container is started and a container-less BackendContainer pointing at that
// URL is returned.
func StartBackendForTestMain() (*BackendContainer, error) {
	cfg := LoadTestConfig()
	if cfg.Backend.URL != "" {
		return &BackendContainer{url: cfg.Backend.URL}, nil
	}

	backendOnce.Do(func() {
		backendContainer, backendStartErr = startBackend(cfg.Backend.Image)
	})
	return backendContainer, backendStartErr
}

// StartBackend is StartBackendForTestMain for use inside a test. It skips in
// short mode and fails the test when the backend cannot be started.
func StartBackend(t *testing.T) *BackendContainer {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	b, err := StartBackendForTestMain()
	if err != nil {
		t.Fatalf("Failed to start backend: %v", err)
	}
	return b
}
