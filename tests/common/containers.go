package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Addresses served by the stub market container.
const (
	StubListedAddress   = "AAA111"
	StubUnlistedAddress = "BBB222"
)

const stubListedBody = `{"pairs":[{"chainId":"solana","dexId":"raydium","url":"https://dexscreener.com/solana/p1",` +
	`"pairAddress":"p1","baseToken":{"address":"AAA111","name":"Alpha Coin","symbol":"AAA"},` +
	`"priceUsd":"0.00000123","priceChange":{"h24":-4.2},"fdv":1000000,"marketCap":800000,` +
	`"volume":{"h24":200000},"liquidity":{"usd":50000}}]}`

var (
	scannerBuildOnce  sync.Once
	scannerBuildError error
	scannerContainer  *ScannerContainer
	scannerOnce       sync.Once
	scannerStartErr   error
)

// ScannerContainer wraps a testcontainers environment: a static stub of the
// market API and the scanner itself, on one network.
type ScannerContainer struct {
	scanner testcontainers.Container
	market  testcontainers.Container
	network *testcontainers.DockerNetwork
	ctx     context.Context
	cancel  context.CancelFunc
	url     string
}

// URL returns the base URL of the running scanner container.
func (s *ScannerContainer) URL() string {
	return s.url
}

// CollectLogs saves container stdout/stderr to dir/.
func (s *ScannerContainer) CollectLogs(dir string) {
	if s == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	os.MkdirAll(dir, 0755)

	collect := func(c testcontainers.Container, name string) {
		if c == nil {
			return
		}
		reader, err := c.Logs(ctx)
		if err != nil {
			return
		}
		defer reader.Close()

		logs, err := io.ReadAll(reader)
		if err != nil {
			return
		}
		os.WriteFile(filepath.Join(dir, name+".log"), logs, 0644)
	}

	collect(s.scanner, "meme-scanner")
	collect(s.market, "market-stub")
}

// Cleanup tears down both containers and the network.
// Uses a fresh context for teardown in case the main context expired.
func (s *ScannerContainer) Cleanup() {
	if s == nil {
		return
	}

	cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cleanupCancel()

	if s.scanner != nil {
		s.scanner.Terminate(cleanupCtx)
	}
	if s.market != nil {
		s.market.Terminate(cleanupCtx)
	}
	if s.network != nil {
		s.network.Remove(cleanupCtx)
	}
	if s.cancel != nil {
		s.cancel()
	}
}

// buildScannerImage builds the meme-scanner:test Docker image once per test run.
func buildScannerImage() error {
	scannerBuildOnce.Do(func() {
		req := testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    FindProjectRoot(),
					Dockerfile: "tests/docker/Dockerfile.server",
					Repo:       "meme-scanner",
					Tag:        "test",
					KeepImage:  true,
				},
			},
		}

		_, scannerBuildError = testcontainers.GenericContainer(context.Background(), req)
		if scannerBuildError != nil {
			// Image may have built successfully even if container creation failed
			if strings.Contains(scannerBuildError.Error(), "meme-scanner:test") {
				scannerBuildError = nil
			}
		}
	})
	return scannerBuildError
}

// startTestEnvironment creates the market stub and the scanner pointed at it.
func startTestEnvironment() (*ScannerContainer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)

	testNet, err := network.New(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create docker network: %w", err)
	}

	marketCtr, err := testcontainers.Run(ctx, "nginx:1.27-alpine",
		testcontainers.WithExposedPorts("80/tcp"),
		network.WithNetwork([]string{"market"}, testNet),
		testcontainers.WithFiles(
			testcontainers.ContainerFile{
				Reader:            strings.NewReader(stubListedBody),
				ContainerFilePath: "/usr/share/nginx/html/tokens/" + StubListedAddress,
				FileMode:          0644,
			},
			testcontainers.ContainerFile{
				Reader:            strings.NewReader(`{"pairs":[]}`),
				ContainerFilePath: "/usr/share/nginx/html/tokens/" + StubUnlistedAddress,
				FileMode:          0644,
			},
		),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/tokens/"+StubListedAddress).WithPort("80/tcp").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("start market stub: %w", err)
	}

	// Container IP rather than Docker DNS; the scanner is built with CGO_ENABLED=0.
	marketIP, err := marketCtr.ContainerIP(ctx)
	if err != nil {
		marketCtr.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get market stub IP: %w", err)
	}

	scannerCtr, err := testcontainers.Run(ctx, "meme-scanner:test",
		testcontainers.WithExposedPorts("4243/tcp"),
		network.WithNetwork([]string{"meme-scanner"}, testNet),
		testcontainers.WithEnv(map[string]string{
			"SCANNER_ENV":         "dev",
			"SCANNER_SERVER_HOST": "0.0.0.0",
			"SCANNER_SERVER_PORT": "4243",
			"SCANNER_MARKET_URL":  fmt.Sprintf("http://%s:80", marketIP),
			"SCANNER_LOG_FORMAT":  "json",
		}),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/api/health").WithPort("4243/tcp").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		marketCtr.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("start meme-scanner: %w", err)
	}

	mappedPort, err := scannerCtr.MappedPort(ctx, "4243/tcp")
	if err != nil {
		scannerCtr.Terminate(ctx)
		marketCtr.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get scanner mapped port: %w", err)
	}

	host, err := scannerCtr.Host(ctx)
	if err != nil {
		scannerCtr.Terminate(ctx)
		marketCtr.Terminate(ctx)
		testNet.Remove(ctx)
		cancel()
		return nil, fmt.Errorf("get scanner host: %w", err)
	}

	return &ScannerContainer{
		scanner: scannerCtr,
		market:  marketCtr,
		network: testNet,
		ctx:     ctx,
		cancel:  cancel,
		url:     fmt.Sprintf("http://%s:%s", host, mappedPort.Port()),
	}, nil
}

func startOnce() {
	scannerOnce.Do(func() {
		if err := buildScannerImage(); err != nil {
			scannerStartErr = fmt.Errorf("build scanner image: %w", err)
			return
		}
		var err error
		scannerContainer, err = startTestEnvironment()
		if err != nil {
			scannerStartErr = err
		}
	})
}

// StartScanner starts the test environment (one per test process).
// Returns nil when SCANNER_TEST_URL is set (manual mode -- tests use the existing server).
func StartScanner(t *testing.T) *ScannerContainer {
	t.Helper()
	if os.Getenv("SCANNER_TEST_URL") != "" {
		return nil
	}
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	startOnce()
	if scannerStartErr != nil {
		t.Fatalf("Failed to start test environment: %v", scannerStartErr)
	}
	return scannerContainer
}

// StartScannerForTestMain starts the test environment for use in TestMain (no *testing.T).
// Returns (nil, nil) when SCANNER_TEST_URL is set (manual mode).
func StartScannerForTestMain() (*ScannerContainer, error) {
	if os.Getenv("SCANNER_TEST_URL") != "" {
		return nil, nil
	}

	startOnce()
	if scannerStartErr != nil {
		return nil, scannerStartErr
	}
	return scannerContainer, nil
}
