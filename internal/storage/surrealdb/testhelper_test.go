package surrealdb

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bobmcallan/vibeterms/internal/common"
	surreal "github.com/surrealdb/surrealdb.go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	containerOnce sync.Once
	containerAddr string
	containerErr  error
)

// startSurrealDB starts one SurrealDB container per test binary and returns
// its RPC address. The container is reaped by testcontainers' Ryuk sidecar.
func startSurrealDB(t *testing.T) string {
	t.Helper()

	if os.Getenv("VIBETERMS_TEST_DOCKER") != "true" {
		t.Skip("Docker tests disabled (set VIBETERMS_TEST_DOCKER=true to enable)")
	}
	if testing.Short() {
		t.Skip("skipping SurrealDB container in -short mode")
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		req := testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:v2.2.1",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--user", "root", "--pass", "root", "memory"},
			WaitingFor:   wait.ForListeningPort("8000/tcp").WithStartupTimeout(60 * time.Second),
		}
		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if err != nil {
			containerErr = fmt.Errorf("start surrealdb container: %w", err)
			return
		}
		host, err := c.Host(ctx)
		if err != nil {
			containerErr = err
			return
		}
		port, err := c.MappedPort(ctx, "8000/tcp")
		if err != nil {
			containerErr = err
			return
		}
		containerAddr = fmt.Sprintf("ws://%s:%s/rpc", host, port.Port())
	})

	if containerErr != nil {
		t.Fatalf("SurrealDB container: %v", containerErr)
	}
	return containerAddr
}

// testDB returns a connected *surreal.DB using a unique database per test.
func testDB(t *testing.T) *surreal.DB {
	t.Helper()

	addr := startSurrealDB(t)
	ctx := context.Background()

	db, err := surreal.New(addr)
	if err != nil {
		t.Fatalf("connect to SurrealDB: %v", err)
	}

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": "root",
		"pass": "root",
	}); err != nil {
		t.Fatalf("sign in to SurrealDB: %v", err)
	}

	// SurrealDB rejects "/" in database names
	sanitized := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dbName := fmt.Sprintf("t_%s_%d", sanitized, time.Now().UnixNano()%100000)
	if err := db.Use(ctx, "vibeterms_test", dbName); err != nil {
		t.Fatalf("select namespace/database: %v", err)
	}

	t.Cleanup(func() {
		db.Close(context.Background())
	})

	return db
}

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}
