//go:build integration

package containers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"rental-cart/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "test"
	testPassword = "testpass"
	testDB       = "cart"
)

type Info struct {
	Host string
	Port nat.Port
}

func (i Info) Addr() string {
	return i.Host + ":" + i.Port.Port()
}

// StartPostgres runs a throwaway PostgreSQL and returns a DBConfig pointing at it.
func StartPostgres(t *testing.T) config.DBConfig {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
		Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
				testUser, testPassword, host, port.Port(), testDB)
		}).WithStartupTimeout(60 * time.Second),
	}
	info := start(t, req, "5432/tcp")

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   testDB,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

func StartRedis(t *testing.T) Info {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	return start(t, req, "6379/tcp")
}

func start(t *testing.T, req testcontainers.ContainerRequest, port string) Info {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s", req.Image)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate container", "image", req.Image, "error", err.Error())
		}
	})

	mapped, err := c.MappedPort(ctx, nat.Port(port))
	require.NoError(t, err)
	host, err := c.Host(ctx)
	require.NoError(t, err)
	return Info{Host: host, Port: mapped}
}
