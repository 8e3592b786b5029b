package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/itchan-dev/msgboard/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		Public: config.Public{
			HTTP:            config.HTTP{Port: port},
			Storage:         config.Storage{Driver: config.DriverMemory},
			JwtTTL:          time.Hour,
			CreateRateLimit: 1,
			CreateRateBurst: 1,
		},
		Private: config.Private{JwtKey: "main-test-secret"},
	}
}

func TestRunFailsWhenPortTaken(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = run(ctx, testConfig(ln.Addr().(*net.TCPAddr).Port))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server failed")
	assert.NoError(t, ctx.Err(), "run must return on listener failure, not on timeout")
}

func TestRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(port)) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
