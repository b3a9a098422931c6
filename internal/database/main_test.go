//go:build integration
// +build integration

package database_test

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"meal-planner-backend/internal/testutils"
)

// TestMain ensures the shared Postgres container is removed once the database tests finish
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Database tests interrupted, cleaning up Docker containers...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
