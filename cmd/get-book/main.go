package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Paul-16098/get-book/internal/cli"
	"github.com/Paul-16098/get-book/internal/config"
	"github.com/Paul-16098/get-book/internal/core"
	"github.com/Paul-16098/get-book/internal/lock"
)

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	// The lock comes before the registry is opened: a second instance must
	// exit without touching the data files at all.
	guard, err := lock.Acquire(cfg.LockPath())
	if err != nil {
		if errors.Is(err, lock.ErrAlreadyRunning) {
			log.Printf("Warning: %v", err)
		} else {
			log.Printf("Failed to acquire instance lock: %v", err)
		}
		return 1
	}
	defer guard.Release()

	app, err := core.New(cfg)
	if err != nil {
		log.Printf("Fatal error during application setup: %v", err)
		return 1
	}
	defer app.Close()

	// --- Graceful Shutdown ---
	// Ctrl+C interrupts the blocking stdin read, so the lock is released
	// here instead of waiting for the deferred release that never runs.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Operation canceled.")
		app.Close()
		guard.Release()
		os.Exit(130)
	}()

	if err := cli.Run(app, os.Stdin, os.Stdout); err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	return 0
}
