package core

import (
	"fmt"
	"log"
	"os"

	"github.com/Paul-16098/get-book/internal/config"
	"github.com/Paul-16098/get-book/internal/sites"
	"github.com/Paul-16098/get-book/internal/store"
)

// App holds the core components of the application that are shared
// between the entry point and the interactive loop.
type App struct {
	Config *config.Config
	Store  *store.Store
	Sites  *sites.List

	watcher *sites.Watcher
}

// New sets up and returns a new App instance for an already loaded
// configuration. It opens the book registry and loads the site definitions.
// The caller is expected to hold the single-instance lock before calling
// New, since opening the registry may create the file.
func New(cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.Data.Path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.Open(cfg.RegistryPath(), cfg.URL.Base)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}
	log.Printf("Registry loaded: %d books (%s)", st.Len(), cfg.RegistryPath())

	siteList, err := sites.LoadDir(cfg.SitesPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load site definitions: %w", err)
	}

	app := &App{
		Config: cfg,
		Store:  st,
		Sites:  siteList,
	}

	// Reload site definitions live while the prompt is open. The watcher is
	// best effort: a missing sites directory just means nothing to watch.
	watcher := sites.NewWatcher(siteList)
	if err := watcher.Start(); err != nil {
		log.Printf("Warning: site watcher not started: %v", err)
	} else {
		app.watcher = watcher
	}

	return app, nil
}

// Close releases the application's background resources.
func (a *App) Close() {
	if a.watcher != nil {
		a.watcher.Stop()
	}
}
