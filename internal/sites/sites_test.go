package sites

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Paul-16098/get-book/internal/models"
)

func writeSiteFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "czbooks.json", `{"name": "czbooks", "web": "https://czbooks.net/s/{q}?q={q}", "cofg": {"quote": true}}`)
	writeSiteFile(t, dir, "novel85.json", `{"name": "85novel", "web": "https://www.85novel.com/search?k={q}"}`)
	writeSiteFile(t, dir, "broken.json", `{not json`)
	writeSiteFile(t, dir, "notes.txt", `not a site file`)

	l, err := LoadDir(dir)
	assert.NoError(t, err)
	// Broken definitions are skipped, non-JSON files are never considered.
	assert.Len(t, l.All(), 2)
}

func TestLoadDirMissingDirectory(t *testing.T) {
	l, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, err)
	assert.Empty(t, l.All())
}

func TestLoadDirFallbackName(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "unnamed.json", `{"web": "https://example/search?q={q}"}`)

	l, err := LoadDir(dir)
	assert.NoError(t, err)
	sites := l.All()
	assert.Len(t, sites, 1)
	assert.Equal(t, "unnamed", sites[0].Name)
}

func TestSearchURL(t *testing.T) {
	plain := models.Site{Name: "plain", Web: "https://example/search?k={q}"}
	assert.Equal(t, "https://example/search?k=Dune", SearchURL(plain, "Dune"))

	// Every placeholder is substituted.
	multi := models.Site{Name: "multi", Web: "https://czbooks.net/s/{q}?q={q}"}
	assert.Equal(t, "https://czbooks.net/s/Dune?q=Dune", SearchURL(multi, "Dune"))

	// The quote option percent-escapes the title.
	quoted := models.Site{
		Name: "quoted",
		Web:  "https://example/search?k={q}",
		Cofg: models.SiteConfig{Quote: true},
	}
	assert.Equal(t, "https://example/search?k=%E8%A9%AD%E7%A7%98%E4%B9%8B%E4%B8%BB", SearchURL(quoted, "詭秘之主"))

	// A template without placeholders is returned as-is.
	static := models.Site{Name: "static", Web: "https://example/index"}
	assert.Equal(t, "https://example/index", SearchURL(static, "Dune"))
}

func TestOpenAll(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "a.json", `{"name": "a", "web": "https://a.example/{q}"}`)
	writeSiteFile(t, dir, "b.json", `{"name": "b", "web": "https://b.example/?q={q}", "cofg": {"quote": true}}`)

	l, err := LoadDir(dir)
	assert.NoError(t, err)

	var opened []string
	orig := openURL
	openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	defer func() { openURL = orig }()

	l.OpenAll("Dual Sun")
	assert.Equal(t, []string{"https://a.example/Dual Sun", "https://b.example/?q=Dual+Sun"}, opened)
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	writeSiteFile(t, dir, "a.json", `{"name": "a", "web": "https://a.example/{q}"}`)

	l, err := LoadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, l.All(), 1)

	w := NewWatcher(l)
	w.debounceDelay = 10 * time.Millisecond
	assert.NoError(t, w.Start())
	defer w.Stop()

	writeSiteFile(t, dir, "b.json", `{"name": "b", "web": "https://b.example/{q}"}`)

	// Wait for the debounced reload to land.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(l.All()) == 2 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Expected 2 sites after reload, got %d", len(l.All()))
}
