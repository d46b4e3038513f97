// Search site definitions. Each site lives in its own JSON file inside the
// sites directory and carries a URL template with "{q}" placeholders for
// the book title.

package sites

import (
	"encoding/json"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/browser"

	"github.com/Paul-16098/get-book/internal/models"
)

// openURL is swapped out in tests so they don't launch a real browser.
var openURL = browser.OpenURL

// List holds the loaded site definitions. Reload replaces the whole set,
// so reads take a snapshot under the lock.
type List struct {
	dir   string
	mu    sync.RWMutex
	sites []models.Site
}

// LoadDir reads every *.json file in dir as a site definition. A missing
// directory yields an empty list: sites are optional, the registry is not.
// Malformed site files are skipped with a warning rather than aborting the
// run, since one broken definition should not block lookups.
func LoadDir(dir string) (*List, error) {
	l := &List{dir: dir}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-reads the sites directory and replaces the current set.
func (l *List) Reload() error {
	paths, err := filepath.Glob(filepath.Join(l.dir, "*.json"))
	if err != nil {
		return err
	}

	var loaded []models.Site
	for _, path := range paths {
		site, err := loadFile(path)
		if err != nil {
			log.Printf("Warning: skipping site file %s: %v", path, err)
			continue
		}
		loaded = append(loaded, site)
		log.Printf("Loaded site definition: %s (%s)", site.Name, path)
	}

	l.mu.Lock()
	l.sites = loaded
	l.mu.Unlock()
	return nil
}

func loadFile(path string) (models.Site, error) {
	var site models.Site
	data, err := os.ReadFile(path)
	if err != nil {
		return site, err
	}
	if err := json.Unmarshal(data, &site); err != nil {
		return site, err
	}
	if site.Name == "" {
		site.Name = strings.TrimSuffix(filepath.Base(path), ".json")
	}
	return site, nil
}

// All returns a snapshot of the current site definitions.
func (l *List) All() []models.Site {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Site, len(l.sites))
	copy(out, l.sites)
	return out
}

// SearchURL renders a site's URL template for a book title. Every "{q}" in
// the template is replaced; the title is percent-escaped first when the
// site's quote option is set.
func SearchURL(site models.Site, title string) string {
	q := title
	if site.Cofg.Quote {
		q = url.QueryEscape(title)
	}
	return strings.ReplaceAll(site.Web, "{q}", q)
}

// OpenAll opens every site's search URL for the given title in the default
// browser. Failures are logged and the remaining sites still open.
func (l *List) OpenAll(title string) {
	for _, site := range l.All() {
		target := SearchURL(site, title)
		if err := openURL(target); err != nil {
			log.Printf("Warning: failed to open %s for site %s: %v", target, site.Name, err)
		}
	}
}
