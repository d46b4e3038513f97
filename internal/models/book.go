// This file defines the data structures shared across the application.

package models

import "time"

// Book is one registry record. The registry file maps a title to exactly
// one Book whose Title field equals that key.
type Book struct {
	Title   string    `json:"title"`
	Slug    string    `json:"slug"`
	URL     string    `json:"url"`
	AddedAt time.Time `json:"added_at"`
}

// Site describes one search site definition, loaded from its own JSON file
// in the sites directory. Web is a URL template in which every "{q}" is
// replaced by the book title.
type Site struct {
	Name string     `json:"name"`
	Web  string     `json:"web"`
	Cofg SiteConfig `json:"cofg"`
}

// SiteConfig holds per-site formatting options.
type SiteConfig struct {
	// Quote percent-escapes the substituted title, for sites that choke on
	// raw CJK or spaces in the query string.
	Quote bool `json:"quote"`
}
