// The interactive prompt loop. One line of input per book title; an empty
// line ends the session.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Paul-16098/get-book/internal/core"
)

// writeClipboard is swapped out in tests so they don't touch the real
// system clipboard.
var writeClipboard = clipboard.WriteAll

// Run reads book titles from in until an empty line or EOF, resolving each
// one through the registry and printing its generated URL to out.
func Run(app *core.App, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, app.Config.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			// EOF ends the session the same way an empty line does.
			fmt.Fprintln(out)
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		for _, title := range Titles(line) {
			if err := lookup(app, out, title); err != nil {
				return err
			}
		}
	}
}

func lookup(app *core.App, out io.Writer, title string) error {
	book, created, err := app.Store.LookupOrCreate(title)
	if err != nil {
		return err
	}
	if created {
		log.Printf("Registered new book: %s (slug: %s)", book.Title, book.Slug)
	}
	fmt.Fprintf(out, "%s => %s\n", book.Title, book.URL)

	if app.Config.Open.Clipboard {
		if err := writeClipboard(book.Title); err != nil {
			log.Printf("Warning: failed to copy title to clipboard: %v", err)
		}
	}
	if app.Config.Open.Browser {
		app.Sites.OpenAll(book.Title)
	}
	return nil
}
