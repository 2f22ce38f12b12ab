// slashline is a demo REPL for the prompt engine: line editing, history,
// bracketed paste, and a filterable slash-command picker.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"slashline/config"
	"slashline/history"
	"slashline/prompt"
	"slashline/selector"
	"slashline/skills"
	"slashline/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "slashline: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var plain bool
	flag.BoolVar(&plain, "plain", false, "disable colors")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	theme.Set(cfg.Appearance.Theme)

	var styler selector.Styler = theme.Styled{}
	if plain || !cfg.Appearance.ColorEnabled() || os.Getenv("NO_COLOR") != "" {
		styler = theme.Plain{}
	}

	histPath := cfg.History.Path
	if histPath == "" {
		histPath, err = history.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolving history path: %w", err)
		}
	}
	store, err := history.Open(histPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	items := skills.Builtin()

	for {
		entries, err := store.Recent(cfg.History.Limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "history unavailable: %v\n", err)
		}

		p := &prompt.Prompt{
			Text:       cfg.Prompt.Text,
			Items:      items,
			History:    entries,
			MaxVisible: cfg.Prompt.MaxVisible,
			Styler:     styler,
		}
		line, err := p.Run()
		if errors.Is(err, prompt.ErrCancelled) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		if err := store.Append(line); err != nil {
			fmt.Fprintf(os.Stderr, "history write failed: %v\n", err)
		}
		if done := dispatch(line, store, cfg); done {
			return nil
		}
	}
}

// dispatch interprets a resolved input line. Anything that is not a built-in
// command is echoed; a real host would hand it to its agent here.
func dispatch(line string, store *history.Store, cfg *config.Config) bool {
	switch {
	case line == "/quit":
		return true

	case line == "/help":
		for _, item := range skills.Builtin() {
			name := "/" + item.Name
			if item.NeedsArg {
				name += " <" + item.ArgHint + ">"
			}
			fmt.Printf("  %-24s %s\n", name, item.Description)
		}

	case line == "/theme":
		t := theme.Next()
		fmt.Printf("theme: %s\n", t.Name)

	case line == "/history" || line == "/history session":
		var entries []string
		var err error
		if line == "/history session" {
			fmt.Printf("session %s\n", store.Session())
			entries, err = store.RecentSession(cfg.History.Limit)
		} else {
			entries, err = store.Recent(cfg.History.Limit)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "history unavailable: %v\n", err)
			break
		}
		for _, e := range entries {
			fmt.Printf("  %s\n", e)
		}

	default:
		fmt.Printf("%s\n", line)
	}
	return false
}
