package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"dirhop/dirhist"
	"dirhop/visits"
)

func main() {
	var configPath string
	switch len(os.Args) {
	case 1:
	case 2:
		configPath = os.Args[1]
	default:
		fmt.Println("Usage: dhsh [CONFIG_FILE]")
		os.Exit(1)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Seed history with the startup working directory
	session, err := dirhist.NewSession(cfg.MaxStackSize)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := dirhist.LoadState(session.Stack(), cfg.StateFile); err != nil {
		fmt.Printf("Warning: could not load saved history: %v\n", err)
	}
	session.Record()

	store, err := visits.Open(cfg.DataDir)
	if err != nil {
		fmt.Printf("Warning: visit log disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	completer := NewCompleter()
	sh := newShell(session, store, cfg, completer)
	sh.setup()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            sh.prompt(),
		HistoryFile:       cfg.HistoryFile,
		AutoComplete:      completer,
		Listener:          NewPrefetchListener(completer),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		HistoryLimit:      1000,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println(colorBoldBlue.Sprint(session.Stack().Current()))
	fmt.Println("Type 'help' for commands")

	// REPL loop
	for {
		// Capture directory changes made outside our own commands
		session.Record()
		rl.SetPrompt(sh.prompt())

		line, err := rl.Readline()
		if err != nil {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		if err := executeCommand(sh, cmd, args); err != nil {
			fmt.Printf("Error: %v\n", err)
		}

		if cmd == "exit" || cmd == "quit" || cmd == "q" {
			break
		}
	}

	if err := dirhist.SaveState(session.Stack(), cfg.StateFile); err != nil {
		fmt.Printf("Warning: could not save history: %v\n", err)
	}
}
