package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"dirhop/dirhist"
	"dirhop/visits"
)

// shell bundles the session, visit store, and configuration behind the
// command dispatch
type shell struct {
	session   *dirhist.Session
	store     *visits.Store
	cfg       Config
	completer *Completer
	setupDone bool
}

func newShell(session *dirhist.Session, store *visits.Store, cfg Config, completer *Completer) *shell {
	return &shell{
		session:   session,
		store:     store,
		cfg:       cfg,
		completer: completer,
	}
}

// setup registers the after-cd hook that feeds the visit log.
// Safe to call repeatedly; registration happens once.
func (sh *shell) setup() {
	if sh.setupDone {
		return
	}
	sh.setupDone = true

	if sh.store == nil {
		return
	}
	sh.session.AfterCd.Add(func() error {
		if err := sh.store.Record(sh.session.Stack().Current()); err != nil {
			fmt.Printf("visit log: %v\n", err)
		}
		return nil
	})
}

// prompt renders the readline prompt from the current history position
func (sh *shell) prompt() string {
	return fmt.Sprintf("%s> ", colorBoldBlue.Sprint(collapseHome(sh.session.Stack().Current())))
}

// executeCommand dispatches a parsed command line
func executeCommand(sh *shell, cmd string, args []string) error {
	switch cmd {
	case "cd":
		target := ""
		if len(args) > 0 {
			target = args[0]
		}
		return sh.cd(target)

	case "cdb":
		if len(args) == 0 {
			return fmt.Errorf("usage: cdb <path>")
		}
		if err := sh.session.ChangeToBaseOf(expandHome(args[0])); err != nil {
			return err
		}
		sh.printCwd()
		return nil

	case "back", "b":
		return sh.report(sh.session.Back())

	case "forward", "f":
		return sh.report(sh.session.Forward())

	case "pop":
		return sh.report(sh.session.Pop())

	case "push":
		if len(args) == 0 {
			return fmt.Errorf("usage: push <path>")
		}
		p, err := filepath.Abs(expandHome(args[0]))
		if err != nil {
			return err
		}
		sh.session.Stack().Push(p)
		return nil

	case "stack":
		sh.printStack()
		return nil

	case "stacksize":
		fmt.Println(sh.session.Stack().Size())
		return nil

	case "curdir", "pwd":
		fmt.Println(sh.session.Stack().Current())
		return nil

	case "history":
		sh.printHistory()
		return nil

	case "chooser":
		return sh.chooser()

	case "hop":
		if len(args) == 0 {
			return sh.chooser()
		}
		return sh.hop(strings.Join(args, " "))

	case "top":
		return sh.visitsReport(args, func(n int) ([]visits.Visit, error) {
			return sh.store.Top(n)
		})

	case "recent":
		return sh.visitsReport(args, func(n int) ([]visits.Visit, error) {
			return sh.store.Recent(n)
		})

	case "setup":
		sh.setup()
		return nil

	case "clear":
		fmt.Print("\033[H\033[2J")
		return nil

	case "help", "?":
		printHelp()
		return nil

	case "exit", "quit", "q":
		// Handled in main loop
		return nil

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
}

// cd changes directory through the session. "-" is resolved against
// this shell's own history, not the OS notion of previous directory.
func (sh *shell) cd(target string) error {
	if target != "-" {
		target = expandHome(target)
	}
	if err := sh.session.ChangeTo(target); err != nil {
		return err
	}
	sh.printCwd()
	return nil
}

// hop fuzzy-matches pattern against history and changes into the best
// match
func (sh *shell) hop(pattern string) error {
	entries := sh.session.Stack().Entries()
	matches := fuzzy.Find(pattern, entries)
	if len(matches) == 0 {
		fmt.Printf("no history entry matches %q\n", pattern)
		return nil
	}
	if err := sh.session.ChangeTo(matches[0].Str); err != nil {
		return err
	}
	sh.printCwd()
	return nil
}

// chooser shows the interactive history chooser configured in cfg
func (sh *shell) chooser() error {
	opts := dirhist.ListOptions{
		Modeline:              "directory history",
		IgnoreCase:            sh.cfg.IgnoreCase,
		KeepSelectionAtBottom: sh.cfg.KeepSelectionAtBottom,
	}

	var ui dirhist.SelectableList
	if sh.cfg.Chooser == "tview" {
		ui = tviewList{}
	} else {
		ui = teaList{}
	}

	ch := dirhist.NewChooser(sh.session, ui, opts)
	ch.Post.Add(func() error {
		sh.printCwd()
		return nil
	})
	return ch.Show()
}

// report prints a navigation result: the directory changed into, or a
// boundary message when the cursor could not move
func (sh *shell) report(msg string, err error) error {
	if err != nil {
		return err
	}
	if msg == sh.session.Stack().Current() {
		fmt.Println(colorBoldBlue.Sprint(msg))
	} else {
		fmt.Println(colorYellow.Sprint(msg))
	}
	return nil
}

func (sh *shell) printCwd() {
	fmt.Println(colorBoldBlue.Sprint(sh.session.Stack().Current()))
}

func (sh *shell) printStack() {
	items := make([]string, 0, sh.session.Stack().Size())
	for p, current := range sh.session.Stack().All() {
		if current {
			items = append(items, colorBoldBlue.Sprint(p))
		} else {
			items = append(items, p)
		}
	}
	fmt.Println(formatColumns(items))
}

func (sh *shell) printHistory() {
	i := 0
	for p, current := range sh.session.Stack().All() {
		marker := " "
		if current {
			marker = "*"
		}
		fmt.Printf("%s %3d  %s\n", marker, i, p)
		i++
	}
}

// visitsReport prints rows from the visit log, defaulting to ten
func (sh *shell) visitsReport(args []string, query func(int) ([]visits.Visit, error)) error {
	if sh.store == nil {
		return fmt.Errorf("visit log unavailable")
	}

	n := 10
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil && v > 0 {
			n = v
		}
	}

	rows, err := query(n)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no visits logged)")
		return nil
	}
	for _, v := range rows {
		fmt.Printf("%4d  %s  %s\n",
			v.Count,
			v.LastAt.Local().Format("2006-01-02 15:04"),
			colorCyan.Sprint(collapseHome(v.Path)))
	}
	return nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + p[1:]
		}
	}
	return p
}

// collapseHome abbreviates the home directory prefix to ~
func collapseHome(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if p == home {
		return "~"
	}
	if strings.HasPrefix(p, home+"/") {
		return "~" + p[len(home):]
	}
	return p
}

func printHelp() {
	fmt.Print(`
dhsh - Directory History Shell Commands:

Navigation:
  cd [path]       Change directory (no arg: home, -: previous in history)
  cdb <path>      Change into the directory containing <path>
  back, b         Go back one step in history
  forward, f      Go forward one step in history
  pop             Go back and drop the popped entry from history
  hop [pattern]   Fuzzy-jump to a history entry (no arg: open chooser)
  chooser         Interactive history chooser

History:
  stack           Show the history stack (current entry highlighted)
  stacksize       Show the number of stack entries
  history         List history with the cursor marked
  curdir/pwd      Print the current history entry
  push <path>     Record a directory without changing into it

Visit log:
  top [n]         Most-visited directories (default 10)
  recent [n]      Most recently visited directories (default 10)

Control:
  setup           Register session hooks (idempotent)
  clear           Clear screen
  help            Show help
  exit/quit       Exit shell

Notes:
  History is captured on every prompt, so directory changes made by
  child processes are tracked too. Navigating somewhere new from a
  rewound position discards the old forward history, like a browser.

Keyboard Shortcuts:
  Tab             Auto-complete commands and directories
  Ctrl+R          Reverse history search
  Ctrl+L          Clear screen
  ↑/↓             Command history
`)
}
