package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// completableCommands take a directory path argument
var completableCommands = map[string]bool{
	"cd":   true,
	"cdb":  true,
	"push": true,
}

// Completer provides tab completion for the shell. Directory listings
// are cached so repeated Tab presses in large directories stay cheap;
// the readline listener pre-warms the cache.
type Completer struct {
	dirs *lru.Cache[string, []string]
}

// NewCompleter creates a new completer
func NewCompleter() *Completer {
	cache, _ := lru.New[string, []string](128)
	return &Completer{dirs: cache}
}

// Do implements readline.AutoCompleter interface
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	words := strings.Fields(text)

	// Command completion
	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(text, " ")) {
		return c.completeCommand(words)
	}

	// Argument completion
	cmd := words[0]
	partial := ""
	if !strings.HasSuffix(text, " ") && len(words) > 1 {
		partial = words[len(words)-1]
	}

	if completableCommands[cmd] {
		return c.completeDir(partial)
	}

	return nil, 0
}

// completeCommand completes command names
func (c *Completer) completeCommand(words []string) ([][]rune, int) {
	commands := []string{
		"back", "cd", "cdb", "chooser", "clear", "curdir", "exit",
		"forward", "help", "history", "hop", "pop", "push", "pwd",
		"quit", "recent", "setup", "stack", "stacksize", "top",
	}

	prefix := ""
	if len(words) == 1 {
		prefix = words[0]
	}

	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(cmd, prefix) {
			matches = append(matches, cmd)
		}
	}

	return toRuneSlices(matches, len(prefix)), len(prefix)
}

// completeDir completes subdirectory names of the partial path
func (c *Completer) completeDir(partial string) ([][]rune, int) {
	dir, prefix := splitDirPrefix(partial)

	var completions []string
	for _, name := range c.readDir(dir) {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name+"/")
		}
	}

	// Special paths at the current level
	if dir == "." {
		if prefix != "" && strings.HasPrefix("..", prefix) {
			completions = append(completions, "../")
		}
		if prefix == "" {
			completions = append(completions, "-")
		}
	}

	sort.Strings(completions)
	return toRuneSlices(completions, len(prefix)), len(prefix)
}

// splitDirPrefix splits a partial path into the directory to list and
// the name prefix to complete
// Examples:
//
//	"src/di"  → ("src", "di")
//	"/usr/l"  → ("/usr", "l")
//	"/u"      → ("/", "u")
//	"proj"    → (".", "proj")
//	""        → (".", "")
func splitDirPrefix(partial string) (dir, prefix string) {
	if partial == "" {
		return ".", ""
	}
	i := strings.LastIndex(partial, "/")
	if i < 0 {
		return ".", partial
	}
	if i == 0 {
		return "/", partial[1:]
	}
	return partial[:i], partial[i+1:]
}

// readDir lists subdirectory names of dir, cached. Symlinks to
// directories count.
func (c *Completer) readDir(dir string) []string {
	if names, ok := c.dirs.Get(dir); ok {
		return names
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
			continue
		}
		if e.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && fi.IsDir() {
				names = append(names, e.Name())
			}
		}
	}

	c.dirs.Add(dir, names)
	return names
}

// Warm pre-populates the listing cache for dir
func (c *Completer) Warm(dir string) {
	c.readDir(dir)
}

// Invalidate drops the cached listing for dir
func (c *Completer) Invalidate(dir string) {
	c.dirs.Remove(dir)
}

// toRuneSlices converts string completions to rune slices
func toRuneSlices(strs []string, prefixLen int) [][]rune {
	result := make([][]rune, len(strs))
	for i, s := range strs {
		result[i] = []rune(s[prefixLen:])
	}
	return result
}
