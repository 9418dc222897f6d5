package main

import "strings"

// PrefetchListener pre-warms the completer's directory cache when Tab
// is pressed on a path argument
type PrefetchListener struct {
	completer *Completer
}

// NewPrefetchListener creates a listener backed by the given completer
func NewPrefetchListener(c *Completer) *PrefetchListener {
	return &PrefetchListener{completer: c}
}

// OnChange is called on every keystroke
func (l *PrefetchListener) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	// Only intercept Tab key
	if key != '\t' {
		return line, pos, false
	}

	text := string(line[:pos])
	words := strings.Fields(text)

	if len(words) < 1 || !completableCommands[words[0]] {
		return line, pos, false
	}

	var partial string
	if len(words) > 1 && !strings.HasSuffix(text, " ") {
		partial = words[len(words)-1]
	}

	dir, _ := splitDirPrefix(partial)
	l.completer.Warm(dir)

	// Return false to let readline continue with completion
	return line, pos, false
}
