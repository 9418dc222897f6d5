package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sahilm/fuzzy"

	"dirhop/dirhist"
)

// tviewList renders candidates with a tview list narrowed by an input
// field as the user types
type tviewList struct{}

// Show implements dirhist.SelectableList
func (tviewList) Show(candidates []dirhist.Candidate, onAccept func(dirhist.Candidate) error, opts dirhist.ListOptions) error {
	app := tview.NewApplication()

	listView := tview.NewList().ShowSecondaryText(false)
	input := tview.NewInputField().SetLabel("> ")
	status := tview.NewTextView().
		SetDynamicColors(true).
		SetText(fmt.Sprintf("[yellow::b]%s[-:-:-] | %d entries | Enter:select | Esc:cancel",
			opts.Modeline, len(candidates)))

	visible := make([]dirhist.Candidate, 0, len(candidates))
	var chosen *dirhist.Candidate

	reload := func(filter string) {
		listView.Clear()
		visible = visible[:0]
		if filter == "" {
			visible = append(visible, candidates...)
		} else {
			visible = append(visible, filterCandidates(candidates, filter, opts.IgnoreCase)...)
		}
		for _, c := range visible {
			listView.AddItem(c.Path, "", 0, nil)
		}
		if filter == "" && opts.KeepSelectionAtBottom && listView.GetItemCount() > 0 {
			// Newest entry sits at the bottom
			listView.SetCurrentItem(listView.GetItemCount() - 1)
		}
	}
	reload("")

	input.SetChangedFunc(reload)
	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			if i := listView.GetCurrentItem(); i >= 0 && i < len(visible) {
				c := visible[i]
				chosen = &c
			}
			app.Stop()
		case tcell.KeyEscape:
			app.Stop()
		}
	})

	// Route Up/Down and Ctrl-P/N from the input field to the list
	input.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		cur := listView.GetCurrentItem()
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyCtrlP:
			if cur > 0 {
				listView.SetCurrentItem(cur - 1)
			}
			return nil
		case tcell.KeyDown, tcell.KeyCtrlN:
			if cur < listView.GetItemCount()-1 {
				listView.SetCurrentItem(cur + 1)
			}
			return nil
		}
		return event
	})

	grid := tview.NewGrid().
		SetRows(1, 0, 1).
		SetColumns(0).
		AddItem(status, 0, 0, 1, 1, 0, 0, false).
		AddItem(listView, 1, 0, 1, 1, 0, 0, false).
		AddItem(input, 2, 0, 1, 1, 0, 0, true)

	app.SetRoot(grid, true).SetFocus(input)
	if err := app.Run(); err != nil {
		return err
	}

	if chosen == nil {
		return nil // cancelled
	}
	return onAccept(*chosen)
}

// filterCandidates narrows candidates to those matching filter, best
// match first
func filterCandidates(candidates []dirhist.Candidate, filter string, ignoreCase bool) []dirhist.Candidate {
	if ignoreCase {
		paths := make([]string, len(candidates))
		for i, c := range candidates {
			paths[i] = c.Path
		}
		matches := fuzzy.Find(filter, paths)
		out := make([]dirhist.Candidate, 0, len(matches))
		for _, m := range matches {
			out = append(out, candidates[m.Index])
		}
		return out
	}

	var out []dirhist.Candidate
	for _, c := range candidates {
		if strings.Contains(c.Path, filter) {
			out = append(out, c)
		}
	}
	return out
}
