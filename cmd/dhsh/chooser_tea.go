package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dirhop/dirhist"
)

var chooserTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(14))

type candidateItem struct {
	cand dirhist.Candidate
}

func (i candidateItem) FilterValue() string { return i.cand.Path }
func (i candidateItem) Title() string       { return i.cand.Path }
func (i candidateItem) Description() string { return fmt.Sprintf("entry %d", i.cand.Index) }

// teaList renders candidates with a filterable bubbles list
type teaList struct{}

// Show implements dirhist.SelectableList
func (teaList) Show(candidates []dirhist.Candidate, onAccept func(dirhist.Candidate) error, opts dirhist.ListOptions) error {
	items := make([]list.Item, len(candidates))
	for i, c := range candidates {
		items[i] = candidateItem{cand: c}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = opts.Modeline
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = chooserTitleStyle
	if opts.KeepSelectionAtBottom && len(items) > 0 {
		// Newest entry sits at the bottom of the list
		l.Select(len(items) - 1)
	}

	res, err := tea.NewProgram(chooserModel{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	final, ok := res.(chooserModel)
	if !ok || final.choice == nil {
		return nil // cancelled
	}
	return onAccept(*final.choice)
}

type chooserModel struct {
	list   list.Model
	choice *dirhist.Candidate
}

func (m chooserModel) Init() tea.Cmd {
	return nil
}

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// While the filter input is focused, every key belongs to it
		if m.list.FilterState() == list.Filtering {
			break
		}
		if msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(candidateItem); ok {
				c := item.cand
				m.choice = &c
			}
			return m, tea.Quit
		}
		// esc/q/ctrl+c are handled by the list's own quit bindings,
		// leaving choice nil (cancelled)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m chooserModel) View() string {
	return m.list.View()
}
