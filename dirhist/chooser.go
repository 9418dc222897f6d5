package dirhist

// Candidate is one selectable history entry. Index is the entry's
// position in the stack; it disambiguates duplicate paths and keeps
// filter text stable.
type Candidate struct {
	Index int
	Path  string
}

// ListOptions configures the interactive list component.
type ListOptions struct {
	Modeline              string
	IgnoreCase            bool
	KeepSelectionAtBottom bool
}

// SelectableList renders a filterable candidate list and invokes
// onAccept at most once if the user commits a choice. Show blocks
// until the user accepts or cancels.
type SelectableList interface {
	Show(candidates []Candidate, onAccept func(Candidate) error, opts ListOptions) error
}

// Chooser builds candidates from the session history and routes an
// accepted selection back through the session's chdir-then-record
// path. Pre hooks run before the list is shown; Post hooks run after
// an accepted selection and are skipped on cancellation.
type Chooser struct {
	session *Session
	ui      SelectableList
	opts    ListOptions

	Pre  HookList
	Post HookList
}

// NewChooser creates a chooser over the session's history.
func NewChooser(session *Session, ui SelectableList, opts ListOptions) *Chooser {
	return &Chooser{session: session, ui: ui, opts: opts}
}

// Candidates returns one candidate per history entry, oldest first,
// independent of the cursor position. Regenerated on every call.
func (c *Chooser) Candidates() []Candidate {
	entries := c.session.Stack().Entries()
	out := make([]Candidate, len(entries))
	for i, p := range entries {
		out[i] = Candidate{Index: i, Path: p}
	}
	return out
}

// Show runs the pre hooks and displays the list. Hook and selection
// errors propagate to the caller and abort the invocation.
func (c *Chooser) Show() error {
	if err := c.Pre.Run(); err != nil {
		return err
	}
	return c.ui.Show(c.Candidates(), c.accept, c.opts)
}

func (c *Chooser) accept(cand Candidate) error {
	if err := c.session.ChangeTo(cand.Path); err != nil {
		return err
	}
	return c.Post.Run()
}
