package dirhist

// HookList is an ordered list of callbacks run synchronously in
// registration order (FIFO). The first error stops the run and is
// returned to the caller; hooks registered after it do not run.
type HookList struct {
	hooks []func() error
}

// Add appends fn to the list.
func (l *HookList) Add(fn func() error) {
	l.hooks = append(l.hooks, fn)
}

// Run invokes every hook in order.
func (l *HookList) Run() error {
	for _, fn := range l.hooks {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered hooks.
func (l *HookList) Len() int {
	return len(l.hooks)
}
