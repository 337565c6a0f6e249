package sync

// Action is the terminal outcome for a single path.
type Action int

const (
	// ActionKept means the local file already matched.
	ActionKept Action = iota
	// ActionFetched means the file was downloaded.
	ActionFetched
	// ActionSkipped means an optional file was left broken in
	// lenient mode.
	ActionSkipped
	// ActionPruned means an untracked file was deleted.
	ActionPruned
)

func (a Action) String() string {
	switch a {
	case ActionKept:
		return "kept"
	case ActionFetched:
		return "fetched"
	case ActionSkipped:
		return "skipped"
	case ActionPruned:
		return "pruned"
	}
	return "unknown"
}

// Observer receives progress events during a sync run. Events are
// purely informational; the engine never consults the observer for
// control decisions.
type Observer interface {
	// Start is called when an entry begins reconciliation.
	Start(fpath string)
	// Fetch is called before each mirror attempt.
	Fetch(fpath, rawurl string)
	// Done is called with the terminal outcome for a path.
	Done(fpath string, action Action)
}

func (s *Syncer) observeStart(fpath string) {
	if s.Observer != nil {
		s.Observer.Start(fpath)
	}
}

func (s *Syncer) observeFetch(fpath, rawurl string) {
	if s.Observer != nil {
		s.Observer.Fetch(fpath, rawurl)
	}
}

func (s *Syncer) observeDone(fpath string, action Action) {
	if s.Observer != nil {
		s.Observer.Done(fpath, action)
	}
}
