package activity

// State is the daily activity slice.
type State struct {
	Entries  []Entry  `json:"entries"`
	Children []string `json:"children"`
}

func InitialState() State {
	return State{Entries: []Entry{}, Children: []string{}}
}

// Action is an activity slice action. Dispatching any of these triggers the
// store's persistence of the activity slice.
type Action interface {
	activityAction()
}

type (
	// SetEntries replaces the entry list wholesale (rehydration).
	SetEntries struct{ Entries []Entry }

	// AddEntry appends a logged entry.
	AddEntry struct{ Entry Entry }

	// UpdateEntry replaces the entry with a matching id; unknown ids are a no-op.
	UpdateEntry struct{ Entry Entry }

	// DeleteEntry removes an entry by id; unknown ids are a no-op.
	DeleteEntry struct{ ID string }

	// SetChildren replaces the child roster wholesale.
	SetChildren struct{ Children []string }

	// AddChild appends a child name; duplicates are rejected.
	AddChild struct{ Name string }
)

func (SetEntries) activityAction()  {}
func (AddEntry) activityAction()    {}
func (UpdateEntry) activityAction() {}
func (DeleteEntry) activityAction() {}
func (SetChildren) activityAction() {}
func (AddChild) activityAction()    {}

// Reduce is the pure activity reducer. It never mutates its inputs.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetEntries:
		s.Entries = append([]Entry(nil), a.Entries...)
	case AddEntry:
		s.Entries = append(append([]Entry(nil), s.Entries...), a.Entry)
	case UpdateEntry:
		entries := append([]Entry(nil), s.Entries...)
		for i, e := range entries {
			if e.ID == a.Entry.ID {
				entries[i] = a.Entry
				break
			}
		}
		s.Entries = entries
	case DeleteEntry:
		entries := make([]Entry, 0, len(s.Entries))
		for _, e := range s.Entries {
			if e.ID != a.ID {
				entries = append(entries, e)
			}
		}
		s.Entries = entries
	case SetChildren:
		s.Children = append([]string(nil), a.Children...)
	case AddChild:
		for _, name := range s.Children {
			if name == a.Name {
				return s
			}
		}
		s.Children = append(append([]string(nil), s.Children...), a.Name)
	}
	return s
}
