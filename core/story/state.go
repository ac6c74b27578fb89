package story

// State is the story authoring slice.
type State struct {
	Prompts          []Prompt    `json:"prompts"`
	SelectedPrompt   *Prompt     `json:"selectedPrompt"`
	UserStory        string      `json:"userStory"`
	AIGeneratedStory string      `json:"aiGeneratedStory"`
	SavedStories     []Generated `json:"savedStories"`
	IsGenerating     bool        `json:"isGenerating"`
	Error            string      `json:"error"`
}

func InitialState() State {
	return State{
		Prompts:      []Prompt{},
		SavedStories: []Generated{},
	}
}

// Action is a story slice action.
type Action interface {
	storyAction()
}

type (
	// SetPrompts replaces the whole prompt list.
	SetPrompts struct{ Prompts []Prompt }

	// SetSelectedPrompt changes the active prompt. A generated story belongs
	// to exactly one prompt selection, so the previously generated text is
	// always cleared here.
	SetSelectedPrompt struct{ Prompt *Prompt }

	// SetUserStory replaces the hand-written draft.
	SetUserStory struct{ Text string }

	// SetAIGeneratedStory replaces the generated text for the current selection.
	SetAIGeneratedStory struct{ Text string }

	// SetGenerating toggles the in-flight generation flag.
	SetGenerating struct{ Generating bool }

	// SetError records the last generation error text ("" to clear).
	SetError struct{ Message string }

	// AddPrompt appends a prompt; a prompt whose id is already present is dropped.
	AddPrompt struct{ Prompt Prompt }

	// RemovePrompt deletes a prompt by id; unknown ids are a no-op.
	RemovePrompt struct{ ID string }

	// SaveStory appends to the saved stories list.
	SaveStory struct{ Story Generated }

	// RemoveSavedStory deletes a saved story by id; unknown ids are a no-op.
	RemoveSavedStory struct{ ID string }
)

func (SetPrompts) storyAction()          {}
func (SetSelectedPrompt) storyAction()   {}
func (SetUserStory) storyAction()        {}
func (SetAIGeneratedStory) storyAction() {}
func (SetGenerating) storyAction()       {}
func (SetError) storyAction()            {}
func (AddPrompt) storyAction()           {}
func (RemovePrompt) storyAction()        {}
func (SaveStory) storyAction()           {}
func (RemoveSavedStory) storyAction()    {}

// Reduce is the pure story reducer. It never mutates its inputs.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetPrompts:
		s.Prompts = append([]Prompt(nil), a.Prompts...)
	case SetSelectedPrompt:
		if a.Prompt != nil {
			p := *a.Prompt
			s.SelectedPrompt = &p
		} else {
			s.SelectedPrompt = nil
		}
		s.AIGeneratedStory = ""
	case SetUserStory:
		s.UserStory = a.Text
	case SetAIGeneratedStory:
		s.AIGeneratedStory = a.Text
	case SetGenerating:
		s.IsGenerating = a.Generating
	case SetError:
		s.Error = a.Message
	case AddPrompt:
		for _, p := range s.Prompts {
			if p.ID == a.Prompt.ID {
				return s
			}
		}
		s.Prompts = append(append([]Prompt(nil), s.Prompts...), a.Prompt)
	case RemovePrompt:
		prompts := make([]Prompt, 0, len(s.Prompts))
		for _, p := range s.Prompts {
			if p.ID != a.ID {
				prompts = append(prompts, p)
			}
		}
		s.Prompts = prompts
	case SaveStory:
		s.SavedStories = append(append([]Generated(nil), s.SavedStories...), a.Story)
	case RemoveSavedStory:
		stories := make([]Generated, 0, len(s.SavedStories))
		for _, st := range s.SavedStories {
			if st.ID != a.ID {
				stories = append(stories, st)
			}
		}
		s.SavedStories = stories
	}
	return s
}
