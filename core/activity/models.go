package activity

import (
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/kidsmentor/portal/core"
)

// Entry types.
const (
	TypeMeal     = "meal"
	TypeNap      = "nap"
	TypeLearning = "learning"
	TypeMood     = "mood"
)

var (
	MealTypes = []string{"breakfast", "lunch", "snack", "dinner"}
	Moods     = []string{"happy", "sad", "tired", "excited", "frustrated", "calm"}
)

// Entry is one logged daily activity for a child. Exactly one type-specific
// field group is populated, matching Type.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	ChildName string    `json:"childName"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`

	// meal
	MealType        string `json:"mealType,omitempty"`
	MealDescription string `json:"mealDescription,omitempty"`

	// nap
	NapStart string `json:"napStart,omitempty"`
	NapEnd   string `json:"napEnd,omitempty"`

	// learning
	LearningFocus string `json:"learningFocus,omitempty"`
	LearningNotes string `json:"learningNotes,omitempty"`

	// mood
	Mood      string `json:"mood,omitempty"`
	MoodNotes string `json:"moodNotes,omitempty"`
}

// NewEntryID mints a time-ordered entry id.
func NewEntryID() string {
	return ulid.Make().String()
}

// NewEntry contains information needed to log an activity. Only the field
// group matching Type may be set; the mismatched groups are cleared on
// validation so the stored entry honors the one-group-per-type invariant.
type NewEntry struct {
	Date      string `json:"date" validate:"required,dateonly"`
	ChildName string `json:"childName" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=meal nap learning mood"`

	MealType        string `json:"mealType" validate:"omitempty,oneof=breakfast lunch snack dinner"`
	MealDescription string `json:"mealDescription"`
	NapStart        string `json:"napStart"`
	NapEnd          string `json:"napEnd"`
	LearningFocus   string `json:"learningFocus"`
	LearningNotes   string `json:"learningNotes"`
	Mood            string `json:"mood" validate:"omitempty,oneof=happy sad tired excited frustrated calm"`
	MoodNotes       string `json:"moodNotes"`
}

func (ne *NewEntry) Validate() error {
	ne.ChildName = core.CleanString(ne.ChildName)
	ne.Date = core.CleanString(ne.Date)
	ne.Type = core.CleanString(ne.Type, true /* lower */)

	if err := core.Validate.Struct(ne); err != nil {
		return err
	}

	switch ne.Type {
	case TypeMeal:
		if ne.MealType == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "mealType", Error: "this field is required"})
		}
	case TypeNap:
		if ne.NapStart == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "napStart", Error: "this field is required"})
		}
	case TypeLearning:
		if ne.LearningFocus == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "learningFocus", Error: "this field is required"})
		}
	case TypeMood:
		if ne.Mood == "" {
			return core.NewValidationError(nil, core.FieldError{Field: "mood", Error: "this field is required"})
		}
	}
	return nil
}

// Entry builds the Entry from the validated input, keeping only the field
// group matching the entry type. The id and timestamp come from the caller;
// reducers never read the clock.
func (ne NewEntry) Entry(id string, createdAt time.Time) Entry {
	e := Entry{
		ID:        id,
		Date:      ne.Date,
		ChildName: ne.ChildName,
		Type:      ne.Type,
		CreatedAt: createdAt,
	}
	switch ne.Type {
	case TypeMeal:
		e.MealType = ne.MealType
		e.MealDescription = ne.MealDescription
	case TypeNap:
		e.NapStart = ne.NapStart
		e.NapEnd = ne.NapEnd
	case TypeLearning:
		e.LearningFocus = ne.LearningFocus
		e.LearningNotes = ne.LearningNotes
	case TypeMood:
		e.Mood = ne.Mood
		e.MoodNotes = ne.MoodNotes
	}
	return e
}

// FilterByDate returns the entries logged for the given YYYY-MM-DD date.
func FilterByDate(entries []Entry, date string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// SortByCreatedAtDesc orders entries newest first for display.
func SortByCreatedAtDesc(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
