package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mealEntry(id, date, child, mealType string, createdAt time.Time) Entry {
	return Entry{ID: id, Date: date, ChildName: child, Type: TypeMeal, MealType: mealType, CreatedAt: createdAt}
}

func TestReduce_Entries(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	st := Reduce(InitialState(), AddEntry{Entry: mealEntry("a", "2024-05-01", "Zola", "lunch", now)})
	st = Reduce(st, AddEntry{Entry: mealEntry("b", "2024-05-02", "Zola", "snack", now.Add(time.Hour))})
	require.Len(t, st.Entries, 2)

	// update by id
	updated := mealEntry("a", "2024-05-01", "Zola", "breakfast", now)
	st = Reduce(st, UpdateEntry{Entry: updated})
	assert.Equal(t, "breakfast", st.Entries[0].MealType)

	// update with unknown id is a no-op
	st = Reduce(st, UpdateEntry{Entry: mealEntry("zzz", "2024-05-01", "Zola", "dinner", now)})
	require.Len(t, st.Entries, 2)

	// delete by id; unknown id does not throw and changes nothing
	st = Reduce(st, DeleteEntry{ID: "zzz"})
	require.Len(t, st.Entries, 2)
	st = Reduce(st, DeleteEntry{ID: "a"})
	require.Len(t, st.Entries, 1)
	assert.Equal(t, "b", st.Entries[0].ID)
}

func TestReduce_Children(t *testing.T) {
	st := Reduce(InitialState(), AddChild{Name: "Zola"})
	st = Reduce(st, AddChild{Name: "Kai"})
	require.Len(t, st.Children, 2)

	// duplicate names are rejected
	st = Reduce(st, AddChild{Name: "Zola"})
	assert.Equal(t, []string{"Zola", "Kai"}, st.Children)

	st = Reduce(st, SetChildren{Children: []string{"Maya"}})
	assert.Equal(t, []string{"Maya"}, st.Children)
}

func TestReduce_SetEntriesRehydration(t *testing.T) {
	now := time.Now().UTC()
	persisted := []Entry{mealEntry("a", "2024-05-01", "Zola", "lunch", now)}

	st := Reduce(InitialState(), SetEntries{Entries: persisted})
	require.Len(t, st.Entries, 1)

	// the reducer copies; mutating the payload after dispatch has no effect
	persisted[0].MealType = "dinner"
	assert.Equal(t, "lunch", st.Entries[0].MealType)
}
