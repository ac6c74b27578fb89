package echoapi

import (
	"sync"

	"github.com/kidsmentor/portal/services/realtime"
)

// gradeCell is one student x assignment cell of the gradebook table.
type gradeCell struct {
	StudentID   int    `json:"studentId"`
	StudentName string `json:"studentName"`
	Assignment  string `json:"assignmentName"`
	Category    string `json:"category"`
	Score       int    `json:"score"`
	MaxScore    int    `json:"maxScore"`
}

// gradebook folds grade feed events into an in-memory table keyed by
// student and assignment. It owns the feed's lifetime.
type gradebook struct {
	mu    sync.RWMutex
	cells map[int]map[string]gradeCell
	feed  realtime.GradeFeed
	done  chan struct{}
}

func newGradebook(feed realtime.GradeFeed) *gradebook {
	gb := &gradebook{
		cells: make(map[int]map[string]gradeCell),
		feed:  feed,
		done:  make(chan struct{}),
	}

	// seed the full table so every roster student has a row
	for _, student := range realtime.Roster() {
		row := make(map[string]gradeCell)
		for _, a := range realtime.Assignments() {
			row[a.Name] = gradeCell{
				StudentID:   student.ID,
				StudentName: student.Name,
				Assignment:  a.Name,
				Category:    a.Category,
				MaxScore:    a.MaxScore,
			}
		}
		gb.cells[student.ID] = row
	}

	go gb.run()
	return gb
}

func (gb *gradebook) run() {
	defer close(gb.done)
	for ev := range gb.feed.Events() {
		gb.mu.Lock()
		if row, ok := gb.cells[ev.StudentID]; ok {
			if cell, ok := row[ev.Assignment]; ok {
				cell.Score = ev.Score
				row[ev.Assignment] = cell
			}
		}
		gb.mu.Unlock()
	}
}

// snapshot returns the table cells ordered by student then assignment.
func (gb *gradebook) snapshot() []gradeCell {
	gb.mu.RLock()
	defer gb.mu.RUnlock()

	var out []gradeCell
	for _, student := range realtime.Roster() {
		row := gb.cells[student.ID]
		for _, a := range realtime.Assignments() {
			out = append(out, row[a.Name])
		}
	}
	return out
}

// stop tears the feed down and waits for the fold loop to drain.
func (gb *gradebook) stop() {
	gb.feed.Stop()
	<-gb.done
}
