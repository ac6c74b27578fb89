// Package realtime defines the event-source interfaces behind the portal's
// asynchronous collaborators (grade pushes, face-scan attendance) and their
// simulated implementations. Views consume only the interfaces, so the
// simulations can later be replaced by genuine integrations.
package realtime

import "time"

// GradeEvent announces that a student's score changed on an assignment.
type GradeEvent struct {
	StudentID   int       `json:"studentId"`
	StudentName string    `json:"studentName"`
	Assignment  string    `json:"assignmentName"`
	Score       int       `json:"score"`
	MaxScore    int       `json:"maxScore"`
	Timestamp   time.Time `json:"timestamp"`
}

// ScanEvent reports one face-scan attempt. Recognized is false for frames
// where no enrolled face matched.
type ScanEvent struct {
	Recognized  bool      `json:"recognized"`
	Confidence  float64   `json:"confidence"`
	StudentID   int       `json:"studentId,omitempty"`
	StudentName string    `json:"studentName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// GradeFeed asynchronously yields grade changes. The channel is closed after
// Stop; Stop is idempotent and must release all feed resources.
type GradeFeed interface {
	Events() <-chan GradeEvent
	Stop()
}

// FaceScanner asynchronously yields scan results until Stop.
type FaceScanner interface {
	Events() <-chan ScanEvent
	Stop()
}

// Student is a roster entry the simulations draw from.
type Student struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Assignment is a gradable item in the simulated gradebook.
type Assignment struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	MaxScore int    `json:"maxScore"`
}

// Roster returns the demo classroom roster.
func Roster() []Student {
	return []Student{
		{ID: 1, Name: "Emma Johnson"},
		{ID: 2, Name: "Noah Smith"},
		{ID: 3, Name: "Olivia Williams"},
		{ID: 4, Name: "Liam Brown"},
	}
}

// Assignments returns the demo assignment catalog.
func Assignments() []Assignment {
	return []Assignment{
		{ID: 1, Name: "Math Quiz 1", Category: "Quiz", MaxScore: 100},
		{ID: 2, Name: "Science Project", Category: "Project", MaxScore: 50},
		{ID: 3, Name: "Reading Comprehension", Category: "Homework", MaxScore: 20},
		{ID: 4, Name: "History Test", Category: "Exam", MaxScore: 100},
		{ID: 5, Name: "Art Portfolio", Category: "Project", MaxScore: 30},
	}
}
