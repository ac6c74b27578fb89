package realtime

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// simulatedGradeFeed pushes a random grade change on every tick, standing in
// for a real gradebook transport.
type simulatedGradeFeed struct {
	events   chan GradeEvent
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

var _ GradeFeed = (*simulatedGradeFeed)(nil)

// NewSimulatedGradeFeed starts a feed emitting one event per interval.
// A nil rnd gets a time-seeded source.
func NewSimulatedGradeFeed(interval time.Duration, rnd *rand.Rand) GradeFeed {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ctx, cancel := context.WithCancel(context.Background())
	f := &simulatedGradeFeed{
		events: make(chan GradeEvent, 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go f.run(ctx, interval, rnd)
	return f
}

func (f *simulatedGradeFeed) run(ctx context.Context, interval time.Duration, rnd *rand.Rand) {
	defer close(f.events)
	defer close(f.done)

	students := Roster()
	assignments := Assignments()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			student := students[rnd.Intn(len(students))]
			assignment := assignments[rnd.Intn(len(assignments))]
			ev := GradeEvent{
				StudentID:   student.ID,
				StudentName: student.Name,
				Assignment:  assignment.Name,
				Score:       rnd.Intn(assignment.MaxScore) + 1,
				MaxScore:    assignment.MaxScore,
				Timestamp:   time.Now().UTC(),
			}
			select {
			case f.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (f *simulatedGradeFeed) Events() <-chan GradeEvent { return f.events }

func (f *simulatedGradeFeed) Stop() {
	f.stopOnce.Do(func() {
		f.cancel()
		<-f.done
	})
}

// simulatedFaceScanner emits one scan attempt per tick. Roughly a third of
// the frames miss; each roster student is recognized at most once per
// session, mirroring the demo attendance loop.
type simulatedFaceScanner struct {
	events   chan ScanEvent
	cancel   context.CancelFunc
	stopOnce sync.Once
	done     chan struct{}
}

var _ FaceScanner = (*simulatedFaceScanner)(nil)

func NewSimulatedFaceScanner(interval time.Duration, rnd *rand.Rand) FaceScanner {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &simulatedFaceScanner{
		events: make(chan ScanEvent, 16),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.run(ctx, interval, rnd)
	return s
}

func (s *simulatedFaceScanner) run(ctx context.Context, interval time.Duration, rnd *rand.Rand) {
	defer close(s.events)
	defer close(s.done)

	remaining := Roster()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			ev := ScanEvent{Timestamp: time.Now().UTC()}
			if len(remaining) > 0 && rnd.Float64() >= 0.3 {
				i := rnd.Intn(len(remaining))
				student := remaining[i]
				remaining = append(remaining[:i], remaining[i+1:]...)
				ev.Recognized = true
				ev.Confidence = 0.75 + rnd.Float64()*0.24
				ev.StudentID = student.ID
				ev.StudentName = student.Name
			} else {
				ev.Confidence = rnd.Float64() * 0.5
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (s *simulatedFaceScanner) Events() <-chan ScanEvent { return s.events }

func (s *simulatedFaceScanner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.done
	})
}
