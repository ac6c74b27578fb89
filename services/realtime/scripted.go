package realtime

// Scripted event sources replay a fixed event sequence and then close their
// channel. Tests use these instead of wall-clock timers and randomness.

type scriptedGradeFeed struct {
	events chan GradeEvent
}

var _ GradeFeed = (*scriptedGradeFeed)(nil)

func NewScriptedGradeFeed(events ...GradeEvent) GradeFeed {
	ch := make(chan GradeEvent, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return &scriptedGradeFeed{events: ch}
}

func (f *scriptedGradeFeed) Events() <-chan GradeEvent { return f.events }
func (f *scriptedGradeFeed) Stop()                     {}

type scriptedFaceScanner struct {
	events chan ScanEvent
}

var _ FaceScanner = (*scriptedFaceScanner)(nil)

func NewScriptedFaceScanner(events ...ScanEvent) FaceScanner {
	ch := make(chan ScanEvent, len(events))
	for _, ev := range events {
		ch <- ev
	}
	close(ch)
	return &scriptedFaceScanner{events: ch}
}

func (s *scriptedFaceScanner) Events() <-chan ScanEvent { return s.events }
func (s *scriptedFaceScanner) Stop()                    {}
