package lesson

// Subject is one teachable subject and its topic catalog.
type Subject struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

// Learning styles.
const (
	StyleVisual      = "visual"
	StyleAuditory    = "auditory"
	StyleKinesthetic = "kinesthetic"
)

// Challenge levels, ordered weakest to strictest.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// StudentProfile drives lesson personalization.
type StudentProfile struct {
	LearningStyle       string   `json:"learningStyle"`
	Pace                string   `json:"pace"`
	ChallengeLevel      string   `json:"challengeLevel"`
	Interests           []string `json:"interests"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
}

// DefaultProfile is the profile used until the educator customizes one.
func DefaultProfile() StudentProfile {
	return StudentProfile{
		LearningStyle:       StyleVisual,
		Pace:                "moderate",
		ChallengeLevel:      LevelBeginner,
		Interests:           []string{"animals", "space", "art"},
		Strengths:           []string{"creativity", "enthusiasm"},
		AreasForImprovement: []string{"focus", "organization"},
	}
}

// ProfilePatch defines what may be provided to modify the stored profile.
// Nil fields are left untouched.
type ProfilePatch struct {
	LearningStyle       *string  `json:"learningStyle" validate:"omitempty,oneof=visual auditory kinesthetic"`
	Pace                *string  `json:"pace" validate:"omitempty,oneof=fast moderate deliberate"`
	ChallengeLevel      *string  `json:"challengeLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
	Interests           []string `json:"interests"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
}

// ContentItem is one block of lesson content.
type ContentItem struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Problem  string      `json:"problem,omitempty"`
	Solution string      `json:"solution,omitempty"`
	Data     interface{} `json:"problem_data,omitempty"`
}

// QuizItem is one practice quiz question.
type QuizItem struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Lesson is the generation API's response envelope, post-personalization.
type Lesson struct {
	LessonID           int           `json:"lesson_id"`
	Title              string        `json:"lessonTitle"`
	Topic              string        `json:"topic"`
	LearningObjectives []string      `json:"learningObjectives"`
	DifficultyLevel    string        `json:"difficultyLevel"`
	Content            []ContentItem `json:"lessonContent"`
	PracticeQuiz       []QuizItem    `json:"practiceQuiz"`
}

// generateRequest is the lesson generation API's request body.
type generateRequest struct {
	StudentID          int      `json:"student_id"`
	CurrentTopic       string   `json:"current_topic"`
	Subject            string   `json:"subject"`
	ChallengeLevel     string   `json:"challenge_level"`
	LearningStyle      string   `json:"learning_style"`
	LastQuizScore      *float64 `json:"last_quiz_score"`
	LearningObjectives []string `json:"learning_objectives"`
}

// fallbackSubjects is served when the subjects endpoint is unreachable.
func fallbackSubjects() []Subject {
	return []Subject{
		{ID: 1, Name: "Math", Topics: []string{"Addition", "Subtraction", "Shapes", "Counting", "Patterns", "Measurement"}},
		{ID: 2, Name: "Science", Topics: []string{"Animals", "Plants", "Weather", "Seasons", "Space", "Simple Machines"}},
		{ID: 3, Name: "Reading", Topics: []string{"Phonics", "Sight Words", "Comprehension", "Storytelling", "Rhyming", "Vocabulary"}},
		{ID: 4, Name: "Social Studies", Topics: []string{"Communities", "Maps", "Holidays", "Cultures", "History", "Geography"}},
		{ID: 5, Name: "Art & Music", Topics: []string{"Colors", "Drawing", "Music Basics", "Crafts", "Instruments", "Famous Artists"}},
	}
}
