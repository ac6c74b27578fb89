// Package lesson is the adapter for the external lesson generation API,
// plus the student profile and badge collections it personalizes from.
package lesson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/core"
)

// StudentProfileKey is the storage key for the student profile.
const StudentProfileKey = "kidsmentor_student_profile"

// Storage is the best-effort persistence bridge for the profile and badges.
type Storage interface {
	Load(key string, dst interface{}) bool
	Save(key string, v interface{})
}

type Service struct {
	baseURL string
	client  *http.Client
	store   Storage
	log     core.Logger
	rnd     *rand.Rand
}

func NewService(baseURL string, client *http.Client, store Storage, log core.Logger) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		store:   store,
		log:     log,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Subjects returns the subject catalog, falling back to the fixed catalog on
// any API failure.
func (svc *Service) Subjects(ctx context.Context) []Subject {
	var subjects []Subject
	if err := svc.getJSON(ctx, "/api/subjects", &subjects); err != nil {
		svc.log.Warn("lesson: subjects API unavailable, using catalog", err)
		return fallbackSubjects()
	}
	return subjects
}

// Topics returns the topic list for a subject. Unlike Subjects, failures
// propagate to the caller.
func (svc *Service) Topics(ctx context.Context, subjectID int) ([]string, error) {
	var topics []string
	if err := svc.getJSON(ctx, fmt.Sprintf("/api/subjects/%d/topics", subjectID), &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// Generate requests a lesson for the subject and topic and applies the
// personalization transform for the stored student profile. API failures
// propagate; there is no retry.
func (svc *Service) Generate(ctx context.Context, subject, topic string) (Lesson, error) {
	profile := svc.Profile()

	body, err := json.Marshal(generateRequest{
		StudentID:          1,
		CurrentTopic:       topic,
		Subject:            subject,
		ChallengeLevel:     profile.ChallengeLevel,
		LearningStyle:      profile.LearningStyle,
		LearningObjectives: []string{"Learn about " + topic},
	})
	if err != nil {
		return Lesson{}, errors.Wrap(err, "lesson: marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/generate-lesson", bytes.NewReader(body))
	if err != nil {
		return Lesson{}, errors.Wrap(err, "lesson: building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return Lesson{}, errors.Wrap(err, "lesson: calling generation API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Lesson{}, errors.Errorf("lesson: API error: %d", resp.StatusCode)
	}

	var lsn Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lsn); err != nil {
		return Lesson{}, errors.Wrap(err, "lesson: parsing lesson data")
	}
	return svc.adapt(lsn, profile), nil
}

// Profile returns the stored student profile, defaulting when absent.
func (svc *Service) Profile() StudentProfile {
	profile := DefaultProfile()
	svc.store.Load(StudentProfileKey, &profile)
	return profile
}

// UpdateProfile merges the patch over the stored profile and persists it.
func (svc *Service) UpdateProfile(patch ProfilePatch) (StudentProfile, error) {
	if err := core.Validate.Struct(patch); err != nil {
		return StudentProfile{}, err
	}

	profile := svc.Profile()
	if patch.LearningStyle != nil {
		profile.LearningStyle = *patch.LearningStyle
	}
	if patch.Pace != nil {
		profile.Pace = *patch.Pace
	}
	if patch.ChallengeLevel != nil {
		profile.ChallengeLevel = *patch.ChallengeLevel
	}
	if patch.Interests != nil {
		profile.Interests = patch.Interests
	}
	if patch.Strengths != nil {
		profile.Strengths = patch.Strengths
	}
	if patch.AreasForImprovement != nil {
		profile.AreasForImprovement = patch.AreasForImprovement
	}

	svc.store.Save(StudentProfileKey, profile)
	return profile, nil
}

// adapt applies the personalization transform: the difficulty label is
// raised to the stricter of the caller's and the server's levels, tip blocks
// are appended to the content, and stricter profiles earn extra quiz
// questions and objectives.
func (svc *Service) adapt(lsn Lesson, profile StudentProfile) Lesson {
	level := strings.ToLower(lsn.DifficultyLevel)
	switch profile.ChallengeLevel {
	case LevelIntermediate:
		if level == LevelBeginner {
			lsn.DifficultyLevel = "Intermediate"
		}
	case LevelAdvanced:
		if level == LevelBeginner || level == LevelIntermediate {
			lsn.DifficultyLevel = "Advanced"
		}
	}

	content := append([]ContentItem(nil), lsn.Content...)
	content = append(content, ContentItem{Type: "learning_style_tip", Text: styleTips[profile.LearningStyle]})
	if len(profile.Interests) > 0 {
		interest := profile.Interests[svc.rnd.Intn(len(profile.Interests))]
		content = append(content, ContentItem{
			Type: "interest_connection",
			Text: fmt.Sprintf(
				"Since you're interested in %s, try thinking about how today's lesson on %s relates to that topic!",
				interest, lsn.Title,
			),
		})
	}
	content = append(content, ContentItem{Type: "challenge_tip", Text: challengeTips[profile.ChallengeLevel]})
	lsn.Content = content

	quiz := append([]QuizItem(nil), lsn.PracticeQuiz...)
	objectives := append([]string(nil), lsn.LearningObjectives...)

	switch profile.ChallengeLevel {
	case LevelAdvanced:
		if len(quiz) > 0 {
			quiz = append(quiz,
				QuizItem{
					Question:      fmt.Sprintf("What might be a real-world application of what you learned about %s?", lsn.Topic),
					Options:       []string{"Explain to a friend", "Create a project", "Write a story about it", "All of the above"},
					CorrectAnswer: "All of the above",
				},
				QuizItem{
					Question:      fmt.Sprintf("How could you connect %s to other subjects you're learning?", lsn.Topic),
					Options:       []string{"Draw connections to math concepts", "Relate it to scientific principles", "Find cultural or historical connections", "Consider all possible connections"},
					CorrectAnswer: "Consider all possible connections",
				},
			)
		}
		if len(objectives) > 0 {
			objectives = append(objectives,
				fmt.Sprintf("Apply knowledge of %s to solve complex problems", lsn.Topic),
				fmt.Sprintf("Connect %s concepts to other subject areas", lsn.Topic),
			)
		}
	case LevelIntermediate:
		if len(quiz) > 0 {
			quiz = append(quiz, QuizItem{
				Question:      fmt.Sprintf("Why is it important to learn about %s?", lsn.Topic),
				Options:       []string{"To pass tests", "To understand our world better", "To teach others", "All of these reasons"},
				CorrectAnswer: "All of these reasons",
			})
		}
		if len(objectives) > 0 {
			objectives = append(objectives, fmt.Sprintf("Apply basic %s concepts to new situations", lsn.Topic))
		}
	}
	lsn.PracticeQuiz = quiz
	lsn.LearningObjectives = objectives

	return lsn
}

var styleTips = map[string]string{
	StyleVisual:      "Visual Learning Tip: Try creating a diagram or chart to visualize the key concepts in this lesson. Use different colors to highlight important information.",
	StyleAuditory:    "Auditory Learning Tip: Try reading the lesson content aloud or explaining it to someone else. Creating a song or rhyme can also help you remember key information.",
	StyleKinesthetic: "Hands-on Learning Tip: Try acting out the concepts or creating a physical model. Movement and touch can help reinforce your understanding.",
}

var challengeTips = map[string]string{
	LevelBeginner:     "Try the basic practice questions to reinforce your understanding of the concepts.",
	LevelIntermediate: "After completing the practice questions, try to create your own examples to deepen your understanding.",
	LevelAdvanced:     "Challenge yourself by connecting these concepts to other subjects and finding real-world applications.",
}

func (svc *Service) getJSON(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "lesson: building request")
	}
	resp, err := svc.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "lesson: calling %s", path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("lesson: API error: %d", resp.StatusCode)
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(dst), "lesson: decoding %s", path)
}
