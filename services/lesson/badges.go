package lesson

import "time"

// BadgesKey is the storage key for earned badges.
const BadgesKey = "studentBadges"

// Badge is an achievement the student can earn in the tutoring flow.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Criteria    string `json:"criteria"`
	Icon        string `json:"icon"`
	EarnedDate  string `json:"earnedDate,omitempty"` // RFC 3339; empty until earned
}

func defaultBadges() []Badge {
	return []Badge{
		{
			ID:          "curious-learner",
			Name:        "Curious Learner",
			Description: "Completed your first AI tutoring session",
			Criteria:    "Complete first session",
			Icon:        "🔍",
		},
		{
			ID:          "math-explorer",
			Name:        "Math Explorer",
			Description: "Mastered basic math concepts",
			Criteria:    "Complete 3 math lessons",
			Icon:        "🧮",
		},
		{
			ID:          "science-whiz",
			Name:        "Science Whiz",
			Description: "Showed excellent understanding of scientific concepts",
			Criteria:    "Score 90%+ on a science quiz",
			Icon:        "🔬",
		},
	}
}

// Badges returns the badge collection, defaulting when nothing is stored.
func (svc *Service) Badges() []Badge {
	badges := defaultBadges()
	svc.store.Load(BadgesKey, &badges)
	return badges
}

// Award marks the badge earned at the current time; already-earned badges
// and unknown ids are a no-op.
func (svc *Service) Award(badgeID string) []Badge {
	badges := svc.Badges()
	for i, b := range badges {
		if b.ID == badgeID && b.EarnedDate == "" {
			badges[i].EarnedDate = time.Now().UTC().Format(time.RFC3339)
		}
	}
	svc.store.Save(BadgesKey, badges)
	return badges
}
