package models

// Mood is one of the five check-in moods.
type Mood string

const (
	MoodGreat   Mood = "great"
	MoodGood    Mood = "good"
	MoodOkay    Mood = "okay"
	MoodDown    Mood = "down"
	MoodAnxious Mood = "anxious"
)

// IsValid reports whether m is one of the known moods. Unknown moods are
// still stored as-is; they just never match mood-specific branches.
func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodDown, MoodAnxious:
		return true
	default:
		return false
	}
}

// IsPositive reports whether m counts toward the positivity achievement.
func (m Mood) IsPositive() bool {
	return m == MoodGreat || m == MoodGood
}

// Emoji returns the display emoji for the mood.
func (m Mood) Emoji() string {
	switch m {
	case MoodGreat:
		return "😊"
	case MoodGood:
		return "😌"
	case MoodOkay:
		return "😐"
	case MoodDown:
		return "😔"
	case MoodAnxious:
		return "😰"
	default:
		return "❓"
	}
}

// Label returns the human-readable name for the mood.
func (m Mood) Label() string {
	switch m {
	case MoodGreat:
		return "Great"
	case MoodGood:
		return "Good"
	case MoodOkay:
		return "Okay"
	case MoodDown:
		return "Down"
	case MoodAnxious:
		return "Anxious"
	default:
		return string(m)
	}
}

// AllMoods lists the moods in check-in display order.
func AllMoods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodDown, MoodAnxious}
}

// MoodEntry is a single daily check-in. Entries are immutable once created
// and the log stores them newest-first.
type MoodEntry struct {
	ID        string `json:"id"`
	Mood      Mood   `json:"mood"`
	Note      string `json:"note"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
	Date      string `json:"date"`      // display string, set at creation
}
