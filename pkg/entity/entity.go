package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePartner Role = "partner"
	RoleSupport Role = "support"
)

type Account struct {
	ID                   uuid.UUID  `json:"uid"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	Role                 Role       `json:"role"`
	LinkedTo             *uuid.UUID `json:"linked_to,omitempty"`
	NotificationsEnabled bool       `json:"notifications_enabled"`
	LastActiveAt         *time.Time `json:"last_active,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type Task struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"uid"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"-"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// DueDay is the due date rendered the way clients send it.
func (t *Task) DueDay() string {
	return t.DueDate.Format(time.DateOnly)
}

type MoodValue string

const (
	MoodHappy    MoodValue = "happy"
	MoodOK       MoodValue = "ok"
	MoodSad      MoodValue = "sad"
	MoodTired    MoodValue = "tired"
	MoodStressed MoodValue = "stressed"
)

type Mood struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"uid"`
	Mood      MoodValue `json:"mood"`
	Energy    int       `json:"energy"`
	Hydration int       `json:"hydration"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type WidgetID string

const (
	WidgetPhoto     WidgetID = "photo"
	WidgetTasks     WidgetID = "tasks"
	WidgetMoods     WidgetID = "moods"
	WidgetWeather   WidgetID = "weather"
	WidgetHydration WidgetID = "hydration"
	WidgetQuote     WidgetID = "quote"
)

type Photo struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"uid"`
	Title      string    `json:"title"`
	StorageKey string    `json:"-"`
	URL        string    `json:"url,omitempty"`
	CreatedAt  time.Time `json:"timestamp"`
}

type TaskCount struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type LastMood struct {
	Mood      MoodValue `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

// PartnerSummary is a projection of one linked account, computed on every
// aggregation round and never stored.
type PartnerSummary struct {
	UID               uuid.UUID  `json:"uid"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	LastActive        *time.Time `json:"last_active,omitempty"`
	LastMood          *LastMood  `json:"last_mood,omitempty"`
	TaskCount         TaskCount  `json:"task_count"`
	CompletionPercent int        `json:"completion_percent"`
	MoodCount         int        `json:"mood_count"`
}

type PartnerStats struct {
	Loading  bool             `json:"loading"`
	Partners []PartnerSummary `json:"partners"`
	Error    string           `json:"error,omitempty"`
}
