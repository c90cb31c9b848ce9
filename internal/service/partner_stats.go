package service

import (
	"math"

	"github.com/limbo/babiecloud/pkg/entity"
)

const unknownPartnerName = "Unknown"

// BuildPartnerSummary projects one account and its complete task and mood
// collections into a summary.
func BuildPartnerSummary(account *entity.Account, tasks []*entity.Task, moods []*entity.Mood) entity.PartnerSummary {
	summary := entity.PartnerSummary{
		UID:        account.ID,
		Name:       account.Name,
		Email:      account.Email,
		LastActive: account.LastActiveAt,
		MoodCount:  len(moods),
	}
	if summary.Name == "" {
		summary.Name = unknownPartnerName
	}
	summary.TaskCount.Total = len(tasks)
	for _, t := range tasks {
		if t.IsCompleted {
			summary.TaskCount.Completed++
		}
	}
	summary.CompletionPercent = CompletionPercent(summary.TaskCount)
	if last := LastMood(moods); last != nil {
		summary.LastMood = &entity.LastMood{
			Mood:      last.Mood,
			Timestamp: last.Timestamp,
		}
	}
	return summary
}

// LastMood returns the entry with the latest timestamp. Equal timestamps
// resolve to the smaller id. Entries without a timestamp are ignored.
func LastMood(moods []*entity.Mood) *entity.Mood {
	var last *entity.Mood
	for _, m := range moods {
		if m == nil || m.Timestamp.IsZero() {
			continue
		}
		if last == nil || m.Timestamp.After(last.Timestamp) ||
			(m.Timestamp.Equal(last.Timestamp) && m.ID.String() < last.ID.String()) {
			last = m
		}
	}
	return last
}

func CompletionPercent(count entity.TaskCount) int {
	if count.Total == 0 {
		return 0
	}
	return int(math.Round(float64(count.Completed) / float64(count.Total) * 100))
}
