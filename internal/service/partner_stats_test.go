package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/babiecloud/internal/service"
	"github.com/limbo/babiecloud/pkg/entity"
)

func TestBuildPartnerSummary(t *testing.T) {
	lastActive := time.Date(2025, 5, 2, 8, 0, 0, 0, time.UTC)
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         "Maya",
		Email:        "maya@babie.cloud",
		LastActiveAt: &lastActive,
	}
	tasks := []*entity.Task{{IsCompleted: true}, {IsCompleted: false}, {IsCompleted: true}}
	ts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	moods := []*entity.Mood{
		{ID: uuid.New(), Mood: entity.MoodOK, Timestamp: ts.Add(10 * time.Minute)},
		{ID: uuid.New(), Mood: entity.MoodStressed, Timestamp: ts.Add(30 * time.Minute)},
		{ID: uuid.New(), Mood: entity.MoodHappy, Timestamp: ts.Add(20 * time.Minute)},
	}

	s := service.BuildPartnerSummary(account, tasks, moods)
	assert.Equal(t, account.ID, s.UID)
	assert.Equal(t, "Maya", s.Name)
	assert.Equal(t, "maya@babie.cloud", s.Email)
	assert.Equal(t, &lastActive, s.LastActive)
	assert.Equal(t, entity.TaskCount{Total: 3, Completed: 2}, s.TaskCount)
	assert.Equal(t, 67, s.CompletionPercent)
	assert.Equal(t, 3, s.MoodCount)
	require.NotNil(t, s.LastMood)
	assert.Equal(t, entity.MoodStressed, s.LastMood.Mood)
	assert.Equal(t, ts.Add(30*time.Minute), s.LastMood.Timestamp)
}

func TestBuildPartnerSummaryEmpty(t *testing.T) {
	s := service.BuildPartnerSummary(&entity.Account{ID: uuid.New()}, nil, nil)
	assert.Equal(t, "Unknown", s.Name)
	assert.Equal(t, entity.TaskCount{}, s.TaskCount)
	assert.Equal(t, 0, s.CompletionPercent)
	assert.Equal(t, 0, s.MoodCount)
	assert.Nil(t, s.LastMood)
	assert.Nil(t, s.LastActive)
}

func TestLastMood(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	small := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	big := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	t.Run("latest wins", func(t *testing.T) {
		m := service.LastMood([]*entity.Mood{
			{ID: uuid.New(), Timestamp: ts},
			{ID: big, Timestamp: ts.Add(time.Hour)},
		})
		require.NotNil(t, m)
		assert.Equal(t, big, m.ID)
	})
	t.Run("tie resolves to smaller id", func(t *testing.T) {
		for _, order := range [][]uuid.UUID{{small, big}, {big, small}} {
			m := service.LastMood([]*entity.Mood{
				{ID: order[0], Timestamp: ts},
				{ID: order[1], Timestamp: ts},
			})
			require.NotNil(t, m)
			assert.Equal(t, small, m.ID)
		}
	})
	t.Run("zero timestamps ignored", func(t *testing.T) {
		m := service.LastMood([]*entity.Mood{
			{ID: small},
			{ID: big, Timestamp: ts},
			nil,
		})
		require.NotNil(t, m)
		assert.Equal(t, big, m.ID)
	})
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, service.LastMood(nil))
		assert.Nil(t, service.LastMood([]*entity.Mood{{ID: small}}))
	})
}

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name  string
		count entity.TaskCount
		want  int
	}{
		{"no tasks", entity.TaskCount{}, 0},
		{"none completed", entity.TaskCount{Total: 4}, 0},
		{"all completed", entity.TaskCount{Total: 2, Completed: 2}, 100},
		{"one third", entity.TaskCount{Total: 3, Completed: 1}, 33},
		{"two thirds", entity.TaskCount{Total: 3, Completed: 2}, 67},
		{"half rounds up", entity.TaskCount{Total: 8, Completed: 1}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CompletionPercent(tt.count))
		})
	}
}
