package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticle_HasLocalChanges(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := base.Add(-time.Hour)
	later := base.Add(time.Hour)

	tests := []struct {
		name     string
		local    *time.Time
		sync     *time.Time
		expected bool
	}{
		{"no local update", nil, &base, false},
		{"no timestamps at all", nil, nil, false},
		{"local update, never synced", &base, nil, true},
		{"local update after last sync", &later, &base, true},
		{"local update before last sync", &earlier, &base, false},
		{"local update equals last sync", &base, &base, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Article{LastLocalUpdate: tt.local, LastSyncUpdate: tt.sync}
			assert.Equal(t, tt.expected, a.HasLocalChanges())
		})
	}
}

func TestArticle_State(t *testing.T) {
	a := Article{Read: true, Starred: false}
	assert.Equal(t, ArticleState{Read: true}, a.State())
}
