package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAction_Category(t *testing.T) {
	tests := []struct {
		action   Action
		expected ActionCategory
	}{
		{ActionMarkRead, CategoryRead},
		{ActionMarkUnread, CategoryRead},
		{ActionStar, CategoryStar},
		{ActionUnstar, CategoryStar},
		{Action("bogus"), ActionCategory("")},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.Category())
		})
	}
}

func TestAction_Valid(t *testing.T) {
	for _, a := range []Action{ActionMarkRead, ActionMarkUnread, ActionStar, ActionUnstar} {
		assert.True(t, a.Valid(), "action %s should be valid", a)
	}
	assert.False(t, Action("").Valid())
	assert.False(t, Action("delete").Valid())
}

func TestAction_Apply(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		initial  ArticleState
		expected ArticleState
	}{
		{"mark read sets flag", ActionMarkRead, ArticleState{}, ArticleState{Read: true}},
		{"mark read keeps star", ActionMarkRead, ArticleState{Starred: true}, ArticleState{Read: true, Starred: true}},
		{"mark unread clears flag", ActionMarkUnread, ArticleState{Read: true}, ArticleState{}},
		{"star sets flag", ActionStar, ArticleState{Read: true}, ArticleState{Read: true, Starred: true}},
		{"unstar clears flag", ActionUnstar, ArticleState{Starred: true}, ArticleState{}},
		{"apply is idempotent", ActionMarkRead, ArticleState{Read: true}, ArticleState{Read: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.Apply(tt.initial))
		})
	}
}
