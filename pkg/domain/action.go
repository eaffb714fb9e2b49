package domain

// Action is a state-changing user operation on an article. The set is
// closed; anything else is a programmer error and rejected at enqueue time.
type Action string

// known actions
const (
	ActionMarkRead   Action = "mark_read"
	ActionMarkUnread Action = "mark_unread"
	ActionStar       Action = "star"
	ActionUnstar     Action = "unstar"
)

// ActionCategory groups actions that toggle the same flag. Queued mutations
// coalesce per (article, category): mark_read/mark_unread share a category,
// star/unstar share another, so only the user's latest intent survives.
type ActionCategory string

// action categories
const (
	CategoryRead ActionCategory = "read"
	CategoryStar ActionCategory = "star"
)

// Category returns the coalescing category for the action.
func (a Action) Category() ActionCategory {
	switch a {
	case ActionMarkRead, ActionMarkUnread:
		return CategoryRead
	case ActionStar, ActionUnstar:
		return CategoryStar
	}
	return ""
}

// Flag returns the value of the category's flag in the state.
func (c ActionCategory) Flag(s ArticleState) bool {
	if c == CategoryStar {
		return s.Starred
	}
	return s.Read
}

// SetFlag returns the state with the category's flag set to v.
func (c ActionCategory) SetFlag(s ArticleState, v bool) ArticleState {
	if c == CategoryStar {
		s.Starred = v
	} else {
		s.Read = v
	}
	return s
}

// Valid reports whether the action is one of the known kinds.
func (a Action) Valid() bool {
	switch a {
	case ActionMarkRead, ActionMarkUnread, ActionStar, ActionUnstar:
		return true
	}
	return false
}

// Apply mutates the state according to the action.
func (a Action) Apply(s ArticleState) ArticleState {
	switch a {
	case ActionMarkRead:
		s.Read = true
	case ActionMarkUnread:
		s.Read = false
	case ActionStar:
		s.Starred = true
	case ActionUnstar:
		s.Starred = false
	}
	return s
}
