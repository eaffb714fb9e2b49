package repository

import (
	"time"

	"github.com/feedsync/feedsync/pkg/domain"
)

// dbArticle maps the articles table
type dbArticle struct {
	ID              int64      `db:"id"`
	RemoteID        string     `db:"remote_id"`
	FeedID          int64      `db:"feed_id"`
	Title           string     `db:"title"`
	Link            string     `db:"link"`
	IsRead          bool       `db:"is_read"`
	IsStarred       bool       `db:"is_starred"`
	LastLocalUpdate *time.Time `db:"last_local_update"`
	LastSyncUpdate  *time.Time `db:"last_sync_update"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// dbFeed maps the feeds table
type dbFeed struct {
	ID        int64     `db:"id"`
	RemoteID  string    `db:"remote_id"`
	Title     string    `db:"title"`
	URL       string    `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

func (a *dbArticle) toDomain() domain.Article {
	return domain.Article{
		ID:              a.ID,
		RemoteID:        a.RemoteID,
		FeedID:          a.FeedID,
		Title:           a.Title,
		Link:            a.Link,
		Read:            a.IsRead,
		Starred:         a.IsStarred,
		LastLocalUpdate: a.LastLocalUpdate,
		LastSyncUpdate:  a.LastSyncUpdate,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (f *dbFeed) toDomain() domain.Feed {
	return domain.Feed{
		ID:        f.ID,
		RemoteID:  f.RemoteID,
		Title:     f.Title,
		URL:       f.URL,
		CreatedAt: f.CreatedAt,
	}
}
