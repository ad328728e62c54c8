package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Include names a relation to eager load alongside the queried rows.
type Include string

const (
	IncludeCreator  Include = "CreatedBy"
	IncludeUpdater  Include = "UpdatedBy"
	IncludeComments Include = "Comments"
	IncludeAuthor   Include = "User"
	IncludePost     Include = "Post"
)

var (
	// PostDetail loads everything a post response shows.
	PostDetail = []Include{IncludeCreator, IncludeUpdater, IncludeComments}
	// CommentDetail loads the author and the parent post for ownership checks.
	CommentDetail = []Include{IncludeAuthor, IncludePost}
)

// Page bounds a list query. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(tx *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		tx = tx.Limit(p.Limit)
	}
	if p.Offset > 0 {
		tx = tx.Offset(p.Offset)
	}
	return tx
}

func applyIncludes(tx *gorm.DB, includes []Include) *gorm.DB {
	for _, inc := range includes {
		switch inc {
		case IncludeComments:
			// comments always come with their authors, oldest first
			tx = tx.Preload(string(IncludeComments), func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.created_at ASC, comments.id ASC")
			}).Preload("Comments.User")
		default:
			tx = tx.Preload(string(inc))
		}
	}
	return tx
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
