package database

import (
	"strings"

	"github.com/yukikurage/task-tracker-api/internal/models"
	"gorm.io/gorm"
)

// likeEscaper makes LIKE wildcards in user input match literally (ESCAPE '!')
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// OwnedBy restricts a task query to rows owned by ownerID
func OwnedBy(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tasks.owner_id = ?", ownerID)
	}
}

// WithStatus filters tasks by status when one is given
func WithStatus(status *models.TaskStatus) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status == nil {
			return db
		}
		return db.Where("tasks.status = ?", *status)
	}
}

// MatchingSearch keeps tasks whose title or description contains search,
// ignoring case. An empty search leaves the query unchanged.
func MatchingSearch(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(search) + "%"
		return db.Where(
			"(LOWER(tasks.title) LIKE LOWER(?) ESCAPE '!' OR LOWER(tasks.description) LIKE LOWER(?) ESCAPE '!')",
			pattern, pattern,
		)
	}
}
