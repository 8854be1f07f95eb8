package room

import (
	"fmt"
	"time"

	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus sets any status; there is no transition table. Cleaning stamps lastCleanedAt.
func ApplyStatus(r *models.Room, s Status, now time.Time) {
	r.Status = string(s)
	if s == StatusClean {
		r.LastCleanedAt = &now
	}
}

func Block(r *models.Room) {
	r.Status = string(StatusBlocked)
}

// CanAssign rejects administrators as cleaning staff.
func CanAssign(maid *models.User) error {
	if domainUser.IsAdmin(maid.Role) {
		return httperr.ErrBusiness("admin_cannot_be_assigned")
	}
	return nil
}

// Assign sets the maid and reports whether a previously assigned maid was replaced.
func Assign(r *models.Room, maid *models.User) (replaced bool) {
	var newID *uint
	if maid != nil {
		newID = &maid.ID
	}

	replaced = r.MaidID != nil && (newID == nil || *r.MaidID != *newID)

	r.MaidID = newID
	r.Maid = maid
	return replaced
}

func AssignmentNotice(number string) (title, body string) {
	return "New room assigned", fmt.Sprintf("You have been assigned room %s", number)
}
