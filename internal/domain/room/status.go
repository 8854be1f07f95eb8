package room

import (
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

// ===============================
// Room Status
// ===============================

type Status string

const (
	StatusClean       Status = "CLEAN"
	StatusDirty       Status = "DIRTY"
	StatusMaintenance Status = "MAINTENANCE"
	StatusBlocked     Status = "BLOCKED"
)

const statusPrefix = "STATUS_"

var statuses = [...]Status{StatusClean, StatusDirty, StatusMaintenance, StatusBlocked}

func (s Status) Prefixed() string {
	return statusPrefix + string(s)
}

// ParseStatus matches either the short or the prefixed name, ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, st.Prefixed()) {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// InitialStatus is used when a room is created without an explicit status.
func InitialStatus() Status {
	return StatusClean
}
