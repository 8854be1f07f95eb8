package report

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

func AdminAlert(roomNumber, title string) (string, string) {
	return "Oh no, something happened in a room!",
		fmt.Sprintf("Room %s has a new report: %s", roomNumber, title)
}

// ValidateContent trims and checks the free-text fields of a report.
func ValidateContent(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return "", "", httperr.ErrBusiness("title_required")
	}
	if len(title) > maxTitleLength {
		return "", "", httperr.ErrBusiness("title_too_long")
	}
	if len(description) > maxDescriptionLength {
		return "", "", httperr.ErrBusiness("description_too_long")
	}
	return title, description, nil
}
