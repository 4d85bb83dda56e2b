package storage

import (
	"fmt"
	"mime"
	"time"
)

// PlacementsKey is the object key of a tournament's archived final placements.
func PlacementsKey(tournamentID int) string {
	return fmt.Sprintf("tournaments/%d/placements.json", tournamentID)
}

// TeamLogoKey builds a unique key for a team logo of the given content type.
func TeamLogoKey(teamID int, contentType string, now time.Time) string {
	ext := ".img"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("logos/teams/%d/%d%s", teamID, now.UnixNano(), ext)
}
