package brackets

import (
	"github.com/Dosada05/tournament-progression/models"
)

// ResolveFinal reads the winner and runner-up from the matches stored at the
// final round. Only the first match is consulted.
func ResolveFinal(matches []*models.Match) (models.FinalResult, error) {
	if len(matches) == 0 {
		return models.FinalResult{}, ErrSlotNotFound
	}
	final := matches[0]
	if final.WinnerID == nil {
		return models.FinalResult{}, ErrWinnerUndetermined
	}
	result := models.FinalResult{Winner: *final.WinnerID}
	if final.Team1ID != nil && *final.WinnerID == *final.Team1ID {
		result.RunnerUp = copyInt(final.Team2ID)
	} else {
		result.RunnerUp = copyInt(final.Team1ID)
	}
	return result, nil
}

// ResolveThirdPlace returns the winner of the first match at the given round.
func ResolveThirdPlace(matches []*models.Match) (int, error) {
	if len(matches) == 0 {
		return 0, ErrSlotNotFound
	}
	if matches[0].WinnerID == nil {
		return 0, ErrWinnerUndetermined
	}
	return *matches[0].WinnerID, nil
}
