package brackets

import (
	"errors"
	"testing"

	"github.com/Dosada05/tournament-progression/models"
)

func TestResolveFinal(t *testing.T) {
	if _, err := ResolveFinal(nil); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}

	pending := &models.Match{Team1ID: intPtr(1), Team2ID: intPtr(2), Status: models.MatchStatusScheduled}
	if _, err := ResolveFinal([]*models.Match{pending}); !errors.Is(err, ErrWinnerUndetermined) {
		t.Fatalf("expected ErrWinnerUndetermined, got %v", err)
	}

	final := finished(1, 2, 0, 1)
	final.Type = models.MatchTypeKnockout
	final.WinnerID = DetermineWinner(final)
	res, err := ResolveFinal([]*models.Match{final, pending})
	if err != nil {
		t.Fatal(err)
	}
	if res.Winner != 2 || res.RunnerUp == nil || *res.RunnerUp != 1 {
		t.Fatalf("got %+v, want winner 2 runner-up 1", res)
	}
}

func TestResolveThirdPlace(t *testing.T) {
	if _, err := ResolveThirdPlace(nil); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("expected ErrSlotNotFound, got %v", err)
	}
	m := finished(5, 6, 2, 2)
	m.PenaltyTeam1, m.PenaltyTeam2 = intPtr(3), intPtr(1)
	if _, err := ResolveThirdPlace([]*models.Match{m}); !errors.Is(err, ErrWinnerUndetermined) {
		t.Fatalf("winner not stored yet, expected ErrWinnerUndetermined, got %v", err)
	}
	m.WinnerID = DetermineWinner(m)
	got, err := ResolveThirdPlace([]*models.Match{m})
	if err != nil || got != 5 {
		t.Fatalf("got %d (%v), want 5", got, err)
	}
}
