package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"github.com/Dosada05/tournament-progression/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

// ListTournamentMatches обрабатывает GET /tournaments/{tournamentID}/matches?type=&round=
//
//	@Summary	List matches of a tournament
//	@Tags		matches
//	@Produce	json
//	@Param		tournamentID	path		int		true	"Tournament ID"
//	@Param		type			query		string	false	"Group Stage or Knockout"
//	@Param		round			query		int		false	"Round"
//	@Success	200				{object}	map[string][]models.Match
//	@Router		/tournaments/{tournamentID}/matches [get]
func (h *MatchHandler) ListTournamentMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var filter repositories.MatchFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := models.MatchType(raw)
		if t != models.MatchTypeGroupStage && t != models.MatchTypeKnockout {
			badRequestResponse(w, r, fmt.Errorf("invalid type query parameter: %q", raw))
			return
		}
		filter.Type = &t
	}
	if filter.Round, err = queryInt(r, "round"); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.matchService.ListMatches(r.Context(), tournamentID, filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	Get a match
// @Tags		matches
// @Produce	json
// @Param		matchID	path		int	true	"Match ID"
// @Success	200		{object}	map[string]models.Match
// @Router		/matches/{matchID} [get]
func (h *MatchHandler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordResult обрабатывает PUT /matches/{matchID}/result
//
//	@Summary	Record or correct a match result
//	@Tags		matches
//	@Accept		json
//	@Produce	json
//	@Param		matchID	path		int						true	"Match ID"
//	@Param		input	body		models.ResultPayload	true	"Result"
//	@Success	200		{object}	map[string]models.Match
//	@Failure	400		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/matches/{matchID}/result [put]
func (h *MatchHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var payload models.ResultPayload
	if err := readJSON(w, r, &payload); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.RecordResult(r.Context(), matchID, payload)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
