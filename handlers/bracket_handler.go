package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/services"
)

type BracketHandler struct {
	bracketService services.BracketService
}

func NewBracketHandler(bs services.BracketService) *BracketHandler {
	return &BracketHandler{bracketService: bs}
}

type buildBracketInput struct {
	TeamCount int `json:"team_count"`
}

type assignTeamsInput struct {
	Team1 *int `json:"team1"`
	Team2 *int `json:"team2"`
}

// BuildBracket обрабатывает POST /tournaments/{tournamentID}/bracket.
// Повторный вызов создаёт только недостающие слоты.
//
//	@Summary	Create the missing knockout slots
//	@Tags		bracket
//	@Accept		json
//	@Produce	json
//	@Param		tournamentID	path		int					true	"Tournament ID"
//	@Param		input			body		buildBracketInput	true	"Team count (2, 4, 8 or 16)"
//	@Success	200				{object}	map[string][]models.Match
//	@Failure	400				{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments/{tournamentID}/bracket [post]
func (h *BracketHandler) BuildBracket(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input buildBracketInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.bracketService.BuildKnockoutBracket(r.Context(), tournamentID, input.TeamCount)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	Knockout bracket grouped by round
// @Tags		bracket
// @Produce	json
// @Param		tournamentID	path		int	true	"Tournament ID"
// @Success	200				{object}	services.KnockoutBracket
// @Router		/tournaments/{tournamentID}/bracket [get]
func (h *BracketHandler) GetBracket(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	bracket, err := h.bracketService.GetBracket(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, bracket, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignTeams обрабатывает PUT /matches/{matchID}/teams
//
//	@Summary	Set the participants of a knockout slot
//	@Tags		bracket
//	@Accept		json
//	@Produce	json
//	@Param		matchID	path		int					true	"Match ID"
//	@Param		input	body		assignTeamsInput	true	"Teams"
//	@Success	200		{object}	map[string]models.Match
//	@Security	BearerAuth
//	@Router		/matches/{matchID}/teams [put]
func (h *BracketHandler) AssignTeams(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input assignTeamsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.bracketService.AssignTeams(r.Context(), matchID, input.Team1, input.Team2)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AdvanceWinner обрабатывает POST /matches/{matchID}/advance
//
//	@Summary	Move the winner (and semifinal loser) to the next slots
//	@Tags		bracket
//	@Produce	json
//	@Param		matchID	path		int	true	"Match ID"
//	@Success	200		{object}	services.AdvanceResult
//	@Failure	422		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/matches/{matchID}/advance [post]
func (h *BracketHandler) AdvanceWinner(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.AdvanceWinner(r.Context(), matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func requiredRound(r *http.Request) (int, error) {
	round, err := queryInt(r, "round")
	if err != nil {
		return 0, err
	}
	if round == nil {
		return 0, errors.New("round query parameter is required")
	}
	return *round, nil
}

// GetFinal обрабатывает GET /tournaments/{tournamentID}/final?round=
//
//	@Summary	Winner and runner-up of the final stored at round
//	@Tags		bracket
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Param		round			query		int	true	"Final round"
//	@Success	200				{object}	models.FinalResult
//	@Failure	422				{object}	map[string]string
//	@Router		/tournaments/{tournamentID}/final [get]
func (h *BracketHandler) GetFinal(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := requiredRound(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	result, err := h.bracketService.ResolveFinal(r.Context(), tournamentID, round)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetThirdPlace обрабатывает GET /tournaments/{tournamentID}/third-place?round=
// Без round используется слот матча за третье место.
//
//	@Summary	Winner of the match stored at round
//	@Tags		bracket
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Param		round			query		int	false	"Round, defaults to the third-place slot"
//	@Success	200				{object}	map[string]int
//	@Router		/tournaments/{tournamentID}/third-place [get]
func (h *BracketHandler) GetThirdPlace(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	round, err := queryInt(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	thirdRound := brackets.ThirdPlaceRound
	if round != nil {
		thirdRound = *round
	}

	winner, err := h.bracketService.ResolveThirdPlace(r.Context(), tournamentID, thirdRound)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"thirdPlace": winner}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	Rounds clients query for the final and the third place
// @Tags		bracket
// @Produce	json
// @Param		tournamentID	path		int	true	"Tournament ID"
// @Success	200				{object}	services.PlacementRoundsView
// @Router		/tournaments/{tournamentID}/placement-rounds [get]
func (h *BracketHandler) GetPlacementRounds(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.bracketService.GetPlacementRounds(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	Champion, runner-up and third place
// @Tags		bracket
// @Produce	json
// @Param		tournamentID	path		int	true	"Tournament ID"
// @Success	200				{object}	models.Placements
// @Router		/tournaments/{tournamentID}/placements [get]
func (h *BracketHandler) GetPlacements(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	placements, err := h.bracketService.ResolvePlacements(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, placements, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ArchivePlacements сохраняет итоговые места в объектное хранилище.
//
//	@Summary	Archive the final placements to object storage
//	@Tags		bracket
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Success	201				{object}	services.ArchivedPlacements
//	@Failure	503				{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments/{tournamentID}/placements/archive [post]
func (h *BracketHandler) ArchivePlacements(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	archived, err := h.bracketService.ArchivePlacements(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, archived, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
