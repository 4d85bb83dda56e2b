package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-progression/middleware"
	"github.com/Dosada05/tournament-progression/services"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

type registerTeamInput struct {
	TeamID int `json:"team_id"`
}

// CreateHandler обрабатывает POST /tournaments
//
//	@Summary	Create a tournament
//	@Tags		tournaments
//	@Accept		json
//	@Produce	json
//	@Param		input	body		services.CreateTournamentInput	true	"Tournament"
//	@Success	201		{object}	map[string]models.Tournament
//	@Failure	400		{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments [post]
func (h *TournamentHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var creatorID *int
	if id, err := middleware.GetUserIDFromContext(r.Context()); err == nil {
		creatorID = &id
	}

	tournament, err := h.tournamentService.CreateTournament(r.Context(), input, creatorID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetByIDHandler обрабатывает GET /tournaments/{tournamentID}
//
//	@Summary	Get a tournament with its roster
//	@Tags		tournaments
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Success	200				{object}	map[string]models.Tournament
//	@Failure	404				{object}	map[string]string
//	@Router		/tournaments/{tournamentID} [get]
func (h *TournamentHandler) GetByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListHandler обрабатывает GET /tournaments?limit=&offset=
//
//	@Summary	List tournaments
//	@Tags		tournaments
//	@Produce	json
//	@Param		limit	query		int	false	"Page size"
//	@Param		offset	query		int	false	"Offset"
//	@Success	200		{object}	map[string][]models.Tournament
//	@Router		/tournaments [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	l, o := defaultListLimit, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	if l <= 0 || l > maxListLimit || o < 0 {
		badRequestResponse(w, r, errors.New("limit must be between 1 and 200 and offset must not be negative"))
		return
	}

	tournaments, err := h.tournamentService.ListTournaments(r.Context(), l, o)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": tournaments}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RegisterTeamHandler обрабатывает POST /tournaments/{tournamentID}/teams
//
//	@Summary	Register a team in a tournament
//	@Tags		tournaments
//	@Accept		json
//	@Produce	json
//	@Param		tournamentID	path		int					true	"Tournament ID"
//	@Param		input			body		registerTeamInput	true	"Team"
//	@Success	200				{object}	map[string]models.Tournament
//	@Failure	409				{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments/{tournamentID}/teams [post]
func (h *TournamentHandler) RegisterTeamHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input registerTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID <= 0 {
		badRequestResponse(w, r, errors.New("team_id must be a positive integer"))
		return
	}

	tournament, err := h.tournamentService.RegisterTeam(r.Context(), id, input.TeamID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// StatsHandler обрабатывает GET /tournaments/{tournamentID}/stats
//
//	@Summary	Goals, cards and the highest-scoring match
//	@Tags		tournaments
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Success	200				{object}	map[string]models.TournamentStats
//	@Router		/tournaments/{tournamentID}/stats [get]
func (h *TournamentHandler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	stats, err := h.tournamentService.GetStats(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// OverviewHandler обрабатывает GET /tournaments/{tournamentID}/overview
//
//	@Summary	Tournament, teams, group tables, matches and stats in one response
//	@Tags		tournaments
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Success	200				{object}	services.TournamentOverview
//	@Router		/tournaments/{tournamentID}/overview [get]
func (h *TournamentHandler) OverviewHandler(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	overview, err := h.tournamentService.GetOverview(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, overview, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
