package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-progression/services"
)

type GroupHandler struct {
	groupService services.GroupService
}

func NewGroupHandler(gs services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: gs}
}

type formGroupsInput struct {
	// 0 -> number_of_group турнира
	GroupCount int `json:"group_count"`
}

// FormGroups обрабатывает POST /tournaments/{tournamentID}/groups
//
//	@Summary	Partition the roster into groups
//	@Tags		groups
//	@Accept		json
//	@Produce	json
//	@Param		tournamentID	path		int				true	"Tournament ID"
//	@Param		input			body		formGroupsInput	false	"Group count"
//	@Success	201				{object}	map[string][]models.Group
//	@Failure	409				{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments/{tournamentID}/groups [post]
func (h *GroupHandler) FormGroups(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input formGroupsInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	groups, err := h.groupService.FormGroups(r.Context(), tournamentID, input.GroupCount)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateGroupMatches обрабатывает POST /tournaments/{tournamentID}/group-matches
//
//	@Summary	Create the round-robin fixtures of every group
//	@Tags		groups
//	@Produce	json
//	@Param		tournamentID	path		int	true	"Tournament ID"
//	@Success	201				{object}	map[string][]models.Match
//	@Failure	409				{object}	map[string]string
//	@Security	BearerAuth
//	@Router		/tournaments/{tournamentID}/group-matches [post]
func (h *GroupHandler) GenerateGroupMatches(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	matches, err := h.groupService.GenerateGroupMatches(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	List groups with ranked standings
// @Tags		groups
// @Produce	json
// @Param		tournamentID	path		int	true	"Tournament ID"
// @Success	200				{object}	map[string][]services.GroupTable
// @Router		/tournaments/{tournamentID}/groups [get]
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tables, err := h.groupService.ListGroupTables(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": tables}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// @Summary	Ranked standings of a group
// @Tags		groups
// @Produce	json
// @Param		groupID	path		int	true	"Group ID"
// @Success	200		{object}	map[string][]models.RankedTeam
// @Router		/groups/{groupID}/standings [get]
func (h *GroupHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.groupService.GetStandings(r.Context(), groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecalculateStandings пересчитывает таблицу группы по сыгранным матчам.
//
//	@Summary	Rebuild a group table from its finished matches
//	@Tags		groups
//	@Produce	json
//	@Param		groupID	path		int	true	"Group ID"
//	@Success	200		{object}	map[string][]models.RankedTeam
//	@Security	BearerAuth
//	@Router		/groups/{groupID}/standings/recalculate [post]
func (h *GroupHandler) RecalculateStandings(w http.ResponseWriter, r *http.Request) {
	groupID, err := getIDFromURL(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	standings, err := h.groupService.RecalculateStandings(r.Context(), groupID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
