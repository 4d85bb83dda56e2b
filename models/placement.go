package models

// FinalResult is the outcome of the final match.
type FinalResult struct {
	Winner   int  `json:"winner"`
	RunnerUp *int `json:"runnerUp"`
}

type Placements struct {
	TournamentID int  `json:"tournament"`
	Champion     int  `json:"champion"`
	RunnerUp     *int `json:"runnerUp"`
	ThirdPlace   *int `json:"thirdPlace,omitempty"`
}

// TournamentStats aggregates all matches of a tournament.
type TournamentStats struct {
	TotalMatch      int    `json:"totalMatch"`
	TotalGoals      int    `json:"totalGoals"`
	TotalYellowCard int    `json:"totalYellowCard"`
	TotalRedCard    int    `json:"totalRedCard"`
	TopScoringMatch *Match `json:"setData,omitempty"`
}
