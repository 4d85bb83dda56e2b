package services

import (
	"errors"

	"github.com/Dosada05/tournament-progression/brackets"
)

// Ошибки сервисного слоя, используемые при маппинге в HTTP-статусы.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrGroupNotFound      = errors.New("group not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrTeamNotFound       = errors.New("team not found")

	// Валидация и бизнес-правила. Ошибки движка пробрасываются как есть.
	ErrInvalidInput       = brackets.ErrInvalidInput
	ErrWinnerUndetermined = brackets.ErrWinnerUndetermined
	ErrTournamentFull     = errors.New("tournament roster is full")
	ErrRosterLocked       = errors.New("tournament roster is locked once groups are formed")

	// Конфликты
	ErrAlreadyProcessed      = errors.New("operation already performed for this tournament")
	ErrTeamAlreadyRegistered = errors.New("team is already registered for this tournament")
	ErrTeamNameConflict      = errors.New("team name is already in use")

	// Аутентификация и авторизация
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrForbiddenOperation   = errors.New("operation not allowed for the current user")

	// Архив результатов не настроен
	ErrStorageUnavailable = errors.New("result archive storage is not configured")
)
