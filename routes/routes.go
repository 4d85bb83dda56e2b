package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/tournament-progression/docs" // регистрация swagger документации
	"github.com/Dosada05/tournament-progression/handlers"
	"github.com/Dosada05/tournament-progression/middleware"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
	Logger         *slog.Logger
}

type Handlers struct {
	Tournament *handlers.TournamentHandler
	Team       *handlers.TeamHandler
	Group      *handlers.GroupHandler
	Match      *handlers.MatchHandler
	Bracket    *handlers.BracketHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, opts Options, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// WebSocket не проходит через Timeout: соединение живёт долго.
	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	authenticate := middleware.Authenticate(opts.JWTSecret, opts.Logger)
	organizer := middleware.Authorize(middleware.RoleOrganizer, middleware.RoleAdmin)
	organizerOnly := func(r chi.Router) {
		r.Use(authenticate, organizer)
	}

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListHandler)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", h.Tournament.GetByIDHandler)
				r.Get("/overview", h.Tournament.OverviewHandler)
				r.Get("/stats", h.Tournament.StatsHandler)
				r.Get("/groups", h.Group.ListGroups)
				r.Get("/matches", h.Match.ListTournamentMatches)
				r.Get("/bracket", h.Bracket.GetBracket)
				r.Get("/final", h.Bracket.GetFinal)
				r.Get("/third-place", h.Bracket.GetThirdPlace)
				r.Get("/placement-rounds", h.Bracket.GetPlacementRounds)
				r.Get("/placements", h.Bracket.GetPlacements)

				r.Group(func(r chi.Router) {
					organizerOnly(r)
					r.Post("/teams", h.Tournament.RegisterTeamHandler)
					r.Post("/groups", h.Group.FormGroups)
					r.Post("/group-matches", h.Group.GenerateGroupMatches)
					r.Post("/bracket", h.Bracket.BuildBracket)
					r.Post("/placements/archive", h.Bracket.ArchivePlacements)
				})
			})

			r.Group(func(r chi.Router) {
				organizerOnly(r)
				r.Post("/", h.Tournament.CreateHandler)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.ListTeams)
			r.Get("/{teamID}", h.Team.GetTeamByID)

			r.Group(func(r chi.Router) {
				organizerOnly(r)
				r.Post("/", h.Team.CreateTeam)
				r.Post("/{teamID}/logo", h.Team.UploadTeamLogo)
			})
		})

		r.Route("/groups/{groupID}", func(r chi.Router) {
			r.Get("/standings", h.Group.GetStandings)
			r.With(authenticate, organizer).Post("/standings/recalculate", h.Group.RecalculateStandings)
		})

		r.Route("/matches/{matchID}", func(r chi.Router) {
			r.Get("/", h.Match.GetMatch)

			r.Group(func(r chi.Router) {
				organizerOnly(r)
				r.Put("/result", h.Match.RecordResult)
				r.Put("/teams", h.Bracket.AssignTeams)
				r.Post("/advance", h.Bracket.AdvanceWinner)
			})
		})
	})
}
