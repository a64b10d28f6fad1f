package server

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"

	"github.com/eskrenkovic/spyfall-go/internal/config"
	"github.com/eskrenkovic/spyfall-go/internal/modules/core"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/catalog"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/commands"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/domain"
	"github.com/eskrenkovic/spyfall-go/internal/modules/lobby/queries"

	"github.com/eskrenkovic/mediator-go"
	"github.com/eskrenkovic/migrate-go"
	"github.com/go-chi/chi"
	_ "github.com/lib/pq"
)

type Server interface {
	Start() error
	Stop() error
}

var _ Server = &HTTPServer{}

// HTTPServer acts as the composition root for the application.
type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(config config.Config) (Server, error) {
	baseCtx := context.Background()

	core.SetLogger(config.Logger)

	db, err := sql.Open("postgres", config.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := migrate.Run(baseCtx, db, config.MigrationsPath); err != nil {
		return nil, err
	}

	repo := lobby.NewPostgresRepository(db)

	referenceTable, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	requestLoggingBehavior := core.RequestLoggingBehavior{Logger: config.Logger}
	handlerErrorLoggingBehavior := core.HandlerErrorLoggingBehavior{Logger: config.Logger}
	requestValidationBehavior := core.RequestValidationBehavior{}

	mediator.RegisterPipelineBehavior(&requestLoggingBehavior)
	mediator.RegisterPipelineBehavior(&handlerErrorLoggingBehavior)
	mediator.RegisterPipelineBehavior(&requestValidationBehavior)

	if err := registerLobbyHandlers(repo, referenceTable); err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(core.CorrelationIDHTTPMiddleware)

	r.Route("/lobbies", func(r chi.Router) {
		r.Post("/", commands.HandleCreateLobby)

		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", queries.HandleGetLobbyState)

			r.Post("/participants", commands.HandleJoinLobby)
			r.Delete("/participants/{participantId}", commands.HandleLeaveLobby)

			r.Put("/settings", commands.HandleUpdateSettings)

			r.Put("/actions/kick", commands.HandleKickParticipant)
			r.Put("/actions/promote-host", commands.HandlePromoteHost)
			r.Put("/actions/start", commands.HandleStartGame)
			r.Put("/actions/toggle-pause", commands.HandleTogglePause)
			r.Put("/actions/end", commands.HandleEndGame)
			r.Put("/actions/reset", commands.HandleResetGame)
		})
	})

	server := http.Server{
		Addr:    net.JoinHostPort("", fmt.Sprintf("%d", config.Port)),
		Handler: r,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	return &HTTPServer{server: &server}, nil
}

func registerLobbyHandlers(repo lobby.Repository, referenceTable domain.Catalog) error {
	createLobbyHandler := commands.NewCreateLobbyCommandHandler(repo)
	err := mediator.RegisterRequestHandler[commands.CreateLobbyCommand, commands.CreateLobbyResponse](
		createLobbyHandler,
	)
	if err != nil {
		return err
	}

	joinLobbyHandler := commands.NewJoinLobbyCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.JoinLobbyCommand, commands.JoinLobbyResponse](
		joinLobbyHandler,
	)
	if err != nil {
		return err
	}

	leaveLobbyHandler := commands.NewLeaveLobbyCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.LeaveLobbyCommand, core.Unit](
		leaveLobbyHandler,
	)
	if err != nil {
		return err
	}

	kickParticipantHandler := commands.NewKickParticipantCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.KickParticipantCommand, core.Unit](
		kickParticipantHandler,
	)
	if err != nil {
		return err
	}

	promoteHostHandler := commands.NewPromoteHostCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.PromoteHostCommand, core.Unit](
		promoteHostHandler,
	)
	if err != nil {
		return err
	}

	updateSettingsHandler := commands.NewUpdateSettingsCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.UpdateSettingsCommand, core.Unit](
		updateSettingsHandler,
	)
	if err != nil {
		return err
	}

	startGameHandler := commands.NewStartGameCommandHandler(repo, referenceTable)
	err = mediator.RegisterRequestHandler[commands.StartGameCommand, core.Unit](
		startGameHandler,
	)
	if err != nil {
		return err
	}

	togglePauseHandler := commands.NewTogglePauseCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.TogglePauseCommand, core.Unit](
		togglePauseHandler,
	)
	if err != nil {
		return err
	}

	endGameHandler := commands.NewEndGameCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.EndGameCommand, core.Unit](
		endGameHandler,
	)
	if err != nil {
		return err
	}

	resetGameHandler := commands.NewResetGameCommandHandler(repo)
	err = mediator.RegisterRequestHandler[commands.ResetGameCommand, core.Unit](
		resetGameHandler,
	)
	if err != nil {
		return err
	}

	getLobbyStateHandler := queries.NewGetLobbyStateQueryHandler(repo)
	return mediator.RegisterRequestHandler[queries.GetLobbyStateQuery, domain.LobbyView](
		getLobbyStateHandler,
	)
}

func (s *HTTPServer) Start() error {
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop() error {
	return s.server.Close()
}
