// Package server wires the router, middleware, and handlers together and
// owns the HTTP server lifecycle. All dependency construction happens in
// New; handlers receive only what they consume.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	gogithub "github.com/google/go-github/v68/github"

	"github.com/karn-cyber/RepoRecommendation/internal/auth"
	"github.com/karn-cyber/RepoRecommendation/internal/gh"
	"github.com/karn-cyber/RepoRecommendation/internal/handler"
	"github.com/karn-cyber/RepoRecommendation/internal/middleware"
	"github.com/karn-cyber/RepoRecommendation/internal/platform"
	"github.com/karn-cyber/RepoRecommendation/internal/search"
)

// Config holds everything the server needs from the environment.
type Config struct {
	Port int
	// GitHubToken optionally authenticates server-side search calls,
	// raising the rate limit. Search works unauthenticated without it.
	GitHubToken        string
	GitHubClientID     string
	GitHubClientSecret string
	GitHubCallbackURL  string
	// ClientURL is where the OAuth callback redirects the browser.
	ClientURL string
}

// Server is the HTTP server and its wired dependencies.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
}

// New assembles the dependency graph and the route table.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Search stack: go-github client → fetcher → aggregator.
	searchClient := gogithub.NewClient(nil)
	if s.config.GitHubToken != "" {
		searchClient = searchClient.WithAuthToken(s.config.GitHubToken)
	}
	fetcher := search.NewFetcher(searchClient, s.logger)
	aggregator := search.NewAggregator(fetcher, s.logger)
	repositoryHandler := handler.NewRepositoryHandler(aggregator, fetcher, s.logger)

	// Contribution stack: GraphQL snapshots run with the caller's token.
	snapshots := gh.NewService(s.logger)
	contributionHandler := handler.NewContributionHandler(snapshots, s.logger)

	// Platform proxies.
	leetcode := platform.NewLeetCode(s.logger)
	codeforces := platform.NewCodeforces(s.logger)
	platformHandler := handler.NewPlatformHandler(leetcode, codeforces, s.logger)

	activityHandler := handler.NewActivityHandler(snapshots, leetcode, codeforces, s.logger)

	provider := auth.NewGitHubProvider(
		s.config.GitHubClientID,
		s.config.GitHubClientSecret,
		s.config.GitHubCallbackURL,
	)
	oauthHandler := handler.NewOAuthHandler(provider, s.config.ClientURL, s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HandleHealth)

		r.Post("/repositories", repositoryHandler.HandleDiscover)
		r.Post("/search", repositoryHandler.HandleSearch)

		r.Get("/contributions/{username}", contributionHandler.HandleDemoContributions)

		r.Get("/github/oauth/authorize", oauthHandler.HandleAuthorize)
		r.Get("/github/oauth/callback", oauthHandler.HandleCallback)

		// Bearer-token routes: the token is GitHub's, relayed per request.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireToken)
			r.Get("/github/contributions/{username}", contributionHandler.HandleGitHubContributions)
			r.Get("/activity/{username}", activityHandler.HandleCombinedActivity)
		})

		r.Get("/leetcode/{username}", platformHandler.HandleLeetCode)
		r.Get("/codeforces/{handle}", platformHandler.HandleCodeforces)
		r.Get("/dsa/daily", platformHandler.HandleDailyProblems)
	})
}

// Start runs the server until SIGINT/SIGTERM, then drains in-flight
// requests for up to 30 seconds.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // must outlast the 30s contribution-fetch ceiling
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
