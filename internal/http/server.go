package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/mauv0809/ligadb/internal/config"
	"github.com/mauv0809/ligadb/internal/metrics"
	"github.com/mauv0809/ligadb/sportsdata"
)

func NewServer(svc sportsdata.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Sportsdata:     svc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         mux.NewRouter(),
	}

	server.routes()
	server.handler = cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(server.Router)
	return server
}

func (s *Server) routes() {
	s.Router.Handle("/metrics", s.MetricsHandler).Methods(http.MethodGet)
	s.handle("/health", s.HealthCheckHandler())

	s.handle("/sports", s.SportsHandler())
	s.handle("/sports/{sportID}/leagues", s.LeaguesBySportHandler())

	s.handle("/leagues", s.LeaguesHandler())
	s.handle("/leagues/{league}/current-group", s.CurrentGroupHandler())
	s.handle("/leagues/{league}/current-group-order-id", s.CurrentGroupOrderIDHandler())
	s.handle("/leagues/{league}/last-match", s.LastMatchHandler())
	s.handle("/leagues/{league}/next-match", s.NextMatchHandler())
	s.handle("/leagues/{league}/matches", s.MatchesByDateRangeHandler())
	s.handle("/leagues/{league}/teams/{teamID}/last-match", s.LastMatchByTeamHandler())
	s.handle("/leagues/{league}/teams/{teamID}/next-match", s.NextMatchByTeamHandler())

	s.handle("/leagues/{league}/seasons/{season}/groups", s.GroupsHandler())
	s.handle("/leagues/{league}/seasons/{season}/scorers", s.GoalGettersHandler())
	s.handle("/leagues/{league}/seasons/{season}/goals", s.SeasonGoalsHandler())
	s.handle("/leagues/{league}/seasons/{season}/last-change", s.SeasonLastChangeHandler())
	s.handle("/leagues/{league}/seasons/{season}/matches", s.SeasonMatchesHandler())
	s.handle("/leagues/{league}/seasons/{season}/teams", s.TeamsHandler())
	s.handle("/leagues/{league}/seasons/{season}/groups/{group}/matches", s.GroupMatchesHandler())
	s.handle("/leagues/{league}/seasons/{season}/groups/{group}/last-change", s.GroupLastChangeHandler())

	s.handle("/matches/{matchID}", s.MatchHandler())
	s.handle("/matches/{matchID}/goals", s.MatchGoalsHandler())
	s.handle("/teams/{team1}/vs/{team2}/matches", s.MatchesByTeamsHandler())
}

// handle registers a GET route. All handlers are wrapped with the same
// middleware chain; the route template doubles as the metrics label.
func (s *Server) handle(route string, h http.Handler) {
	s.Router.Handle(route, Chain(h, requestIDMiddleware, paramsMiddleware, s.countRequests(route))).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
