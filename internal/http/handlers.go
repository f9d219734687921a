package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/mauv0809/ligadb/internal/encoding"
)

// dateLayouts are accepted for the from/to query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loggerFromContext(r).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) SportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sports, err := s.Sportsdata.AvailableSports(r.Context())
		s.respond(w, r, sports, err)
	}
}

func (s *Server) LeaguesBySportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sportID, ok := pathInt(w, r, "sportID")
		if !ok {
			return
		}
		leagues, err := s.Sportsdata.AvailableLeaguesBySport(r.Context(), sportID)
		s.respond(w, r, leagues, err)
	}
}

func (s *Server) LeaguesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := s.Sportsdata.AvailableLeagues(r.Context())
		s.respond(w, r, leagues, err)
	}
}

func (s *Server) CurrentGroupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		group, err := s.Sportsdata.CurrentGroup(r.Context(), mux.Vars(r)["league"])
		s.respond(w, r, group, err)
	}
}

func (s *Server) CurrentGroupOrderIDHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := s.Sportsdata.CurrentGroupOrderID(r.Context(), mux.Vars(r)["league"])
		s.respond(w, r, map[string]int{"groupOrderID": id}, err)
	}
}

func (s *Server) LastMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Sportsdata.LastMatch(r.Context(), mux.Vars(r)["league"])
		s.respond(w, r, match, err)
	}
}

func (s *Server) NextMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		match, err := s.Sportsdata.NextMatch(r.Context(), mux.Vars(r)["league"])
		s.respond(w, r, match, err)
	}
}

func (s *Server) MatchesByDateRangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, ok := queryTime(w, r, "from")
		if !ok {
			return
		}
		to, ok := queryTime(w, r, "to")
		if !ok {
			return
		}
		matches, err := s.Sportsdata.MatchesByLeagueDateRange(r.Context(), from, to, mux.Vars(r)["league"])
		s.respond(w, r, matches, err)
	}
}

// The team routes carry the league shortcut in the path but the service
// wants a numeric league ID here, so {league} must be the ID.
func (s *Server) LastMatchByTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, ok := pathInt(w, r, "league")
		if !ok {
			return
		}
		teamID, ok := pathInt(w, r, "teamID")
		if !ok {
			return
		}
		match, err := s.Sportsdata.LastMatchByLeagueTeam(r.Context(), leagueID, teamID)
		s.respond(w, r, match, err)
	}
}

func (s *Server) NextMatchByTeamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, ok := pathInt(w, r, "league")
		if !ok {
			return
		}
		teamID, ok := pathInt(w, r, "teamID")
		if !ok {
			return
		}
		match, err := s.Sportsdata.NextMatchByLeagueTeam(r.Context(), leagueID, teamID)
		s.respond(w, r, match, err)
	}
}

func (s *Server) GroupsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		groups, err := s.Sportsdata.AvailableGroups(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, groups, err)
	}
}

func (s *Server) GoalGettersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		scorers, err := s.Sportsdata.GoalGettersByLeagueSeason(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, scorers, err)
	}
}

func (s *Server) SeasonGoalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		goals, err := s.Sportsdata.GoalsByLeagueSeason(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, goals, err)
	}
}

func (s *Server) SeasonLastChangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		changed, err := s.Sportsdata.LastChangeDateByLeagueSeason(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, map[string]time.Time{"lastChange": changed}, err)
	}
}

func (s *Server) SeasonMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		matches, err := s.Sportsdata.MatchesByLeagueSeason(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, matches, err)
	}
}

func (s *Server) TeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		teams, err := s.Sportsdata.TeamsByLeagueSeason(r.Context(), vars["league"], vars["season"])
		s.respond(w, r, teams, err)
	}
}

// GroupMatchesHandler returns the matches of a group; raw=true returns the
// unextracted result record instead.
func (s *Server) GroupMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		group, ok := pathInt(w, r, "group")
		if !ok {
			return
		}
		if r.URL.Query().Get("raw") == "true" {
			result, err := s.Sportsdata.RawMatchesByGroupLeagueSeason(r.Context(), group, vars["league"], vars["season"])
			s.respond(w, r, result, err)
			return
		}
		matches, err := s.Sportsdata.MatchesByGroupLeagueSeason(r.Context(), group, vars["league"], vars["season"])
		s.respond(w, r, matches, err)
	}
}

func (s *Server) GroupLastChangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		group, ok := pathInt(w, r, "group")
		if !ok {
			return
		}
		changed, err := s.Sportsdata.LastChangeDateByGroupLeagueSeason(r.Context(), group, vars["league"], vars["season"])
		s.respond(w, r, map[string]time.Time{"lastChange": changed}, err)
	}
}

func (s *Server) MatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := pathInt(w, r, "matchID")
		if !ok {
			return
		}
		match, err := s.Sportsdata.MatchByID(r.Context(), matchID)
		s.respond(w, r, match, err)
	}
}

// MatchGoalsHandler answers 204 when the service has no goal data for the
// match and an empty list when it has data without goals.
func (s *Server) MatchGoalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID, ok := pathInt(w, r, "matchID")
		if !ok {
			return
		}
		goals, found, err := s.Sportsdata.GoalsByMatch(r.Context(), matchID)
		if err == nil && !found {
			loggerFromContext(r).Debug("No goal data for match", "matchID", matchID)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		s.respond(w, r, goals, err)
	}
}

func (s *Server) MatchesByTeamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team1, ok := pathInt(w, r, "team1")
		if !ok {
			return
		}
		team2, ok := pathInt(w, r, "team2")
		if !ok {
			return
		}
		matches, err := s.Sportsdata.MatchesByTeams(r.Context(), team1, team2)
		s.respond(w, r, matches, err)
	}
}

// respond writes v in the format negotiated from the Accept header, or a
// 502 when the remote call failed.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		loggerFromContext(r).Error("Sportsdata call failed", "url", r.URL.Path, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	format := encoding.Negotiate(r.Header.Get("Accept"))
	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if err := encoding.Encode(w, format, v); err != nil {
		loggerFromContext(r).Error("Failed to encode response", "url", r.URL.Path, "error", err)
	}
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := mux.Vars(r)[name]
	v, err := strconv.Atoi(raw)
	if err != nil {
		loggerFromContext(r).Warn("Invalid path parameter", "name", name, "value", raw)
		http.Error(w, fmt.Sprintf("invalid %s %q: must be an integer", name, raw), http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func queryTime(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	raw := r.URL.Query().Get(name)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	loggerFromContext(r).Warn("Invalid query parameter", "name", name, "value", raw)
	http.Error(w, fmt.Sprintf("invalid %s %q: expected a date or RFC 3339 timestamp", name, raw), http.StatusBadRequest)
	return time.Time{}, false
}
