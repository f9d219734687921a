package sportsdata

import (
	"context"
	"time"

	"github.com/mauv0809/ligadb/internal/soap"
)

// Record is one loosely-typed record returned by the service. Its fields are
// defined by the remote schema and read by name, e.g. rec.Get("nameTeam1").
type Record = soap.Element

// Transport performs one remote operation with positional arguments and
// returns the deserialized result. *soap.Client is the production transport.
type Transport interface {
	Call(ctx context.Context, operation string, args ...any) (*Record, error)
}

// Service is the full operation catalog. This allows for mock implementations
// to be used by callers in tests.
type Service interface {
	AvailableGroups(ctx context.Context, leagueShortcut, season string) ([]*Record, error)
	AvailableLeagues(ctx context.Context) ([]*Record, error)
	AvailableLeaguesBySport(ctx context.Context, sportID int) ([]*Record, error)
	AvailableSports(ctx context.Context) (*Record, error)
	CurrentGroup(ctx context.Context, leagueShortcut string) (*Record, error)
	CurrentGroupOrderID(ctx context.Context, leagueShortcut string) (int, error)
	GoalGettersByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error)
	GoalsByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error)
	GoalsByMatch(ctx context.Context, matchID int) ([]*Record, bool, error)
	LastChangeDateByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) (time.Time, error)
	LastChangeDateByLeagueSeason(ctx context.Context, leagueShortcut, season string) (time.Time, error)
	LastMatch(ctx context.Context, leagueShortcut string) (*Record, error)
	LastMatchByLeagueTeam(ctx context.Context, leagueID, teamID int) (*Record, error)
	MatchByID(ctx context.Context, matchID int) (*Record, error)
	MatchesByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) ([]*Record, error)
	RawMatchesByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) (*Record, error)
	MatchesByLeagueDateRange(ctx context.Context, from, to time.Time, leagueShortcut string) ([]*Record, error)
	MatchesByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error)
	MatchesByTeams(ctx context.Context, teamID1, teamID2 int) ([]*Record, error)
	NextMatch(ctx context.Context, leagueShortcut string) (*Record, error)
	NextMatchByLeagueTeam(ctx context.Context, leagueID, teamID int) (*Record, error)
	TeamsByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error)
}
