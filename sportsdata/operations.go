package sportsdata

import (
	"context"
	"time"
)

// Remote operation names as published in the service description.
const (
	OpGetAvailGroups                       = "GetAvailGroups"
	OpGetAvailLeagues                      = "GetAvailLeagues"
	OpGetAvailLeaguesBySports              = "GetAvailLeaguesBySports"
	OpGetAvailSports                       = "GetAvailSports"
	OpGetCurrentGroup                      = "GetCurrentGroup"
	OpGetCurrentGroupOrderID               = "GetCurrentGroupOrderID"
	OpGetGoalGettersByLeagueSaison         = "GetGoalGettersByLeagueSaison"
	OpGetGoalsByLeagueSaison               = "GetGoalsByLeagueSaison"
	OpGetGoalsByMatch                      = "GetGoalsByMatch"
	OpGetLastChangeDateByGroupLeagueSaison = "GetLastChangeDateByGroupLeagueSaison"
	OpGetLastChangeDateByLeagueSaison      = "GetLastChangeDateByLeagueSaison"
	OpGetLastMatch                         = "GetLastMatch"
	OpGetLastMatchByLeagueTeam             = "GetLastMatchByLeagueTeam"
	OpGetMatchByMatchID                    = "GetMatchByMatchID"
	OpGetMatchdataByGroupLeagueSaison      = "GetMatchdataByGroupLeagueSaison"
	OpGetMatchdataByLeagueDateTime         = "GetMatchdataByLeagueDateTime"
	OpGetMatchdataByLeagueSaison           = "GetMatchdataByLeagueSaison"
	OpGetMatchdataByTeams                  = "GetMatchdataByTeams"
	OpGetNextMatch                         = "GetNextMatch"
	OpGetNextMatchByLeagueTeam             = "GetNextMatchByLeagueTeam"
	OpGetTeamsByLeagueSaison               = "GetTeamsByLeagueSaison"
)

// The leagueShortcut arguments below are shortcuts such as "bl1"; use
// AvailableLeagues to list them. Seasons are the starting year, e.g. "2010".
// Arguments are passed to the service as given and validated only there.

func (c *Client) list(ctx context.Context, operation string, args ...any) ([]*Record, error) {
	result, err := c.transport.Call(ctx, operation, args...)
	if err != nil {
		return nil, err
	}
	return unwrap(result), nil
}

// AvailableGroups returns the groups (rounds, semi-finals, ...) of a league season.
func (c *Client) AvailableGroups(ctx context.Context, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetAvailGroups, leagueShortcut, season)
}

// AvailableLeagues returns every league known to the service.
func (c *Client) AvailableLeagues(ctx context.Context) ([]*Record, error) {
	return c.list(ctx, OpGetAvailLeagues)
}

// AvailableLeaguesBySport returns the leagues of one sport; see AvailableSports for IDs.
func (c *Client) AvailableLeaguesBySport(ctx context.Context, sportID int) ([]*Record, error) {
	return c.list(ctx, OpGetAvailLeaguesBySports, sportID)
}

// AvailableSports returns one record holding every sport known to the service.
func (c *Client) AvailableSports(ctx context.Context) (*Record, error) {
	return c.transport.Call(ctx, OpGetAvailSports)
}

// CurrentGroup returns the current group of a league, e.g. the current
// Bundesliga matchday.
func (c *Client) CurrentGroup(ctx context.Context, leagueShortcut string) (*Record, error) {
	return c.transport.Call(ctx, OpGetCurrentGroup, leagueShortcut)
}

// CurrentGroupOrderID returns the order ID of the current group of a league.
func (c *Client) CurrentGroupOrderID(ctx context.Context, leagueShortcut string) (int, error) {
	result, err := c.transport.Call(ctx, OpGetCurrentGroupOrderID, leagueShortcut)
	if err != nil {
		return 0, err
	}
	return result.Int()
}

// GoalGettersByLeagueSeason returns the scorers of a league season, ordered by goals scored.
func (c *Client) GoalGettersByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetGoalGettersByLeagueSaison, leagueShortcut, season)
}

// GoalsByLeagueSeason returns every goal of a league season.
func (c *Client) GoalsByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetGoalsByLeagueSaison, leagueShortcut, season)
}

// GoalsByMatch returns the goals of one match. ok is false when the service
// has no goal data for the match, which is distinct from an empty list.
func (c *Client) GoalsByMatch(ctx context.Context, matchID int) (goals []*Record, ok bool, err error) {
	result, err := c.transport.Call(ctx, OpGetGoalsByMatch, matchID)
	if err != nil {
		return nil, false, err
	}
	if isNoData(result) {
		return nil, false, nil
	}
	return unwrap(result), true, nil
}

// LastChangeDateByGroupLeagueSeason returns when the data of one group last changed.
func (c *Client) LastChangeDateByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) (time.Time, error) {
	result, err := c.transport.Call(ctx, OpGetLastChangeDateByGroupLeagueSaison, groupOrderID, leagueShortcut, season)
	if err != nil {
		return time.Time{}, err
	}
	return result.Time()
}

// LastChangeDateByLeagueSeason returns when the data of a league season last changed.
func (c *Client) LastChangeDateByLeagueSeason(ctx context.Context, leagueShortcut, season string) (time.Time, error) {
	result, err := c.transport.Call(ctx, OpGetLastChangeDateByLeagueSaison, leagueShortcut, season)
	if err != nil {
		return time.Time{}, err
	}
	return result.Time()
}

// LastMatch returns the most recent match of a league.
func (c *Client) LastMatch(ctx context.Context, leagueShortcut string) (*Record, error) {
	return c.transport.Call(ctx, OpGetLastMatch, leagueShortcut)
}

// LastMatchByLeagueTeam returns the most recent match of a team in a league.
func (c *Client) LastMatchByLeagueTeam(ctx context.Context, leagueID, teamID int) (*Record, error) {
	return c.transport.Call(ctx, OpGetLastMatchByLeagueTeam, leagueID, teamID)
}

// MatchByID returns one match.
func (c *Client) MatchByID(ctx context.Context, matchID int) (*Record, error) {
	return c.transport.Call(ctx, OpGetMatchByMatchID, matchID)
}

// MatchesByGroupLeagueSeason returns the matches of one group of a league season.
func (c *Client) MatchesByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetMatchdataByGroupLeagueSaison, groupOrderID, leagueShortcut, season)
}

// RawMatchesByGroupLeagueSeason is MatchesByGroupLeagueSeason without list
// extraction: the whole result record is returned.
func (c *Client) RawMatchesByGroupLeagueSeason(ctx context.Context, groupOrderID int, leagueShortcut, season string) (*Record, error) {
	return c.transport.Call(ctx, OpGetMatchdataByGroupLeagueSaison, groupOrderID, leagueShortcut, season)
}

// MatchesByLeagueDateRange returns the matches of a league played between from and to.
func (c *Client) MatchesByLeagueDateRange(ctx context.Context, from, to time.Time, leagueShortcut string) ([]*Record, error) {
	return c.list(ctx, OpGetMatchdataByLeagueDateTime, from, to, leagueShortcut)
}

// MatchesByLeagueSeason returns every match of a league season. The service
// is slow to answer this one.
func (c *Client) MatchesByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetMatchdataByLeagueSaison, leagueShortcut, season)
}

// MatchesByTeams returns the matches in which the two teams met.
func (c *Client) MatchesByTeams(ctx context.Context, teamID1, teamID2 int) ([]*Record, error) {
	return c.list(ctx, OpGetMatchdataByTeams, teamID1, teamID2)
}

// NextMatch returns the next match of a league.
func (c *Client) NextMatch(ctx context.Context, leagueShortcut string) (*Record, error) {
	return c.transport.Call(ctx, OpGetNextMatch, leagueShortcut)
}

// NextMatchByLeagueTeam returns the next match of a team in a league.
func (c *Client) NextMatchByLeagueTeam(ctx context.Context, leagueID, teamID int) (*Record, error) {
	return c.transport.Call(ctx, OpGetNextMatchByLeagueTeam, leagueID, teamID)
}

// TeamsByLeagueSeason returns the teams playing in a league season.
func (c *Client) TeamsByLeagueSeason(ctx context.Context, leagueShortcut, season string) ([]*Record, error) {
	return c.list(ctx, OpGetTeamsByLeagueSaison, leagueShortcut, season)
}
