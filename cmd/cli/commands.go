package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mauv0809/ligadb/internal/encoding"
	"github.com/mauv0809/ligadb/sportsdata"
)

func init() {
	rootCmd.AddCommand(leaguesCmd)
	rootCmd.AddCommand(sportsCmd)
	rootCmd.AddCommand(leaguesBySportCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(currentGroupCmd)
	rootCmd.AddCommand(currentGroupOrderIDCmd)
	rootCmd.AddCommand(scorersCmd)
	rootCmd.AddCommand(seasonGoalsCmd)
	rootCmd.AddCommand(matchGoalsCmd)
	rootCmd.AddCommand(groupChangedCmd)
	rootCmd.AddCommand(seasonChangedCmd)
	rootCmd.AddCommand(lastMatchCmd)
	rootCmd.AddCommand(teamLastMatchCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(groupMatchesCmd)
	rootCmd.AddCommand(dateRangeMatchesCmd)
	rootCmd.AddCommand(seasonMatchesCmd)
	rootCmd.AddCommand(teamsMatchesCmd)
	rootCmd.AddCommand(nextMatchCmd)
	rootCmd.AddCommand(teamNextMatchCmd)
	rootCmd.AddCommand(teamsCmd)

	groupMatchesCmd.Flags().Bool("raw", false, "Print the whole result record instead of the match list")
}

// operation runs against the facade and returns what gets printed.
type operation func(ctx context.Context, svc sportsdata.Service, cmd *cobra.Command, args []string) (any, error)

func newCommand(use, short string, nargs int, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := encoding.ParseFormat(format)
			if err != nil {
				return err
			}
			svc, err := newClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			result, err := op(ctx, svc, cmd, args)
			if err != nil {
				return err
			}
			if result == nil {
				return nil
			}
			return encoding.Encode(cmd.OutOrStdout(), f, result)
		},
	}
}

var leaguesCmd = newCommand("leagues", "List all leagues", 0,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, _ []string) (any, error) {
		return svc.AvailableLeagues(ctx)
	})

var sportsCmd = newCommand("sports", "List all sports", 0,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, _ []string) (any, error) {
		return svc.AvailableSports(ctx)
	})

var leaguesBySportCmd = newCommand("sport-leagues SPORT_ID", "List the leagues of a sport", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		sportID, err := intArg("SPORT_ID", args[0])
		if err != nil {
			return nil, err
		}
		return svc.AvailableLeaguesBySport(ctx, sportID)
	})

var groupsCmd = newCommand("groups LEAGUE SEASON", "List the groups of a league season", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.AvailableGroups(ctx, args[0], args[1])
	})

var currentGroupCmd = newCommand("current-group LEAGUE", "Show the current group of a league", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.CurrentGroup(ctx, args[0])
	})

var currentGroupOrderIDCmd = newCommand("current-group-order-id LEAGUE", "Show the order ID of the current group of a league", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.CurrentGroupOrderID(ctx, args[0])
	})

var scorersCmd = newCommand("scorers LEAGUE SEASON", "List the goal getters of a league season", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.GoalGettersByLeagueSeason(ctx, args[0], args[1])
	})

var seasonGoalsCmd = newCommand("season-goals LEAGUE SEASON", "List every goal of a league season", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.GoalsByLeagueSeason(ctx, args[0], args[1])
	})

var matchGoalsCmd = newCommand("match-goals MATCH_ID", "List the goals of a match", 1,
	func(ctx context.Context, svc sportsdata.Service, cmd *cobra.Command, args []string) (any, error) {
		matchID, err := intArg("MATCH_ID", args[0])
		if err != nil {
			return nil, err
		}
		goals, ok, err := svc.GoalsByMatch(ctx, matchID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "No goal data for match %d\n", matchID)
			return nil, nil
		}
		return goals, nil
	})

var groupChangedCmd = newCommand("group-changed GROUP LEAGUE SEASON", "Show when a group last changed", 3,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		group, err := intArg("GROUP", args[0])
		if err != nil {
			return nil, err
		}
		return svc.LastChangeDateByGroupLeagueSeason(ctx, group, args[1], args[2])
	})

var seasonChangedCmd = newCommand("season-changed LEAGUE SEASON", "Show when a league season last changed", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.LastChangeDateByLeagueSeason(ctx, args[0], args[1])
	})

var lastMatchCmd = newCommand("last-match LEAGUE", "Show the most recent match of a league", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.LastMatch(ctx, args[0])
	})

var teamLastMatchCmd = newCommand("team-last-match LEAGUE_ID TEAM_ID", "Show the most recent match of a team", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		leagueID, teamID, err := intArgs2("LEAGUE_ID", args[0], "TEAM_ID", args[1])
		if err != nil {
			return nil, err
		}
		return svc.LastMatchByLeagueTeam(ctx, leagueID, teamID)
	})

var matchCmd = newCommand("match MATCH_ID", "Show one match", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		matchID, err := intArg("MATCH_ID", args[0])
		if err != nil {
			return nil, err
		}
		return svc.MatchByID(ctx, matchID)
	})

var groupMatchesCmd = newCommand("group-matches GROUP LEAGUE SEASON", "List the matches of a group", 3,
	func(ctx context.Context, svc sportsdata.Service, cmd *cobra.Command, args []string) (any, error) {
		group, err := intArg("GROUP", args[0])
		if err != nil {
			return nil, err
		}
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			return svc.RawMatchesByGroupLeagueSeason(ctx, group, args[1], args[2])
		}
		return svc.MatchesByGroupLeagueSeason(ctx, group, args[1], args[2])
	})

var dateRangeMatchesCmd = newCommand("date-matches FROM TO LEAGUE", "List the matches of a league between two dates", 3,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		from, err := timeArg("FROM", args[0])
		if err != nil {
			return nil, err
		}
		to, err := timeArg("TO", args[1])
		if err != nil {
			return nil, err
		}
		return svc.MatchesByLeagueDateRange(ctx, from, to, args[2])
	})

var seasonMatchesCmd = newCommand("season-matches LEAGUE SEASON", "List every match of a league season", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.MatchesByLeagueSeason(ctx, args[0], args[1])
	})

var teamsMatchesCmd = newCommand("head-to-head TEAM_ID1 TEAM_ID2", "List the matches between two teams", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		team1, team2, err := intArgs2("TEAM_ID1", args[0], "TEAM_ID2", args[1])
		if err != nil {
			return nil, err
		}
		return svc.MatchesByTeams(ctx, team1, team2)
	})

var nextMatchCmd = newCommand("next-match LEAGUE", "Show the next match of a league", 1,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.NextMatch(ctx, args[0])
	})

var teamNextMatchCmd = newCommand("team-next-match LEAGUE_ID TEAM_ID", "Show the next match of a team", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		leagueID, teamID, err := intArgs2("LEAGUE_ID", args[0], "TEAM_ID", args[1])
		if err != nil {
			return nil, err
		}
		return svc.NextMatchByLeagueTeam(ctx, leagueID, teamID)
	})

var teamsCmd = newCommand("teams LEAGUE SEASON", "List the teams of a league season", 2,
	func(ctx context.Context, svc sportsdata.Service, _ *cobra.Command, args []string) (any, error) {
		return svc.TeamsByLeagueSeason(ctx, args[0], args[1])
	})

func intArg(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return v, nil
}

func intArgs2(name1, raw1, name2, raw2 string) (int, int, error) {
	v1, err := intArg(name1, raw1)
	if err != nil {
		return 0, 0, err
	}
	v2, err := intArg(name2, raw2)
	if err != nil {
		return 0, 0, err
	}
	return v1, v2, nil
}

func timeArg(name, raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s must be a date (2006-01-02) or RFC 3339 timestamp, got %q", name, raw)
}
