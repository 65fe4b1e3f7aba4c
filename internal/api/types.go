package api

type ProfilesResponse struct {
	Profiles []Profile `json:"profiles"`
}

type Profile struct {
	ProfileID      string `json:"profileId"`
	UserID         string `json:"userId"`
	PlatformType   string `json:"platformType"`
	NameOnPlatform string `json:"nameOnPlatform"`
}

type LevelResponse struct {
	Level int `json:"level"`
}

type PlayerStatsResponse struct {
	ProfileData map[string]ProfileStats `json:"profileData"`
}

type ProfileStats struct {
	Platforms StatsPlatforms `json:"platforms"`
}

// StatsPlatforms holds the per-platform stats payloads. Playstation data
// arrives under the PS4 key for every console generation.
type StatsPlatforms struct {
	PC   *PlatformStats `json:"PC"`
	PS4  *PlatformStats `json:"PS4"`
	XONE *PlatformStats `json:"XONE"`
}

// ByName returns the payload for a datadev platform key, or nil.
func (p StatsPlatforms) ByName(name string) *PlatformStats {
	switch name {
	case "PC":
		return p.PC
	case "PS4":
		return p.PS4
	case "XONE":
		return p.XONE
	default:
		return nil
	}
}

type PlatformStats struct {
	GameModes GameModes `json:"gameModes"`
}

type GameModes struct {
	All      *GameMode `json:"all"`
	Casual   *GameMode `json:"casual"`
	Ranked   *GameMode `json:"ranked"`
	Unranked *GameMode `json:"unranked"`
}

type GameMode struct {
	TeamRoles TeamRoles `json:"teamRoles"`
}

// TeamRoles carries both casings the upstream has been observed to use
// for role keys. Consumers go through Attackers/Defenders, which treat
// the two spellings as one field.
type TeamRoles struct {
	AttackerUpper []StatsEntry `json:"Attacker"`
	AttackerLower []StatsEntry `json:"attacker"`
	DefenderUpper []StatsEntry `json:"Defender"`
	DefenderLower []StatsEntry `json:"defender"`
	All           []StatsEntry `json:"all"`
}

func (t TeamRoles) Attackers() []StatsEntry {
	if t.AttackerUpper != nil {
		return t.AttackerUpper
	}
	return t.AttackerLower
}

func (t TeamRoles) Defenders() []StatsEntry {
	if t.DefenderUpper != nil {
		return t.DefenderUpper
	}
	return t.DefenderLower
}

// StatsEntry is one row of a playerstats aggregation. The operators view
// fills the rounds fields; the summary view adds the match and support
// counters.
type StatsEntry struct {
	StatsDetail      string    `json:"statsDetail"`
	Death            int       `json:"death"`
	Kills            int       `json:"kills"`
	Assists          int       `json:"assists"`
	Headshots        int       `json:"headshots"`
	Trades           int       `json:"trades"`
	Revives          int       `json:"revives"`
	TeamKills        int       `json:"teamKills"`
	MatchesWon       int       `json:"matchesWon"`
	MatchesLost      int       `json:"matchesLost"`
	MinutesPlayed    int       `json:"minutesPlayed"`
	RoundsLost       int       `json:"roundsLost"`
	RoundsPlayed     int       `json:"roundsPlayed"`
	RoundsWon        int       `json:"roundsWon"`
	RoundsWithAnAce  StatValue `json:"roundsWithAnAce"`
	RoundsWithClutch StatValue `json:"roundsWithClutch"`
}

type StatValue struct {
	Value float64 `json:"value"`
}

type SeasonResponse struct {
	PlatformFamilies []SeasonPlatformFamily `json:"platform_families_full_profiles"`
}

type SeasonPlatformFamily struct {
	PlatformFamily string        `json:"platform_family"`
	Boards         []SeasonBoard `json:"board_ids_full_profiles"`
}

type SeasonBoard struct {
	BoardID      string              `json:"board_id"`
	FullProfiles []SeasonFullProfile `json:"full_profiles"`
}

type SeasonFullProfile struct {
	Profile          SeasonProfile    `json:"profile"`
	SeasonStatistics SeasonStatistics `json:"season_statistics"`
}

type SeasonProfile struct {
	ID              string `json:"id"`
	Rank            int    `json:"rank"`
	MaxRank         int    `json:"max_rank"`
	RankPoints      int    `json:"rank_points"`
	MaxRankPoints   int    `json:"max_rank_points"`
	TopRankPosition int    `json:"top_rank_position"`
}

type SeasonStatistics struct {
	Kills         int           `json:"kills"`
	Deaths        int           `json:"deaths"`
	MatchOutcomes MatchOutcomes `json:"match_outcomes"`
}

type MatchOutcomes struct {
	Abandons int `json:"abandons"`
	Losses   int `json:"losses"`
	Wins     int `json:"wins"`
}
