package domain

import "fmt"

// Platform is the request-facing platform selector. PlatformID selects
// lookup by profile id instead of by username.
type Platform string

const (
	PlatformID   Platform = "id"
	PlatformPC   Platform = "pc"
	PlatformPSN  Platform = "psn"
	PlatformXbox Platform = "xbox"
)

// PlatformFamily groups platforms the way the Ubisoft skill endpoints do.
// Season statistics are segmented by family, not by platform.
type PlatformFamily string

const (
	FamilyPC      PlatformFamily = "pc"
	FamilyConsole PlatformFamily = "console"
)

// PlatformFromRaw maps the platformType value returned by the profiles
// endpoint to an internal Platform.
func PlatformFromRaw(raw string) (Platform, error) {
	switch raw {
	case "uplay":
		return PlatformPC, nil
	case "psn":
		return PlatformPSN, nil
	case "xbl":
		return PlatformXbox, nil
	default:
		return "", fmt.Errorf("unknown raw platform %q", raw)
	}
}

// Raw returns the platformType value Ubisoft expects on profile lookups.
func (p Platform) Raw() string {
	switch p {
	case PlatformPC:
		return "uplay"
	case PlatformPSN:
		return "psn"
	case PlatformXbox:
		return "xbl"
	default:
		return ""
	}
}

// StatsName returns the platform key used by the datadev playerstats
// endpoint. Playstation responses are keyed PS4 regardless of console
// generation.
func (p Platform) StatsName() string {
	switch p {
	case PlatformPC:
		return "PC"
	case PlatformPSN:
		return "PS4"
	case PlatformXbox:
		return "XONE"
	default:
		return ""
	}
}

func (p Platform) Family() PlatformFamily {
	switch p {
	case PlatformPC:
		return FamilyPC
	case PlatformPSN, PlatformXbox:
		return FamilyConsole
	default:
		return ""
	}
}

// Account is one resolved player identity. ProfileID is the stable merge
// key for the whole aggregation; UserID is the key the per-endpoint stats
// calls want.
type Account struct {
	Username  string
	Platform  Platform
	ProfileID string
	UserID    string
}

type OperatorStats struct {
	Aces          int    `json:"aces"`
	Clutches      int    `json:"clutches"`
	Deaths        int    `json:"deaths"`
	KDRatio       string `json:"kdRatio"`
	Kills         int    `json:"kills"`
	Losses        int    `json:"losses"`
	MinutesPlayed int    `json:"minutesPlayed"`
	Operator      string `json:"operator"`
	WinPercent    string `json:"winPercent"`
	Wins          int    `json:"wins"`
}

// OperatorsGamemode maps lower-cased operator names to their stats for one
// game mode, split by team role.
type OperatorsGamemode struct {
	Attackers map[string]OperatorStats `json:"attackers"`
	Defenders map[string]OperatorStats `json:"defenders"`
}

type Operators struct {
	Casual   OperatorsGamemode `json:"casual"`
	Overall  OperatorsGamemode `json:"overall"`
	Ranked   OperatorsGamemode `json:"ranked"`
	Unranked OperatorsGamemode `json:"unranked"`
}

type LifetimeStats struct {
	Aces          int    `json:"aces"`
	Assists       int    `json:"assists"`
	Clutches      int    `json:"clutches"`
	Deaths        int    `json:"deaths"`
	Headshots     int    `json:"headshots"`
	KDRatio       string `json:"kdRatio"`
	Kills         int    `json:"kills"`
	KillTrades    int    `json:"killTrades"`
	Losses        int    `json:"losses"`
	MinutesPlayed int    `json:"minutesPlayed"`
	Revives       int    `json:"revives"`
	TeamKills     int    `json:"teamKills"`
	WinPercent    string `json:"winPercent"`
	Wins          int    `json:"wins"`
}

type Lifetime struct {
	Casual   LifetimeStats `json:"casual"`
	Overall  LifetimeStats `json:"overall"`
	Ranked   LifetimeStats `json:"ranked"`
	Unranked LifetimeStats `json:"unranked"`
}

type SeasonCasualStats struct {
	Abandons   int    `json:"abandons"`
	Deaths     int    `json:"deaths"`
	KDRatio    string `json:"kdRatio"`
	Kills      int    `json:"kills"`
	Losses     int    `json:"losses"`
	WinPercent string `json:"winPercent"`
	Wins       int    `json:"wins"`
}

type SeasonRankedStats struct {
	Abandons           int     `json:"abandons"`
	ChampionNumber     int     `json:"championNumber"`
	Deaths             int     `json:"deaths"`
	KDRatio            string  `json:"kdRatio"`
	Kills              int     `json:"kills"`
	Losses             int     `json:"losses"`
	MaxRank            Rank    `json:"maxRank"`
	MaxRankPoints      int     `json:"maxRankPoints"`
	NextRank           Rank    `json:"nextRank"`
	NextRankByMaxRank  Rank    `json:"nextRankByMaxRank"`
	NextRankRankPoints int     `json:"nextRankRankPoints"`
	PreviousRank       Rank    `json:"previousRank"`
	Rank               Rank    `json:"rank"`
	RankPointProgress  float64 `json:"rankPointProgress"`
	RankPoints         int     `json:"rankPoints"`
	WinPercent         string  `json:"winPercent"`
	Wins               int     `json:"wins"`
}

// Season holds the current-season boards for one account. A nil sub-record
// means that board was absent upstream.
type Season struct {
	Casual *SeasonCasualStats `json:"casual"`
	Ranked *SeasonRankedStats `json:"ranked"`
}

// FullProfile is the external-facing merge of every per-endpoint result for
// one account. Nil sections mean the corresponding fetch failed or returned
// nothing.
type FullProfile struct {
	CurrentSeason *Season    `json:"currentSeason"`
	Level         int        `json:"level"`
	Lifetime      *Lifetime  `json:"lifetime"`
	Modified      int64      `json:"modified"`
	Operators     *Operators `json:"operators"`
	Platform      string     `json:"platform"`
	ProfileID     string     `json:"profileId"`
}

// FullProfileSet is keyed by profile id and always contains one entry per
// resolved account.
type FullProfileSet struct {
	Code     int                     `json:"code"`
	Profiles map[string]*FullProfile `json:"profiles"`
}
