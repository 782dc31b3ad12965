package model

// Season describes one tracked season: the display label used by the
// dashboard and the column suffix used by the player-investment export.
type Season struct {
	Label  string // e.g. "2018-19"
	Suffix string // e.g. "18-19", as in "COST 18-19" / "PC 18-19"
}

// seasons lists the six tracked seasons in chronological order.
var seasons = []Season{
	{Label: "2018-19", Suffix: "18-19"},
	{Label: "2019-20", Suffix: "19-20"},
	{Label: "2020-21", Suffix: "20-21"},
	{Label: "2021-22", Suffix: "21-22"},
	{Label: "2022-23", Suffix: "22-23"},
	{Label: "2023-24", Suffix: "23-24"},
}

// Seasons returns the tracked seasons in chronological order. The
// returned slice is a copy; callers may not reorder shared state.
func Seasons() []Season {
	out := make([]Season, len(seasons))
	copy(out, seasons)
	return out
}
