package dto

// StatsResponse bundles the statistics view.
type StatsResponse struct {
	Categories []CategoryStat `json:"categories"`
	TopTags    []TagStat      `json:"top_tags"`
	Summary    SummaryStat    `json:"summary"`
}

// CategoryStat is one bar of the category breakdown.
type CategoryStat struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ColorClass string  `json:"color_class"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TagStat is one bar of the top tags chart. BarHeight is relative to the
// most frequent tag.
type TagStat struct {
	Tag       string  `json:"tag"`
	Count     int     `json:"count"`
	BarHeight float64 `json:"bar_height"`
}

// SummaryStat holds the headline counters.
type SummaryStat struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
	Critical int `json:"critical"`
}
