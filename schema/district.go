package schema

// DistrictAggregate - averaged metrics over all samples of one district,
// refreshed per year selection. Read-only from the API point of view.
type DistrictAggregate struct {
	District       string  `json:"district" bson:"district"`
	State          string  `json:"state" bson:"state"`
	AvgWQI         float64 `json:"avg_wqi" bson:"avg_wqi"`
	AvgTDS         float64 `json:"avg_tds" bson:"avg_tds"`
	PotabilityRate float64 `json:"potability_rate" bson:"potability_rate"`
	RiskScore      float64 `json:"risk_score" bson:"-"`
	SampleCount    int     `json:"sample_count" bson:"sample_count"`
}

// TemporalTrendPoint - one year of averaged metrics across all samples.
type TemporalTrendPoint struct {
	Year   int     `json:"year" bson:"_id"`
	AvgWQI float64 `json:"avg_wqi" bson:"avg_wqi"`
	AvgTDS float64 `json:"avg_tds" bson:"avg_tds"`
	AvgNO3 float64 `json:"avg_no3" bson:"avg_no3"`
	AvgF   float64 `json:"avg_f" bson:"avg_f"`
}

// MapPoint - a district-grouped point prepared for the map layer.
type MapPoint struct {
	District     string  `json:"district" bson:"district"`
	State        string  `json:"state" bson:"state"`
	Latitude     float64 `json:"latitude" bson:"latitude"`
	Longitude    float64 `json:"longitude" bson:"longitude"`
	AvgWQI       float64 `json:"avg_wqi" bson:"avg_wqi"`
	AvgTDS       float64 `json:"avg_tds" bson:"avg_tds"`
	RiskCategory string  `json:"risk_category" bson:"-"`
	SampleCount  int     `json:"sample_count" bson:"sample_count"`
}

// Stats - national roll-up served by /api/stats.
type Stats struct {
	TotalSamples     int            `json:"total_samples"`
	AvgWQI           float64        `json:"avg_wqi"`
	PotablePercent   float64        `json:"potable_percentage"`
	SafePercent      float64        `json:"safe_percentage"`
	StatesCount      int            `json:"states_count"`
	DistrictsCount   int            `json:"districts_count"`
	YearRange        string         `json:"year_range"`
	RiskDistribution map[string]int `json:"risk_distribution"`
}
