package schema

const (
	SampleCollection = "samples"
)

// WaterSample is a single groundwater measurement produced by the dataset
// importer. Records are immutable once inserted.
type WaterSample struct {
	WellID   string   `json:"well_id" bson:"well_id"`
	State    string   `json:"state" bson:"state"`
	District string   `json:"district" bson:"district"`
	Block    string   `json:"block,omitempty" bson:"block,omitempty"`
	Village  string   `json:"village,omitempty" bson:"village,omitempty"`
	Year     int      `json:"year" bson:"year"`
	Location *GeoJSON `json:"location,omitempty" bson:"location,omitempty"`

	PH  float64 `json:"ph" bson:"ph"`
	EC  float64 `json:"ec" bson:"ec"`
	TDS float64 `json:"tds" bson:"tds"`
	TH  float64 `json:"th" bson:"th"`
	Ca  float64 `json:"ca" bson:"ca"`
	Mg  float64 `json:"mg" bson:"mg"`
	Na  float64 `json:"na" bson:"na"`
	K   float64 `json:"k" bson:"k"`
	Cl  float64 `json:"cl" bson:"cl"`
	SO4 float64 `json:"so4" bson:"so4"`
	NO3 float64 `json:"no3" bson:"no3"`
	F   float64 `json:"f" bson:"f"`

	// derived once at import time
	WQI          float64 `json:"wqi" bson:"wqi"`
	RiskCategory string  `json:"risk_category" bson:"risk_category"`
	Potable      bool    `json:"potable" bson:"potable"`
	SafeForUse   bool    `json:"safe_for_use" bson:"safe_for_use"`
}

// YearAvailability describes a dataset year and whether data is present for it.
type YearAvailability struct {
	Year      int  `json:"year" bson:"_id"`
	TotalRows int  `json:"total_rows" bson:"total_rows"`
	Available bool `json:"available" bson:"-"`
}
