package schema

const (
	ForecastCollection   = "forecasts"
	ValidationCollection = "forecast_validation"
)

// ForecastPoint - one projected year for a district, produced by the
// linear-projection job. Consumed as an opaque ordered sequence.
type ForecastPoint struct {
	State        string  `json:"state" bson:"state"`
	District     string  `json:"district" bson:"district"`
	Year         int     `json:"year" bson:"year"`
	WQI          float64 `json:"wqi" bson:"wqi"`
	TDS          float64 `json:"tds" bson:"tds"`
	PH           float64 `json:"ph" bson:"ph"`
	NO3          float64 `json:"no3" bson:"no3"`
	F            float64 `json:"f" bson:"f"`
	RiskCategory string  `json:"risk_category" bson:"risk_category"`
	Potable      bool    `json:"potable" bson:"potable"`
	SafeForUse   bool    `json:"safe_for_use" bson:"safe_for_use"`
	Latitude     float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// ValidationRecord - hold-out year comparison of a predicted parameter value
// against the measured one, used to judge forecast quality.
type ValidationRecord struct {
	WellID        string  `json:"well_id" bson:"well_id"`
	Parameter     string  `json:"parameter" bson:"parameter"`
	Actual        float64 `json:"actual" bson:"actual"`
	Predicted     float64 `json:"predicted" bson:"predicted"`
	Error         float64 `json:"difference" bson:"error"`
	ErrorPercent  float64 `json:"percent_change" bson:"error_pct"`
	AbsError      float64 `json:"abs_error" bson:"abs_error"`
	AbsErrorPct   float64 `json:"abs_error_pct" bson:"abs_error_pct"`
}

// ParameterValidationStats - summary statistics for one forecast parameter.
type ParameterValidationStats struct {
	ActualMean    float64 `json:"actual_mean"`
	PredictedMean float64 `json:"predicted_mean"`
	ActualStd     float64 `json:"actual_std"`
	PredictedStd  float64 `json:"predicted_std"`
	ActualMin     float64 `json:"actual_min"`
	ActualMax     float64 `json:"actual_max"`
	MAE           float64 `json:"mae"`
	RMSE          float64 `json:"rmse"`
	R2            float64 `json:"r2"`
	Samples       int     `json:"samples"`
}
