package store

import (
	"go.mongodb.org/mongo-driver/bson"
)

func matchYear(year *int) bson.M {
	if year == nil {
		return bson.M{}
	}
	return bson.M{"year": *year}
}

// aggStageGroupByDistrict averages the core metrics per (district, state)
// pair. Potability is averaged as 0/1 to yield a rate.
func aggStageGroupByDistrict() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id": bson.M{
				"district": "$district",
				"state":    "$state",
			},
			"avg_wqi":         bson.M{"$avg": "$wqi"},
			"avg_tds":         bson.M{"$avg": "$tds"},
			"potability_rate": bson.M{"$avg": bson.M{"$cond": bson.A{"$potable", 1, 0}}},
			"avg_lat":         bson.M{"$avg": bson.M{"$arrayElemAt": bson.A{"$location.coordinates", 1}}},
			"avg_lng":         bson.M{"$avg": bson.M{"$arrayElemAt": bson.A{"$location.coordinates", 0}}},
			"sample_count":    bson.M{"$sum": 1},
		},
	}
}

func aggStageGroupByYear() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":     "$year",
			"avg_wqi": bson.M{"$avg": "$wqi"},
			"avg_tds": bson.M{"$avg": "$tds"},
			"avg_no3": bson.M{"$avg": "$no3"},
			"avg_f":   bson.M{"$avg": "$f"},
		},
	}
}

func aggStageSortYearAscending() bson.M {
	return bson.M{"$sort": bson.M{"_id": 1}}
}

// aggStageYearlyDistrictSeries averages each forecastable parameter per
// (district, state, year) triple, the input of the projection job.
func aggStageYearlyDistrictSeries() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id": bson.M{
				"district": "$district",
				"state":    "$state",
				"year":     "$year",
			},
			"avg_wqi": bson.M{"$avg": "$wqi"},
			"avg_tds": bson.M{"$avg": "$tds"},
			"avg_ph":  bson.M{"$avg": "$ph"},
			"avg_no3": bson.M{"$avg": "$no3"},
			"avg_f":   bson.M{"$avg": "$f"},
			"avg_lat": bson.M{"$avg": bson.M{"$arrayElemAt": bson.A{"$location.coordinates", 1}}},
			"avg_lng": bson.M{"$avg": bson.M{"$arrayElemAt": bson.A{"$location.coordinates", 0}}},
		},
	}
}

func aggStageRiskHistogram() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":   "$risk_category",
			"count": bson.M{"$sum": 1},
		},
	}
}
