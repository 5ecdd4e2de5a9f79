package store

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openaquifer/groundwater-api/schema"
)

var ErrUnknownSortKey = fmt.Errorf("unknown sort key")

// District - district aggregate operations
type District interface {
	DistrictAggregates(limit int64, sortBy string) ([]schema.DistrictAggregate, error)
}

type districtAggDoc struct {
	ID struct {
		District string `bson:"district"`
		State    string `bson:"state"`
	} `bson:"_id"`
	AvgWQI         float64 `bson:"avg_wqi"`
	AvgTDS         float64 `bson:"avg_tds"`
	PotabilityRate float64 `bson:"potability_rate"`
	SampleCount    int     `bson:"sample_count"`
}

// DistrictAggregates groups all samples per district, derives the composite
// risk score and returns the top `limit` entries sorted descending by sortBy
// (risk_score, avg_wqi, avg_tds or sample_count).
func (m *mongoDB) DistrictAggregates(limit int64, sortBy string) ([]schema.DistrictAggregate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{aggStageGroupByDistrict()})
	if err != nil {
		return nil, err
	}

	var docs []districtAggDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	aggregates := make([]schema.DistrictAggregate, 0, len(docs))
	for _, d := range docs {
		a := schema.DistrictAggregate{
			District:       d.ID.District,
			State:          d.ID.State,
			AvgWQI:         d.AvgWQI,
			AvgTDS:         d.AvgTDS,
			PotabilityRate: d.PotabilityRate,
			SampleCount:    d.SampleCount,
		}
		a.RiskScore = RiskScore(a.AvgWQI, a.AvgTDS, a.PotabilityRate)
		aggregates = append(aggregates, a)
	}

	less, err := districtLess(aggregates, sortBy)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(aggregates, less)

	if limit > 0 && int64(len(aggregates)) > limit {
		aggregates = aggregates[:limit]
	}
	return aggregates, nil
}

// RiskScore combines a district's averages into the composite used for
// ranking: wqi weighted half, scaled TDS a third, non-potability the rest.
func RiskScore(avgWQI, avgTDS, potabilityRate float64) float64 {
	return avgWQI*0.5 + (avgTDS/10)*0.3 + (1-potabilityRate)*50
}

func districtLess(a []schema.DistrictAggregate, sortBy string) (func(i, j int) bool, error) {
	switch sortBy {
	case "", "risk_score":
		return func(i, j int) bool { return a[i].RiskScore > a[j].RiskScore }, nil
	case "avg_wqi":
		return func(i, j int) bool { return a[i].AvgWQI > a[j].AvgWQI }, nil
	case "avg_tds":
		return func(i, j int) bool { return a[i].AvgTDS > a[j].AvgTDS }, nil
	case "sample_count":
		return func(i, j int) bool { return a[i].SampleCount > a[j].SampleCount }, nil
	default:
		return nil, ErrUnknownSortKey
	}
}
