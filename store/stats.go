package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openaquifer/groundwater-api/schema"
)

var ErrDataNotLoaded = fmt.Errorf("dataset not loaded")

// Statistic - national roll-up operations
type Statistic interface {
	Stats() (*schema.Stats, error)
}

type statsAggDoc struct {
	TotalSamples int      `bson:"total_samples"`
	AvgWQI       float64  `bson:"avg_wqi"`
	PotableRate  float64  `bson:"potable_rate"`
	SafeRate     float64  `bson:"safe_rate"`
	MinYear      int      `bson:"min_year"`
	MaxYear      int      `bson:"max_year"`
	States       []string `bson:"states"`
	Districts    []string `bson:"districts"`
}

// Stats aggregates the whole sample collection into the national summary.
// Returns ErrDataNotLoaded when the collection is empty.
func (m *mongoDB) Stats() (*schema.Stats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 12*defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":           nil,
			"total_samples": bson.M{"$sum": 1},
			"avg_wqi":       bson.M{"$avg": "$wqi"},
			"potable_rate":  bson.M{"$avg": bson.M{"$cond": bson.A{"$potable", 1, 0}}},
			"safe_rate":     bson.M{"$avg": bson.M{"$cond": bson.A{"$safe_for_use", 1, 0}}},
			"min_year":      bson.M{"$min": "$year"},
			"max_year":      bson.M{"$max": "$year"},
			"states":        bson.M{"$addToSet": "$state"},
			"districts":     bson.M{"$addToSet": "$district"},
		}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var docs []statsAggDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 || docs[0].TotalSamples == 0 {
		return nil, ErrDataNotLoaded
	}
	d := docs[0]

	histogram, err := m.riskHistogram(ctx)
	if err != nil {
		return nil, err
	}

	return &schema.Stats{
		TotalSamples:     d.TotalSamples,
		AvgWQI:           d.AvgWQI,
		PotablePercent:   d.PotableRate * 100,
		SafePercent:      d.SafeRate * 100,
		StatesCount:      len(d.States),
		DistrictsCount:   len(d.Districts),
		YearRange:        fmt.Sprintf("%d-%d", d.MinYear, d.MaxYear),
		RiskDistribution: histogram,
	}, nil
}

func (m *mongoDB) riskHistogram(ctx context.Context) (map[string]int, error) {
	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{aggStageRiskHistogram()})
	if err != nil {
		return nil, err
	}

	var docs []struct {
		Category string `bson:"_id"`
		Count    int    `bson:"count"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	histogram := make(map[string]int, len(docs))
	for _, d := range docs {
		histogram[d.Category] = d.Count
	}
	return histogram, nil
}
