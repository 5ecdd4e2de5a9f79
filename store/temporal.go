package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openaquifer/groundwater-api/schema"
)

// Temporal - yearly trend operations
type Temporal interface {
	TemporalTrends() ([]schema.TemporalTrendPoint, error)
}

// TemporalTrends averages the tracked metrics per year, ascending by year.
func (m *mongoDB) TemporalTrends() ([]schema.TemporalTrendPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	pipeline := []bson.M{
		aggStageGroupByYear(),
		aggStageSortYearAscending(),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	trends := make([]schema.TemporalTrendPoint, 0)
	if err := cursor.All(ctx, &trends); err != nil {
		return nil, err
	}
	return trends, nil
}
