package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openaquifer/groundwater-api/geo"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/wqi"
)

// MapData - map point operations
type MapData interface {
	MapPoints(year *int) ([]schema.MapPoint, error)
}

type mapAggDoc struct {
	ID struct {
		District string `bson:"district"`
		State    string `bson:"state"`
	} `bson:"_id"`
	AvgWQI      float64 `bson:"avg_wqi"`
	AvgTDS      float64 `bson:"avg_tds"`
	AvgLat      float64 `bson:"avg_lat"`
	AvgLng      float64 `bson:"avg_lng"`
	SampleCount int     `bson:"sample_count"`
}

// MapPoints groups samples (optionally of one year) per district and keeps
// only points with valid, in-bounds averaged coordinates. The risk category
// is derived from the averaged WQI. Returns ErrNoDataForYear when the filter
// matches nothing.
func (m *mongoDB) MapPoints(year *int) ([]schema.MapPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	pipeline := []bson.M{}
	if year != nil {
		pipeline = append(pipeline, bson.M{"$match": matchYear(year)})
	}
	pipeline = append(pipeline, aggStageGroupByDistrict())

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	var docs []mapAggDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, ErrNoDataForYear
	}

	points := make([]schema.MapPoint, 0, len(docs))
	for _, d := range docs {
		if !geo.ValidCoordinate(d.AvgLat, d.AvgLng) || !geo.InIndiaBounds(d.AvgLat, d.AvgLng) {
			continue
		}

		points = append(points, schema.MapPoint{
			District:     d.ID.District,
			State:        d.ID.State,
			Latitude:     d.AvgLat,
			Longitude:    d.AvgLng,
			AvgWQI:       d.AvgWQI,
			AvgTDS:       d.AvgTDS,
			RiskCategory: string(wqi.Classify(d.AvgWQI)),
			SampleCount:  d.SampleCount,
		})
	}

	if len(points) == 0 {
		return nil, ErrNoDataForYear
	}
	return points, nil
}
