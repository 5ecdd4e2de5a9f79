package store

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openaquifer/groundwater-api/schema"
)

var (
	ErrNoDataForYear = fmt.Errorf("no data for the requested year")
)

// SampleFilter narrows a raw sample listing. Zero values mean "no filter".
type SampleFilter struct {
	Year     int
	State    string
	District string
	Offset   int64
	Limit    int64
}

// Sample - raw measurement operations
type Sample interface {
	InsertSamples(samples []schema.WaterSample) error
	ListSamples(filter SampleFilter) ([]schema.WaterSample, int64, error)
	AvailableYears() ([]int, error)
	AvailableYearDetails() ([]schema.YearAvailability, error)
	States() ([]string, error)
}

func (m *mongoDB) InsertSamples(samples []schema.WaterSample) error {
	if len(samples) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	docs := make([]interface{}, 0, len(samples))
	for _, s := range samples {
		docs = append(docs, s)
	}

	_, err := c.InsertMany(ctx, docs)
	return err
}

// ListSamples returns one page of raw samples, newest year first, along with
// the unpaginated total. State and district filters are case-insensitive.
func (m *mongoDB) ListSamples(filter SampleFilter) ([]schema.WaterSample, int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	query := bson.M{}
	if filter.Year != 0 {
		query["year"] = filter.Year
	}
	if filter.State != "" {
		query["state"] = caseInsensitive(filter.State)
	}
	if filter.District != "" {
		query["district"] = caseInsensitive(filter.District)
	}

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.M{"year": -1}).
		SetSkip(filter.Offset).
		SetLimit(filter.Limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}

	samples := make([]schema.WaterSample, 0)
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, 0, err
	}

	return samples, total, nil
}

func (m *mongoDB) AvailableYears() ([]int, error) {
	details, err := m.AvailableYearDetails()
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(details))
	for _, d := range details {
		if d.Available {
			years = append(years, d.Year)
		}
	}
	return years, nil
}

func (m *mongoDB) AvailableYearDetails() ([]schema.YearAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$year", "total_rows": bson.M{"$sum": 1}}},
		aggStageSortYearAscending(),
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	details := make([]schema.YearAvailability, 0)
	if err := cursor.All(ctx, &details); err != nil {
		return nil, err
	}

	for i := range details {
		details[i].Available = details[i].TotalRows > 0
	}
	return details, nil
}

func (m *mongoDB) States() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	raw, err := c.Distinct(ctx, "state", bson.M{})
	if err != nil {
		return nil, err
	}

	states := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			states = append(states, s)
		}
	}
	return states, nil
}

// caseInsensitive builds an anchored case-insensitive exact match.
func caseInsensitive(value string) bson.M {
	return bson.M{
		"$regex":   "^" + escapeRegex(value) + "$",
		"$options": "i",
	}
}

func escapeRegex(value string) string {
	special := `\.+*?()|[]{}^$`
	var b strings.Builder
	for _, r := range value {
		if strings.ContainsRune(special, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
