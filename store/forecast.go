package store

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openaquifer/groundwater-api/forecast"
	"github.com/openaquifer/groundwater-api/schema"
)

var ErrDistrictNotFound = fmt.Errorf("district not found")

// Forecast - projected data and validation operations
type Forecast interface {
	DistrictForecast(district string) ([]schema.ForecastPoint, error)
	ReplaceForecasts(points []schema.ForecastPoint) error
	DistrictYearlySeries() ([]forecast.DistrictSeries, error)
	ValidationRecords(parameter string, offset, limit int64) ([]schema.ValidationRecord, int64, []string, error)
	ReplaceValidationRecords(records []schema.ValidationRecord) error
	ValidationSummary() (map[string]schema.ParameterValidationStats, error)
	AvgWQIForLocation(location, locationType string) (float64, int, error)
}

// DistrictForecast returns a district's projected points ordered by year.
// District matching is case-insensitive.
func (m *mongoDB) DistrictForecast(district string) ([]schema.ForecastPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ForecastCollection)

	opts := options.Find().SetSort(bson.M{"year": 1})
	cursor, err := c.Find(ctx, bson.M{"district": caseInsensitive(district)}, opts)
	if err != nil {
		return nil, err
	}

	points := make([]schema.ForecastPoint, 0)
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, ErrDistrictNotFound
	}
	return points, nil
}

// ReplaceForecasts swaps the forecast collection content for a fresh run of
// the projection job.
func (m *mongoDB) ReplaceForecasts(points []schema.ForecastPoint) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ForecastCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(points))
	for _, p := range points {
		docs = append(docs, p)
	}
	_, err := c.InsertMany(ctx, docs)
	return err
}

type yearlySeriesDoc struct {
	ID struct {
		District string `bson:"district"`
		State    string `bson:"state"`
		Year     int    `bson:"year"`
	} `bson:"_id"`
	AvgWQI float64 `bson:"avg_wqi"`
	AvgTDS float64 `bson:"avg_tds"`
	AvgPH  float64 `bson:"avg_ph"`
	AvgNO3 float64 `bson:"avg_no3"`
	AvgF   float64 `bson:"avg_f"`
	AvgLat float64 `bson:"avg_lat"`
	AvgLng float64 `bson:"avg_lng"`
}

// DistrictYearlySeries assembles the per-district yearly averages the
// projection job regresses over.
func (m *mongoDB) DistrictYearlySeries() ([]forecast.DistrictSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{aggStageYearlyDistrictSeries()})
	if err != nil {
		return nil, err
	}

	var docs []yearlySeriesDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	type key struct{ district, state string }
	grouped := map[key]*forecast.DistrictSeries{}
	for _, d := range docs {
		k := key{d.ID.District, d.ID.State}
		s, ok := grouped[k]
		if !ok {
			s = &forecast.DistrictSeries{
				State:    d.ID.State,
				District: d.ID.District,
				Series:   map[string][]forecast.YearValue{},
			}
			grouped[k] = s
		}

		year := d.ID.Year
		s.Series["WQI"] = append(s.Series["WQI"], forecast.YearValue{Year: year, Value: d.AvgWQI})
		s.Series["TDS"] = append(s.Series["TDS"], forecast.YearValue{Year: year, Value: d.AvgTDS})
		s.Series["pH"] = append(s.Series["pH"], forecast.YearValue{Year: year, Value: d.AvgPH})
		s.Series["NO3"] = append(s.Series["NO3"], forecast.YearValue{Year: year, Value: d.AvgNO3})
		s.Series["F"] = append(s.Series["F"], forecast.YearValue{Year: year, Value: d.AvgF})

		// last known coordinates win
		if d.AvgLat != 0 || d.AvgLng != 0 {
			s.Latitude = d.AvgLat
			s.Longitude = d.AvgLng
		}
	}

	series := make([]forecast.DistrictSeries, 0, len(grouped))
	for _, s := range grouped {
		series = append(series, *s)
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].State != series[j].State {
			return series[i].State < series[j].State
		}
		return series[i].District < series[j].District
	})
	return series, nil
}

// ReplaceValidationRecords swaps the validation collection content for a
// fresh hold-out comparison run.
func (m *mongoDB) ReplaceValidationRecords(records []schema.ValidationRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ValidationCollection)

	if _, err := c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, r := range records {
		docs = append(docs, r)
	}
	_, err := c.InsertMany(ctx, docs)
	return err
}

// ValidationRecords returns one page of hold-out validation rows sorted by
// absolute error percentage ascending, plus the unpaginated total and the
// distinct parameter list.
func (m *mongoDB) ValidationRecords(parameter string, offset, limit int64) ([]schema.ValidationRecord, int64, []string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ValidationCollection)

	rawParams, err := c.Distinct(ctx, "parameter", bson.M{})
	if err != nil {
		return nil, 0, nil, err
	}
	parameters := make([]string, 0, len(rawParams))
	for _, v := range rawParams {
		if s, ok := v.(string); ok {
			parameters = append(parameters, s)
		}
	}
	sort.Strings(parameters)

	query := bson.M{}
	if parameter != "" {
		query["parameter"] = parameter
	}

	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, nil, err
	}

	opts := options.Find().
		SetSort(bson.M{"abs_error_pct": 1}).
		SetSkip(offset).
		SetLimit(limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, nil, err
	}

	records := make([]schema.ValidationRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, nil, err
	}

	return records, total, parameters, nil
}

// ValidationSummary computes MAE, RMSE and R² per parameter over all
// validation rows.
func (m *mongoDB) ValidationSummary() (map[string]schema.ParameterValidationStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 12*defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ValidationCollection)

	cursor, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var records []schema.ValidationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	byParameter := map[string][]schema.ValidationRecord{}
	for _, r := range records {
		byParameter[r.Parameter] = append(byParameter[r.Parameter], r)
	}

	summary := make(map[string]schema.ParameterValidationStats, len(byParameter))
	for parameter, rows := range byParameter {
		summary[parameter] = summarize(rows)
	}
	return summary, nil
}

func summarize(rows []schema.ValidationRecord) schema.ParameterValidationStats {
	n := float64(len(rows))

	var actualSum, predictedSum float64
	actualMin, actualMax := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		actualSum += r.Actual
		predictedSum += r.Predicted
		if r.Actual < actualMin {
			actualMin = r.Actual
		}
		if r.Actual > actualMax {
			actualMax = r.Actual
		}
	}
	actualMean := actualSum / n
	predictedMean := predictedSum / n

	var absErrSum, sqErrSum, actualVar, predictedVar, ssTot float64
	for _, r := range rows {
		diff := r.Predicted - r.Actual
		absErrSum += math.Abs(diff)
		sqErrSum += diff * diff
		actualVar += (r.Actual - actualMean) * (r.Actual - actualMean)
		predictedVar += (r.Predicted - predictedMean) * (r.Predicted - predictedMean)
		ssTot += (r.Actual - actualMean) * (r.Actual - actualMean)
	}

	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - sqErrSum/ssTot
	}

	return schema.ParameterValidationStats{
		ActualMean:    actualMean,
		PredictedMean: predictedMean,
		ActualStd:     math.Sqrt(actualVar / n),
		PredictedStd:  math.Sqrt(predictedVar / n),
		ActualMin:     actualMin,
		ActualMax:     actualMax,
		MAE:           absErrSum / n,
		RMSE:          math.Sqrt(sqErrSum / n),
		R2:            r2,
		Samples:       len(rows),
	}
}

// AvgWQIForLocation averages the sample WQI of a district or state for the
// alert engine. Returns the average and the matched sample count.
func (m *mongoDB) AvgWQIForLocation(location, locationType string) (float64, int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SampleCollection)

	field := "district"
	if locationType == schema.SubscriptionTypeState {
		field = "state"
	}

	pipeline := []bson.M{
		{"$match": bson.M{field: caseInsensitive(location)}},
		{"$group": bson.M{
			"_id":     nil,
			"avg_wqi": bson.M{"$avg": "$wqi"},
			"count":   bson.M{"$sum": 1},
		}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}

	var results []struct {
		AvgWQI float64 `bson:"avg_wqi"`
		Count  int     `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].AvgWQI, results[0].Count, nil
}
