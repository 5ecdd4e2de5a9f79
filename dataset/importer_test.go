package dataset

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openaquifer/groundwater-api/geo"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/store"
)

type fakeSampleStore struct {
	inserted []schema.WaterSample
	err      error
}

func (f *fakeSampleStore) InsertSamples(samples []schema.WaterSample) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, samples...)
	return nil
}

// the remaining Sample methods are unused by the importer
func (f *fakeSampleStore) ListSamples(filter store.SampleFilter) ([]schema.WaterSample, int64, error) {
	return nil, 0, nil
}
func (f *fakeSampleStore) AvailableYears() ([]int, error) { return nil, nil }
func (f *fakeSampleStore) AvailableYearDetails() ([]schema.YearAvailability, error) {
	return nil, nil
}
func (f *fakeSampleStore) States() ([]string, error) { return nil, nil }

type fakeResolver struct {
	area  geo.AdministrativeArea
	err   error
	calls int
}

func (f *fakeResolver) GetAdministrativeArea(loc schema.Location) (geo.AdministrativeArea, error) {
	f.calls++
	return f.area, f.err
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "dataset")
	assert.Nil(t, err, "wrong TempDir")
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "samples.csv")
	err = ioutil.WriteFile(path, []byte(content), 0644)
	assert.Nil(t, err, "wrong WriteFile")
	return path
}

func TestImportFileBackfillsArea(t *testing.T) {
	csv := "pH,TDS,Latitude,Longitude\n7.0,300,26.91,75.78\n"
	path := writeTempCSV(t, csv)

	samples := &fakeSampleStore{}
	resolver := &fakeResolver{area: geo.AdministrativeArea{State: "Rajasthan", District: "Jaipur"}}

	im := NewImporter(samples, resolver)
	n, err := im.ImportFile(path, 2021)
	assert.Nil(t, err, "wrong ImportFile")
	assert.Equal(t, 1, n, "wrong inserted count")
	assert.Equal(t, 1, resolver.calls, "wrong resolver call count")

	assert.Len(t, samples.inserted, 1, "wrong store content")
	assert.Equal(t, "Rajasthan", samples.inserted[0].State, "state not backfilled")
	assert.Equal(t, "Jaipur", samples.inserted[0].District, "district not backfilled")
}

func TestImportFileKeepsRowOnResolverFailure(t *testing.T) {
	csv := "pH,TDS,Latitude,Longitude\n7.0,300,26.91,75.78\n"
	path := writeTempCSV(t, csv)

	samples := &fakeSampleStore{}
	resolver := &fakeResolver{err: fmt.Errorf("quota exceeded")}

	im := NewImporter(samples, resolver)
	n, err := im.ImportFile(path, 2021)
	assert.Nil(t, err, "wrong ImportFile")
	assert.Equal(t, 1, n, "row must survive a failed lookup")
	assert.Empty(t, samples.inserted[0].State, "state must stay empty")
}

func TestImportFileWithoutResolver(t *testing.T) {
	csv := "STATE,DISTRICT,pH,TDS\nRajasthan,Jaipur,7.0,300\n"
	path := writeTempCSV(t, csv)

	samples := &fakeSampleStore{}
	im := NewImporter(samples, nil)

	n, err := im.ImportFile(path, 2021)
	assert.Nil(t, err, "wrong ImportFile")
	assert.Equal(t, 1, n, "wrong inserted count")
}
