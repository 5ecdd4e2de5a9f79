package main

import (
	"context"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openaquifer/groundwater-api/forecast"
	"github.com/openaquifer/groundwater-api/schema"
	"github.com/openaquifer/groundwater-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("groundwater")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	log.SetOutput(os.Stdout)
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

// Regenerates the forecast and validation collections from the current
// sample data.
func main() {
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}
	if err := client.Connect(context.Background()); err != nil {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mongoStore.Close()

	series, err := mongoStore.DistrictYearlySeries()
	if err != nil {
		log.Panicf("load yearly series with error: %s", err)
	}
	log.WithField("prefix", "generate").Infof("loaded %d district series", len(series))

	points := make([]schema.ForecastPoint, 0)
	for _, d := range series {
		points = append(points, forecast.GenerateDistrict(d)...)
	}
	if err := mongoStore.ReplaceForecasts(points); err != nil {
		log.Panicf("replace forecasts with error: %s", err)
	}
	log.WithField("prefix", "generate").Infof("stored %d forecast points", len(points))

	records := forecast.Validate(series, forecast.HoldoutYear)
	if err := mongoStore.ReplaceValidationRecords(records); err != nil {
		log.Panicf("replace validation records with error: %s", err)
	}
	log.WithField("prefix", "generate").Infof("stored %d validation records", len(records))
}
