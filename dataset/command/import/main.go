package main

import (
	"context"
	"flag"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/openaquifer/groundwater-api/dataset"
	"github.com/openaquifer/groundwater-api/geo"
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

// Loads raw CGWB CSV exports into the sample collection.
func main() {
	var defaultYear int
	flag.IntVar(&defaultYear, "year", 0, "year applied to rows without a year column")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("no input files, usage: import [-year N] file.csv ...")
	}

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

	var resolver geo.LocationResolver
	if apiKey := viper.GetString("maps.apikey"); apiKey != "" {
		mapsClient, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Panicf("create maps client with error: %s", err)
		}
		resolver = geo.NewGeocodingLocationResolver(mapsClient)
	}

	importer := dataset.NewImporter(mongoStore, resolver)

	total := 0
	for _, file := range files {
		n, err := importer.ImportFile(file, defaultYear)
		if err != nil {
			log.Panicf("import %s with error: %s", file, err)
		}
		total += n
	}

	log.WithField("prefix", "import").Infof("imported %d samples from %d files", total, len(files))
}
