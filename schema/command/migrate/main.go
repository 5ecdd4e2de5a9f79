package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/openaquifer/groundwater-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("groundwater")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS groundwater`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO groundwater").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Subscription{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.Subscription{}).
		AddUniqueIndex("subscription_unique_target", "email", "location", "type").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
