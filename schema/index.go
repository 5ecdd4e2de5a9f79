package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexSampleCollection())
	panicIfError(m.IndexForecastCollection())
	panicIfError(m.IndexValidationCollection())
}

func (m *MongoDBIndexer) IndexSampleCollection() error {
	if err := m.createIndex(SampleCollection, mongo.IndexModel{
		Keys: bson.M{
			"year": 1,
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(SampleCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "state", Value: 1},
			{Key: "district", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(SampleCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexForecastCollection() error {
	return m.createIndex(ForecastCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "district", Value: 1},
			{Key: "year", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexValidationCollection() error {
	if err := m.createIndex(ValidationCollection, mongo.IndexModel{
		Keys: bson.M{
			"parameter": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ValidationCollection, mongo.IndexModel{
		Keys: bson.M{
			"abs_error_pct": 1,
		},
	})
}
