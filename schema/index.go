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
	panicIfError(m.IndexGlobalDailyCollection())
	panicIfError(m.IndexCountryDailyCollection())
}

// IndexGlobalDailyCollection keeps one global sample per date.
func (m *MongoDBIndexer) IndexGlobalDailyCollection() error {
	return m.createIndex(GlobalDailyCollection, mongo.IndexModel{
		Keys: bson.M{
			FieldDate: 1,
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexCountryDailyCollection() error {
	if err := m.createIndex(CountryDailyCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: FieldCountry, Value: 1},
			{Key: FieldDate, Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	// cross-section queries (ranked, scatter) select one date across countries
	return m.createIndex(CountryDailyCollection, mongo.IndexModel{
		Keys: bson.M{
			FieldDate: 1,
		},
	})
}
