package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

type MongoTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewMongoTestSuite(connURI, dbName string) *MongoTestSuite {
	return &MongoTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoTestSuite) SetupSuite() {
	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}
	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.testDatabase.Drop(context.Background()); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *MongoTestSuite) LoadMongoDBFixtures() error {
	c := s.testDatabase.Collection(schema.CountryDailyCollection)
	_, err := c.InsertMany(context.Background(), []interface{}{
		bson.M{"country": "US", "date": time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), "cases": 100.0, "deaths": int32(2)},
		bson.M{"country": "US", "date": "2021-01-02", "cases": 120.0, "deaths": nil},
	})
	return err
}

func (s *MongoTestSuite) TearDownSuite() {
	_ = s.testDatabase.Drop(context.Background())
	s.store.Close()
}

func (s *MongoTestSuite) TestPing() {
	s.NoError(s.store.Ping())
}

func (s *MongoTestSuite) TestLoadCountry() {
	columns, rows, err := s.store.Load(context.Background(), schema.PerEntity)
	s.Require().NoError(err)
	s.Equal([]string{"cases", "country", "date", "deaths"}, columns)
	s.Require().Len(rows, 2)

	byDate := map[string]schema.RawRow{}
	for _, r := range rows {
		byDate[r["date"]] = r
	}
	s.Equal("100", byDate["2021-01-01T00:00:00Z"]["cases"])
	s.Equal("2", byDate["2021-01-01T00:00:00Z"]["deaths"])
	s.Equal("", byDate["2021-01-02"]["deaths"])
}

func (s *MongoTestSuite) TestLoadEmptyCollection() {
	_, _, err := s.store.Load(context.Background(), schema.Aggregate)
	s.True(errors.Is(err, ErrNoSnapshot))
}

func TestMongoTestSuite(t *testing.T) {
	uri := os.Getenv("DASHBOARD_TEST_MONGO")
	if uri == "" {
		t.Skip("DASHBOARD_TEST_MONGO is not set")
	}
	suite.Run(t, NewMongoTestSuite(uri, "test-db"))
}
