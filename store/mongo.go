package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/covid-dashboard/schema"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
	loadTimeout    = 2 * time.Minute
)

// MongoStore - read-only access to the daily snapshot collections
type MongoStore interface {
	Snapshot
	Closer
	Pinger
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// Load - read every document of the collection of kind
func (m *mongoDB) Load(ctx context.Context, kind schema.TableKind) ([]string, []schema.RawRow, error) {
	collection := schema.CollectionFor(kind)
	c := m.client.Database(m.database).Collection(collection)

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"_id": 0})
	cursor, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "error": err}).Error("find snapshot")
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	cols := newColumnSet()
	rows := []schema.RawRow{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, nil, fmt.Errorf("decode %s document: %w", collection, err)
		}
		row := make(schema.RawRow, len(doc))
		for k, v := range doc {
			cols.add(k)
			row[k] = cell(v)
		}
		rows = append(rows, row)
	}
	if err := cursor.Err(); err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoSnapshot, collection)
	}

	log.WithFields(log.Fields{"prefix": mongoLogPrefix, "collection": collection, "rows": len(rows)}).Info("snapshot loaded")
	return cols.names(), rows, nil
}
