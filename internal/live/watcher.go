package live

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Watcher keeps a hub fed with snapshots of one collection. It opens a
// change stream and reloads the full collection on every event, which
// matches the snapshot-per-change semantics the storefront listens for.
type Watcher struct {
	coll *mongo.Collection
	hub  *Hub
}

func NewWatcher(coll *mongo.Collection, hub *Hub) *Watcher {
	return &Watcher{coll: coll, hub: hub}
}

// Run publishes the initial snapshot, then one snapshot per change
// event until ctx is done or the stream fails. Change streams require a
// replica set; the caller decides how to handle the error.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.publishSnapshot(ctx); err != nil {
		return fmt.Errorf("initial snapshot: %w", err)
	}

	stream, err := w.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return fmt.Errorf("watch %s: %w", w.coll.Name(), err)
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		if err := w.publishSnapshot(ctx); err != nil {
			return fmt.Errorf("snapshot after change: %w", err)
		}
	}
	return stream.Err()
}

func (w *Watcher) publishSnapshot(ctx context.Context) error {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := w.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err = cursor.All(ctx, &docs); err != nil {
		return err
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return err
	}

	w.hub.Publish(payload)
	return nil
}
