package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type indexStep struct {
	Name       string
	Collection string
	Model      mongo.IndexModel
}

var steps = []indexStep{
	{
		Name:       "unique_user_email",
		Collection: "user",
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_user_email"),
		},
	},
	{
		Name:       "recipes_image",
		Collection: "recipes",
		Model: mongo.IndexModel{
			Keys:    bson.D{{Key: "image", Value: 1}},
			Options: options.Index().SetName("recipes_image"),
		},
	},
}

// EnsureIndexes creates the collection indexes the application relies on.
// Index creation is idempotent; an already-existing index with the same
// definition is a no-op on the server side.
func EnsureIndexes(ctx context.Context, db *mongo.Database, loc *time.Location) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "index_ensure_start",
		"status":    "in_progress",
		"db_name":   db.Name(),
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.Collection(step.Collection).Indexes().CreateOne(ctx, step.Model)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "index_ensure_failed",
				"status":           "error",
				"index_step":       step.Name,
				"error_message":    err.Error(),
				"db_name":          db.Name(),
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("index step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "index_ensure_step",
			"status":           "success",
			"index_step":       step.Name,
			"db_name":          db.Name(),
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "index_ensure_success",
		"status":      "success",
		"db_name":     db.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal index log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
