package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
)

const matchCollection = "matches"

// MongoMatchArchive stores finished matches for later review.
type MongoMatchArchive struct {
	log   *zap.SugaredLogger
	mongo *mongo.Database
}

func NewMongoMatchArchive(log *zap.SugaredLogger, db *mongo.Database) *MongoMatchArchive {
	return &MongoMatchArchive{
		log:   log,
		mongo: db,
	}
}

func (a *MongoMatchArchive) Archive(ctx context.Context, m *match.Match) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := a.mongo.Collection(matchCollection)

	_, err := collection.InsertOne(ctx, m)
	if err != nil {
		a.log.Errorf("failed to archive match %s: %v", m.ID, err)
		return err
	}

	a.log.Infof("match %s archived", m.ID)
	return nil
}

func (a *MongoMatchArchive) Find(ctx context.Context, id string) (*match.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := a.mongo.Collection(matchCollection)
	filter := bson.M{"id": id}

	var m match.Match
	err := collection.FindOne(ctx, filter).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, cherrors.ErrMatchNotFound
	} else if err != nil {
		a.log.Error(err)
		return nil, err
	}

	return &m, nil
}

func (a *MongoMatchArchive) ListByResult(ctx context.Context, result string) ([]*match.Match, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := a.mongo.Collection(matchCollection)
	filter := bson.M{}
	if result != "" {
		filter["result"] = result
	}

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		a.log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var matches []*match.Match
	for cursor.Next(ctx) {
		var m match.Match
		if err = cursor.Decode(&m); err != nil {
			a.log.Error(err)
			return nil, err
		}
		matches = append(matches, &m)
	}

	return matches, nil
}
