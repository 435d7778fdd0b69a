package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/errs"
	"Game2048/internal/game/infra/persistence/model"
)

const defaultResultCollectionName = "game_result"

const (
	OpSave        = "repo.result.Save"
	OpTop         = "repo.result.Top"
	OpEnsureIndex = "repo.result.EnsureIndex"
)

var errNilCollection = errors.New("mongodb result collection is nil")

type ResultRepo struct {
	coll *mongo.Collection
}

func NewResultRepo(db *mongo.Database) *ResultRepo {
	if db == nil {
		return &ResultRepo{}
	}
	return &ResultRepo{coll: db.Collection(defaultResultCollectionName)}
}

// EnsureIndex 为排行榜查询建立 (score desc, finished_at asc) 索引。
func (r *ResultRepo) EnsureIndex(ctx context.Context) error {
	if r == nil || r.coll == nil {
		return errs.Wrap(OpEnsureIndex, errs.KindInfra, errNilCollection, nil)
	}
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "score", Value: -1}, {Key: "finished_at", Value: 1}},
	})
	return errs.Wrap(OpEnsureIndex, errs.KindInfra, err, nil)
}

func (r *ResultRepo) Save(ctx context.Context, res entity.GameResult) error {
	if r == nil || r.coll == nil {
		return errs.Wrap(OpSave, errs.KindInfra, errNilCollection, nil)
	}
	doc := model.ResultFromEntity(res)
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"_id": doc.SessionID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return errs.Wrap(OpSave, errs.KindInfra, err, map[string]any{"session_id": doc.SessionID})
}

func (r *ResultRepo) Top(ctx context.Context, limit int) ([]entity.GameResult, error) {
	if r == nil || r.coll == nil {
		return nil, errs.Wrap(OpTop, errs.KindInfra, errNilCollection, nil)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "finished_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errs.Wrap(OpTop, errs.KindInfra, err, map[string]any{"limit": limit})
	}
	defer cur.Close(ctx)

	var docs []model.GameResult
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errs.Wrap(OpTop, errs.KindInfra, err, map[string]any{"limit": limit})
	}
	out := make([]entity.GameResult, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToEntity())
	}
	return out, nil
}
