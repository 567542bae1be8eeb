package store

import (
	"context"
	"fmt"

	"github.com/luminafashion/backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// ProductStore is the catalog collaborator backed by the products
// collection. Integer ids come from a counters document so the
// "higher id = newer" recency proxy holds across inserts.
type ProductStore struct {
	col      *mongo.Collection
	counters *mongo.Collection
	log      *zap.Logger
}

func NewProductStore(db *mongo.Database, log *zap.Logger) *ProductStore {
	return &ProductStore{
		col:      db.Collection("products"),
		counters: db.Collection("counters"),
		log:      log,
	}
}

// FetchAll loads the full catalog. A transport failure degrades to an
// empty catalog: the storefront shows no products rather than crashing.
func (s *ProductStore) FetchAll(ctx context.Context) []models.Product {
	cursor, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		s.log.Error("fetch products failed", zap.Error(err))
		return []models.Product{}
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	for cursor.Next(ctx) {
		var row models.ProductRow
		if err := cursor.Decode(&row); err != nil {
			s.log.Error("decode product row failed", zap.Error(err))
			return []models.Product{}
		}
		products = append(products, row.ToProduct())
	}
	if err := cursor.Err(); err != nil {
		s.log.Error("product cursor failed", zap.Error(err))
		return []models.Product{}
	}
	return products
}

// Insert writes a new product row, assigning the next integer id.
func (s *ProductStore) Insert(ctx context.Context, p models.Product) (models.Product, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return models.Product{}, fmt.Errorf("allocate product id: %w", err)
	}
	p.ID = id

	if _, err := s.col.InsertOne(ctx, models.RowFromProduct(p)); err != nil {
		return models.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *ProductStore) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := s.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "products"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
