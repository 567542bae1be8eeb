package store

import (
	"context"
	"fmt"
	"time"

	"github.com/luminafashion/backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// OrderStore is the order collaborator: one header row in orders plus N
// item rows in order_items, both keyed by the client-generated order id.
type OrderStore struct {
	orders   *mongo.Collection
	items    *mongo.Collection
	profiles *mongo.Collection
	log      *zap.Logger
}

func NewOrderStore(db *mongo.Database, log *zap.Logger) *OrderStore {
	return &OrderStore{
		orders:   db.Collection("orders"),
		items:    db.Collection("order_items"),
		profiles: db.Collection("profiles"),
		log:      log,
	}
}

// CreateOrder persists the header then the item rows. If the items fail
// the whole attempt is reported as failed and the header is removed
// best-effort; the shared client-generated id makes a leftover header
// identifiable. No retries.
func (s *OrderStore) CreateOrder(ctx context.Context, order models.Order, userID string) error {
	header := models.OrderRow{
		ID:              order.ID,
		UserID:          userID,
		Total:           order.Total,
		Status:          string(order.Status),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.Date,
	}
	if _, err := s.orders.InsertOne(ctx, header); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	rows := make([]interface{}, 0, len(order.Items))
	for _, item := range order.Items {
		rows = append(rows, models.OrderItemRow{
			OrderID:         order.ID,
			ProductID:       item.Product.ID,
			ProductName:     item.Product.Name,
			ProductImage:    item.Product.Image,
			Size:            item.Size,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Product.Price,
		})
	}
	if _, err := s.items.InsertMany(ctx, rows); err != nil {
		if _, delErr := s.orders.DeleteOne(ctx, bson.M{"_id": order.ID}); delErr != nil {
			s.log.Warn("orphan order header left behind",
				zap.String("order_id", order.ID), zap.Error(delErr))
		}
		return fmt.Errorf("insert order items: %w", err)
	}
	return nil
}

// GetUserOrders returns the user's history newest first. Failures
// degrade to an empty history, logged, never surfaced as a crash.
func (s *OrderStore) GetUserOrders(ctx context.Context, userID string) []models.Order {
	return s.fetch(ctx, bson.M{"user_id": userID}, false)
}

// GetAllOrders is the admin console read: every order, joined with the
// buyer's profile name and email.
func (s *OrderStore) GetAllOrders(ctx context.Context) []models.Order {
	return s.fetch(ctx, bson.M{}, true)
}

func (s *OrderStore) fetch(ctx context.Context, filter bson.M, withCustomer bool) []models.Order {
	cursor, err := s.orders.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		s.log.Error("fetch orders failed", zap.Error(err))
		return []models.Order{}
	}
	defer cursor.Close(ctx)

	out := make([]models.Order, 0)
	for cursor.Next(ctx) {
		var row models.OrderRow
		if err := cursor.Decode(&row); err != nil {
			s.log.Error("decode order row failed", zap.Error(err))
			return []models.Order{}
		}

		items, err := s.fetchItems(ctx, row.ID)
		if err != nil {
			s.log.Error("fetch order items failed",
				zap.String("order_id", row.ID), zap.Error(err))
			return []models.Order{}
		}

		order := row.ToOrder(items)
		if withCustomer {
			order.Customer = s.customerFor(ctx, row.UserID)
		}
		out = append(out, order)
	}
	if err := cursor.Err(); err != nil {
		s.log.Error("order cursor failed", zap.Error(err))
		return []models.Order{}
	}
	return out
}

func (s *OrderStore) fetchItems(ctx context.Context, orderID string) ([]models.OrderItemRow, error) {
	cursor, err := s.items.Find(ctx, bson.M{"order_id": orderID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.OrderItemRow
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *OrderStore) customerFor(ctx context.Context, userID string) *models.Customer {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return &models.Customer{Name: "Unknown"}
	}
	var profile models.Profile
	findCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.profiles.FindOne(findCtx, bson.M{"_id": oid}).Decode(&profile); err != nil {
		return &models.Customer{Name: "Unknown"}
	}
	return &models.Customer{Name: profile.Name, Email: profile.Email}
}
