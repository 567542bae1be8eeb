package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

// SeedAdminUser makes sure the designated administrator account exists.
func SeedAdminUser(ctx context.Context, profilesCol *mongo.Collection, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("missing ADMIN_EMAIL or ADMIN_PASSWORD env vars")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now().UTC()

	// Only insert if it doesn't exist
	filter := bson.M{"email": email}
	update := bson.M{
		"$setOnInsert": bson.M{
			"name":         "Admin",
			"email":        email,
			"passwordHash": hash,
			"theme":        "light",
			"createdAt":    now,
			"updatedAt":    now,
		},
	}

	opts := options.UpdateOne().SetUpsert(true)
	res, err := profilesCol.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("seed admin upsert failed: %w", err)
	}

	if res.UpsertedCount == 1 {
		zap.L().Info("admin user seeded", zap.String("email", email))
	} else {
		zap.L().Info("admin user already exists", zap.String("email", email))
	}
	return nil
}
