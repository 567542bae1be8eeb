package store

import (
	"context"
	"strings"
	"time"

	"github.com/luminafashion/backend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

// ProfileStore is the identity collaborator's storage side: account
// records plus refresh tokens.
type ProfileStore struct {
	profiles *mongo.Collection
	tokens   *mongo.Collection
	log      *zap.Logger
}

func NewProfileStore(db *mongo.Database, log *zap.Logger) *ProfileStore {
	return &ProfileStore{
		profiles: db.Collection("profiles"),
		tokens:   db.Collection("refresh_tokens"),
		log:      log,
	}
}

func (s *ProfileStore) Collection() *mongo.Collection {
	return s.profiles
}

func (s *ProfileStore) FindByEmail(ctx context.Context, email string) (models.Profile, error) {
	var p models.Profile
	err := s.profiles.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&p)
	return p, err
}

func (s *ProfileStore) FindByID(ctx context.Context, id bson.ObjectID) (models.Profile, error) {
	var p models.Profile
	err := s.profiles.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	return p, err
}

func (s *ProfileStore) Create(ctx context.Context, name, email, passwordHash string) (models.Profile, error) {
	now := time.Now().UTC()
	p := models.Profile{
		ID:           bson.NewObjectID(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Theme:        models.ThemeLight,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := s.profiles.InsertOne(ctx, p)
	return p, err
}

// SetTheme persists the preference so it survives process restarts.
func (s *ProfileStore) SetTheme(ctx context.Context, id bson.ObjectID, theme models.Theme) {
	_, err := s.profiles.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"theme": theme, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		s.log.Warn("persist theme failed", zap.String("user_id", id.Hex()), zap.Error(err))
	}
}

// --- refresh tokens (teacher flow: rotate on refresh, revoke on logout) ---

func (s *ProfileStore) InsertRefreshToken(ctx context.Context, rt models.RefreshToken) error {
	_, err := s.tokens.InsertOne(ctx, rt)
	return err
}

func (s *ProfileStore) FindActiveRefreshToken(ctx context.Context, hash string) (models.RefreshToken, error) {
	var rt models.RefreshToken
	err := s.tokens.FindOne(ctx, bson.M{
		"tokenHash": hash,
		"revokedAt": bson.M{"$exists": false},
		"expiresAt": bson.M{"$gt": time.Now().UTC()},
	}).Decode(&rt)
	return rt, err
}

func (s *ProfileStore) RotateRefreshToken(ctx context.Context, old models.RefreshToken, newHash string, ttl time.Duration) error {
	now := time.Now().UTC()
	_, err := s.tokens.UpdateByID(ctx, old.ID, bson.M{
		"$set": bson.M{"revokedAt": now, "replacedBy": newHash},
	})
	if err != nil {
		return err
	}
	_, err = s.tokens.InsertOne(ctx, models.RefreshToken{
		UserID:    old.UserID,
		TokenHash: newHash,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	})
	return err
}

// RevokeRefreshToken is best effort; logout proceeds regardless.
func (s *ProfileStore) RevokeRefreshToken(ctx context.Context, hash string) {
	if hash == "" {
		return
	}
	now := time.Now().UTC()
	_, err := s.tokens.UpdateOne(ctx, bson.M{
		"tokenHash": hash,
		"revokedAt": bson.M{"$exists": false},
	}, bson.M{
		"$set": bson.M{"revokedAt": now},
	})
	if err != nil {
		s.log.Warn("revoke refresh token failed", zap.Error(err))
	}
}
