package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salonpro-web/models"
)

// SessionRecord is the web_sessions row. Token is sealed, UserJSON holds the
// cached profile.
type SessionRecord struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Token       []byte    `gorm:"not null"`
	TokenType   string    `gorm:"size:20"`
	UserJSON    string    `gorm:"column:user_json;type:text;not null"`
	ExpiresAt   time.Time `gorm:"index"`
	ValidatedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SessionRecord) TableName() string { return "web_sessions" }

type GormSessionStore struct {
	db     *gorm.DB
	sealer *TokenSealer
}

func NewGormSessionStore(db *gorm.DB, sealer *TokenSealer) *GormSessionStore {
	return &GormSessionStore{db: db, sealer: sealer}
}

// Migrate creates the web_sessions table.
func (s *GormSessionStore) Migrate() error {
	return s.db.AutoMigrate(&SessionRecord{})
}

func (s *GormSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	var rec SessionRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return decodeSession(s.sealer, rec.ID, storedSession{
		Token:       rec.Token,
		TokenType:   rec.TokenType,
		User:        []byte(rec.UserJSON),
		ExpiresAt:   rec.ExpiresAt,
		ValidatedAt: rec.ValidatedAt,
	})
}

func (s *GormSessionStore) Save(ctx context.Context, sess *models.Session) error {
	enc, err := encodeSession(s.sealer, sess)
	if err != nil {
		return err
	}
	rec := SessionRecord{
		ID:          sess.ID,
		Token:       enc.Token,
		TokenType:   enc.TokenType,
		UserJSON:    string(enc.User),
		ExpiresAt:   enc.ExpiresAt.UTC(),
		ValidatedAt: enc.ValidatedAt.UTC(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "token_type", "user_json", "expires_at", "validated_at", "updated_at"}),
	}).Create(&rec).Error
}

func (s *GormSessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&SessionRecord{}, "id = ?", id).Error
}

func (s *GormSessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&SessionRecord{})
	return res.RowsAffected, res.Error
}
