package identity

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/guestwall/guestwall-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LocalProvider is a database-backed provider for self-hosted deployments.
// Tokens are opaque random strings stored hashed, with expiry and
// revocation.
type LocalProvider struct {
	db       *gorm.DB
	tokenTTL time.Duration
}

func NewLocalProvider(db *gorm.DB, tokenTTL time.Duration) *LocalProvider {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &LocalProvider{db: db, tokenTTL: tokenTTL}
}

func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (*Identity, string, error) {
	var user models.LocalUser
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.IdentityToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(p.tokenTTL),
	}
	if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, "", fmt.Errorf("failed to store access token: %w", err)
	}

	return identityOf(&user), rawToken, nil
}

func (p *LocalProvider) GetIdentity(ctx context.Context, token string) (*Identity, error) {
	var stored models.IdentityToken
	err := p.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = false", hashToken(token)).
		First(&stored).Error
	if err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		p.db.WithContext(ctx).Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	var user models.LocalUser
	if err := p.db.WithContext(ctx).First(&user, "id = ?", stored.UserID).Error; err != nil {
		return nil, ErrInvalidToken
	}
	return identityOf(&user), nil
}

func (p *LocalProvider) Revoke(ctx context.Context, token string) error {
	return p.db.WithContext(ctx).Model(&models.IdentityToken{}).
		Where("token_hash = ?", hashToken(token)).
		Update("revoked", true).Error
}

func identityOf(user *models.LocalUser) *Identity {
	return &Identity{
		ID:           user.ID.String(),
		Email:        user.Email,
		UserMetadata: map[string]interface{}(user.UserMetadata),
		AppMetadata:  map[string]interface{}(user.AppMetadata),
	}
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
