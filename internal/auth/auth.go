package auth

import (
	"crypto/rand"   // Salt generation
	"crypto/subtle" // Constant-time comparison
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"golang.org/x/crypto/argon2"   // Current password hashing scheme
	"golang.org/x/crypto/bcrypt"   // Legacy password hashing scheme, verify only
)

// Errors surfaced by the authenticator
var (
	ErrPasswordTooLong = errors.New("password too long")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// MaxPasswordLen caps hash input so pathological payloads are rejected, not hashed
const MaxPasswordLen = 256

// Config holds the tunable hashing and token parameters.
// Passing it explicitly keeps tests isolated from process-wide state.
type Config struct {
	Secret      string        // JWT signing secret (HS256)
	TokenTTL    time.Duration // Token lifetime, defaults to 60 minutes
	Memory      uint32        // Argon2id memory cost in KiB, defaults to 64 MiB
	Time        uint32        // Argon2id time cost, defaults to 3
	Parallelism uint8         // Argon2id lanes, defaults to 1
}

// Authenticator hashes passwords and issues/resolves bearer tokens
type Authenticator struct {
	cfg Config
}

// New builds an Authenticator, filling zero-valued knobs with defaults
func New(cfg Config) *Authenticator {
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 60 * time.Minute
	}
	if cfg.Memory == 0 {
		cfg.Memory = 64 * 1024
	}
	if cfg.Time == 0 {
		cfg.Time = 3
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = 1
	}
	return &Authenticator{cfg: cfg}
}

const (
	saltLen = 16 // Salt bytes per hash
	keyLen  = 32 // Derived key bytes
)

// HashPassword derives an Argon2id hash in the self-describing PHC string form
// ($argon2id$v=19$m=...,t=...,p=...$salt$digest), so verification never needs
// the parameters stored elsewhere.
func (a *Authenticator) HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLen {
		return "", ErrPasswordTooLong
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, a.cfg.Time, a.cfg.Memory, a.cfg.Parallelism, keyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, a.cfg.Memory, a.cfg.Time, a.cfg.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// Argon2id is the current scheme; bcrypt hashes from earlier deployments
// still verify so existing accounts keep working.
func (a *Authenticator) VerifyPassword(password, hash string) bool {
	if len(password) > MaxPasswordLen {
		return false
	}
	// Legacy bcrypt hashes start with $2a$/$2b$/$2y$
	if strings.HasPrefix(hash, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return verifyArgon2id(password, hash)
}

// verifyArgon2id recomputes the digest with the parameters embedded in the hash
func verifyArgon2id(password, hash string) bool {
	parts := strings.Split(hash, "$")
	// ["", "argon2id", "v=19", "m=..,t=..,p=..", salt, digest]
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}
	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}
	var memory, timeCost uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &timeCost, &parallelism); err != nil {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, timeCost, memory, parallelism, uint32(len(digest)))
	return subtle.ConstantTimeCompare(computed, digest) == 1
}

// Claims carried by issued tokens
type Claims struct {
	jwt.RegisteredClaims // Subject holds the username
}

// IssueToken creates a signed token for the given username, expiring after
// the configured TTL
func (a *Authenticator) IssueToken(username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.cfg.Secret))
}

// ResolveToken verifies signature and expiry and returns the subject username.
// Any malformed, tampered or expired token fails closed with ErrInvalidToken.
func (a *Authenticator) ResolveToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(a.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
