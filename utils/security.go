package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"venuebook/models"
)

const passwordCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	return string(bytes), err
}

// AddUser stores a new user with a hashed password. Usernames are not
// checked for uniqueness.
func AddUser(ctx context.Context, db DB, username string, password string) error {
	passwordHash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "INSERT INTO users (username, password_hash) VALUES ($1, $2);"
	if _, err = db.Exec(ctx, stmt, username, passwordHash); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// LoginUser checks password against the oldest user named username.
func LoginUser(ctx context.Context, db DB, username string, password string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, username, password_hash FROM users WHERE username = $1 ORDER BY id LIMIT 1;"
	user := &models.User{}
	err := db.QueryRow(ctx, stmt, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// GenerateToken signs an HS256 access token for userID.
func GenerateToken(userID int64, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
	})
	return token.SignedString(secret)
}

// ParseToken returns the user id carried by a valid token.
func ParseToken(tokenString string, secret []byte) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// Authorize checks the bearer token of r.
func Authorize(r *http.Request, secret []byte) (int64, error) {
	header := r.Header.Get("Authorization")
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return 0, errors.New("unauthorized: missing bearer token")
	}
	return ParseToken(tokenString, secret)
}
