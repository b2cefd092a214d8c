// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-voice-notes/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errInvalidTokenParams = errors.New("jwt: issuer, duration and sign key are required")
	errEmptySubject       = errors.New("jwt: empty subject")
	errInvalidBearer      = errors.New("invalid authorization header")
)

// userClaims are the registered claims plus the email share grants are
// matched against.
type userClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// GenerateJWTToken signs an HS256 access token for userID that expires
// after tokenDuration.
func GenerateJWTToken(issuer string, userID int64, email string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errInvalidTokenParams
	}

	now := time.Now()
	claims := &userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return newToken(token, claims, signed, userID), nil
}

// ValidateAndParseJWTToken checks the signature, the issuer and the expiry
// of tokenString and returns its owner.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &userClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(tokenSignKey), nil },
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errEmptySubject
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token subject: %w", err)
	}

	return newToken(token, claims, tokenString, userID), nil
}

func newToken(token *jwt.Token, claims *userClaims, signed string, userID int64) models.Token {
	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     signed,
		UserID:           userID,
		Email:            claims.Email,
	}
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// value. gRPC metadata uses the same format.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errInvalidBearer
	}
	return parts[1], nil
}
