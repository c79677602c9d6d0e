package services

import (
	"context"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance
var TokenBlacklist *RedisTokenBlacklist

func InitTokenBlacklist(client *redis.Client) {
	TokenBlacklist = &RedisTokenBlacklist{Client: client}
}

// BlacklistToken invalidates a token until its natural expiry.
func BlacklistToken(tokenString string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	return TokenBlacklist.blacklist(tokenString)
}

// IsTokenBlacklisted reports whether the token has been invalidated.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	exists, err := TokenBlacklist.Client.Exists(ctx, blacklistKey(tokenString)).Result()
	if err != nil {
		// Fail open on Redis errors; the token itself still has to verify.
		return false
	}
	return exists > 0
}

func (b *RedisTokenBlacklist) blacklist(tokenString string) error {
	ttl := time.Duration(utils.JWTExpirationTime) * time.Second

	// Use the token's remaining lifetime when parseable, so keys expire with
	// the tokens they block.
	parser := jwt.NewParser()
	if token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{}); err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
					ttl = remaining
				}
			}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := b.Client.Set(ctx, blacklistKey(tokenString), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func blacklistKey(tokenString string) string {
	return "blacklist:" + tokenString
}
