package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ezforum-cli/shared"
	"ezforum-cli/types"

	"github.com/golang-jwt/jwt/v5"
)

func SetSession(store types.KeyValueStore, res *shared.AuthResponse) error {
	if res == nil || res.Token == "" {
		return fmt.Errorf("error setting session: no token in response")
	}

	userBytes, err := json.Marshal(res.User)
	if err != nil {
		return fmt.Errorf("error marshalling user: %v", err)
	}

	err = store.Set(types.StorageKeyToken, res.Token)
	if err != nil {
		return fmt.Errorf("error storing token: %v", err)
	}

	err = store.Set(types.StorageKeyUser, string(userBytes))
	if err != nil {
		return fmt.Errorf("error storing user: %v", err)
	}

	return nil
}

// SetUser replaces the stored profile, e.g. after a profile update.
func SetUser(store types.KeyValueStore, user *shared.User) error {
	userBytes, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error marshalling user: %v", err)
	}
	return store.Set(types.StorageKeyUser, string(userBytes))
}

// ClearSession removes both the token and the user, even when one removal
// fails.
func ClearSession(store types.KeyValueStore) error {
	var errs []error
	if err := store.Remove(types.StorageKeyToken); err != nil {
		errs = append(errs, fmt.Errorf("error removing token: %v", err))
	}
	if err := store.Remove(types.StorageKeyUser); err != nil {
		errs = append(errs, fmt.Errorf("error removing user: %v", err))
	}
	return errors.Join(errs...)
}

func IsSignedIn(store types.KeyValueStore) bool {
	return store.Get(types.StorageKeyToken) != ""
}

// CurrentUser returns the stored profile, or nil when nobody is signed in.
func CurrentUser(store types.KeyValueStore) (*shared.User, error) {
	raw := store.Get(types.StorageKeyUser)
	if raw == "" {
		return nil, nil
	}

	var user shared.User
	err := json.Unmarshal([]byte(raw), &user)
	if err != nil {
		return nil, fmt.Errorf("error unmarshalling stored user: %v", err)
	}
	return &user, nil
}

// TokenExpiry reads the exp claim of a JWT bearer token without verifying
// its signature. ok is false for opaque tokens or tokens without exp.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	date, err := parsed.Claims.GetExpirationTime()
	if err != nil || date == nil {
		return time.Time{}, false
	}
	return date.Time, true
}
