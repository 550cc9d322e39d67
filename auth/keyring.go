// Package auth persists the catalog access token in the system keyring and resolves the token used for requests.
package auth

import (
	"errors"
	"strings"

	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const user = "tmdb-token"

// Source describes where the resolved token came from.
type Source string

const (
	SourceConfig  Source = "config"
	SourceKeyring Source = "keyring"
	SourceNone    Source = "none"
)

// SetToken persists the TMDB read access token to the system keyring.
func SetToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constant.App, user, token)
}

// GetToken retrieves the TMDB read access token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(constant.App, user)
}

// DeleteToken removes the TMDB read access token from the system keyring.
func DeleteToken() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Token resolves the credential for catalog requests: configuration or environment first, then the keyring.
// A missing token is not an error here; the catalog rejects the request and its message is shown instead.
func Token() (string, Source) {
	if token := strings.TrimSpace(viper.GetString(key.CatalogToken)); token != "" {
		return token, SourceConfig
	}

	if token, err := GetToken(); err == nil && token != "" {
		return token, SourceKeyring
	}

	return "", SourceNone
}
