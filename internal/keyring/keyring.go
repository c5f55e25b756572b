// Package keyring stores resource credentials in the OS keyring so that
// secrets never land in the data file.
package keyring

import (
	"errors"
	"fmt"

	"github.com/julianstephens/tempo/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no secret is stored for the resource
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func secretKey(resourceID string) string {
	return constants.KeyringSecretPrefix + resourceID
}

// GetResourceSecret retrieves the stored secret for a resource.
// Returns ErrNotFound if no secret is stored.
func GetResourceSecret(resourceID string) (string, error) {
	secret, err := keyring.Get(constants.AppName, secretKey(resourceID))
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetResourceSecret stores a secret for a resource in the OS keyring.
func SetResourceSecret(resourceID, secret string) error {
	if secret == "" {
		return errors.New("secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, secretKey(resourceID), secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteResourceSecret removes a resource's secret from the OS keyring.
func DeleteResourceSecret(resourceID string) error {
	err := keyring.Delete(constants.AppName, secretKey(resourceID))
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is reachable but empty
	return err == nil || err == keyring.ErrNotFound
}
