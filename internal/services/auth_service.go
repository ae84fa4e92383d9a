package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/macrolog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrOwnerPassphraseNotSet  = errors.New("owner passphrase not set")
	ErrOwnerPassphraseInvalid = errors.New("owner passphrase invalid")
	ErrOwnerSettingsFailed    = errors.New("owner settings failed")
)

type OwnerSettingsRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// OwnerAuthService guards the API with a single owner passphrase. There are
// no user accounts; when no passphrase is stored the API stays open.
type OwnerAuthService struct {
	settings OwnerSettingsRepository
}

func NewOwnerAuthService(settings OwnerSettingsRepository) *OwnerAuthService {
	return &OwnerAuthService{settings: settings}
}

func (service *OwnerAuthService) PassphraseConfigured() (bool, error) {
	hash, found, err := service.settings.Get(models.SettingOwnerPassphraseHash)
	if err != nil {
		return false, ErrOwnerSettingsFailed
	}
	return found && strings.TrimSpace(hash) != "", nil
}

func (service *OwnerAuthService) SetPassphrase(passphrase string) error {
	if err := ValidatePassphraseStrength(passphrase); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := service.settings.Set(models.SettingOwnerPassphraseHash, string(hash)); err != nil {
		return ErrOwnerSettingsFailed
	}
	return nil
}

func (service *OwnerAuthService) VerifyPassphrase(passphrase string) error {
	hash, found, err := service.settings.Get(models.SettingOwnerPassphraseHash)
	if err != nil {
		return ErrOwnerSettingsFailed
	}
	if !found || strings.TrimSpace(hash) == "" {
		return ErrOwnerPassphraseNotSet
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) != nil {
		return ErrOwnerPassphraseInvalid
	}
	return nil
}
