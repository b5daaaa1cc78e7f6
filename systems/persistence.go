package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicMuted bool `json:"musicMuted"`
}

// ItemStore is the subset of gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SettingsStore reads and writes SavedSettings. A nil store is valid and
// behaves as if nothing was ever saved.
type SettingsStore struct {
	items ItemStore
}

func NewSettingsStore(items ItemStore) *SettingsStore {
	return &SettingsStore{items: items}
}

// OpenSettingsStore opens the per-user gdata storage for appName.
func OpenSettingsStore(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return NewSettingsStore(m), nil
}

// Load returns the saved settings, or defaults when none exist.
func (s *SettingsStore) Load() SavedSettings {
	var settings SavedSettings
	if s == nil || s.items == nil {
		return settings
	}

	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.WithError(err).Warn("could not load settings")
		return settings
	}
	if len(data) == 0 {
		return settings
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		log.WithError(err).Warn("could not parse saved settings")
		return SavedSettings{}
	}
	return settings
}

func (s *SettingsStore) Save(settings SavedSettings) error {
	if s == nil || s.items == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		log.WithError(err).Warn("could not save settings")
		return err
	}
	return nil
}
