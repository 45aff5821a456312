package config

import (
	"os"

	"github.com/tintbar-io/tintbar/internal/models"
)

// defaultBlacklist is the exclude.conf seeded on first run. The stock rules
// cover shell surfaces that report themselves maximised.
const defaultBlacklist = `; Dynamic windows exclusion rules.
; One rule per line, values separated by commas.
;   class,<exact window class>
;   title,<substring of the window title>
;   exename,<executable name, case insensitive>
class,TaskListThumbnailWnd
exename,searchui.exe
`

// LoadSettings loads the global settings from ~/.tintbar/settings.yaml.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves the global settings to ~/.tintbar/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// EnsureDefaultFiles seeds settings.yaml and exclude.conf on first run so
// users have something to edit. Existing files are left untouched.
func EnsureDefaultFiles() error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	settingsPath, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	if !FileExists(settingsPath) {
		if err := SaveYAML(settingsPath, models.NewSettings()); err != nil {
			return err
		}
	}

	blacklistPath, err := GlobalBlacklistFile()
	if err != nil {
		return err
	}
	if !FileExists(blacklistPath) {
		if err := os.WriteFile(blacklistPath, []byte(defaultBlacklist), 0644); err != nil {
			return err
		}
	}
	return nil
}
