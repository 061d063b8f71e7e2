package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/salon-desk/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON files.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyWinSettings,
		config.TKeyMenuRefresh,
		config.TKeyMenuSettings,
		config.TKeyTrayStatus,
		config.TKeyTrayStatusZero,
		config.TKeyBtnAdd,
		config.TKeyNoAppointments,
		config.TKeyLblTodaysAppts,
		config.TKeyLblCustomer,
		config.TKeyLblPhone,
		config.TKeyLblNotes,
		config.TKeyTitleAddCustomer,
		config.TKeyLblFirstName,
		config.TKeyLblLastName,
		config.TKeyLblPhoneNumber,
		config.TKeyBtnImportVCard,
		config.TKeyBtnAddCustomer,
		config.TKeyBtnCancel,
		config.TKeyTitleAddAppt,
		config.TKeyLblBookingFor,
		config.TKeyLblService,
		config.TKeyLblStylist,
		config.TKeyBtnBook,
		config.TKeySaveError,
		config.TKeyErrNoSlot,
		config.TKeyLblBackend,
		config.TKeyLblURL,
		config.TKeyHelpURL,
		config.TKeyLblUser,
		config.TKeyLblPass,
		config.TKeyLblGeneral,
		config.TKeyLblLanguage,
		config.TKeyHelpLanguage,
		config.TKeyLblRefresh,
		config.TKeyHelpInterval,
		config.TKeyLblMinutes,
		config.TKeyLblFeedPort,
		config.TKeyHelpFeedPort,
		config.TKeyLblHours,
		config.TKeyLblOpensAt,
		config.TKeyLblClosesAt,
		config.TKeyHelpHours,
		config.TKeyBtnSave,
		config.TKeyLblFooter,
		config.TKeyErrPortReq,
		config.TKeyErrPortNum,
		config.TKeyErrPortRange,
		config.TKeyErrHours,
		config.TKeyNotifBooked,
		config.TKeyNotifRefreshErr,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, locale := range []string{"active.en.json", "active.fr.json"} {
		t.Run(locale, func(t *testing.T) {
			path := filepath.Join("locales", locale)
			content, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				// Fallback for running tests from different CWD
				path = filepath.Join("..", "..", "internal", "ui", "locales", locale)
				content, err = os.ReadFile(path)
			}
			require.NoError(t, err, "Must load %s", locale)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, locale)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, locale)
				}
			}
		})
	}
}
