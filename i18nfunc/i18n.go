package i18nfunc

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.json
var embeddedTranslations embed.FS

const embeddedDir = "translations"

// ExternalDir is checked first so translations can be edited without a rebuild.
var ExternalDir = "translations"

var bundle *i18n.Bundle
var localizer *i18n.Localizer

// InitI18n initializes the i18n system with the given default language
func InitI18n(defaultLang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	// Embedded messages always load; external files override them.
	if err := loadEmbeddedTranslations(); err != nil {
		return fmt.Errorf("failed to load any translations: %w", err)
	}
	_ = loadExternalTranslations()

	setLanguage(defaultLang)
	return nil
}

// loadExternalTranslations loads translations from the external translations directory
func loadExternalTranslations() error {
	files, err := os.ReadDir(ExternalDir)
	if err != nil {
		return fmt.Errorf("failed to read translations directory: %w", err)
	}

	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			_, err := bundle.LoadMessageFile(filepath.Join(ExternalDir, file.Name()))
			if err != nil {
				return fmt.Errorf("failed to load translation file %s: %w", file.Name(), err)
			}
		}
	}
	return nil
}

// loadEmbeddedTranslations loads translations from embedded files
func loadEmbeddedTranslations() error {
	entries, err := embeddedTranslations.ReadDir(embeddedDir)
	if err != nil {
		return fmt.Errorf("failed to read embedded translations: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			data, err := embeddedTranslations.ReadFile(embeddedDir + "/" + entry.Name())
			if err != nil {
				return fmt.Errorf("failed to read embedded translation file %s: %w", entry.Name(), err)
			}

			_, err = bundle.ParseMessageFileBytes(data, entry.Name())
			if err != nil {
				return fmt.Errorf("failed to parse embedded translation file %s: %w", entry.Name(), err)
			}
		}
	}
	return nil
}

// setLanguage changes the current language
func setLanguage(lang string) {
	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message ID to the current language
func T(messageID string, templateData map[string]interface{}) string {
	if localizer == nil {
		return messageID
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		return messageID
	}
	return msg
}

// N translates a message with plural forms selected by count.
// The count is also available to the template as .Count.
func N(messageID string, count int) string {
	if localizer == nil {
		return messageID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		PluralCount:  count,
		TemplateData: map[string]interface{}{"Count": count},
	})
	if err != nil {
		return messageID
	}
	return msg
}
