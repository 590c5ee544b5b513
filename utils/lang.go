package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the message files under dir.
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if _, err := b.LoadMessageFile(path.Join(dir, "en.yaml")); err != nil {
		return err
	}
	bundle = b
	return nil
}

// Localizer resolves view descriptions for one locale.
type Localizer struct {
	lang string
	loc  *i18n.Localizer
}

func NewLocalizer(lang string) *Localizer {
	if bundle == nil {
		return &Localizer{lang: lang}
	}
	return &Localizer{lang: lang, loc: i18n.NewLocalizer(bundle, lang)}
}

// Text returns the message id rendered for entity, or an empty string
// when the message is unknown.
func (l *Localizer) Text(id, entity string) string {
	if l == nil || l.loc == nil {
		return ""
	}

	s, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID: id,
		TemplateData: map[string]interface{}{
			"Entity": entity,
		},
	})
	if err != nil {
		log.WithFields(log.Fields{"prefix": "i18n", "lang": l.lang, "id": id}).Debug("message not found")
		return ""
	}
	return s
}
