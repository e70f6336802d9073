package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

const (
	MsgInvitationSubject  = "invitation_subject"
	MsgInvitationBody     = "invitation_body"
	MsgReminderSubject    = "reminder_subject"
	MsgReminderBody       = "reminder_body"
	msgStatusPrefix       = "status_"
	defaultFallbackLocale = "en"
)

type Translator interface {
	// T текст сообщения key для locale, при отсутствии перевода - для локали по умолчанию, затем сам key
	T(locale, key string, data map[string]any) string
	DefaultLocale() string
}

var Instance Translator

func NewHandler(defaultLocale string) {
	Instance = NewTranslator(defaultLocale)
}

type impl struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

func NewTranslator(defaultLocale string) Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Make(defaultFallbackLocale)
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range []string{"active.en.toml", "active.ru.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.WithError(err).WithField("file", file).Error("ошибка загрузки файла переводов")
		}
	}
	return impl{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

func (i impl) DefaultLocale() string {
	return i.defaultLanguage.String()
}

func (i impl) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, i.defaultLanguage.String())

	localizer := i18n.NewLocalizer(i.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.WithError(err).
			WithField("key", key).
			WithField("locales", languages).
			Warn("перевод не найден")
		return key
	}
	return msg
}

func StatusKey(status string) string {
	return msgStatusPrefix + status
}
