package smtp

import (
	"fmt"
	"io"
	"mime"
	"net"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var Instance Provider

type Provider interface {
	SendEMail(to, subject, message string) error
}

type Settings struct {
	User       string
	Password   string
	Host       string
	Port       string
	Sender     string
	TLSEnabled bool
}

func (s Settings) configured() bool {
	return s.User != "" && s.Host != "" && s.Port != ""
}

func Connect(settings Settings) error {
	if settings.Host != "" && settings.Port == "" {
		return errors.New("не указан порт smtp сервера")
	}
	Instance = &impl{
		settings: settings,
		now:      time.Now,
		send:     sendMail,
	}
	if !settings.configured() {
		log.Warn("smtp клиент не настроен, письма отправляться не будут")
	}
	return nil
}

type sendFunc func(addr string, tls bool, a sasl.Client, from string, to []string, r io.Reader) error

func sendMail(addr string, tls bool, a sasl.Client, from string, to []string, r io.Reader) error {
	if tls {
		return smtp.SendMailTLS(addr, a, from, to, r)
	}
	return smtp.SendMail(addr, a, from, to, r)
}

type impl struct {
	settings Settings
	now      func() time.Time
	send     sendFunc
}

func (i impl) SendEMail(to, subject, message string) error {
	logger := log.WithField("recipient", to)
	if !i.settings.configured() {
		logger.Warn("письмо не отправлено, smtp клиент не настроен")
		return nil
	}
	auth := sasl.NewPlainClient("", i.settings.User, i.settings.Password)
	addr := net.JoinHostPort(i.settings.Host, i.settings.Port)
	body := buildMessage(i.settings, to, subject, message, i.now())
	err := i.send(addr, i.settings.TLSEnabled, auth, i.settings.User, []string{to}, strings.NewReader(body))
	if err != nil {
		logger.WithError(err).Error("ошибка отправки письма")
		return errors.Wrap(err, "ошибка отправки письма")
	}
	logger.Info("письмо отправлено")
	return nil
}

func buildMessage(settings Settings, to, subject, message string, now time.Time) string {
	from := settings.User
	if settings.Sender != "" {
		from = fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", settings.Sender), settings.User)
	}
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"Date: " + now.Format(time.RFC1123Z),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"Content-Transfer-Encoding: 8bit",
	}
	body := strings.ReplaceAll(message, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "\r\n")
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body + "\r\n"
}
