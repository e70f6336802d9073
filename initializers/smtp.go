package initializers

import (
	"interview-scheduler/config"
	"interview-scheduler/lib/smtp"

	log "github.com/sirupsen/logrus"
)

func InitSmtp() {
	cfg := config.Conf.Smtp
	err := smtp.Connect(smtp.Settings{
		User:       cfg.User,
		Password:   cfg.Password,
		Host:       cfg.Host,
		Port:       cfg.Port,
		Sender:     cfg.Sender,
		TLSEnabled: *cfg.TLSEnabled,
	})
	if err != nil {
		log.WithError(err).Fatal("ошибка настройки smtp клиента")
	}
}
