package initializers

import (
	"context"
	"interview-scheduler/config"
	"interview-scheduler/fiberlog"
	authhandler "interview-scheduler/lib/auth"
	candidatehandler "interview-scheduler/lib/candidate"
	steptypeprovider "interview-scheduler/lib/dicts/step-type"
	eventhandler "interview-scheduler/lib/event"
	xlsexport "interview-scheduler/lib/export/xls"
	feedbackhandler "interview-scheduler/lib/feedback"
	"interview-scheduler/lib/i18n"
	participanthandler "interview-scheduler/lib/participant"
	stephandler "interview-scheduler/lib/recruitment-step"
	reminderworker "interview-scheduler/lib/reminder-worker"
	"time"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	config.InitConfig()
	LoggerConfig = InitLogger(config.Conf.App.LogLevel)
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	i18n.NewHandler(config.Conf.App.Locale)
	xlsexport.NewHandler()
	authhandler.NewHandler()
	steptypeprovider.NewHandler()
	participanthandler.NewHandler()
	candidatehandler.NewHandler()
	stephandler.NewHandler()
	eventhandler.NewHandler()
	feedbackhandler.NewHandler()
	initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача рассылки напоминаний интервьюерам о предстоящих собеседованиях
	if *config.Conf.Reminder.Enabled {
		reminderworker.StartWorker(ctx,
			time.Duration(config.Conf.Reminder.PeriodInSec)*time.Second,
			time.Duration(config.Conf.Reminder.LeadInMin)*time.Minute)
	} else {
		log.Info("напоминания интервьюерам отключены")
	}
}
