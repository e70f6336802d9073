package initializers

import (
	"interview-scheduler/config"
	"interview-scheduler/db"

	log "github.com/sirupsen/logrus"
)

func InitDBConnection() {
	dbConf := config.Conf.Database
	err := db.Connect(dbConf.Host, dbConf.Port, dbConf.Name, dbConf.User, dbConf.Password, *dbConf.DebugMode, *dbConf.MigrateOnStart)
	if err != nil {
		log.WithError(err).Fatal("Ошибка инициализации БД")
	}
	if err = db.PingDB(); err != nil {
		log.WithError(err).Fatal("БД недоступна")
	}
	db.InitPreload()
}
