package db

import (
	"fmt"
	"time"

	gorm_logrus "github.com/onrik/gorm-logrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

const (
	maxOpenConns    = 20
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

func Connect(host string, port string, database string, user string, pass string, debugMode bool, migrate bool) error {
	if DB != nil {
		return nil
	}
	dbConnString := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=disable password=%s", host, port, user, database, pass)
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: gorm_logrus.New(),
	})
	if err != nil {
		return errors.Wrap(err, "Ошибка подключения к БД")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "Ошибка получения пула соединений БД")
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if debugMode {
		DB = db.Debug()
	} else {
		DB = db
	}
	if migrate {
		if err = AutoMigrateDB(); err != nil {
			return err
		}
	}
	log.WithField("host", host).WithField("database", database).Info("Сервис успешно подключен к БД")
	return nil
}

func PingDB() error {
	db, err := DB.DB()
	if err != nil {
		return err
	}
	return db.Ping()
}
