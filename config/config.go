package config

import (
	"github.com/gotify/configor"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr     string `default:"" env:"APP_HOST"`
		Port           int    `default:"8080"  env:"APP_PORT"`
		Locale         string `default:"en" env:"APP_LOCALE"`
		SwaggerEnabled *bool  `default:"false" env:"APP_SWAGGER_ENABLED"`
		FontDir        string `default:"static/font/" env:"APP_FONT_DIR"`
		LogLevel       string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"interview-scheduler" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"secret" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
		AdminLogin     string `default:"admin" env:"ADMIN_LOGIN"`
		AdminPassword  string `default:"" env:"ADMIN_PASSWORD"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"Interview Scheduler" env:"SMTP_SENDER"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"interview-scheduler" env:"S3_BUCKET_NAME"`
	}
	Reminder struct {
		Enabled     *bool `default:"true" env:"REMINDER_ENABLED"`
		PeriodInSec int64 `default:"300" env:"REMINDER_PERIOD_IN_SEC"`
		LeadInMin   int64 `default:"60" env:"REMINDER_LEAD_IN_MIN"`
	}
	ErrNotify struct {
		Addr         string `default:"" env:"ERR_NOTIFY_ADDR"`
		TimeoutInSec int64  `default:"5" env:"ERR_NOTIFY_TIMEOUT_IN_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	// .env не обязателен, переменные могут прийти из окружения
	if err := godotenv.Load(); err != nil {
		log.Debug("файл .env не загружен")
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
