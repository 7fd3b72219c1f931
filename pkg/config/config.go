package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP       HTTP
	Logger     Logger
	Postgres   Postgres
	JWT        JWT
	Security   Security
	Guards     Guards
	Attendance Attendance
	Payroll    Payroll
	Kafka      Kafka
	Notifier   Notifier
	SMS        SMS
	Mailer     Mailer
	Redis      Redis
	S3         S3
}

type HTTP struct {
	Port          int   `env:"HTTP_PORT" envDefault:"8080"`
	MaxUploadSize int64 `env:"HTTP_MAX_UPLOAD_SIZE" envDefault:"10485760"`
	// CORSAllowedOrigins is a comma separated list; empty disables cross-origin access.
	CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envDefault:""`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN,notEmpty"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type JWT struct {
	Secret string `env:"JWT_SECRET,notEmpty"`
	// Zero TTL issues tokens without the exp claim.
	TokenTTL time.Duration `env:"JWT_TOKEN_TTL" envDefault:"0s"`
}

type Security struct {
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`
}

type Guards struct {
	UniqueNationalID bool `env:"GUARDS_UNIQUE_NATIONAL_ID" envDefault:"false"`
}

type Attendance struct {
	TimeZone string `env:"ATTENDANCE_TZ" envDefault:"UTC"`
}

// Location returns the zone sign-in and sign-out times are interpreted in.
func (a Attendance) Location() (*time.Location, error) {
	return time.LoadLocation(a.TimeZone)
}

type Payroll struct {
	Currency         string        `env:"PAYROLL_CURRENCY" envDefault:"KES"`
	PeriodicEnabled  bool          `env:"PAYROLL_PERIODIC_ENABLED" envDefault:"false"`
	PeriodicInterval time.Duration `env:"PAYROLL_PERIODIC_INTERVAL" envDefault:"1h"`
}

type Kafka struct {
	Brokers         []string `env:"KAFKA_BROKERS"`
	WagePostedTopic string   `env:"KAFKA_WAGE_POSTED_TOPIC" envDefault:"guardbook.wage-posted"`
	ConsumerGroup   string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"guardbook-notifier"`
}

type Notifier struct {
	Enabled         bool          `env:"NOTIFIER_ENABLED" envDefault:"true"`
	SMSRecipients   []string      `env:"NOTIFIER_SMS_RECIPIENTS" envDefault:""`
	EmailRecipients []string      `env:"NOTIFIER_EMAIL_RECIPIENTS" envDefault:""`
	NotifyGuard     bool          `env:"NOTIFIER_NOTIFY_GUARD" envDefault:"false"`
	DedupTTL        time.Duration `env:"NOTIFIER_DEDUP_TTL" envDefault:"24h"`
}

type SMS struct {
	BaseURL       string        `env:"TWILIO_BASE_URL" envDefault:"https://api.twilio.com"`
	AccountSID    string        `env:"TWILIO_ACCOUNT_SID" envDefault:""`
	AuthToken     string        `env:"TWILIO_AUTH_TOKEN" envDefault:""`
	From          string        `env:"TWILIO_FROM" envDefault:"+14159095176"`
	RetryAttempts int           `env:"TWILIO_RETRY_ATTEMPTS" envDefault:"3"`
	Timeout       time.Duration `env:"TWILIO_TIMEOUT" envDefault:"10s"`
}

type Mailer struct {
	Host     string `env:"MAILER_HOST" envDefault:""`
	Port     int    `env:"MAILER_PORT" envDefault:"587"`
	Login    string `env:"MAILER_LOGIN" envDefault:""`
	Password string `env:"MAILER_PASSWORD" envDefault:""`
	From     string `env:"MAILER_FROM" envDefault:""`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Guardbook"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type S3 struct {
	Region       string `env:"S3_REGION" envDefault:"us-east-1"`
	Endpoint     string `env:"S3_ENDPOINT" envDefault:""`
	AccessKey    string `env:"S3_ACCESS_KEY" envDefault:""`
	SecretKey    string `env:"S3_SECRET_KEY" envDefault:""`
	Bucket       string `env:"S3_BUCKET" envDefault:"guardbook"`
	UsePathStyle bool   `env:"S3_USE_PATH_STYLE" envDefault:"true"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	if _, err := c.Attendance.Location(); err != nil {
		return Config{}, fmt.Errorf("attendance time zone %q: %w", c.Attendance.TimeZone, err)
	}

	if c.Security.BcryptCost < 10 {
		return Config{}, fmt.Errorf("bcrypt cost %d is lower than 10", c.Security.BcryptCost)
	}

	return c, nil
}
