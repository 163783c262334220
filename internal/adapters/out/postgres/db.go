package postgres

import (
	"time"

	"parcelhub/internal/adapters/out/postgres/parcelrepo"
	"parcelhub/internal/adapters/out/postgres/paymentrepo"
	"parcelhub/internal/adapters/out/postgres/riderrepo"
	"parcelhub/internal/adapters/out/postgres/trackingrepo"
	"parcelhub/internal/adapters/out/postgres/userrepo"
	"parcelhub/internal/adapters/out/postgres/withdrawalrepo"

	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options configures Open.
type Options struct {
	DSN          string
	ShowSQL      bool
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
	ConnectTries int
	RetryDelay   time.Duration
}

// Open connects to PostgreSQL, retrying while the server is starting up.
func Open(opts Options, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if opts.ShowSQL {
		logLevel = logger.Info
	}

	tries := opts.ConnectTries
	if tries <= 0 {
		tries = 1
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < tries; i++ {
		db, err = gorm.Open(gormpostgres.Open(opts.DSN), NewConfig(log, logLevel, opts.ShowSQL))
		if err == nil {
			break
		}
		log.Warn("database not ready, retrying", zap.Int("retry", i+1), zap.Error(err))
		time.Sleep(opts.RetryDelay)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLife > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLife)
	}

	log.Info("database connection configured")
	return db, nil
}

// NewConfig returns the gorm configuration shared by every dialect: zap
// logging and translated driver errors.
func NewConfig(log *zap.Logger, level logger.LogLevel, showSQL bool) *gorm.Config {
	return &gorm.Config{
		Logger:         NewZapGormLogger(log, level, showSQL),
		TranslateError: true,
	}
}

// Models lists every table of the store.
func Models() []any {
	return []any{
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&userrepo.UserDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.EventDTO{},
		&withdrawalrepo.WithdrawalDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
