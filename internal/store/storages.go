package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/config"
	"github.com/MKhiriev/go-library-reserve/internal/logger"
)

// Storages bundles every repository over one database handle.
type Storages struct {
	DB                        *DB
	UserRepository            UserRepository
	UserProfileRepository     UserProfileRepository
	ReservationRepository     ReservationRepository
	BookRepository            BookRepository
	BookReservationRepository BookReservationRepository
	SchemaInspector           SchemaInspector
}

// NewStorages connects to the configured database, applies migrations when
// cfg.Migrate is set and builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Migrate {
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		log.Info().Str("func", "NewStorages").Msg("migrations applied")
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already open handle.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	users := NewUserRepository(db, log)

	return &Storages{
		DB:                        db,
		UserRepository:            users,
		UserProfileRepository:     NewUserProfileRepository(db, log),
		ReservationRepository:     NewReservationRepository(db, users, log),
		BookRepository:            NewBookRepository(db, log),
		BookReservationRepository: NewBookReservationRepository(db, log),
		SchemaInspector:           NewSchemaInspector(db),
	}
}

// Connect opens the database selected by cfg.Driver.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.Driver)
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
