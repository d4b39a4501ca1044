package store

import (
	"context"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
)

type schemaInspector struct {
	db *DB
}

// NewSchemaInspector constructs a [SchemaInspector] for the handle's dialect.
func NewSchemaInspector(db *DB) SchemaInspector {
	return &schemaInspector{db: db}
}

// TableExists reports whether table exists in the current schema.
func (s *schemaInspector) TableExists(ctx context.Context, table string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := get(ctx, s.db, &exists, buildTableExistsQuery(s.db.builder(), s.db.dialect, table)); err != nil {
		log.Err(err).Str("func", "*schemaInspector.TableExists").Str("table", table).Msg("error checking table existence")
		return false, s.db.translate(err)
	}

	return exists, nil
}
