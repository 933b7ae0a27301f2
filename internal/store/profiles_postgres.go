package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/models"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type postgresProfileSource struct {
	*DB
	table  string
	logger *logger.Logger
}

// NewPostgresProfileSource reads profile documents from a table with an id
// column and a JSONB data column, newest rows first.
func NewPostgresProfileSource(db *DB, table string, logger *logger.Logger) (ProfileSource, error) {
	if !identifierRe.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCollection, table)
	}

	return &postgresProfileSource{
		DB:     db,
		table:  table,
		logger: logger,
	}, nil
}

func (p *postgresProfileSource) ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select("id", "data").
		From(p.table).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "postgresProfileSource.ListProfiles").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postgresProfileSource.ListProfiles").Msg("failed to query profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, p.classify(err))
	}
	defer rows.Close()

	profiles := make([]models.RawProfile, 0)
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err = rows.Scan(&id, &data); err != nil {
			log.Err(err).Str("func", "postgresProfileSource.ListProfiles").Msg("failed to scan profile row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		doc, err := decodeDocument(data)
		if err != nil {
			log.Err(err).Str("func", "postgresProfileSource.ListProfiles").Str("id", id).Msg("failed to decode profile document")
			return nil, fmt.Errorf("%w (id=%s): %w", ErrDecodingDocument, id, err)
		}
		profiles = append(profiles, models.RawProfile{ID: id, Data: doc})
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "postgresProfileSource.ListProfiles").Msg("failed while iterating profile rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, p.classify(err))
	}

	log.Debug().Str("func", "postgresProfileSource.ListProfiles").Int("count", len(profiles)).Msg("profiles loaded")
	return profiles, nil
}

// decodeDocument keeps numbers as json.Number so that integral timestamps
// survive without float rounding.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
