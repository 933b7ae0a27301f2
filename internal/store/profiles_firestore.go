package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/models"
)

// documentFetcher reads up to limit documents of a collection.
type documentFetcher func(ctx context.Context, collection string, limit int) ([]models.RawProfile, error)

type firestoreProfileSource struct {
	fetch      documentFetcher
	collection string
	logger     *logger.Logger
}

// NewFirestoreProfileSource connects to the Firestore project from cfg. When
// cfg.CredentialsFile is empty, application default credentials are used.
func NewFirestoreProfileSource(ctx context.Context, cfg config.Profiles, log *logger.Logger) (ProfileSource, func() error, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewFirestoreProfileSource").Msg("error creating firestore client")
		return nil, nil, fmt.Errorf("error creating firestore client: %w", classifyFirestoreError(err))
	}
	log.Info().Str("func", "NewFirestoreProfileSource").Str("project", cfg.ProjectID).Msg("firestore client created")

	return newFirestoreProfileSource(firestoreFetcher(client), cfg.Collection, log), client.Close, nil
}

func newFirestoreProfileSource(fetch documentFetcher, collection string, log *logger.Logger) *firestoreProfileSource {
	return &firestoreProfileSource{
		fetch:      fetch,
		collection: collection,
		logger:     log,
	}
}

func firestoreFetcher(client *firestore.Client) documentFetcher {
	return func(ctx context.Context, collection string, limit int) ([]models.RawProfile, error) {
		query := client.Collection(collection).Query
		if limit > 0 {
			query = query.Limit(limit)
		}

		snapshots, err := query.Documents(ctx).GetAll()
		if err != nil {
			return nil, err
		}

		profiles := make([]models.RawProfile, 0, len(snapshots))
		for _, snap := range snapshots {
			profiles = append(profiles, models.RawProfile{ID: snap.Ref.ID, Data: snap.Data()})
		}
		return profiles, nil
	}
}

func (f *firestoreProfileSource) ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error) {
	log := logger.FromContext(ctx)

	profiles, err := f.fetch(ctx, f.collection, limit)
	if err != nil {
		log.Err(err).
			Str("func", "firestoreProfileSource.ListProfiles").
			Str("collection", f.collection).
			Msg("failed to read profile documents")
		return nil, fmt.Errorf("error reading collection %s: %w", f.collection, classifyFirestoreError(err))
	}

	for i := range profiles {
		if profiles[i].Data == nil {
			profiles[i].Data = map[string]any{}
		}
	}

	log.Debug().Str("func", "firestoreProfileSource.ListProfiles").Int("count", len(profiles)).Msg("profiles loaded")
	return profiles, nil
}

// classifyFirestoreError joins err with the store sentinel matching its gRPC
// status code. Errors without a known code are returned unchanged.
func classifyFirestoreError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrProfilesUnavailable, err)
	}

	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return errors.Join(ErrProfilesUnavailable, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return errors.Join(ErrProfilesForbidden, err)
	default:
		return err
	}
}
