package ingest

import (
	"context"
	"errors"

	"github.com/kidusshoa/recommendation-service/internal/models"

	"golang.org/x/sync/errgroup"
)

// Source abstrae de dónde salen las reseñas y los negocios (Mongo o CSV).
// Ambas implementaciones devuelven exactamente la misma forma cruda; a partir
// de aquí el resto del pipeline no sabe de qué fuente vino nada.
type Source interface {
	Name() string
	FetchRatings(ctx context.Context) ([]models.RawRating, error)
	FetchBusinesses(ctx context.Context) ([]models.RawBusiness, error)
}

// ErrNoRecords indica que la fuente respondió pero no quedó ningún
// registro utilizable después de normalizar.
var ErrNoRecords = errors.New("ingest: la fuente no entregó registros utilizables")

// Fetch trae reseñas y negocios en paralelo y normaliza a un snapshot.
func Fetch(ctx context.Context, src Source) (*Dataset, error) {
	var (
		ratings    []models.RawRating
		businesses []models.RawBusiness
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ratings, err = src.FetchRatings(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		businesses, err = src.FetchBusinesses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ds := Normalize(ratings, businesses)
	if len(ds.Ratings) == 0 || len(ds.Businesses) == 0 {
		return nil, ErrNoRecords
	}
	return ds, nil
}
