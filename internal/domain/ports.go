package domain

import "context"

// CatalogSource fetches the three JSON-document catalogs.
type CatalogSource interface {
	Hotels(ctx context.Context) ([]Hotel, error)
	Flights(ctx context.Context) ([]Flight, error)
	Rentals(ctx context.Context) ([]Rental, error)
}

// AttractionSource fetches the third-party attractions list.
type AttractionSource interface {
	Attractions(ctx context.Context) ([]Attraction, error)
}

// ErrorReporter receives fetch failures that were suppressed at the screen boundary.
type ErrorReporter interface {
	Report(category Category, err error)
}
