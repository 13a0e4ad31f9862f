package domain

import "context"

type PlacesAPI interface {
	ListPlaces(ctx context.Context, token string) ([]Place, error)
	Login(ctx context.Context, email, password string) (string, error)
}
