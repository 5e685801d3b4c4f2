package registryrepo

import "context"

// Repo is the asset registry consumed at its interface boundary.
// Identity, ownership and approval semantics live on the registry side;
// the marketplace only reads owners, checks operator approval, and
// triggers transfers it is approved for.
type Repo interface {
	OwnerOf(ctx context.Context, assetID int64) (string, error)
	Transfer(ctx context.Context, from, to string, assetID int64) error
	IsApprovedOperator(ctx context.Context, owner, operator string) (bool, error)
}
