package ports

import "context"

// AccountSource supplies the positionally paired credential blobs and wallet
// addresses of one batch.
type AccountSource interface {
	Credentials(ctx context.Context) ([]string, error)
	Wallets(ctx context.Context) ([]string, error)
}
