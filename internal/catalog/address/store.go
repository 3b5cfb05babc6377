// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package address

import "context"

// Repository is the persistence contract for addresses.
type Repository interface {
	ListAddresses(ctx context.Context, limit, offset int) ([]*Address, int, error)
	GetAddress(ctx context.Context, id int) (*Address, error)
	CreateAddress(ctx context.Context, address *Address) error
	UpdateAddress(ctx context.Context, address *Address) error

	// DeleteAddress fails with CONFLICT while a movie theater references the address.
	DeleteAddress(ctx context.Context, id int) error
}
