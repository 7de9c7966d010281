package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrSyncCourierStatusesCommandIsNotConstructed = errors.New(
	"SyncCourierStatusesCommand must be created via NewSyncCourierStatusesCommand constructor",
)

// SyncCourierStatusesCommand refreshes the courier status of every order
// whose courier order is still in progress.
type SyncCourierStatusesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewSyncCourierStatusesCommand() SyncCourierStatusesCommand {
	return SyncCourierStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c SyncCourierStatusesCommand) Validate() error {
	return c.guard.Validate(ErrSyncCourierStatusesCommandIsNotConstructed)
}
