package commands

import (
	"errors"
	"maps"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrCreateDeliveryOrderCommandIsNotConstructed = errors.New(
	"CreateDeliveryOrderCommand must be created via NewCreateDeliveryOrderCommand constructor",
)

// CreateDeliveryOrderCommand books a courier for an accepted quotation.
// Stop ids are optional: when either is missing they are read from the
// quotation, which also re-checks its expiry and schedule.
type CreateDeliveryOrderCommand struct { //nolint:recvcheck //using for validation
	quotationID     string
	recipientName   string
	recipientPhone  string
	senderStopID    string
	recipientStopID string
	remarks         string
	metadata        map[string]string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryOrderCommand requires quotationID, recipientName and
// recipientPhone. The remaining arguments may be empty.
func NewCreateDeliveryOrderCommand(
	quotationID string,
	recipientName string,
	recipientPhone string,
	senderStopID string,
	recipientStopID string,
	remarks string,
	metadata map[string]string,
) (CreateDeliveryOrderCommand, error) {
	cmd := CreateDeliveryOrderCommand{
		senderStopID:    strings.TrimSpace(senderStopID),
		recipientStopID: strings.TrimSpace(recipientStopID),
		remarks:         strings.TrimSpace(remarks),
		metadata:        maps.Clone(metadata),
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setRequired(&cmd.quotationID, "quotationId", quotationID),
		setRequired(&cmd.recipientName, "recipientName", recipientName),
		setRequired(&cmd.recipientPhone, "recipientPhone", recipientPhone),
	); err != nil {
		return CreateDeliveryOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateDeliveryOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryOrderCommandIsNotConstructed)
}

func (c CreateDeliveryOrderCommand) QuotationID() string     { return c.quotationID }
func (c CreateDeliveryOrderCommand) RecipientName() string   { return c.recipientName }
func (c CreateDeliveryOrderCommand) RecipientPhone() string  { return c.recipientPhone }
func (c CreateDeliveryOrderCommand) SenderStopID() string    { return c.senderStopID }
func (c CreateDeliveryOrderCommand) RecipientStopID() string { return c.recipientStopID }
func (c CreateDeliveryOrderCommand) Remarks() string         { return c.remarks }

// Metadata returns a copy of the caller-supplied metadata, or nil.
func (c CreateDeliveryOrderCommand) Metadata() map[string]string {
	return maps.Clone(c.metadata)
}

// HasStopIDs reports whether both stop ids were supplied.
func (c CreateDeliveryOrderCommand) HasStopIDs() bool {
	return c.senderStopID != "" && c.recipientStopID != ""
}

func setRequired(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
