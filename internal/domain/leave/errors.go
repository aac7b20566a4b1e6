package leave

import "errors"

var (
	ErrUsageNotFound       = errors.New("monthly leave usage not found")
	ErrEntitlementNotFound = errors.New("leave entitlement not found")
	ErrInvalidLeaveValue   = errors.New("leave value must be 0.5 or 1.0")
)
