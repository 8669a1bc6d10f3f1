package domain

import "time"

// Integration is a connected destination channel/account on an external
// platform. ProviderIdentifier is the platform tag that post settings are
// bound to.
type Integration struct {
	ID                 string
	OrganizationID     string
	ProviderIdentifier string
	Name               string
	Picture            string
	Profile            string
	Disabled           bool
	RefreshNeeded      bool
	CreatedAt          time.Time
}

// Available reports whether the integration can currently be published to.
func (i *Integration) Available() bool {
	return !i.Disabled && !i.RefreshNeeded
}
