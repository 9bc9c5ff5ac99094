package entities

import "time"

// StatusChange is one audit row of the publication workflow. The first row
// of a publication has an empty FromStatus.
type StatusChange struct {
	ChangeID      string
	PublicationID string
	FromStatus    PublicationStatus
	ToStatus      PublicationStatus
	Reason        string
	CreatedAt     time.Time
}
