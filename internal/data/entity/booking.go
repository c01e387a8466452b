package entity

type BookingStatus string

const (
	BookingStatusNew       BookingStatus = "New"
	BookingStatusContacted BookingStatus = "Contacted"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
)

// BookingStatuses in pipeline order. Transitions are not enforced.
var BookingStatuses = []BookingStatus{
	BookingStatusNew,
	BookingStatusContacted,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Booking struct {
	BaseNoDelete
	Name           string        `db:"name"`
	WhatsAppNumber string        `db:"whatsapp_number"`
	OccasionType   string        `db:"occasion_type"` // free text
	Location       string        `db:"location"`
	Notes          *string       `db:"notes"`
	Status         BookingStatus `db:"status"`
}
