package mailer

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

const BookingConfirmedTemplate = "booking_confirmed.tmpl"

// BookingConfirmedData is the payload rendered by BookingConfirmedTemplate.
type BookingConfirmedData struct {
	Nickname   string
	BookingID  int
	MovieTitle string
	ShowDate   string
	ShowTime   string
	Seats      int
	SeatLabels string
}
