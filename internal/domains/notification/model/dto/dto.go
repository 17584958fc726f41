package dto

// InquiryPayload carries a freshly created inquiry to the mail templates.
type InquiryPayload struct {
	BookingID   string
	Token       string
	Name        string
	Email       string
	Phone       string
	EventType   string
	StartDate   string
	EndDate     string
	Description string
}

type MenuItemLine struct {
	Category     string
	Name         string
	Qty          int
	Session      string
	Instructions string
}

// MenuSubmittedPayload carries a committed menu submission to the mail templates.
type MenuSubmittedPayload struct {
	BookingID     string
	CustomerName  string
	CustomerEmail string
	EventType     string
	StartDate     string
	EndDate       string
	SubmittedAt   string
	MenuURL       string
	Items         []MenuItemLine
}
