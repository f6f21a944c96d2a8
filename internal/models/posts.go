package models

import "time"

// News is a dated post on the station's news feed.
type News struct {
	Base     `bson:",inline"`
	Title    string       `json:"title" bson:"title"`
	Content  string       `json:"content" bson:"content"`
	Date     time.Time    `json:"date" bson:"date"`
	Category NewsCategory `json:"category" bson:"category"`
}

type NewsCreate struct {
	Title    string       `json:"title" validate:"required"`
	Content  string       `json:"content" validate:"required"`
	Date     *time.Time   `json:"date"`
	Category NewsCategory `json:"category" validate:"omitempty,oneof=equipment contests general"`
}

// NewNews validates c; date defaults to now and category to general. Dates
// keep millisecond precision, as stored.
func NewNews(c NewsCreate, now time.Time) (*News, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	n := &News{Title: c.Title, Content: c.Content, Date: now, Category: c.Category}
	if c.Date != nil {
		n.Date = c.Date.UTC().Truncate(time.Millisecond)
	}
	if n.Category == "" {
		n.Category = NewsGeneral
	}
	return n, nil
}

// Guestbook is a visitor's message. Only approved entries are listed publicly.
type Guestbook struct {
	Base     `bson:",inline"`
	Name     string    `json:"name" bson:"name"`
	Callsign *string   `json:"callsign" bson:"callsign,omitempty"`
	Message  string    `json:"message" bson:"message"`
	Country  *string   `json:"country" bson:"country,omitempty"`
	Date     time.Time `json:"date" bson:"date"`
	Approved bool      `json:"approved" bson:"approved"`
}

type GuestbookCreate struct {
	Name     string  `json:"name" validate:"required"`
	Callsign *string `json:"callsign"`
	Message  string  `json:"message" validate:"required"`
	Country  *string `json:"country"`
}

// NewGuestbook validates c; entries are dated now and approved by default.
func NewGuestbook(c GuestbookCreate, now time.Time) (*Guestbook, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return &Guestbook{
		Name:     c.Name,
		Callsign: c.Callsign,
		Message:  c.Message,
		Country:  c.Country,
		Date:     now,
		Approved: true,
	}, nil
}

// ContactRequest is a message or QSL card request sent through the contact form.
type ContactRequest struct {
	Base        `bson:",inline"`
	Name        string     `json:"name" bson:"name"`
	Email       string     `json:"email" bson:"email"`
	Callsign    *string    `json:"callsign" bson:"callsign,omitempty"`
	Message     string     `json:"message" bson:"message"`
	QSLRequest  bool       `json:"qsl_request" bson:"qsl_request"`
	Date        *time.Time `json:"date" bson:"date,omitempty"`
	Frequency   *string    `json:"frequency" bson:"frequency,omitempty"`
	Mode        *string    `json:"mode" bson:"mode,omitempty"`
	RSTSent     *string    `json:"rst_sent" bson:"rst_sent,omitempty"`
	RSTReceived *string    `json:"rst_received" bson:"rst_received,omitempty"`
}

type ContactRequestCreate struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	Callsign    *string    `json:"callsign"`
	Message     string     `json:"message" validate:"required"`
	QSLRequest  bool       `json:"qsl_request"`
	Date        *time.Time `json:"date"`
	Frequency   *string    `json:"frequency"`
	Mode        *string    `json:"mode"`
	RSTSent     *string    `json:"rst_sent"`
	RSTReceived *string    `json:"rst_received"`
}

func NewContactRequest(c ContactRequestCreate) (*ContactRequest, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	r := &ContactRequest{
		Name:        c.Name,
		Email:       c.Email,
		Callsign:    c.Callsign,
		Message:     c.Message,
		QSLRequest:  c.QSLRequest,
		Frequency:   c.Frequency,
		Mode:        c.Mode,
		RSTSent:     c.RSTSent,
		RSTReceived: c.RSTReceived,
	}
	if c.Date != nil {
		d := c.Date.UTC().Truncate(time.Millisecond)
		r.Date = &d
	}
	return r, nil
}

// ContactResponse acknowledges a stored contact request.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// NewsResponse is one page of news plus the unpaginated total.
type NewsResponse struct {
	News  []News `json:"news"`
	Total int64  `json:"total"`
}

// GuestbookResponse is one page of approved entries plus their total.
type GuestbookResponse struct {
	Entries []Guestbook `json:"entries"`
	Total   int64       `json:"total"`
}
