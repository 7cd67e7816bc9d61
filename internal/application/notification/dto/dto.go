package dto

import "strings"

// Address is the structured location variant of a booking.
type Address struct {
	Line1   string `json:"addressLine1"`
	Line2   string `json:"addressLine2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// IsEmpty reports whether no address part carries a value.
func (a Address) IsEmpty() bool {
	return len(a.Lines()) == 0
}

// Lines returns the non-empty display lines of the address:
// line 1, line 2, "city, state zip" and country.
func (a Address) Lines() []string {
	var lines []string
	appendNonBlank := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}

	appendNonBlank(a.Line1)
	appendNonBlank(a.Line2)

	locality := joinNonBlank(", ", a.City, a.State)
	if zip := strings.TrimSpace(a.ZipCode); zip != "" {
		locality = joinNonBlank(" ", locality, zip)
	}
	appendNonBlank(locality)
	appendNonBlank(a.Country)

	return lines
}

func joinNonBlank(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// BookingRequest is a booking form submission after transport decoding.
type BookingRequest struct {
	Name           string   `json:"name" validate:"required"`
	Email          string   `json:"email" validate:"required"`
	Phone          string   `json:"phone"`
	EventType      string   `json:"eventType"`
	OtherEvent     string   `json:"otherEvent"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Duration       string   `json:"duration"`
	Guests         string   `json:"guests"`
	Desserts       []string `json:"desserts"`
	ServiceType    string   `json:"serviceType"`
	Budget         string   `json:"budget"`
	Location       string   `json:"location"`
	Address        Address  `json:"address"`
	Comments       string   `json:"comments"`
	ReferralSource string   `json:"referralSource"`
	Language       string   `json:"language"`
}

// Normalize trims the identity fields so whitespace-only values count as missing.
func (r *BookingRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

// ContactRequest is a contact form submission after transport decoding.
type ContactRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Phone          string `json:"phone"`
	ReferralSource string `json:"referralSource"`
	Message        string `json:"message"`
	Language       string `json:"language"`
}

func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}
