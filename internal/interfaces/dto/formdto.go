package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	appDto "obleafusion/internal/application/notification/dto"
)

// FlexString accepts a JSON string or number and keeps its textual form.
// Form clients send numeric fields either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", trimmed)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// AddressBody is the object form of the location field.
type AddressBody struct {
	Line1        string `json:"line1"`
	Line2        string `json:"line2"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
}

// Location accepts either a flat string or an address object.
type Location struct {
	Text    string
	Address *AddressBody
}

func (l *Location) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = Location{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*l = Location{Text: s}
		return nil
	case '{':
		var addr AddressBody
		if err := json.Unmarshal(trimmed, &addr); err != nil {
			return err
		}
		*l = Location{Address: &addr}
		return nil
	default:
		return fmt.Errorf("location must be a string or an address object")
	}
}

// BookingRequest is the JSON body of POST /email/booking.
type BookingRequest struct {
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	EventType      string     `json:"eventType"`
	OtherEvent     string     `json:"otherEvent"`
	Date           string     `json:"date"`
	Time           string     `json:"time"`
	Duration       FlexString `json:"duration"`
	Guests         FlexString `json:"guests"`
	Desserts       []string   `json:"desserts"`
	ServiceType    string     `json:"serviceType"`
	Budget         FlexString `json:"budget"`
	Location       Location   `json:"location"`
	AddressLine1   string     `json:"addressLine1"`
	AddressLine2   string     `json:"addressLine2"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	Country        string     `json:"country"`
	ZipCode        string     `json:"zipCode"`
	Comments       string     `json:"comments"`
	ReferralSource string     `json:"referralSource"`
	Language       string     `json:"language"`
}

// ToApplicationDTO merges both location schemas. Top-level address fields
// override the same part given inside an object-valued location.
func (r *BookingRequest) ToApplicationDTO() *appDto.BookingRequest {
	var address appDto.Address
	if a := r.Location.Address; a != nil {
		address = appDto.Address{
			Line1:   firstNonBlank(a.Line1, a.AddressLine1),
			Line2:   firstNonBlank(a.Line2, a.AddressLine2),
			City:    a.City,
			State:   a.State,
			Country: a.Country,
			ZipCode: a.ZipCode,
		}
	}
	address.Line1 = firstNonBlank(r.AddressLine1, address.Line1)
	address.Line2 = firstNonBlank(r.AddressLine2, address.Line2)
	address.City = firstNonBlank(r.City, address.City)
	address.State = firstNonBlank(r.State, address.State)
	address.Country = firstNonBlank(r.Country, address.Country)
	address.ZipCode = firstNonBlank(r.ZipCode, address.ZipCode)

	return &appDto.BookingRequest{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		EventType:      r.EventType,
		OtherEvent:     r.OtherEvent,
		Date:           r.Date,
		Time:           r.Time,
		Duration:       r.Duration.String(),
		Guests:         r.Guests.String(),
		Desserts:       r.Desserts,
		ServiceType:    r.ServiceType,
		Budget:         r.Budget.String(),
		Location:       r.Location.Text,
		Address:        address,
		Comments:       r.Comments,
		ReferralSource: r.ReferralSource,
		Language:       r.Language,
	}
}

// ContactRequest is the JSON body of POST /email/contact.
type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	ReferralSource string `json:"referralSource"`
	Message        string `json:"message"`
	Language       string `json:"language"`
}

func (r *ContactRequest) ToApplicationDTO() *appDto.ContactRequest {
	return &appDto.ContactRequest{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		ReferralSource: r.ReferralSource,
		Message:        r.Message,
		Language:       r.Language,
	}
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
