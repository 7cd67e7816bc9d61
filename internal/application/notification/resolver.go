package notification

import (
	"strings"
	"unicode"

	"obleafusion/internal/application/notification/dto"
	"obleafusion/internal/infrastructure/i18n"
)

// NormalizeKey turns a raw enum-like value into its table key by collapsing
// every whitespace run into a single underscore ("Baby Shower" -> "Baby_Shower").
// Surrounding whitespace is dropped.
func NormalizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	pendingSpace := false
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		if pendingSpace {
			b.WriteByte('_')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveEventType returns the localized event label. Fallback order:
// table label, the free-text otherEvent, the raw value.
func ResolveEventType(req *dto.BookingRequest, table *i18n.Table) string {
	if req == nil {
		return ""
	}
	if label, ok := table.Lookup(i18n.SectionEventTypes, NormalizeKey(req.EventType)); ok {
		return label
	}
	if other := strings.TrimSpace(req.OtherEvent); other != "" {
		return other
	}
	return req.EventType
}

// ResolveServiceType returns the localized service label or the raw value.
func ResolveServiceType(req *dto.BookingRequest, table *i18n.Table) string {
	if req == nil {
		return ""
	}
	if label, ok := table.Lookup(i18n.SectionServiceTypes, NormalizeKey(req.ServiceType)); ok {
		return label
	}
	return req.ServiceType
}

// ResolveReferralSource returns "" for a blank source, otherwise the localized
// label or the raw value.
func ResolveReferralSource(referral string, table *i18n.Table) string {
	if strings.TrimSpace(referral) == "" {
		return ""
	}
	if label, ok := table.Lookup(i18n.SectionReferralSources, NormalizeKey(referral)); ok {
		return label
	}
	return referral
}
