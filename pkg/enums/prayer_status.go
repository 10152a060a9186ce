package enums

import "fmt"

// PrayerStatus is the backend lifecycle enum for prayer requests.
type PrayerStatus string

const (
	PrayerStatusSubmitted PrayerStatus = "SUBMITTED"
	PrayerStatusPraying   PrayerStatus = "PRAYING"
	PrayerStatusAnswered  PrayerStatus = "ANSWERED"
	PrayerStatusArchived  PrayerStatus = "ARCHIVED"
)

var validPrayerStatuses = []PrayerStatus{
	PrayerStatusSubmitted,
	PrayerStatusPraying,
	PrayerStatusAnswered,
	PrayerStatusArchived,
}

// PrayerDisplayStatus is the dashboard-facing status enum. The dashboard and
// the backend persist the same records, so the mapping between the two must
// stay exact in both directions.
type PrayerDisplayStatus string

const (
	PrayerDisplayPending    PrayerDisplayStatus = "PENDING"
	PrayerDisplayInProgress PrayerDisplayStatus = "IN_PROGRESS"
	PrayerDisplayAnswered   PrayerDisplayStatus = "ANSWERED"
	PrayerDisplayClosed     PrayerDisplayStatus = "CLOSED"
)

var prayerDisplayByStatus = map[PrayerStatus]PrayerDisplayStatus{
	PrayerStatusSubmitted: PrayerDisplayPending,
	PrayerStatusPraying:   PrayerDisplayInProgress,
	PrayerStatusAnswered:  PrayerDisplayAnswered,
	PrayerStatusArchived:  PrayerDisplayClosed,
}

var prayerStatusByDisplay = map[PrayerDisplayStatus]PrayerStatus{
	PrayerDisplayPending:    PrayerStatusSubmitted,
	PrayerDisplayInProgress: PrayerStatusPraying,
	PrayerDisplayAnswered:   PrayerStatusAnswered,
	PrayerDisplayClosed:     PrayerStatusArchived,
}

// String implements fmt.Stringer.
func (p PrayerStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PrayerStatus.
func (p PrayerStatus) IsValid() bool {
	for _, candidate := range validPrayerStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// Display converts the backend status to its dashboard counterpart. Unknown
// statuses map onto the pending bucket rather than failing.
func (p PrayerStatus) Display() PrayerDisplayStatus {
	if display, ok := prayerDisplayByStatus[p]; ok {
		return display
	}
	return PrayerDisplayPending
}

// Backend converts the dashboard status back to the backend enum.
func (d PrayerDisplayStatus) Backend() (PrayerStatus, error) {
	if status, ok := prayerStatusByDisplay[d]; ok {
		return status, nil
	}
	return "", fmt.Errorf("invalid prayer display status %q", d)
}

// ParsePrayerDisplayStatus converts raw input into a PrayerDisplayStatus.
func ParsePrayerDisplayStatus(value string) (PrayerDisplayStatus, error) {
	for display := range prayerStatusByDisplay {
		if string(display) == value {
			return display, nil
		}
	}
	return "", fmt.Errorf("invalid prayer display status %q", value)
}
