package notify

import (
	"fmt"
	"strings"
)

func BookingCreated(customerName string, serviceNames []string) Event {
	return Event{
		Type:    TypeBooking,
		Title:   "Booking Baru",
		Message: fmt.Sprintf("%s membuat booking untuk %s", customerName, strings.Join(serviceNames, ", ")),
		Link:    "/admin/bookings",
	}
}

var statusTitles = map[string]string{
	"confirmed": "Booking dikonfirmasi",
	"completed": "Booking selesai",
	"cancelled": "Booking dibatalkan",
}

// BookingStatusChanged returns false for statuses that do not notify.
func BookingStatusChanged(bookingID uint, status, customerPhone string) (Event, bool) {
	title, ok := statusTitles[status]
	if !ok {
		return Event{}, false
	}

	msg := fmt.Sprintf("Booking #%d %s", bookingID, strings.ToLower(title))
	return Event{
		Type:    TypeBooking,
		Title:   title,
		Message: msg,
		Link:    "/admin/bookings",
		SMSTo:   customerPhone,
		SMSBody: msg,
	}, true
}

func ReviewCreated(customerName string, rating int, barberName string) Event {
	return Event{
		Type:    TypeReview,
		Title:   "Review Baru",
		Message: fmt.Sprintf("%s memberikan rating %d bintang untuk %s", customerName, rating, barberName),
		Link:    "/admin/team",
	}
}
