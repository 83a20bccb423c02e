package catalog

import (
	"time"

	"studio-booking/internal/domain/schedule"
)

// Default is the studio's standing offering. The sauna is the credit-eligible
// service; its 30-minute cleanup buffer covers cooldown and towel service.
func Default() *Catalog {
	services := []Service{
		{ID: "sauna", Name: "Private Sauna", Duration: 60 * time.Minute, PriceCents: 2500, Buffer: 30 * time.Minute},
		{ID: "massage", Name: "Deep Tissue Massage", Duration: 45 * time.Minute, PriceCents: 4000, Buffer: 15 * time.Minute},
		{ID: "facial", Name: "Signature Facial", Duration: 30 * time.Minute, PriceCents: 3200, Buffer: 10 * time.Minute},
	}

	bundles := []Bundle{
		{ID: "revive-ritual", Name: "Revive Ritual", ServiceIDs: []string{"sauna", "massage"}, PriceCents: 5800},
	}

	hours := schedule.WeeklyHours{
		time.Monday:    {Open: "07:00", Close: "21:00"},
		time.Tuesday:   {Open: "07:00", Close: "21:00"},
		time.Wednesday: {Open: "07:00", Close: "21:00"},
		time.Thursday:  {Open: "07:00", Close: "21:00"},
		time.Friday:    {Open: "07:00", Close: "21:00"},
		time.Saturday:  {Open: "09:00", Close: "17:00"},
	}

	credit := CreditPlan{ServiceID: "sauna", DiscountCents: 2000, PackSize: 10}

	cat, err := New(services, bundles, hours, credit)
	if err != nil {
		panic("default catalog is invalid: " + err.Error())
	}
	return cat
}
