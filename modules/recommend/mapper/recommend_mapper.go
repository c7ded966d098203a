package mapper

import (
	"strconv"

	"weav-api/modules/recommend/client"
	"weav-api/modules/recommend/dto"
)

const (
	DefaultDescription = "No description available."
	DefaultLocation    = "Online"
	DefaultCategory    = "general"
	DefaultImageURL    = "/images/default-event-image.jpg"
	DefaultOrganizer   = "Unknown Organizer"
	PriceFree          = "Free"
	PriceUnknown       = "N/A"
)

func ToRecommendedEvent(e client.Event) dto.RecommendedEvent {
	out := dto.RecommendedEvent{
		ID:          e.ID,
		Name:        text(e.Name.Text),
		Description: DefaultDescription,
		StartTime:   e.Start.UTC,
		EndTime:     e.End.UTC,
		Location:    DefaultLocation,
		Price:       price(e),
		Category:    DefaultCategory,
		ImageURL:    DefaultImageURL,
		Organizer:   DefaultOrganizer,
		Tags:        make([]string, 0, len(e.Tags)),
		IsFree:      e.IsFree,
	}

	if d := text(e.Description.Text); d != "" {
		out.Description = d
	} else if s := text(e.Summary); s != "" {
		out.Description = s
	}
	if e.Venue != nil && e.Venue.Address.LocalizedAddressDisplay != "" {
		out.Location = e.Venue.Address.LocalizedAddressDisplay
	}
	if c := text(e.CategoryID); c != "" {
		out.Category = c
	}
	if e.Logo != nil && e.Logo.URL != "" {
		out.ImageURL = e.Logo.URL
	}
	if e.Organizer != nil && e.Organizer.Name != "" {
		out.Organizer = e.Organizer.Name
	}

	if e.CapacityIsCustom {
		out.AttendeeCount = e.Capacity - e.NumAttendees
		capacity := e.Capacity
		out.MaxAttendees = &capacity
	} else {
		out.AttendeeCount = e.NumAttendees
	}

	for _, t := range e.Tags {
		out.Tags = append(out.Tags, t.Tag)
	}
	return out
}

func ToRecommendedEvents(events []client.Event) []dto.RecommendedEvent {
	out := make([]dto.RecommendedEvent, 0, len(events))
	for _, e := range events {
		out = append(out, ToRecommendedEvent(e))
	}
	return out
}

// price is "Free", the first ticket class in dollars, or "N/A".
func price(e client.Event) string {
	if e.IsFree {
		return PriceFree
	}
	if len(e.TicketClasses) > 0 && e.TicketClasses[0].Cost != nil {
		return "$" + strconv.FormatFloat(e.TicketClasses[0].Cost.Value/100, 'f', -1, 64)
	}
	return PriceUnknown
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
