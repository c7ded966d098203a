package dto

type Preferences struct {
	IsVegetarian bool `json:"is_vegetarian"`
	IsSpicy      bool `json:"is_spicy"`
	IsFamily     bool `json:"is_family"`
}

// RecommendRequest is accepted as-is; the search query comes from configuration.
type RecommendRequest struct {
	Calendars   []string     `json:"calendars" validate:"omitempty,max=50"`
	Preferences *Preferences `json:"preferences"`
}

type RecommendedEvent struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	StartTime     string   `json:"startTime"`
	EndTime       string   `json:"endTime"`
	Location      string   `json:"location"`
	Price         string   `json:"price"`
	Category      string   `json:"category"`
	ImageURL      string   `json:"imageUrl"`
	Organizer     string   `json:"organizer"`
	AttendeeCount int      `json:"attendeeCount"`
	MaxAttendees  *int     `json:"maxAttendees,omitempty"`
	Tags          []string `json:"tags"`
	IsFree        bool     `json:"isFree"`
}

type RecommendResponse struct {
	RecommendedEvents []RecommendedEvent `json:"recommended_events"`
}
