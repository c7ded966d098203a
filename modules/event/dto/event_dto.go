package dto

type ParticipantResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type EventResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	StartTime     string                `json:"startTime"`
	EndTime       string                `json:"endTime"`
	Location      string                `json:"location"`
	Price         string                `json:"price"`
	Category      string                `json:"category"`
	ImageURL      string                `json:"imageUrl"`
	Organizer     string                `json:"organizer"`
	CreatorEmail  string                `json:"creatorEmail"`
	AttendeeCount int                   `json:"attendeeCount"`
	MaxAttendees  *int                  `json:"maxAttendees,omitempty"`
	Participants  []ParticipantResponse `json:"participants"`
	Tags          []string              `json:"tags"`
	IsFree        bool                  `json:"isFree"`
	IsLiked       bool                  `json:"isLiked"`
}

// CreateEventRequest times are RFC3339.
type CreateEventRequest struct {
	Title             string   `json:"title" validate:"required,max=200"`
	Description       *string  `json:"description" validate:"omitempty,max=5000"`
	StartTime         string   `json:"startTime" validate:"required"`
	EndTime           string   `json:"endTime" validate:"required"`
	Location          *string  `json:"location" validate:"omitempty,max=500"`
	Price             *string  `json:"price" validate:"omitempty,max=50"`
	Category          *string  `json:"category" validate:"omitempty,max=100"`
	ImageURL          *string  `json:"imageUrl" validate:"omitempty,url"`
	Tags              []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
	ParticipantEmails []string `json:"participantEmails" validate:"omitempty,max=100,dive,email"`
}

type PatchEventRequest struct {
	Action string `json:"action" validate:"required"`
}

type ToggleLikeResponse struct {
	Success bool `json:"success"`
	IsLiked bool `json:"isLiked"`
}
