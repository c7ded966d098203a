package mapper

import (
	"strings"
	"time"

	"weav-api/core/utils"
	"weav-api/modules/event/dto"
	"weav-api/modules/event/entity"
)

const (
	PriceFree          = "Free"
	DefaultDescription = "No Description"
	DefaultLocation    = "No Location"
	DefaultCategory    = "General"
)

// DisplayName is "first last", falling back to username and then email.
func DisplayName(first, last, username *string, email string) string {
	name := strings.TrimSpace(deref(first) + " " + deref(last))
	if name != "" {
		return name
	}
	if u := strings.TrimSpace(deref(username)); u != "" {
		return u
	}
	return email
}

func IsFree(price string) bool {
	p := strings.TrimSpace(price)
	return p == "" || p == "0" || strings.EqualFold(p, PriceFree)
}

func ToEventResponse(v *entity.EventView, participants []entity.Participant) dto.EventResponse {
	price := strings.TrimSpace(deref(v.Price))
	if IsFree(price) {
		price = PriceFree
	}

	tags := []string(v.Tags)
	if tags == nil {
		tags = []string{}
	}

	resp := dto.EventResponse{
		ID:            utils.ToString(v.ID),
		Name:          v.Title,
		Description:   orDefault(v.Description, DefaultDescription),
		StartTime:     formatTime(v.StartTime),
		EndTime:       formatTime(v.EndTime),
		Location:      orDefault(v.Location, DefaultLocation),
		Price:         price,
		Category:      orDefault(v.Category, DefaultCategory),
		ImageURL:      deref(v.ImageURL),
		Organizer:     DisplayName(v.CreatorFirstName, v.CreatorLastName, v.CreatorUsername, v.CreatorEmail),
		CreatorEmail:  v.CreatorEmail,
		AttendeeCount: len(participants),
		Participants:  make([]dto.ParticipantResponse, 0, len(participants)),
		Tags:          tags,
		IsFree:        price == PriceFree,
		IsLiked:       v.IsLiked,
	}
	for _, p := range participants {
		resp.Participants = append(resp.Participants, dto.ParticipantResponse{
			ID:    utils.ToString(p.UserID),
			Email: p.Email,
			Name:  DisplayName(p.FirstName, p.LastName, p.Username, p.Email),
		})
	}
	return resp
}

// ToEventResponses groups participants by event id and keeps the order of views.
func ToEventResponses(views []entity.EventView, participants []entity.Participant) []dto.EventResponse {
	byEvent := make(map[int64][]entity.Participant, len(views))
	for _, p := range participants {
		byEvent[p.EventID] = append(byEvent[p.EventID], p)
	}

	out := make([]dto.EventResponse, 0, len(views))
	for i := range views {
		out = append(out, ToEventResponse(&views[i], byEvent[views[i].ID]))
	}
	return out
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func orDefault(s *string, def string) string {
	if v := strings.TrimSpace(deref(s)); v != "" {
		return v
	}
	return def
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
