package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"facultyhub/internal/models"
	"facultyhub/internal/repository"
)

// CatalogService serves the dashboard card lists and chart series. The
// seeded content matches the demo data the dashboard pages render.
type CatalogService struct {
	conferences *repository.ConferenceRepo
	drafts      *repository.DraftRepo
}

func NewCatalogService(conferences *repository.ConferenceRepo, drafts *repository.DraftRepo) *CatalogService {
	return &CatalogService{conferences: conferences, drafts: drafts}
}

// ListConferences returns conference cards, optionally filtered by a
// case-insensitive substring over name and description.
func (s *CatalogService) ListConferences(query string) ([]models.ConferenceEvent, error) {
	events, err := s.conferences.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return events, nil
	}
	filtered := events[:0]
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), q) ||
			strings.Contains(strings.ToLower(ev.Description), q) {
			filtered = append(filtered, ev)
		}
	}
	return filtered, nil
}

// CreateConference adds a new event card (the dashboard's "New Event"
// action).
func (s *CatalogService) CreateConference(name, description string, people int, date, icon string) (*models.ConferenceEvent, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("event name is required")
	}
	if icon == "" {
		icon = "💻"
	}
	ev := &models.ConferenceEvent{
		ID:           uuid.NewString(),
		Icon:         icon,
		Name:         name,
		Description:  description,
		People:       people,
		Date:         date,
		Participants: "Participants",
		DueDate:      "Event date",
		CreatedAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.conferences.Create(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// ChartSeries is one named data series for the dashboard charts.
type ChartSeries struct {
	Label  string   `json:"label"`
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// Dashboard aggregates the landing-page numbers: catalog sizes, the demo
// chart series, and the user's last submission if any.
func (s *CatalogService) Dashboard(userID string) (map[string]any, error) {
	confCount, err := s.conferences.Count()
	if err != nil {
		return nil, err
	}

	out := map[string]any{
		"conferenceCount": confCount,
		"journalCharts": []ChartSeries{
			{Label: "Publications by Year", Labels: []string{"2020", "2021", "2022", "2023"}, Data: []int{30, 60, 50, 40}},
			{Label: "Journals", Labels: []string{"Nature", "The Lancet", "Science", "Cell", "PLOS ONE", "IEEE"}, Data: []int{12, 22, 12, 9, 7, 7}},
		},
		"publicationTrend": []ChartSeries{
			{Label: "Journal", Labels: []string{"25.02", "26.02", "27.02", "28.02", "29.02"}, Data: []int{100, 120, 500, 300, 200}},
			{Label: "Conference", Labels: []string{"25.02", "26.02", "27.02", "28.02", "29.02"}, Data: []int{150, 100, 50, 100, 80}},
		},
		"activeDays": ChartSeries{
			Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Data:   []int{200, 50, 100, 80, 180, 60, 120},
		},
	}
	if rec, ok := s.drafts.LastSubmission(userID); ok {
		out["lastSubmission"] = rec
	}
	return out, nil
}

// SeedConferences loads the demo conference cards once.
func (s *CatalogService) SeedConferences() error {
	count, err := s.conferences.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.ConferenceEvent{
		{Icon: "💻", Name: "ResNet for X-ray Detection", Description: "A deep learning model applied to X-ray classification for disease detection.", People: 40, Date: "01.03.23", DueDate: "Event date", Tags: []string{"🔴", "🟡", "🔵", "🟢"}},
		{Icon: "🧠", Name: "AI in Medical Imaging", Description: "Symposium on AI-based image recognition at international level.", People: 60, Date: "05.05.23", DueDate: "Event date", Tags: []string{"🟢", "🔵", "🟡", "🔴"}},
		{Icon: "📡", Name: "IoT-Based Smart Irrigation", Description: "Presented a smart agricultural monitoring system using IoT sensors.", People: 30, Date: "08.02.23", DueDate: "Due date", Tags: []string{"🔴", "🟡", "🔵"}},
		{Icon: "⚡", Name: "Deep Learning for Text Mining", Description: "Discussed predictive analytics in text mining using CNN and RNN.", People: 35, Date: "22.02.23", DueDate: "Due date", Tags: []string{"🟢", "🔴", "🟡", "🔵"}},
		{Icon: "🌾", Name: "AI in Crop Prediction", Description: "Machine learning techniques for improving agricultural planning accuracy.", People: 25, Date: "10.01.23", DueDate: "Due date", Tags: []string{"🟢", "🔵", "🟡", "🔴"}},
		{Icon: "⚙️", Name: "Edge AI for Maintenance", Description: "Leveraging Edge AI for machinery failure prediction in industry.", People: 55, Date: "18.03.23", DueDate: "Due date", Tags: []string{"🟢", "🔴", "🔵", "🟡"}},
	}
	base := time.Now().UTC()
	for i, ev := range seed {
		ev.ID = uuid.NewString()
		ev.Participants = "Participants"
		// Stagger creation times so List keeps the seeded order.
		ev.CreatedAt = base.Add(time.Duration(i) * time.Millisecond).Format(time.RFC3339Nano)
		if err := s.conferences.Create(&ev); err != nil {
			return err
		}
	}
	return nil
}
