package concierge

import (
	"context"

	noteRepo "concierge/database/repository/note"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// MongoNoteSink persists saveNote actions as client notes.
type MongoNoteSink struct {
	Repo noteRepo.NoteRepository
}

func (s *MongoNoteSink) Save(ctx context.Context, note models.SaveNotePayload) error {
	_, err := s.Repo.Create(ctx, models.ClientNote{
		UserName:    note.UserName,
		UserContact: note.UserContact,
		Message:     note.Message,
		Source:      note.Source,
	})
	return err
}

// LogNavigator records navigation intents. The actual page change happens on
// the frontend, which reads the navigate action from the response itself.
type LogNavigator struct{}

func (LogNavigator) Navigate(_ context.Context, path string) error {
	utils.GetLogger().Info("navigation dispatched", zap.String("path", path))
	return nil
}

// LogHandoff records human-agent requests. Delivery to the team (email, SMS,
// dashboard) belongs to an external collaborator.
type LogHandoff struct{}

func (LogHandoff) Request(_ context.Context, clientID string) error {
	utils.GetLogger().Warn("human agent requested", zap.String("clientID", clientID))
	return nil
}

// StaticSiteContent serves the office/projects context from configuration.
// A CMS-backed implementation can replace it without touching the service.
type StaticSiteContent struct {
	OfficeInfo   string
	ProjectList  []string
	CulturalList []string
}

func (c *StaticSiteContent) Office(_ context.Context) string             { return c.OfficeInfo }
func (c *StaticSiteContent) Projects(_ context.Context) []string         { return c.ProjectList }
func (c *StaticSiteContent) CulturalProjects(_ context.Context) []string { return c.CulturalList }
