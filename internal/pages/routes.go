package pages

import (
	"github.com/a-h/templ"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/shell"
)

type entry struct {
	path  string
	id    shell.PageID
	title string
	page  func() templ.Component
}

// Order here is the header's link order; it has no effect on matching.
var catalog = []entry{
	{"/", DashboardID, "Dashboard", Dashboard},
	{"/content-generator", ContentGeneratorID, "Content Generator", ContentGenerator},
	{"/worksheet-creator", WorksheetCreatorID, "Worksheet Creator", WorksheetCreator},
	{"/knowledge-base", KnowledgeBaseID, "Knowledge Base", KnowledgeBase},
	{"/visual-aids", VisualAidsID, "Visual Aids", VisualAids},
	{"/audio-assessment", AudioAssessmentID, "Audio Assessment", AudioAssessment},
	{"/lesson-planner", LessonPlannerID, "Lesson Planner", LessonPlanner},
	{"/game-generator", GameGeneratorID, "Game Generator", GameGenerator},
	{"/student-profiles", StudentProfilesID, "Student Profiles", StudentProfiles},
	{"/content-exchange", ContentExchangeID, "Content Exchange", ContentExchange},
	{"/voice-commands", VoiceCommandsID, "Voice Commands", VoiceCommands},
}

// Table builds the application's route table.
func Table() (*shell.Table, error) {
	routes := make([]shell.Route, 0, len(catalog))
	for _, e := range catalog {
		routes = append(routes, shell.Route{
			Path:      e.path,
			Page:      e.id,
			Title:     e.title,
			Component: e.page(),
		})
	}
	return shell.NewTable(routes...)
}
