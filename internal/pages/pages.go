// Package pages holds the header and the feature pages mounted by the shell.
// Each page is a self-contained component; the shell passes it nothing.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/y23cs140nandinipinneboina/sahayak/internal/shell"
)

// Brand is the application name shown in the header and document titles.
const Brand = "Sahayak"

// Page ids.
const (
	DashboardID        shell.PageID = "dashboard"
	ContentGeneratorID shell.PageID = "content-generator"
	WorksheetCreatorID shell.PageID = "worksheet-creator"
	KnowledgeBaseID    shell.PageID = "knowledge-base"
	VisualAidsID       shell.PageID = "visual-aids"
	AudioAssessmentID  shell.PageID = "audio-assessment"
	LessonPlannerID    shell.PageID = "lesson-planner"
	GameGeneratorID    shell.PageID = "game-generator"
	StudentProfilesID  shell.PageID = "student-profiles"
	ContentExchangeID  shell.PageID = "content-exchange"
	VoiceCommandsID    shell.PageID = "voice-commands"
)

func Dashboard() templ.Component {
	return section(DashboardID, "Dashboard", "Overview of your teaching tools.")
}

func ContentGenerator() templ.Component {
	return section(ContentGeneratorID, "Content Generator", "Create localized teaching content.")
}

func WorksheetCreator() templ.Component {
	return section(WorksheetCreatorID, "Worksheet Creator", "Build worksheets for different grade levels.")
}

func KnowledgeBase() templ.Component {
	return section(KnowledgeBaseID, "Knowledge Base", "Answers to student questions with simple explanations.")
}

func VisualAids() templ.Component {
	return section(VisualAidsID, "Visual Aids", "Drawings and charts for the blackboard.")
}

func AudioAssessment() templ.Component {
	return section(AudioAssessmentID, "Audio Assessment", "Reading assessments from recorded audio.")
}

func LessonPlanner() templ.Component {
	return section(LessonPlannerID, "Lesson Planner", "Weekly lesson plans.")
}

func GameGenerator() templ.Component {
	return section(GameGeneratorID, "Game Generator", "Educational games for the classroom.")
}

func StudentProfiles() templ.Component {
	return section(StudentProfilesID, "Student Profiles", "Track progress for each student.")
}

func ContentExchange() templ.Component {
	return section(ContentExchangeID, "Content Exchange", "Share material with other teachers.")
}

func VoiceCommands() templ.Component {
	return section(VoiceCommandsID, "Voice Commands", "Control the assistant by voice.")
}

func section(id shell.PageID, title, summary string) templ.Component {
	markup := `<section class="page" data-page="` + templ.EscapeString(string(id)) + `">` +
		`<h1>` + templ.EscapeString(title) + `</h1>` +
		`<p>` + templ.EscapeString(summary) + `</p>` +
		`</section>`
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}
