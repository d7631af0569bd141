package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"eyedea-api/config"
	"eyedea-api/models"
)

// sendMailFunc is swappable in tests.
var sendMailFunc = config.SendMail

type ideaMailData struct {
	IdeaNumber string
	Title      string
	Pillar     string
	Department string
	Actor      string
	Comment    string
	QuickWin   string
	Complexity string
}

var (
	submittedTmpl = template.Must(template.New("submitted").Parse(`<html><body>
<h2>New Eye-dea Submitted for Approval</h2>
<p><strong>Idea Number:</strong> {{.IdeaNumber}}</p>
<p><strong>Title:</strong> {{.Title}}</p>
<p><strong>Submitted By:</strong> {{.Actor}}</p>
<p><strong>Pillar:</strong> {{.Pillar}}</p>
<p><strong>Department:</strong> {{.Department}}</p>
<p>Please review and approve/decline this Eye-dea.</p>
</body></html>`))

	decisionTmpl = template.Must(template.New("decision").Parse(`<html><body>
<h2>{{.Title}}</h2>
<p><strong>Idea Number:</strong> {{.IdeaNumber}}</p>
<p><strong>By:</strong> {{.Actor}}</p>
{{if .Comment}}<p><strong>Comment:</strong> {{.Comment}}</p>{{end}}
</body></html>`))

	resubmittedTmpl = template.Must(template.New("resubmitted").Parse(`<html><body>
<h2>Eye-dea Resubmitted for Review</h2>
<p><strong>Idea Number:</strong> {{.IdeaNumber}}</p>
<p><strong>Title:</strong> {{.Title}}</p>
<p><strong>Submitted By:</strong> {{.Actor}}</p>
<p>This Eye-dea has been revised and resubmitted for your review.</p>
</body></html>`))

	evaluatedTmpl = template.Must(template.New("evaluated").Parse(`<html><body>
<h2>Your Eye-dea Has Been Evaluated</h2>
<p><strong>Idea Number:</strong> {{.IdeaNumber}}</p>
<p><strong>Title:</strong> {{.Title}}</p>
<p><strong>Evaluated By:</strong> {{.Actor}} (C.I. Excellence Team)</p>
<p><strong>Quick Win:</strong> {{.QuickWin}}</p>
{{if .Complexity}}<p><strong>Complexity Level:</strong> {{.Complexity}}</p>{{end}}
</body></html>`))
)

func renderAndSend(to, subject string, tmpl *template.Template, data ideaMailData) error {
	if to == "" {
		return nil
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render notification mail: %w", err)
	}
	return sendMailFunc([]string{to}, subject, body.String())
}

// NotifyAsync runs fn in the background, logging a send failure instead of
// surfacing it: notification delivery never blocks or fails the request.
func NotifyAsync(fn func() error) {
	go func() {
		if err := fn(); err != nil {
			log.Printf("notification email not sent: %v", err)
		}
	}()
}

// NotifyIdeaSubmitted mails the assigned approver about a new idea.
func NotifyIdeaSubmitted(approverEmail string, idea *models.Idea, submitter string) error {
	data := ideaMailData{
		IdeaNumber: idea.IdeaNumber,
		Title:      idea.Title,
		Pillar:     idea.Pillar,
		Actor:      submitter,
	}
	if idea.Department != nil {
		data.Department = *idea.Department
	}
	return renderAndSend(approverEmail, "New Eye-dea: "+idea.Title, submittedTmpl, data)
}

// NotifyIdeaDecision mails the submitter after an approve, decline or
// revision-request decision.
func NotifyIdeaDecision(submitterEmail string, idea *models.Idea, action Action, actor, comment string) error {
	var heading, subject string
	switch action {
	case ActionApprove:
		heading = "Your Eye-dea Has Been Approved!"
		subject = "Eye-dea Approved: " + idea.Title
	case ActionDecline:
		heading = "Your Eye-dea Has Been Declined"
		subject = "Eye-dea Declined: " + idea.Title
	case ActionRequestRevision:
		heading = "Revision Requested for Your Eye-dea"
		subject = "Revision Requested: " + idea.Title
	default:
		return fmt.Errorf("no decision notification for action %q", action)
	}
	return renderAndSend(submitterEmail, subject, decisionTmpl, ideaMailData{
		IdeaNumber: idea.IdeaNumber,
		Title:      heading,
		Actor:      actor,
		Comment:    comment,
	})
}

// NotifyIdeaResubmitted mails the assigned approver when a revised idea
// comes back for review.
func NotifyIdeaResubmitted(approverEmail string, idea *models.Idea, submitter string) error {
	return renderAndSend(approverEmail, "Eye-dea Resubmitted: "+idea.Title, resubmittedTmpl, ideaMailData{
		IdeaNumber: idea.IdeaNumber,
		Title:      idea.Title,
		Actor:      submitter,
	})
}

// NotifyIdeaEvaluated mails the submitter once the C.I. Excellence Team has
// scored the idea.
func NotifyIdeaEvaluated(submitterEmail string, idea *models.Idea, evaluation *Evaluation, actor string) error {
	data := ideaMailData{
		IdeaNumber: idea.IdeaNumber,
		Title:      idea.Title,
		Actor:      actor,
		QuickWin:   "No",
	}
	if evaluation.IsQuickWin {
		data.QuickWin = "Yes"
	} else if evaluation.ComplexityLevel != nil {
		data.Complexity = *evaluation.ComplexityLevel
	}
	return renderAndSend(submitterEmail, "Eye-dea Evaluated: "+idea.Title, evaluatedTmpl, data)
}
