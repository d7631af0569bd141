package services

import (
	"strings"
	"testing"

	"eyedea-api/models"
)

type capturedMail struct {
	to      []string
	subject string
	body    string
}

func captureMail(t *testing.T) *[]capturedMail {
	t.Helper()
	var sent []capturedMail
	orig := sendMailFunc
	sendMailFunc = func(to []string, subject, html string) error {
		sent = append(sent, capturedMail{to: to, subject: subject, body: html})
		return nil
	}
	t.Cleanup(func() { sendMailFunc = orig })
	return &sent
}

func TestNotifyIdeaSubmitted(t *testing.T) {
	sent := captureMail(t)

	idea := &models.Idea{
		IdeaNumber: "EYE-00007",
		Title:      "Automate order confirmations",
		Pillar:     "GBS",
		Department: strPtr("Order Management"),
	}
	if err := NotifyIdeaSubmitted("approver@example.com", idea, "user1"); err != nil {
		t.Fatalf("NotifyIdeaSubmitted failed: %v", err)
	}

	if len(*sent) != 1 {
		t.Fatalf("got %d mails, want 1", len(*sent))
	}
	mail := (*sent)[0]
	if mail.to[0] != "approver@example.com" {
		t.Errorf("recipient = %v", mail.to)
	}
	if !strings.Contains(mail.subject, idea.Title) {
		t.Errorf("subject = %q", mail.subject)
	}
	for _, want := range []string{"EYE-00007", "user1", "Order Management"} {
		if !strings.Contains(mail.body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestNotifyIdeaSubmittedNoRecipient(t *testing.T) {
	sent := captureMail(t)

	idea := &models.Idea{IdeaNumber: "EYE-00001", Title: "t"}
	if err := NotifyIdeaSubmitted("", idea, "user1"); err != nil {
		t.Fatalf("empty recipient should be a no-op: %v", err)
	}
	if len(*sent) != 0 {
		t.Fatalf("no mail should have been sent, got %d", len(*sent))
	}
}

func TestNotifyIdeaDecision(t *testing.T) {
	sent := captureMail(t)

	idea := &models.Idea{IdeaNumber: "EYE-00002", Title: "Vendor intake form"}

	if err := NotifyIdeaDecision("user@example.com", idea, ActionDecline, "approver1", "duplicate"); err != nil {
		t.Fatalf("NotifyIdeaDecision failed: %v", err)
	}
	mail := (*sent)[0]
	if !strings.Contains(mail.subject, "Declined") {
		t.Errorf("decline subject = %q", mail.subject)
	}
	if !strings.Contains(mail.body, "duplicate") {
		t.Error("decline body missing the comment")
	}

	if err := NotifyIdeaDecision("user@example.com", idea, ActionMarkBestIdea, "cie1", ""); err == nil {
		t.Error("expected error for action without a decision notification")
	}
}

func TestNotifyIdeaEvaluated(t *testing.T) {
	sent := captureMail(t)

	idea := &models.Idea{IdeaNumber: "EYE-00003", Title: "Quick fix"}
	eval := &Evaluation{IsQuickWin: true}
	if err := NotifyIdeaEvaluated("user@example.com", idea, eval, "cie1"); err != nil {
		t.Fatalf("NotifyIdeaEvaluated failed: %v", err)
	}
	if !strings.Contains((*sent)[0].body, "Quick Win:</strong> Yes") {
		t.Errorf("quick win body = %q", (*sent)[0].body)
	}

	eval = &Evaluation{ComplexityLevel: strPtr(models.ComplexityHigh)}
	if err := NotifyIdeaEvaluated("user@example.com", idea, eval, "cie1"); err != nil {
		t.Fatalf("NotifyIdeaEvaluated failed: %v", err)
	}
	if !strings.Contains((*sent)[1].body, models.ComplexityHigh) {
		t.Error("evaluated body missing complexity")
	}
}
