package services

import (
	"errors"
	"testing"
	"time"

	"eyedea-api/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestEvaluationValidate(t *testing.T) {
	// Quick win skips every other rule.
	quick := Evaluation{IsQuickWin: true}
	if err := quick.Validate(); err != nil {
		t.Fatalf("quick win should validate: %v", err)
	}

	missing := Evaluation{}
	if err := missing.Validate(); !errors.Is(err, ErrComplexityRequired) {
		t.Fatalf("no complexity: got %v, want ErrComplexityRequired", err)
	}

	blank := Evaluation{ComplexityLevel: strPtr("  ")}
	if err := blank.Validate(); !errors.Is(err, ErrComplexityRequired) {
		t.Fatalf("blank complexity: got %v, want ErrComplexityRequired", err)
	}

	bogus := Evaluation{ComplexityLevel: strPtr("Extreme")}
	if err := bogus.Validate(); !errors.Is(err, ErrInvalidComplexity) {
		t.Fatalf("unknown complexity: got %v, want ErrInvalidComplexity", err)
	}

	badSavings := Evaluation{
		ComplexityLevel: strPtr(models.ComplexityLow),
		SavingsType:     strPtr("headcount"),
	}
	if err := badSavings.Validate(); !errors.Is(err, ErrInvalidSavingsType) {
		t.Fatalf("unknown savings type: got %v, want ErrInvalidSavingsType", err)
	}

	noTech := Evaluation{
		ComplexityLevel: strPtr(models.ComplexityHigh),
		AssignedToTech:  true,
	}
	if err := noTech.Validate(); !errors.Is(err, ErrTechPersonRequired) {
		t.Fatalf("tech assignment without person: got %v, want ErrTechPersonRequired", err)
	}

	full := Evaluation{
		ComplexityLevel: strPtr(models.ComplexityMedium),
		SavingsType:     strPtr(models.SavingsCost),
		CostSavings:     floatPtr(12000),
		AssignedToTech:  true,
		TechPersonName:  strPtr("Alex Rivera"),
	}
	if err := full.Validate(); err != nil {
		t.Fatalf("complete evaluation should validate: %v", err)
	}
}

func TestEvaluationResultStatus(t *testing.T) {
	quick := Evaluation{IsQuickWin: true}
	if got := quick.ResultStatus(StatusApproved); got != StatusImplemented {
		t.Errorf("quick win: got %q, want %q", got, StatusImplemented)
	}

	tech := Evaluation{
		ComplexityLevel: strPtr(models.ComplexityHigh),
		AssignedToTech:  true,
		TechPersonName:  strPtr("Alex Rivera"),
	}
	if got := tech.ResultStatus(StatusApproved); got != StatusAssignedToTE {
		t.Errorf("tech assignment: got %q, want %q", got, StatusAssignedToTE)
	}

	plain := Evaluation{ComplexityLevel: strPtr(models.ComplexityLow)}
	if got := plain.ResultStatus(StatusApproved); got != StatusApproved {
		t.Errorf("plain evaluation: got %q, want %q", got, StatusApproved)
	}
}

func TestEvaluationApply(t *testing.T) {
	now := time.Now()
	evaluator := &models.User{UserID: "cie-1", Username: "cie1"}

	idea := &models.Idea{Status: StatusApproved}
	eval := Evaluation{
		ComplexityLevel:  strPtr(models.ComplexityMedium),
		SavingsType:      strPtr(models.SavingsTime),
		TimeSavedHours:   floatPtr(2),
		TimeSavedMinutes: floatPtr(30),
		AssignedToTech:   true,
		TechPersonName:   strPtr("Priya Nair"),
	}
	eval.Apply(idea, evaluator, now)

	if idea.Status != StatusAssignedToTE {
		t.Errorf("status = %q, want %q", idea.Status, StatusAssignedToTE)
	}
	if idea.EvaluatedBy == nil || *idea.EvaluatedBy != "cie-1" {
		t.Error("evaluator id not recorded")
	}
	if !idea.IsEvaluated {
		t.Error("IsEvaluated not set")
	}
	if idea.ComplexityLevel == nil || *idea.ComplexityLevel != models.ComplexityMedium {
		t.Error("complexity not recorded")
	}
	if idea.TechPersonName == nil || *idea.TechPersonName != "Priya Nair" {
		t.Error("tech person not recorded")
	}
	if idea.EvaluatedAt == nil || !idea.EvaluatedAt.Equal(now) {
		t.Error("evaluation time not recorded")
	}
}

func TestEvaluationApplyQuickWinLeavesDetailsEmpty(t *testing.T) {
	now := time.Now()
	evaluator := &models.User{UserID: "cie-1", Username: "cie1"}

	idea := &models.Idea{Status: StatusApproved}
	eval := Evaluation{
		IsQuickWin:      true,
		ComplexityLevel: strPtr(models.ComplexityHigh),
		CostSavings:     floatPtr(9999),
	}
	eval.Apply(idea, evaluator, now)

	if idea.Status != StatusImplemented {
		t.Errorf("status = %q, want %q", idea.Status, StatusImplemented)
	}
	if idea.IsQuickWin == nil || !*idea.IsQuickWin {
		t.Error("quick win flag not recorded")
	}
	if idea.ComplexityLevel != nil || idea.CostSavings != nil {
		t.Error("quick win must not carry detail fields")
	}
}
