package services

import (
	"errors"
	"strings"
	"time"

	"eyedea-api/models"
)

var (
	ErrComplexityRequired = errors.New("complexity level is required")
	ErrInvalidComplexity  = errors.New("complexity level must be Low, Medium or High")
	ErrInvalidSavingsType = errors.New("savings type must be cost_savings or time_saved")
	ErrTechPersonRequired = errors.New("tech person name is required when assigning to T&E")
)

// Evaluation is the C.I. Excellence Team's scoring of an approved idea.
// A quick win carries no further detail; otherwise complexity is mandatory
// and the savings figures follow the chosen savings type.
type Evaluation struct {
	IsQuickWin       bool     `json:"is_quick_win"`
	ComplexityLevel  *string  `json:"complexity_level"`
	SavingsType      *string  `json:"savings_type"`
	CostSavings      *float64 `json:"cost_savings"`
	TimeSavedHours   *float64 `json:"time_saved_hours"`
	TimeSavedMinutes *float64 `json:"time_saved_minutes"`
	EvaluationNotes  *string  `json:"evaluation_notes"`
	AssignedToTech   bool     `json:"assigned_to_tech"`
	TechPersonName   *string  `json:"tech_person_name"`
}

// Validate enforces the capture rules before anything is persisted.
func (e *Evaluation) Validate() error {
	if e.IsQuickWin {
		return nil
	}
	if e.ComplexityLevel == nil || strings.TrimSpace(*e.ComplexityLevel) == "" {
		return ErrComplexityRequired
	}
	switch *e.ComplexityLevel {
	case models.ComplexityLow, models.ComplexityMedium, models.ComplexityHigh:
	default:
		return ErrInvalidComplexity
	}
	if e.SavingsType != nil && *e.SavingsType != "" {
		switch *e.SavingsType {
		case models.SavingsCost, models.SavingsTime:
		default:
			return ErrInvalidSavingsType
		}
	}
	if e.AssignedToTech && (e.TechPersonName == nil || strings.TrimSpace(*e.TechPersonName) == "") {
		return ErrTechPersonRequired
	}
	return nil
}

// ResultStatus returns the status the idea moves to once the evaluation is
// saved: quick wins are implemented immediately, tech assignments move to
// assigned_to_te, anything else keeps the current status.
func (e *Evaluation) ResultStatus(current string) string {
	if e.IsQuickWin {
		return StatusImplemented
	}
	if e.AssignedToTech && e.TechPersonName != nil && strings.TrimSpace(*e.TechPersonName) != "" {
		return StatusAssignedToTE
	}
	return current
}

// Apply writes the evaluation onto the idea record. Quick wins deliberately
// leave the detail fields empty.
func (e *Evaluation) Apply(idea *models.Idea, evaluator *models.User, now time.Time) {
	quickWin := e.IsQuickWin
	idea.IsQuickWin = &quickWin
	idea.EvaluatedBy = &evaluator.UserID
	idea.EvaluatedByUsername = &evaluator.Username
	idea.EvaluatedAt = &now
	idea.IsEvaluated = true
	idea.Status = e.ResultStatus(idea.Status)
	idea.UpdateAt = &now

	if quickWin {
		return
	}
	idea.ComplexityLevel = e.ComplexityLevel
	idea.SavingsType = e.SavingsType
	idea.CostSavings = e.CostSavings
	idea.TimeSavedHours = e.TimeSavedHours
	idea.TimeSavedMinutes = e.TimeSavedMinutes
	idea.EvaluationNotes = e.EvaluationNotes
	idea.AssignedToTech = e.AssignedToTech
	idea.TechPersonName = e.TechPersonName
}
