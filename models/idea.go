package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Complexity levels recorded by the C.I. Excellence evaluation.
const (
	ComplexityLow    = "Low"
	ComplexityMedium = "Medium"
	ComplexityHigh   = "High"
)

// Savings types recorded by the C.I. Excellence evaluation.
const (
	SavingsCost = "cost_savings"
	SavingsTime = "time_saved"
)

// ImprovementTypes is the fixed set of labels an idea can be filed under.
var ImprovementTypes = []string{
	"Standardization",
	"Automation",
	"Compliance",
	"Process Simplification",
	"Cost Efficiency",
	"Cycle Time Reduction",
	"Accuracy Improvement",
	"Customer Experience",
	"Risk Reduction",
	"Data Quality",
}

// FormatIdeaNumber renders the display number for the nth submitted idea.
func FormatIdeaNumber(n int) string {
	return fmt.Sprintf("EYE-%05d", n)
}

// ValidImprovementType reports whether t is one of the fixed labels.
func ValidImprovementType(t string) bool {
	for _, known := range ImprovementTypes {
		if t == known {
			return true
		}
	}
	return false
}

type Idea struct {
	IdeaID            string  `gorm:"primaryKey;column:idea_id" json:"id"`
	IdeaNumber        string  `gorm:"column:idea_number;unique" json:"idea_number"`
	Title             string  `gorm:"column:title" json:"title"`
	Pillar            string  `gorm:"column:pillar" json:"pillar"`
	ImprovementType   string  `gorm:"column:improvement_type" json:"improvement_type"`
	CurrentProcess    string  `gorm:"column:current_process" json:"current_process"`
	SuggestedSolution string  `gorm:"column:suggested_solution" json:"suggested_solution"`
	Benefits          string  `gorm:"column:benefits" json:"benefits"`
	TargetCompletion  string  `gorm:"column:target_completion" json:"target_completion"`
	Department        *string `gorm:"column:department" json:"department,omitempty"`
	Team              *string `gorm:"column:team" json:"team,omitempty"`

	Status string `gorm:"column:status" json:"status"`

	SubmittedBy              string  `gorm:"column:submitted_by" json:"submitted_by"`
	SubmittedByUsername      string  `gorm:"column:submitted_by_username" json:"submitted_by_username"`
	AssignedApprover         *string `gorm:"column:assigned_approver" json:"assigned_approver,omitempty"`
	AssignedApproverUsername *string `gorm:"column:assigned_approver_username" json:"assigned_approver_username,omitempty"`

	// C.I. Excellence evaluation. All nil until an evaluation is saved.
	IsQuickWin       *bool    `gorm:"column:is_quick_win" json:"is_quick_win"`
	ComplexityLevel  *string  `gorm:"column:complexity_level" json:"complexity_level"`
	SavingsType      *string  `gorm:"column:savings_type" json:"savings_type"`
	CostSavings      *float64 `gorm:"column:cost_savings" json:"cost_savings"`
	TimeSavedHours   *float64 `gorm:"column:time_saved_hours" json:"time_saved_hours"`
	TimeSavedMinutes *float64 `gorm:"column:time_saved_minutes" json:"time_saved_minutes"`
	EvaluationNotes  *string  `gorm:"column:evaluation_notes" json:"evaluation_notes"`
	AssignedToTech   bool     `gorm:"column:assigned_to_tech" json:"assigned_to_tech"`
	TechPersonName   *string  `gorm:"column:tech_person_name" json:"tech_person_name"`

	IsBestIdea bool `gorm:"column:is_best_idea" json:"is_best_idea"`

	EvaluatedBy         *string    `gorm:"column:evaluated_by" json:"evaluated_by,omitempty"`
	EvaluatedByUsername *string    `gorm:"column:evaluated_by_username" json:"evaluated_by_username,omitempty"`
	EvaluatedAt         *time.Time `gorm:"column:evaluated_at" json:"evaluated_at,omitempty"`

	StatusUpdatedBy         *string `gorm:"column:status_updated_by" json:"status_updated_by,omitempty"`
	StatusUpdatedByUsername *string `gorm:"column:status_updated_by_username" json:"status_updated_by_username,omitempty"`

	// Computed from EvaluatedBy, not stored.
	IsEvaluated bool `gorm:"-" json:"is_evaluated"`

	CreateAt *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (Idea) TableName() string {
	return "ideas"
}

// AfterFind keeps the computed evaluation flag in sync on every read.
func (i *Idea) AfterFind(*gorm.DB) error {
	i.IsEvaluated = i.EvaluatedBy != nil
	return nil
}
