package services

import (
	"errors"
	"fmt"
	"strings"

	"eyedea-api/models"
)

// Idea status values. The workflow is linear with two side exits:
//
//	pending -> approved -> assigned_to_te -> implemented
//	pending -> declined
//	pending -> revision_requested -> pending (resubmit)
//	approved -> implemented (quick win)
//
// declined and implemented are terminal for the ordinary workflow;
// assigned_to_te can still be moved by the C.I. Excellence Team.
const (
	StatusPending           = "pending"
	StatusApproved          = "approved"
	StatusDeclined          = "declined"
	StatusRevisionRequested = "revision_requested"
	StatusAssignedToTE      = "assigned_to_te"
	StatusImplemented       = "implemented"
)

// Action identifies a workflow mutation requested against an idea.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionDecline         Action = "decline"
	ActionRequestRevision Action = "request-revision"
	ActionResubmit        Action = "resubmit"
	ActionEvaluate        Action = "ci-evaluate"
	ActionUpdateTEStatus  Action = "ci-update-status"
	ActionMarkBestIdea    Action = "mark-best-idea"
)

var (
	ErrNotAllowed        = errors.New("action not allowed for this user")
	ErrOutOfScope        = errors.New("idea is outside the approver's approved scope")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCommentRequired   = errors.New("a comment is required for this action")
	ErrAlreadyEvaluated  = errors.New("idea already has a saved evaluation")
)

var allStatuses = []string{
	StatusPending,
	StatusApproved,
	StatusDeclined,
	StatusRevisionRequested,
	StatusAssignedToTE,
	StatusImplemented,
}

// ValidStatus reports whether s is a known idea status.
func ValidStatus(s string) bool {
	for _, known := range allStatuses {
		if s == known {
			return true
		}
	}
	return false
}

var transitions = map[string][]string{
	StatusPending:           {StatusApproved, StatusDeclined, StatusRevisionRequested},
	StatusRevisionRequested: {StatusPending},
	StatusApproved:          {StatusImplemented, StatusAssignedToTE},
	StatusAssignedToTE:      {StatusImplemented, StatusRevisionRequested, StatusDeclined},
}

// CanTransition reports whether the workflow permits moving from one status
// to another, ignoring who is asking.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PermissionSet is the tagged capability set derived from a user's role and
// sub-role. Handlers consult this instead of re-deriving role booleans so
// the guard rules cannot drift between call sites.
type PermissionSet struct {
	SubmitIdeas    bool // create and resubmit own ideas
	ReviewIdeas    bool // approve / decline / request revision on pending ideas
	EvaluateIdeas  bool // C.I. evaluation and T&E status updates
	ManageBestIdea bool // mark / clear the best idea flag
	ManageSystem   bool // admin: users, taxonomy, tech persons
}

// PermissionsFor computes the capability set for a user.
func PermissionsFor(user *models.User) PermissionSet {
	switch user.Role {
	case models.RoleAdmin:
		return PermissionSet{
			SubmitIdeas:    true,
			ReviewIdeas:    true,
			EvaluateIdeas:  true,
			ManageBestIdea: true,
			ManageSystem:   true,
		}
	case models.RoleApprover:
		if user.IsCIExcellence() {
			// The C.I. Excellence Team evaluates approved ideas; it never
			// takes part in the initial review.
			return PermissionSet{SubmitIdeas: true, EvaluateIdeas: true, ManageBestIdea: true}
		}
		return PermissionSet{SubmitIdeas: true, ReviewIdeas: true}
	case models.RoleUser:
		return PermissionSet{SubmitIdeas: true}
	}
	return PermissionSet{}
}

// ScopeAllows reports whether an approver may act on an idea belonging to
// the given pillar/department. Admins are unrestricted. An approver is in
// scope when the pillar is in approved_pillars, the department is in
// approved_departments, or the idea sits in the approver's own department.
func ScopeAllows(user *models.User, pillar string, department *string) bool {
	if user.Role == models.RoleAdmin {
		return true
	}
	for _, p := range user.ApprovedPillars {
		if strings.EqualFold(p, pillar) {
			return true
		}
	}
	if department != nil && *department != "" {
		for _, d := range user.ApprovedDepartments {
			if strings.EqualFold(d, *department) {
				return true
			}
		}
		if user.Department != nil && strings.EqualFold(*user.Department, *department) {
			return true
		}
	}
	return false
}

// TargetStatus returns the status an idea moves to when the review action
// succeeds. Evaluation outcomes are not fixed per action; see Evaluation.
func TargetStatus(action Action) (string, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionDecline:
		return StatusDeclined, true
	case ActionRequestRevision:
		return StatusRevisionRequested, true
	case ActionResubmit:
		return StatusPending, true
	}
	return "", false
}

// AuthorizeAction decides whether user may perform action on idea, with the
// given rationale comment. It checks capability, approver scope, submitter
// identity and the transition table; a nil return means the request is legal.
func AuthorizeAction(user *models.User, action Action, idea *models.Idea, comment string) error {
	perms := PermissionsFor(user)

	switch action {
	case ActionApprove, ActionDecline, ActionRequestRevision:
		if !perms.ReviewIdeas {
			if user.IsCIExcellence() {
				return fmt.Errorf("%w: the C.I. Excellence Team only evaluates approved ideas", ErrNotAllowed)
			}
			return fmt.Errorf("%w: only approvers can review ideas", ErrNotAllowed)
		}
		if !ScopeAllows(user, idea.Pillar, idea.Department) {
			return ErrOutOfScope
		}
		target, _ := TargetStatus(action)
		if !CanTransition(idea.Status, target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, idea.Status, target)
		}
		if (action == ActionDecline || action == ActionRequestRevision) && strings.TrimSpace(comment) == "" {
			return ErrCommentRequired
		}
		return nil

	case ActionResubmit:
		if idea.SubmittedBy != user.UserID {
			return fmt.Errorf("%w: only the submitter can resubmit", ErrNotAllowed)
		}
		if !CanTransition(idea.Status, StatusPending) || idea.Status != StatusRevisionRequested {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, idea.Status, StatusPending)
		}
		return nil

	case ActionEvaluate:
		if !perms.EvaluateIdeas {
			return fmt.Errorf("%w: only the C.I. Excellence Team can evaluate ideas", ErrNotAllowed)
		}
		if idea.Status != StatusApproved {
			return fmt.Errorf("%w: only approved ideas can be evaluated (status %s)", ErrInvalidTransition, idea.Status)
		}
		if idea.EvaluatedBy != nil {
			return ErrAlreadyEvaluated
		}
		return nil

	case ActionUpdateTEStatus:
		if !perms.EvaluateIdeas {
			return fmt.Errorf("%w: only the C.I. Excellence Team can update idea status", ErrNotAllowed)
		}
		if idea.Status != StatusAssignedToTE {
			return fmt.Errorf("%w: can only change status of ideas assigned to T&E", ErrInvalidTransition)
		}
		return nil

	case ActionMarkBestIdea:
		if !perms.ManageBestIdea {
			return fmt.Errorf("%w: only the C.I. Excellence Team can select the best idea", ErrNotAllowed)
		}
		return nil
	}

	return fmt.Errorf("%w: unknown action %q", ErrNotAllowed, action)
}

// AuthorizeTEStatus validates the target status of a ci-update-status
// request on an idea already confirmed to be assigned_to_te.
func AuthorizeTEStatus(idea *models.Idea, newStatus string) error {
	if !CanTransition(idea.Status, newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, idea.Status, newStatus)
	}
	return nil
}
