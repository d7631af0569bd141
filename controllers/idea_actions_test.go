package controllers

import (
	"database/sql/driver"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"eyedea-api/models"
	"eyedea-api/services"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, method, body string, user *models.User, ideaID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: ideaID}}

	if user != nil {
		c.Set("userID", user.UserID)
		c.Set("username", user.Username)
		c.Set("role", user.Role)
		c.Set("currentUser", user)
	}
	return c, w
}

func ideaColumns() []string {
	return []string{"idea_id", "idea_number", "title", "pillar", "status", "submitted_by", "submitted_by_username"}
}

func ideaRow(id, status, submittedBy string) []driver.Value {
	return []driver.Value{id, "EYE-00001", "Automate order confirmations", "GBS", status, submittedBy, "user1"}
}

// A transition that lands between the guard check and the write must not be
// overwritten: the conditional UPDATE matches zero rows and the request
// reports a conflict.
func TestApproveIdeaConcurrentTransitionConflicts(t *testing.T) {
	sub := models.SubRoleApprover
	approver := &models.User{
		UserID:          "approver-1",
		Username:        "approver1",
		Role:            models.RoleApprover,
		SubRole:         &sub,
		ApprovedPillars: []string{"GBS"},
	}

	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = "),
			columns: ideaColumns(),
			rows:    [][]driver.Value{ideaRow("idea-1", services.StatusPending, "user-1")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`status`.* WHERE idea_id = .* AND status = "),
			result:  scriptedResult{rowsAffected: 0},
		},
	})

	c, w := testContext(t, http.MethodPost, "{}", approver, "idea-1")
	ApproveIdea(c)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusConflict, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

// Resubmitting issues exactly one read of the idea and one conditional
// status update; the comment history is never touched.
func TestResubmitIdeaPreservesCommentHistory(t *testing.T) {
	submitter := &models.User{UserID: "user-1", Username: "user1", Role: models.RoleUser}

	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = "),
			columns: ideaColumns(),
			rows:    [][]driver.Value{ideaRow("idea-1", services.StatusRevisionRequested, "user-1")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`status`.* WHERE idea_id = .* AND status = "),
			result:  scriptedResult{rowsAffected: 1},
		},
	})

	c, w := testContext(t, http.MethodPost, "", submitter, "idea-1")
	ResubmitIdea(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestDeleteIdeaRequiresAdmin(t *testing.T) {
	submitter := &models.User{UserID: "user-1", Username: "user1", Role: models.RoleUser}

	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = "),
			columns: ideaColumns(),
			rows:    [][]driver.Value{ideaRow("idea-1", services.StatusPending, "user-1")},
		},
	})

	c, w := testContext(t, http.MethodDelete, "", submitter, "idea-1")
	DeleteIdea(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusForbidden, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestDeleteIdeaAdminSoftDeletes(t *testing.T) {
	admin := &models.User{UserID: "admin-1", Username: "admin", Role: models.RoleAdmin}

	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `ideas` WHERE idea_id = "),
			columns: ideaColumns(),
			rows:    [][]driver.Value{ideaRow("idea-1", services.StatusPending, "user-1")},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`delete_at`.* WHERE idea_id = "),
			result:  scriptedResult{rowsAffected: 1},
		},
	})

	c, w := testContext(t, http.MethodDelete, "", admin, "idea-1")
	DeleteIdea(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
