package controllers

import (
	"errors"
	"regexp"
	"testing"
)

// Setting the flag must clear the previous holder first, in the same
// transaction, so at most one idea ever carries it.
func TestSetBestIdeaClearsPreviousHolder(t *testing.T) {
	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`is_best_idea`.* WHERE is_best_idea = "),
			result:  scriptedResult{rowsAffected: 1},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`is_best_idea`.* WHERE idea_id = "),
			result:  scriptedResult{rowsAffected: 1},
		},
	})

	if err := setBestIdea("idea-2", true); err != nil {
		t.Fatalf("setBestIdea failed: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

// Clearing the flag touches only the target idea; no sweep over the other
// rows.
func TestSetBestIdeaClearDoesNotSweep(t *testing.T) {
	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`is_best_idea`.* WHERE idea_id = "),
			result:  scriptedResult{rowsAffected: 1},
		},
	})

	if err := setBestIdea("idea-2", false); err != nil {
		t.Fatalf("setBestIdea failed: %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestSetBestIdeaSweepFailureAborts(t *testing.T) {
	state := useScriptedDB(t, []*queryStep{
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("UPDATE `ideas` SET .*`is_best_idea`.* WHERE is_best_idea = "),
			err:     errDriverFailure,
		},
	})

	if err := setBestIdea("idea-2", true); err == nil {
		t.Fatal("expected the transaction to surface the sweep failure")
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

var errDriverFailure = errors.New("scripted failure")
