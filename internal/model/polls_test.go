package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pooller/pooller-api/util"
)

func TestBuildPollOptions(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	inputs := []PollOptionInput{{Text: "Red"}, {Text: "Blue"}, {Text: "Green"}}

	options := BuildPollOptions(PollTypeCheckbox, inputs, createdAt)

	if len(options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(options))
	}

	seen := make(map[string]bool)
	for i, opt := range options {
		wantID := fmt.Sprintf("option_%d_%d", i+1, createdAt.UnixMilli())
		if opt.ID != wantID {
			t.Errorf("option %d: id = %q; want %q", i, opt.ID, wantID)
		}
		if seen[opt.ID] {
			t.Errorf("duplicate option id %q", opt.ID)
		}
		seen[opt.ID] = true

		if opt.Text != inputs[i].Text {
			t.Errorf("option %d: text = %q; want %q", i, opt.Text, inputs[i].Text)
		}
		if opt.Type != PollTypeCheckbox {
			t.Errorf("option %d: type = %q; want %q", i, opt.Type, PollTypeCheckbox)
		}
	}
}

func TestAllowsMultipleVotes(t *testing.T) {
	if !AllowsMultipleVotes(PollTypeCheckbox) {
		t.Error("checkbox polls should allow multiple votes")
	}
	if AllowsMultipleVotes(PollTypeRadio) {
		t.Error("radio polls should not allow multiple votes")
	}
}

func newTestPoll(pollType string) Poll {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Poll{
		ID:                 uuid.New(),
		Description:        "Pick a color",
		Options:            BuildPollOptions(pollType, []PollOptionInput{{Text: "Red"}, {Text: "Blue"}}, createdAt),
		CreatorID:          uuid.New(),
		CreatedAt:          createdAt,
		AllowMultipleVotes: AllowsMultipleVotes(pollType),
		OriginalPollType:   pollType,
	}
}

func TestValidateSelection(t *testing.T) {
	radio := newTestPoll(PollTypeRadio)
	checkbox := newTestPoll(PollTypeCheckbox)

	testCases := []struct {
		name     string
		poll     Poll
		selected []string
		wantErr  string
	}{
		{
			name:     "radio single valid option",
			poll:     radio,
			selected: []string{radio.Options[0].ID},
		},
		{
			name:     "radio two options rejected",
			poll:     radio,
			selected: []string{radio.Options[0].ID, radio.Options[1].ID},
			wantErr:  "only one option can be selected for this type of poll",
		},
		{
			name:     "checkbox multiple options allowed",
			poll:     checkbox,
			selected: []string{checkbox.Options[0].ID, checkbox.Options[1].ID},
		},
		{
			name:     "foreign option id names first offender",
			poll:     checkbox,
			selected: []string{"option_99_0", checkbox.Options[0].ID},
			wantErr:  "invalid option ID selected: option_99_0",
		},
		{
			name:     "membership checked before cardinality",
			poll:     radio,
			selected: []string{radio.Options[0].ID, "bogus"},
			wantErr:  "invalid option ID selected: bogus",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.poll.ValidateSelection(tc.selected)

			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateSelection(%v) returned error %v; want nil", tc.selected, err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateSelection(%v) returned nil; want error %q", tc.selected, tc.wantErr)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("ValidateSelection(%v) error = %q; want %q", tc.selected, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestCreatePollRequestValidation(t *testing.T) {
	valid := CreatePollRequest{
		Description: "Pick a color",
		PollType:    PollTypeRadio,
		Options:     []PollOptionInput{{Text: "Red"}, {Text: "Blue"}},
	}

	testCases := []struct {
		name    string
		mutate  func(r *CreatePollRequest)
		wantErr bool
	}{
		{"valid request", func(r *CreatePollRequest) {}, false},
		{"description too short", func(r *CreatePollRequest) { r.Description = "Hi" }, true},
		{"unknown poll type", func(r *CreatePollRequest) { r.PollType = "ranked" }, true},
		{"single option", func(r *CreatePollRequest) { r.Options = r.Options[:1] }, true},
		{"eleven options", func(r *CreatePollRequest) {
			r.Options = nil
			for i := 0; i < 11; i++ {
				r.Options = append(r.Options, PollOptionInput{Text: fmt.Sprintf("Option %d", i)})
			}
		}, true},
		{"blank option text", func(r *CreatePollRequest) { r.Options[1].Text = "   " }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			req.Options = append([]PollOptionInput(nil), valid.Options...)
			tc.mutate(&req)

			err := util.ValidateStruct(req)
			if tc.wantErr && err == nil {
				t.Errorf("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

// TestVoteOverwriteFlow walks the vote protocol end to end: a radio poll
// rejects a two-option ballot, accepts a single option, and a repeat vote
// from the same voter replaces the stored selection.
func TestVoteOverwriteFlow(t *testing.T) {
	poll := newTestPoll(PollTypeRadio)
	voter := uuid.New()

	type voteKey struct {
		pollID  uuid.UUID
		voterID uuid.UUID
	}
	votes := make(map[voteKey]Vote)

	cast := func(selected []string) error {
		if err := poll.ValidateSelection(selected); err != nil {
			return err
		}
		votes[voteKey{poll.ID, voter}] = Vote{
			PollID:            poll.ID,
			VoterID:           voter,
			SelectedOptionIDs: selected,
			PollTypeVoted:     poll.OriginalPollType,
			VotedAt:           time.Now(),
		}
		return nil
	}

	if err := cast([]string{poll.Options[0].ID, poll.Options[1].ID}); err != ErrSingleSelection {
		t.Fatalf("two-option ballot on radio poll: err = %v; want ErrSingleSelection", err)
	}
	if len(votes) != 0 {
		t.Fatalf("rejected ballot must not be stored; have %d votes", len(votes))
	}

	if err := cast([]string{poll.Options[0].ID}); err != nil {
		t.Fatalf("first valid ballot: %v", err)
	}
	if err := cast([]string{poll.Options[1].ID}); err != nil {
		t.Fatalf("replacement ballot: %v", err)
	}

	if len(votes) != 1 {
		t.Fatalf("expected exactly one vote per (poll, voter), got %d", len(votes))
	}

	stored := votes[voteKey{poll.ID, voter}]
	if len(stored.SelectedOptionIDs) != 1 || stored.SelectedOptionIDs[0] != poll.Options[1].ID {
		t.Errorf("stored vote = %v; want only latest selection %q", stored.SelectedOptionIDs, poll.Options[1].ID)
	}
	if stored.PollTypeVoted != PollTypeRadio {
		t.Errorf("poll_type_voted = %q; want %q", stored.PollTypeVoted, PollTypeRadio)
	}
}
