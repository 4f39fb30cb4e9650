package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pooller/pooller-api/util"
)

const (
	PollTypeRadio    = "radio"
	PollTypeCheckbox = "checkbox"
)

// ListPollsLimit caps the number of polls returned on the listing page.
// There is no pagination cursor; callers beyond the first page are unsupported.
const ListPollsLimit = 12

type PollOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type Poll struct {
	ID                 uuid.UUID    `json:"id"`
	Description        string       `json:"description"`
	Options            []PollOption `json:"options"`
	CreatorID          uuid.UUID    `json:"creator_id"`
	CreatedAt          time.Time    `json:"created_at"`
	AllowMultipleVotes bool         `json:"allow_multiple_votes"`
	OriginalPollType   string       `json:"original_poll_type"`
}

type PollOptionInput struct {
	Text string `json:"text" validate:"required,notblank,max=100"`
}

type CreatePollRequest struct {
	Description string            `json:"description" validate:"required,min=5,max=500"`
	PollType    string            `json:"poll_type" validate:"required,polltype"`
	Options     []PollOptionInput `json:"options" validate:"required,min=2,max=10,dive"`
}

type CreatePollResponse struct {
	PollID    uuid.UUID `json:"poll_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BuildPollOptions assigns every submitted option a generated id and the
// poll's uniform type. The single poll_type field drives both the option type
// and the multi-vote flag, so options never disagree with their parent poll.
func BuildPollOptions(pollType string, inputs []PollOptionInput, createdAt time.Time) []PollOption {
	options := make([]PollOption, len(inputs))
	for i, in := range inputs {
		options[i] = PollOption{
			ID:   util.GenerateOptionID(i+1, createdAt),
			Text: in.Text,
			Type: pollType,
		}
	}
	return options
}

// AllowsMultipleVotes reports whether a poll of the given type accepts more
// than one selected option per vote.
func AllowsMultipleVotes(pollType string) bool {
	return pollType == PollTypeCheckbox
}

// ValidateSelection checks a set of selected option ids against the poll.
// Membership is checked first so the error names the first offending id;
// single-select polls then reject selections of more than one option.
func (p Poll) ValidateSelection(selectedOptionIDs []string) error {
	valid := make(map[string]struct{}, len(p.Options))
	for _, opt := range p.Options {
		valid[opt.ID] = struct{}{}
	}

	for _, id := range selectedOptionIDs {
		if _, ok := valid[id]; !ok {
			return fmt.Errorf("invalid option ID selected: %s", id)
		}
	}

	if p.OriginalPollType == PollTypeRadio && len(selectedOptionIDs) > 1 {
		return ErrSingleSelection
	}

	return nil
}
