package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "quickdesk/internal/domain/ticket/valueobjects"
	"quickdesk/internal/shared/biztime"
)

const (
	maxQuestionLength    = 300
	maxDescriptionLength = 10000
)

// Ticket is a support request. Creator and assignee are stored by id; their
// emails are resolved when the ticket is read.
type Ticket struct {
	id                 uint
	question           string
	description        string
	tags               []string
	creatorID          uint
	creatorEmail       string
	status             vo.TicketStatus
	upvoteCount        int
	conversationCount  int
	assignedAgentID    *uint
	assignedAgentEmail *string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTicket opens a ticket. Tags are normalized and must not end up empty.
func NewTicket(question, description string, tags []string, creatorID uint) (*Ticket, error) {
	question = strings.TrimSpace(question)
	description = strings.TrimSpace(description)

	if question == "" {
		return nil, fmt.Errorf("question is required")
	}
	if len(question) > maxQuestionLength {
		return nil, fmt.Errorf("question exceeds maximum length of %d characters", maxQuestionLength)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	normalized, err := vo.NormalizeTags(tags)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, fmt.Errorf("at least one tag is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		question:    question,
		description: description,
		tags:        normalized,
		creatorID:   creatorID,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence, including the
// resolved creator and assignee emails.
func ReconstructTicket(
	id uint,
	question, description string,
	tags []string,
	creatorID uint,
	creatorEmail string,
	status vo.TicketStatus,
	upvoteCount, conversationCount int,
	assignedAgentID *uint,
	assignedAgentEmail *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:                 id,
		question:           question,
		description:        description,
		tags:               tags,
		creatorID:          creatorID,
		creatorEmail:       creatorEmail,
		status:             status,
		upvoteCount:        upvoteCount,
		conversationCount:  conversationCount,
		assignedAgentID:    assignedAgentID,
		assignedAgentEmail: assignedAgentEmail,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Question() string {
	return t.question
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatorEmail() string {
	return t.creatorEmail
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) UpvoteCount() int {
	return t.upvoteCount
}

func (t *Ticket) ConversationCount() int {
	return t.conversationCount
}

func (t *Ticket) AssignedAgentID() *uint {
	return t.assignedAgentID
}

func (t *Ticket) AssignedAgentEmail() *string {
	return t.assignedAgentEmail
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// SetID sets the ticket ID (only for persistence layer use)
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetCreatorEmail records the resolved creator email after creation.
func (t *Ticket) SetCreatorEmail(email string) {
	t.creatorEmail = email
}

// ChangeStatus moves the ticket to status and assigns it to the acting
// agent. Any status may follow any other, and the assignee is overwritten
// even when the status does not change.
func (t *Ticket) ChangeStatus(status vo.TicketStatus, agentID uint, agentEmail string) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if agentID == 0 {
		return fmt.Errorf("agent ID is required")
	}

	t.status = status
	t.assignedAgentID = &agentID
	t.assignedAgentEmail = &agentEmail
	t.updatedAt = biztime.NowUTC()
	return nil
}
