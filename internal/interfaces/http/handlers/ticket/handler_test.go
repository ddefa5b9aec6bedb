package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickdesk/internal/application/ticket/dto"
	"quickdesk/internal/application/ticket/usecases"
	"quickdesk/internal/interfaces/http/handlers/testutil"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	cmd    usecases.CreateTicketCommand
	result *dto.TicketDTO
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListTicketsUC struct {
	query  usecases.ListTicketsQuery
	result []*dto.TicketDTO
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockListMyTicketsUC struct {
	creatorID uint
	result    []*dto.TicketDTO
}

func (m *mockListMyTicketsUC) Execute(_ context.Context, creatorID uint) ([]*dto.TicketDTO, error) {
	m.creatorID = creatorID
	return m.result, nil
}

type mockUpvoteTicketUC struct {
	cmd usecases.UpvoteTicketCommand
	err error
}

func (m *mockUpvoteTicketUC) Execute(_ context.Context, cmd usecases.UpvoteTicketCommand) error {
	m.cmd = cmd
	return m.err
}

type mockGetTicketUC struct {
	query  usecases.GetTicketQuery
	result *dto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, query usecases.GetTicketQuery) (*dto.TicketDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockChangeStatusUC struct {
	cmd    usecases.ChangeStatusCommand
	result *dto.TicketDTO
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, cmd usecases.ChangeStatusCommand) (*dto.TicketDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockAddCommentUC struct {
	cmd    usecases.AddCommentCommand
	result *dto.CommentDTO
	err    error
}

func (m *mockAddCommentUC) Execute(_ context.Context, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListCommentsUC struct {
	result []*dto.CommentDTO
	err    error
}

func (m *mockListCommentsUC) Execute(_ context.Context, _ uint) ([]*dto.CommentDTO, error) {
	return m.result, m.err
}

func assignedTicket() *dto.TicketDTO {
	return &dto.TicketDTO{
		ID:            3,
		Question:      "VPN drops",
		Description:   "hourly",
		Tags:          []string{"vpn"},
		Username:      "ann@example.com",
		Status:        "in-progress",
		AssignedAgent: null.StringFrom("bob@example.com"),
	}
}

// =====================================================================
// Public and end-user routes
// =====================================================================

func TestListTickets_PublicViewHidesAgent(t *testing.T) {
	listUC := &mockListTicketsUC{result: []*dto.TicketDTO{assignedTicket()}}
	h := NewTicketHandler(nil, listUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "open", "tag": "vpn", "q": "drops"})

	h.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "assigned_agent")
	assert.NotContains(t, w.Body.String(), "bob@example.com")
	assert.Equal(t, usecases.ListTicketsQuery{Status: "open", Tag: "vpn", Query: "drops"}, listUC.query)
}

func TestListTickets_InvalidStatus(t *testing.T) {
	listUC := &mockListTicketsUC{err: errors.NewValidationError("Invalid status")}
	h := NewTicketHandler(nil, listUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets?status=bogus", nil)
	h.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTicket(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "created",
			body:       CreateTicketRequest{Question: "VPN drops", Description: "hourly", Tags: []string{"vpn"}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing fields",
			body:       map[string]string{"question": "VPN drops"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields are required",
		},
		{
			name:       "blank tags rejected by use case",
			body:       CreateTicketRequest{Question: "VPN drops", Description: "hourly", Tags: []string{" "}},
			ucErr:      errors.NewValidationError("All fields are required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createUC := &mockCreateTicketUC{result: &dto.TicketDTO{ID: 1, Status: "open"}, err: tt.ucErr}
			h := NewTicketHandler(createUC, nil, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets", tt.body)
			testutil.SetAuthContext(c, 7, "ann@example.com")

			h.CreateTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				var body testutil.ErrorBody
				require.NoError(t, testutil.ParseResponse(w, &body))
				assert.Equal(t, tt.wantMsg, body.Message)
				return
			}
			assert.Equal(t, uint(7), createUC.cmd.CreatorID)
			assert.Equal(t, "ann@example.com", createUC.cmd.CreatorEmail)
			assert.Contains(t, w.Body.String(), `"ticket"`)
		})
	}
}

func TestUpvoteTicket(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		ucErr      error
		wantStatus int
	}{
		{name: "upvoted", id: "3", wantStatus: http.StatusCreated},
		{name: "repeat", id: "3", ucErr: errors.NewAlreadyVotedError(), wantStatus: http.StatusBadRequest},
		{name: "missing ticket", id: "99", ucErr: errors.NewNotFoundError("Ticket not found"), wantStatus: http.StatusNotFound},
		{name: "bad id", id: "abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upvoteUC := &mockUpvoteTicketUC{err: tt.ucErr}
			h := NewTicketHandler(nil, nil, nil, upvoteUC, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/tickets/"+tt.id+"/upvote", nil)
			testutil.SetAuthContext(c, 5, "u@example.com")
			testutil.SetURLParam(c, "id", tt.id)

			h.UpvoteTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, usecases.UpvoteTicketCommand{TicketID: 3, UserID: 5}, upvoteUC.cmd)
			}
		})
	}
}

func TestListMyTickets_IncludesAgent(t *testing.T) {
	myUC := &mockListMyTicketsUC{result: []*dto.TicketDTO{assignedTicket()}}
	h := NewTicketHandler(nil, nil, myUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/end-user/my-tickets", nil)
	testutil.SetAuthContext(c, 9, "ann@example.com")

	h.ListMyTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(9), myUC.creatorID)
	assert.Contains(t, w.Body.String(), `"assigned_agent":"bob@example.com"`)
}

// =====================================================================
// Agent routes
// =====================================================================

func TestAgentGetTicket_RendersHTML(t *testing.T) {
	getUC := &mockGetTicketUC{result: assignedTicket()}
	h := NewAgentTicketHandler(nil, getUC, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/agent/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")

	h.GetTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.GetTicketQuery{TicketID: 3, RenderHTML: true}, getUC.query)
}

func TestAgentUpdateStatus_AssignsActingAgent(t *testing.T) {
	statusUC := &mockChangeStatusUC{result: assignedTicket()}
	h := NewAgentTicketHandler(nil, nil, statusUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/agent/tickets/3/status", UpdateStatusRequest{Status: "in-progress"})
	testutil.SetCurrentUser(t, c, 2, "bob@example.com", authorization.RoleAgent)
	testutil.SetURLParam(c, "id", "3")

	h.UpdateStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ChangeStatusCommand{
		TicketID:   3,
		Status:     "in-progress",
		AgentID:    2,
		AgentEmail: "bob@example.com",
	}, statusUC.cmd)
}

func TestAgentAddComment(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		ucErr      error
		wantStatus int
	}{
		{name: "added", body: AddCommentRequest{Comment: "on it"}, wantStatus: http.StatusCreated},
		{name: "client body", body: map[string]string{"comment": "please retry"}, wantStatus: http.StatusCreated},
		{name: "empty", body: AddCommentRequest{Comment: "  "}, ucErr: errors.NewValidationError("Comment cannot be empty"), wantStatus: http.StatusBadRequest},
		{name: "no body", body: nil, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			commentUC := &mockAddCommentUC{result: &dto.CommentDTO{ID: 1}, err: tt.ucErr}
			h := NewAgentTicketHandler(nil, nil, nil, commentUC, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/agent/tickets/3/comment", tt.body)
			testutil.SetCurrentUser(t, c, 2, "bob@example.com", authorization.RoleAgent)
			testutil.SetURLParam(c, "id", "3")

			h.AddComment(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.NotEmpty(t, commentUC.cmd.Message)
				assert.Equal(t, uint(2), commentUC.cmd.AuthorID)
				assert.Equal(t, "bob@example.com", commentUC.cmd.Author.Email)
				assert.Equal(t, authorization.RoleAgent, commentUC.cmd.Author.Role)
			}
		})
	}
}

func TestAgentAddComment_ReadsCommentField(t *testing.T) {
	commentUC := &mockAddCommentUC{result: &dto.CommentDTO{ID: 1}}
	h := NewAgentTicketHandler(nil, nil, nil, commentUC, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/agent/tickets/3/comment", map[string]string{"comment": "please retry"})
	testutil.SetCurrentUser(t, c, 2, "bob@example.com", authorization.RoleAgent)
	testutil.SetURLParam(c, "id", "3")

	h.AddComment(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "please retry", commentUC.cmd.Message)
	assert.Equal(t, uint(3), commentUC.cmd.TicketID)
}

func TestAgentListComments_NotFound(t *testing.T) {
	listUC := &mockListCommentsUC{err: errors.NewNotFoundError("Ticket not found")}
	h := NewAgentTicketHandler(nil, nil, nil, nil, listUC, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/agent/tickets/8/comments", nil)
	testutil.SetURLParam(c, "id", "8")

	h.ListComments(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Ticket not found")
}
