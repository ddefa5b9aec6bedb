package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	sharedConfig "quickdesk/internal/shared/config"
	"quickdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{Mode: gin.TestMode, AllowedOrigins: []string{"*"}},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 60},
		},
	}

	router, err := NewRouter(db, cfg, logger.NewLogger())
	require.NoError(t, err)
	router.SetupRoutes()
	t.Cleanup(router.Shutdown)

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.GetEngine().ServeHTTP(w, req)
	return w
}

func (s *testServer) decode(w *httptest.ResponseRecorder, target interface{}) {
	s.t.Helper()
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

// signupAndLogin registers an account and returns its id and token.
func (s *testServer) signupAndLogin(name, email string) (uint, string) {
	s.t.Helper()

	w := s.do(http.MethodPost, "/signup", "", map[string]string{
		"name": name, "gender": "other", "email": email, "password": "pw-" + name, "category": "General",
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	return s.login(email, "pw-"+name)
}

func (s *testServer) login(email, password string) (uint, string) {
	s.t.Helper()

	w := s.do(http.MethodPost, "/login", "", map[string]string{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	s.decode(w, &body)
	return body.User.ID, body.Token
}

// makeAdmin stands in for the operator set-role command.
func (s *testServer) makeAdmin(email string) {
	s.t.Helper()

	ctx := context.Background()
	u, err := s.router.repos.userRepo.GetByEmail(ctx, email)
	require.NoError(s.t, err)
	require.NotNil(s.t, u)
	_, err = u.ChangeRole(authorization.RoleAdmin)
	require.NoError(s.t, err)
	require.NoError(s.t, s.router.repos.userRepo.UpdateRole(ctx, u))
}

func (s *testServer) createTicket(token string) uint {
	s.t.Helper()

	w := s.do(http.MethodPost, "/tickets", token, map[string]interface{}{
		"question": "VPN drops", "description": "Every **hour**", "tags": []string{"vpn", "network"},
	})
	require.Equal(s.t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Ticket struct {
			ID uint `json:"id"`
		} `json:"ticket"`
	}
	s.decode(w, &body)
	return body.Ticket.ID
}

type ticketBody struct {
	ID                uint    `json:"id"`
	Status            string  `json:"status"`
	UpvoteCount       int     `json:"upvote_count"`
	ConversationCount int     `json:"conversation_count"`
	AssignedAgent     *string `json:"assigned_agent"`
	DescriptionHTML   string  `json:"description_html"`
}

func TestRouter_SignupAlwaysCreatesEndUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/signup", "", map[string]string{
		"name": "Mallory", "gender": "other", "email": "Mallory@Example.com",
		"password": "pw", "category": "General", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	s.decode(w, &body)
	assert.Equal(t, "end-user", body.User.Role)
	assert.Equal(t, "mallory@example.com", body.User.Email)

	dup := s.do(http.MethodPost, "/signup", "", map[string]string{
		"name": "M2", "gender": "other", "email": "mallory@example.com", "password": "pw", "category": "General",
	})
	assert.Equal(t, http.StatusBadRequest, dup.Code)
}

func TestRouter_LoginClaimsMatchStoredUser(t *testing.T) {
	s := newTestServer(t)

	id, token := s.signupAndLogin("ann", "ann@example.com")

	claims, err := s.router.svcs.jwtSvc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, authorization.RoleEndUser, claims.Role)

	w := s.do(http.MethodPost, "/login", "", map[string]string{"email": "ann@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ProtectedRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/profile", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/profile", "garbage", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/tickets", "", nil).Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "", nil).Code)
}

func TestRouter_TicketValidation(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signupAndLogin("ann", "ann@example.com")

	w := s.do(http.MethodPost, "/tickets", token, map[string]interface{}{
		"question": "q", "description": "d", "tags": []string{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/tickets", token, map[string]interface{}{
		"question": "q", "description": "d", "tags": []string{"  "},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/tickets?status=bogus", "", nil).Code)
}

func TestRouter_UpvotesCountOncePerUser(t *testing.T) {
	s := newTestServer(t)
	_, owner := s.signupAndLogin("owner", "owner@example.com")
	ticketID := s.createTicket(owner)
	path := fmt.Sprintf("/tickets/%d/upvote", ticketID)

	const voters = 3
	var firstVoter string
	for i := 0; i < voters; i++ {
		_, token := s.signupAndLogin(fmt.Sprintf("voter%d", i), fmt.Sprintf("voter%d@example.com", i))
		if i == 0 {
			firstVoter = token
		}
		require.Equal(t, http.StatusCreated, s.do(http.MethodPost, path, token, nil).Code)
	}

	repeat := s.do(http.MethodPost, path, firstVoter, nil)
	assert.Equal(t, http.StatusBadRequest, repeat.Code)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPost, "/tickets/9999/upvote", firstVoter, nil).Code)

	var tickets []ticketBody
	s.decode(s.do(http.MethodGet, "/tickets", "", nil), &tickets)
	require.Len(t, tickets, 1)
	assert.Equal(t, voters, tickets[0].UpvoteCount)
}

func TestRouter_UpgradeFlowAndStaleRole(t *testing.T) {
	s := newTestServer(t)

	_, adminToken := s.signupAndLogin("root", "root@example.com")
	s.makeAdmin("root@example.com")

	userID, userToken := s.signupAndLogin("bob", "bob@example.com")

	// end-users are kept out of the staff queue
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/agent/tickets", userToken, nil).Code)
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/admin/upgrade-requests", userToken, nil).Code)

	w := s.do(http.MethodPost, "/upgrade-request", userToken, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/upgrade-request", userToken, nil).Code)

	var pending []struct {
		ID     uint   `json:"id"`
		UserID uint   `json:"user_id"`
		Status string `json:"status"`
		Users  struct {
			Email string `json:"email"`
		} `json:"users"`
	}
	s.decode(s.do(http.MethodGet, "/admin/upgrade-requests?status=pending", adminToken, nil), &pending)
	require.Len(t, pending, 1)
	assert.Equal(t, userID, pending[0].UserID)
	assert.Equal(t, "bob@example.com", pending[0].Users.Email)

	w = s.do(http.MethodPut, fmt.Sprintf("/admin/upgrade-requests/%d", pending[0].ID), adminToken, map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Request approved")

	// the token still says end-user; the stored role decides
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/agent/tickets", userToken, nil).Code)

	_, agentToken := s.login("bob@example.com", "pw-bob")
	w = s.do(http.MethodPut, fmt.Sprintf("/admin/users/%d/role", userID), adminToken, map[string]string{"role": "end-user"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodGet, "/agent/tickets", agentToken, nil).Code)
}

func TestRouter_AgentWorkflow(t *testing.T) {
	s := newTestServer(t)

	_, adminToken := s.signupAndLogin("root", "root@example.com")
	s.makeAdmin("root@example.com")
	_, ownerToken := s.signupAndLogin("ann", "ann@example.com")
	ticketID := s.createTicket(ownerToken)

	base := fmt.Sprintf("/agent/tickets/%d", ticketID)

	w := s.do(http.MethodPut, base+"/status", adminToken, map[string]string{"status": "in-progress"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, base+"/status", adminToken, map[string]string{"status": "done"}).Code)

	const comments = 2
	for i := 0; i < comments; i++ {
		w := s.do(http.MethodPost, base+"/comment", adminToken, map[string]string{"comment": fmt.Sprintf("reply %d", i)})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, base+"/comment", adminToken, map[string]string{"comment": " "}).Code)

	var detail ticketBody
	s.decode(s.do(http.MethodGet, base, adminToken, nil), &detail)
	assert.Equal(t, "in-progress", detail.Status)
	assert.Equal(t, comments, detail.ConversationCount)
	require.NotNil(t, detail.AssignedAgent)
	assert.Equal(t, "root@example.com", *detail.AssignedAgent)
	assert.Contains(t, detail.DescriptionHTML, "<strong>hour</strong>")

	var thread []struct {
		Message string `json:"message"`
		Users   struct {
			Role string `json:"role"`
		} `json:"users"`
	}
	s.decode(s.do(http.MethodGet, base+"/comments", adminToken, nil), &thread)
	require.Len(t, thread, comments)
	assert.Equal(t, "reply 0", thread[0].Message)
	assert.Equal(t, "admin", thread[0].Users.Role)

	// the public feed never names the agent
	public := s.do(http.MethodGet, "/tickets", "", nil)
	assert.NotContains(t, public.Body.String(), "assigned_agent")

	var mine []ticketBody
	s.decode(s.do(http.MethodGet, "/end-user/my-tickets", ownerToken, nil), &mine)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].AssignedAgent)

	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/agent/tickets/9999", adminToken, nil).Code)
}

func TestRouter_Categories(t *testing.T) {
	s := newTestServer(t)

	_, userToken := s.signupAndLogin("ann", "ann@example.com")
	_, adminToken := s.signupAndLogin("root", "root@example.com")
	s.makeAdmin("root@example.com")

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPost, "/categories", userToken, map[string]string{"name": "Billing"}).Code)
	assert.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/categories", adminToken, map[string]string{"name": "Billing"}).Code)

	var categories []struct {
		Name string `json:"name"`
	}
	s.decode(s.do(http.MethodGet, "/categories", "", nil), &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Billing", categories[0].Name)
}
