package devserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"copticsocial/internal/domain"
	"copticsocial/internal/logic"
)

// DemoToken authenticates as the seeded demo user
const DemoToken = "demo-token"

// Server is an in-memory stand-in for the platform API
type Server struct {
	groups  *logic.MemoryGroupStore
	members *logic.MemoryMembershipStore
	svc     *logic.MembershipService
	users   map[string]domain.User // bearer token -> user
	anon    domain.User
	logger  *zap.Logger
}

// New creates a server seeded with demo parishes, groups and users
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		groups:  logic.NewMemoryGroupStore(),
		members: logic.NewMemoryMembershipStore(),
		users:   make(map[string]domain.User),
		logger:  logger,
	}
	s.svc = logic.NewMembershipService(s.groups, s.members)
	seed(s)
	return s
}

// Groups exposes the group store for tests and seeding
func (s *Server) Groups() logic.GroupStore { return s.groups }

// Memberships exposes the membership store for tests and seeding
func (s *Server) Memberships() logic.MembershipStore { return s.members }

// AddUser registers a bearer token for user
func (s *Server) AddUser(token string, user domain.User) {
	s.users[token] = user
}

// Handler returns the HTTP routes
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health/", s.HealthHandler)
	r.GET("/api/auth/user/", s.CurrentUserHandler)

	groups := r.Group("/api/groups/groups")
	groups.GET("/", s.ListGroupsHandler)
	groups.GET("/:id/", s.GetGroupHandler)
	groups.POST("/:id/join/", s.JoinGroupHandler)
	groups.POST("/:id/leave/", s.LeaveGroupHandler)

	return r
}

// Serve runs the server on ln until ctx is cancelled
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.logger.Info("dev server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// user resolves the caller from the Authorization header. Requests
// without one act as the anonymous demo user.
func (s *Server) user(c *gin.Context) (domain.User, bool) {
	auth := c.GetHeader("Authorization")
	if auth == "" {
		return s.anon, true
	}
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok {
		return domain.User{}, false
	}
	u, ok := s.users[strings.TrimSpace(token)]
	return u, ok
}

func (s *Server) authorize(c *gin.Context) (domain.User, bool) {
	u, ok := s.user(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return domain.User{}, false
	}
	return u, true
}

func (s *Server) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) CurrentUserHandler(c *gin.Context) {
	u, ok := s.authorize(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, u)
}

type listResponse struct {
	Count   int            `json:"count"`
	Results []domain.Group `json:"results"`
}

func (s *Server) ListGroupsHandler(c *gin.Context) {
	u, ok := s.authorize(c)
	if !ok {
		return
	}

	f := logic.Filter{
		Search:    c.Query("search"),
		GroupType: domain.GroupType(c.Query("group_type")),
		Privacy:   domain.Privacy(c.Query("privacy")),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		f.Limit = limit
	}
	mine := c.Query("my_groups") == "true"

	results := s.svc.List(f, u.ID, mine)
	if results == nil {
		results = []domain.Group{}
	}
	c.JSON(http.StatusOK, listResponse{Count: len(results), Results: results})
}

func (s *Server) GetGroupHandler(c *gin.Context) {
	u, ok := s.authorize(c)
	if !ok {
		return
	}
	g := s.groups.GetGroup(c.Param("id"))
	if g == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": logic.ErrGroupNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, s.svc.Annotate(g, u.ID))
}

type joinRequest struct {
	Message string `json:"message"`
}

func (s *Server) JoinGroupHandler(c *gin.Context) {
	u, ok := s.authorize(c)
	if !ok {
		return
	}

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.svc.Join(c.Param("id"), u, strings.TrimSpace(req.Message))
	if err != nil {
		s.writeError(c, err)
		return
	}

	if out.Pending {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Join request submitted successfully",
			"pending": true,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Successfully joined the group",
		"role":    out.Member.Role,
	})
}

func (s *Server) LeaveGroupHandler(c *gin.Context) {
	u, ok := s.authorize(c)
	if !ok {
		return
	}
	if err := s.svc.Leave(c.Param("id"), u); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully left the group"})
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, logic.ErrGroupNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Debug("request rejected", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(status, gin.H{"error": err.Error()})
}
