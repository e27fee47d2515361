// Package fakeapi is an in-memory stand-in for the salon REST API used by tests.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"salonpro-web/models"
)

var signingKey = []byte("fakeapi-signing-key")

type failure struct {
	status  int
	message string
}

type Server struct {
	mu sync.Mutex

	nextID       int64
	users        map[int64]*models.User
	passwords    map[int64]string
	tokens       map[string]int64
	services     map[int64]*models.Service
	slots        map[int64]*models.ServiceSlot
	appointments map[int64]*models.Appointment
	reviews      map[int64]*models.Review
	failures     map[string]failure
	calls        map[string]int

	engine *gin.Engine
}

func New() *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		users:        map[int64]*models.User{},
		passwords:    map[int64]string{},
		tokens:       map[string]int64{},
		services:     map[int64]*models.Service{},
		slots:        map[int64]*models.ServiceSlot{},
		appointments: map[int64]*models.Appointment{},
		reviews:      map[int64]*models.Review{},
		failures:     map[string]failure{},
		calls:        map[string]int{},
	}
	s.engine = gin.New()
	s.engine.Use(s.record)
	s.routes()
	return s
}

// Start serves the fake API until the returned server is closed.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.engine)
}

func (s *Server) Handler() http.Handler { return s.engine }

// FailNext makes the next request matching method and path answer with status.
func (s *Server) FailNext(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = failure{status: status, message: message}
}

// Calls reports how many requests hit method and path.
func (s *Server) Calls(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+path]
}

func (s *Server) record(c *gin.Context) {
	key := c.Request.Method + " " + c.Request.URL.Path
	s.mu.Lock()
	s.calls[key]++
	f, ok := s.failures[key]
	if ok {
		delete(s.failures, key)
	}
	s.mu.Unlock()
	if ok {
		c.AbortWithStatusJSON(f.status, gin.H{"message": f.message, "statusCode": f.status})
		return
	}
	c.Next()
}

func (s *Server) id() int64 {
	s.nextID++
	return s.nextID
}

// AddUser seeds a user with a password and returns its stored copy.
func (s *Server) AddUser(u models.User, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.id()
	now := time.Now().UTC()
	u.CreatedAt, u.UpdatedAt = &now, &now
	s.users[u.ID] = &u
	s.passwords[u.ID] = password
	return u
}

func (s *Server) AddService(svc models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc.ID = s.id()
	s.services[svc.ID] = &svc
	return svc
}

func (s *Server) AddSlot(slot models.ServiceSlot) models.ServiceSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot.ID = s.id()
	if slot.Status == "" {
		slot.Status = models.SlotAvailable
	}
	s.slots[slot.ID] = &slot
	return slot
}

func (s *Server) AddAppointment(a models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	s.appointments[a.ID] = &a
	return a
}

// TokenFor mints a bearer token for userID valid for ttl (negative ttl yields
// an already expired token).
func (s *Server) TokenFor(userID int64, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mint(userID, ttl)
}

func (s *Server) mint(userID int64, ttl time.Duration) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().UnixNano(),
	})
	signed, err := tok.SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	s.tokens[signed] = userID
	return signed
}

// RevokeTokens makes every token of userID answer 401.
func (s *Server) RevokeTokens(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok, id := range s.tokens {
		if id == userID {
			delete(s.tokens, tok)
		}
	}
}

func (s *Server) Service(id int64) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.services[id]
}

func (s *Server) Slot(id int64) models.ServiceSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.slots[id]
}

func (s *Server) Appointment(id int64) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.appointments[id]
}

func (s *Server) currentUser(c *gin.Context) (*models.User, bool) {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (interface{}, error) { return signingKey, nil })
	id, known := s.tokens[parts[1]]
	if err != nil || !known {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	u, ok := s.users[id]
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return u, true
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "Validation failed (numeric string is expected)")
		return 0, false
	}
	return id, true
}

func fail(c *gin.Context, status int, msg any) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg, "statusCode": status})
}

func notFound(c *gin.Context, what string, id int64) {
	fail(c, http.StatusNotFound, fmt.Sprintf("%s con ID %d no encontrado", what, id))
}
