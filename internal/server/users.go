package server

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// user is the collaborator profile record. Plain in-memory CRUD; there is no
// persistence design behind it.
type user struct {
	Name     string
	Email    string
	Username string
	Phone    string
	hash     []byte
}

type userStore struct {
	mu    sync.Mutex
	users map[string]*user // keyed by username
}

func newUserStore() *userStore {
	return &userStore{users: make(map[string]*user)}
}

func (st *userStore) register(name, email, username, password string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, u := range st.users {
		if u.Username == username || u.Email == email {
			return fmt.Errorf("email or username already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	st.users[username] = &user{Name: name, Email: email, Username: username, hash: hash}
	return nil
}

func (st *userStore) authenticate(identifier, password string) (*user, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, u := range st.users {
		if u.Username == identifier || u.Email == identifier {
			if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) == nil {
				return u, true
			}
			return nil, false
		}
	}
	return nil, false
}

func (st *userStore) get(username string) (*user, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	u, ok := st.users[username]
	return u, ok
}

func (st *userStore) update(username, name, email, phone string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	u, ok := st.users[username]
	if !ok {
		return false
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if phone != "" {
		u.Phone = phone
	}
	return true
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail", "message": "invalid JSON"})
	}

	for _, field := range []string{req.Name, req.Email, req.Username, req.Password} {
		if strings.TrimSpace(field) == "" {
			return c.JSON(fiber.Map{"status": "fail", "message": "All fields are required."})
		}
	}

	if err := s.users.register(req.Name, req.Email, req.Username, req.Password); err != nil {
		return c.JSON(fiber.Map{"status": "fail", "message": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Registration successful! Redirecting to login..."})
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail", "message": "invalid JSON"})
	}

	if _, ok := s.users.authenticate(strings.TrimSpace(req.Identifier), strings.TrimSpace(req.Password)); !ok {
		return c.JSON(fiber.Map{"status": "fail", "message": "Invalid email/username or password."})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Login successful! Redirecting to home..."})
}

func (s *Server) handleProfileGet(c *fiber.Ctx) error {
	username := c.Query("username")
	u, ok := s.users.get(username)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "fail", "message": "user not found"})
	}
	return c.JSON(fiber.Map{"name": u.Name, "email": u.Email, "phone": u.Phone})
}

type profileRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (s *Server) handleProfilePost(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "fail", "message": "invalid JSON"})
	}

	if !s.users.update(req.Username, req.Name, req.Email, req.Phone) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "fail", "message": "user not found"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}
