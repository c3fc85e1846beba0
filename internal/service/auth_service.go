package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"facultyhub/internal/auth"
	"facultyhub/internal/models"
	"facultyhub/internal/repository"
)

// AuthService is the mock credential store. Accounts live in the local data
// file, passwords are bcrypt-hashed, and each call sleeps for a fixed
// interval to simulate a server round trip. It is an explicitly constructed
// instance, not a process-wide singleton.
type AuthService struct {
	users     *repository.UserRepo
	sessions  *repository.SessionRepo
	jwtSecret string
	delays    Delays
}

// Delays are the simulated round-trip latencies per operation.
type Delays struct {
	Login    time.Duration
	Register time.Duration
	Profile  time.Duration
}

// DefaultDelays mirrors the reference behavior.
func DefaultDelays() Delays {
	return Delays{
		Login:    250 * time.Millisecond,
		Register: 500 * time.Millisecond,
		Profile:  300 * time.Millisecond,
	}
}

const (
	passwordMinLength = 6
	defaultRole       = "faculty"
)

var allowedEmailDomains = []string{"christuniversity.in", "btech.christuniversity.in"}

func NewAuthService(users *repository.UserRepo, sessions *repository.SessionRepo, jwtSecret string, delays Delays) *AuthService {
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, delays: delays}
}

type AuthResult struct {
	Token string              `json:"token"`
	User  models.UserResponse `json:"user"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

func (s *AuthService) Register(in RegisterInput) (*AuthResult, error) {
	time.Sleep(s.delays.Register)

	if in.Username == "" || in.Email == "" || in.Password == "" || in.FullName == "" {
		return nil, errors.New("all required fields must be filled")
	}
	if len(in.Password) < passwordMinLength {
		return nil, fmt.Errorf("password must be at least %d characters long", passwordMinLength)
	}
	if existing, _ := s.users.FindByLogin(in.Username); existing != nil {
		return nil, errors.New("username or email already exists")
	}
	if existing, _ := s.users.FindByLogin(in.Email); existing != nil {
		return nil, errors.New("username or email already exists")
	}
	if !emailDomainAllowed(in.Email) {
		return nil, fmt.Errorf("email must be from allowed domains: %s", strings.Join(allowedEmailDomains, ", "))
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	department := in.Department
	if department == "" {
		department = "Not specified"
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Department:   department,
		Role:         defaultRole,
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		IsActive:     true,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.ToResponse()}, nil
}

// Login matches a trimmed, case-insensitive username or email, records the
// login time, and persists the current-session marker.
func (s *AuthService) Login(usernameOrEmail, password string) (*AuthResult, error) {
	time.Sleep(s.delays.Login)

	if usernameOrEmail == "" || password == "" {
		return nil, errors.New("please provide username/email and password")
	}

	user, err := s.users.FindByLogin(usernameOrEmail)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !auth.CheckPassword(strings.TrimSpace(password), user.PasswordHash) {
		return nil, errors.New("invalid username/email or password")
	}

	now := time.Now().UTC().Format(time.RFC3339)
	user.LastLogin = now
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	if err := s.sessions.Put(models.SessionRecord{
		UserID:     user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Department: user.Department,
		Role:       user.Role,
		LoginTime:  now,
	}); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user.ToResponse()}, nil
}

// Logout removes the current-session marker.
func (s *AuthService) Logout(userID string) error {
	return s.sessions.Delete(userID)
}

// IsLoggedIn reports whether a current-session record exists for the user.
func (s *AuthService) IsLoggedIn(userID string) bool {
	_, ok := s.sessions.Get(userID)
	return ok
}

func (s *AuthService) Me(userID string) (*models.UserResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	resp := user.ToResponse()
	return &resp, nil
}

// UpdateProfile changes the non-sensitive profile fields. Empty inputs
// leave the current value untouched.
func (s *AuthService) UpdateProfile(userID, fullName, department, email string) (*models.UserResponse, error) {
	time.Sleep(s.delays.Profile)

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	if fullName != "" {
		user.FullName = fullName
	}
	if department != "" {
		user.Department = department
	}
	if email != "" {
		if !emailDomainAllowed(email) {
			return nil, fmt.Errorf("email must be from allowed domains: %s", strings.Join(allowedEmailDomains, ", "))
		}
		user.Email = email
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}

	// Keep the session marker in sync if one exists.
	if rec, ok := s.sessions.Get(userID); ok {
		rec.Email = user.Email
		rec.FullName = user.FullName
		rec.Department = user.Department
		_ = s.sessions.Put(rec)
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	time.Sleep(s.delays.Profile)

	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if !auth.CheckPassword(strings.TrimSpace(currentPassword), user.PasswordHash) {
		return errors.New("current password is incorrect")
	}
	if len(newPassword) < passwordMinLength {
		return fmt.Errorf("password must be at least %d characters long", passwordMinLength)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(user)
}

// SeedDefaults creates the default faculty accounts if they are missing.
// These are demo credentials for a local prototype, not real secrets.
func (s *AuthService) SeedDefaults() error {
	defaults := []struct {
		username, email, password, fullName, department string
	}{
		{"deepak", "deepak@christuniversity.in", "deepak123", "Dr. Deepak", "Computer Science"},
		{"john.doe", "john.doe@christuniversity.in", "password123", "Dr. John Doe", "Mathematics"},
	}
	for _, d := range defaults {
		existing, err := s.users.FindByLogin(d.username)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		hash, err := auth.HashPassword(d.password)
		if err != nil {
			return err
		}
		user := &models.User{
			ID:           uuid.NewString(),
			Username:     d.username,
			Email:        d.email,
			PasswordHash: hash,
			FullName:     d.fullName,
			Department:   d.department,
			Role:         defaultRole,
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
			IsActive:     true,
		}
		if err := s.users.Create(user); err != nil {
			return err
		}
	}
	return nil
}

func emailDomainAllowed(email string) bool {
	_, domain, found := strings.Cut(email, "@")
	if !found {
		return false
	}
	for _, d := range allowedEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}
