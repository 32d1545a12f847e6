package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oguzhany/health-reminder/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	name     string
	role     domain.Role
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		name:     "Test User",
		role:     domain.RoleUser,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// AsAdmin gives the user the admin role
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.role = domain.RoleAdmin
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		Role:         b.role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin creates the user, logs in via the API and returns the user
// together with the session cookie.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer) (*domain.User, *http.Cookie) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    user.Email,
		"password": password,
	})

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected login status: %d", resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == "authToken" {
			return user, cookie
		}
	}

	t.Fatal("login response did not set authToken cookie")
	return nil, nil
}

// ReminderBuilder creates test reminders
type ReminderBuilder struct {
	userID   uuid.UUID
	title    string
	time     string
	kind     domain.ReminderType
	isActive bool
}

// NewReminderBuilder creates a new ReminderBuilder with default values
func NewReminderBuilder(userID uuid.UUID) *ReminderBuilder {
	return &ReminderBuilder{
		userID:   userID,
		title:    "Drink water",
		time:     "08:00",
		kind:     domain.ReminderWater,
		isActive: true,
	}
}

// WithTitle sets the title
func (b *ReminderBuilder) WithTitle(title string) *ReminderBuilder {
	b.title = title
	return b
}

// WithTime sets the wall-clock time ("HH:MM")
func (b *ReminderBuilder) WithTime(hhmm string) *ReminderBuilder {
	b.time = hhmm
	return b
}

// WithType sets the reminder category
func (b *ReminderBuilder) WithType(kind domain.ReminderType) *ReminderBuilder {
	b.kind = kind
	return b
}

// Inactive marks the reminder as toggled off
func (b *ReminderBuilder) Inactive() *ReminderBuilder {
	b.isActive = false
	return b
}

// Build creates the reminder in the database
func (b *ReminderBuilder) Build(t *testing.T, db *gorm.DB) *domain.Reminder {
	t.Helper()

	reminder := &domain.Reminder{
		ID:        uuid.New(),
		UserID:    b.userID,
		Title:     b.title,
		Time:      b.time,
		Type:      b.kind,
		IsActive:  b.isActive,
		CreatedAt: time.Now(),
	}

	if err := db.Create(reminder).Error; err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	return reminder
}

// AuthenticatedRequest creates an HTTP request carrying the session cookie.
func AuthenticatedRequest(t *testing.T, method, url string, body interface{}, cookie *http.Cookie) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}
