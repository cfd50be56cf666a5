package grocy

import (
	"context"
	"strings"

	"github.com/grocyhq/go-grocy/api"
)

// User represents a Grocy user account.
type User struct {
	ID          int
	Username    string
	FirstName   string
	LastName    string
	DisplayName string
}

// NewUserFromData builds a User from its wire representation.
func NewUserFromData(data *api.UserData) *User {
	u := &User{
		ID:       int(data.ID),
		Username: data.Username,
	}
	if data.FirstName.Valid {
		u.FirstName = data.FirstName.String
	}
	if data.LastName.Valid {
		u.LastName = data.LastName.String
	}
	if data.DisplayName.Valid {
		u.DisplayName = data.DisplayName.String
	}
	if u.DisplayName == "" {
		u.DisplayName = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	if u.DisplayName == "" {
		u.DisplayName = u.Username
	}
	return u
}

// UserManager provides user account operations.
type UserManager struct {
	client *api.Client
}

// List returns all users.
func (m *UserManager) List(ctx context.Context) ([]*User, error) {
	data, err := m.client.Users(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]*User, 0, len(data))
	for i := range data {
		users = append(users, NewUserFromData(&data[i]))
	}
	return users, nil
}

// Get returns a user by ID. The server has no single-user endpoint, so this
// fetches the user list and filters it client-side. An unknown ID yields
// (nil, nil).
func (m *UserManager) Get(ctx context.Context, userID int) (*User, error) {
	return findUser(ctx, m.client, userID)
}

// Current returns the authenticated user.
func (m *UserManager) Current(ctx context.Context) (*User, error) {
	data, err := m.client.CurrentUser(ctx)
	if err != nil || data == nil {
		return nil, err
	}
	return NewUserFromData(data), nil
}

// Create creates a new user account.
func (m *UserManager) Create(ctx context.Context, username, firstName, lastName, password string) error {
	return m.client.CreateUser(ctx, map[string]any{
		"username":   username,
		"first_name": firstName,
		"last_name":  lastName,
		"password":   password,
	})
}

// Edit updates fields of an existing user. Keys follow the wire names
// (username, first_name, last_name, password).
func (m *UserManager) Edit(ctx context.Context, userID int, fields map[string]any) error {
	return m.client.EditUser(ctx, userID, fields)
}

// Delete removes a user account.
func (m *UserManager) Delete(ctx context.Context, userID int) error {
	return m.client.DeleteUser(ctx, userID)
}

// Settings returns all settings of the current user.
func (m *UserManager) Settings(ctx context.Context) (map[string]any, error) {
	return m.client.UserSettings(ctx)
}

// Setting returns one setting of the current user.
func (m *UserManager) Setting(ctx context.Context, key string) (map[string]any, error) {
	return m.client.UserSetting(ctx, key)
}

// SetSetting stores one setting for the current user.
func (m *UserManager) SetSetting(ctx context.Context, key string, value any) error {
	return m.client.SetUserSetting(ctx, key, value)
}

// DeleteSetting removes one setting of the current user.
func (m *UserManager) DeleteSetting(ctx context.Context, key string) error {
	return m.client.DeleteUserSetting(ctx, key)
}

// findUser resolves one user from the full user list.
func findUser(ctx context.Context, client *api.Client, userID int) (*User, error) {
	data, err := client.Users(ctx)
	if err != nil {
		return nil, err
	}
	for i := range data {
		if int(data[i].ID) == userID {
			return NewUserFromData(&data[i]), nil
		}
	}
	return nil, nil
}
