package api

import (
	"context"
	"fmt"
)

// UserData represents a user
type UserData struct {
	ID          Int        `json:"id"`
	Username    string     `json:"username"`
	FirstName   NullString `json:"first_name"`
	LastName    NullString `json:"last_name"`
	DisplayName NullString `json:"display_name"`
}

func (u *UserData) validate() error {
	if u.ID == 0 {
		return missingField("user", "id")
	}
	if u.Username == "" {
		return missingField("user", "username")
	}
	return nil
}

// Users returns all users. The API has no single-user lookup endpoint;
// callers needing one user filter this list client-side.
func (c *Client) Users(ctx context.Context) ([]UserData, error) {
	body, err := c.Get(ctx, "users", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseList[UserData](body)
}

// CurrentUser returns the currently authenticated user. The server answers
// with a one-element array.
func (c *Client) CurrentUser(ctx context.Context) (*UserData, error) {
	body, err := c.Get(ctx, "user", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return firstOf(parseList[UserData](body))
}

// CreateUser creates a new user.
func (c *Client) CreateUser(ctx context.Context, data map[string]any) error {
	_, err := c.Post(ctx, "users", data)
	return err
}

// EditUser updates fields of an existing user.
func (c *Client) EditUser(ctx context.Context, userID int, data map[string]any) error {
	_, err := c.Put(ctx, fmt.Sprintf("users/%d", userID), data)
	return err
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, userID int) error {
	_, err := c.Delete(ctx, fmt.Sprintf("users/%d", userID))
	return err
}

// UserSettings returns all settings of the current user.
func (c *Client) UserSettings(ctx context.Context) (map[string]any, error) {
	body, err := c.Get(ctx, "user/settings", nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseObject(body)
}

// UserSetting returns a single setting of the current user.
func (c *Client) UserSetting(ctx context.Context, key string) (map[string]any, error) {
	body, err := c.Get(ctx, fmt.Sprintf("user/settings/%s", key), nil)
	if err != nil || body == nil {
		return nil, err
	}
	return parseObject(body)
}

// SetUserSetting stores a setting for the current user.
func (c *Client) SetUserSetting(ctx context.Context, key string, value any) error {
	_, err := c.Put(ctx, fmt.Sprintf("user/settings/%s", key), map[string]any{"value": value})
	return err
}

// DeleteUserSetting removes a setting of the current user.
func (c *Client) DeleteUserSetting(ctx context.Context, key string) error {
	_, err := c.Delete(ctx, fmt.Sprintf("user/settings/%s", key))
	return err
}
