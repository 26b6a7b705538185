// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/userdir/userdir/internal/model"
	"github.com/userdir/userdir/internal/service"
)

// CreateUserRequest is the body of POST /usuarios.
// Fields are pointers so a missing key can be told apart from an empty one.
type CreateUserRequest struct {
	Name  *string `json:"nome"`
	Email *string `json:"email"`
}

// ToInput converts the request into service input. A nil request yields nil.
func (r *CreateUserRequest) ToInput() *service.CreateUserInput {
	if r == nil {
		return nil
	}
	return &service.CreateUserInput{
		Name:  r.Name,
		Email: r.Email,
	}
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	CreatedAt string `json:"criado_em"`
}

// UserListResponse is the body of GET /usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"usuarios"`
	Total int            `json:"total"`
}

// CreateUserResponse is the body of a successful POST /usuarios.
type CreateUserResponse struct {
	Message string       `json:"mensagem"`
	User    UserResponse `json:"usuario"`
}

// WelcomeResponse is the body of GET /.
type WelcomeResponse struct {
	Message   string            `json:"mensagem"`
	Version   string            `json:"versao"`
	Endpoints map[string]string `json:"endpoints_disponiveis"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"erro"`
}

// ToUserResponse converts a User model to UserResponse DTO.
func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: model.FormatTimestamp(user.CreatedAt),
	}
}

// ToUserListResponse converts a list result to UserListResponse.
func ToUserListResponse(result *service.ListResult) UserListResponse {
	users := make([]UserResponse, len(result.Users))
	for i := range result.Users {
		users[i] = ToUserResponse(&result.Users[i])
	}
	return UserListResponse{
		Users: users,
		Total: result.Total,
	}
}

// ToWelcomeResponse converts service info to WelcomeResponse.
func ToWelcomeResponse(info service.Info) WelcomeResponse {
	return WelcomeResponse{
		Message:   info.Message,
		Version:   info.Version,
		Endpoints: info.Endpoints,
	}
}
