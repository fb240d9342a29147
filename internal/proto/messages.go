// Package proto holds the wire contract between qwik2do-server and the
// terminal client: request/response messages, the gRPC service descriptor,
// and a client stub. Messages travel through the "json" codec registered in
// codec.go; timestamps use the well-known protobuf Timestamp type.
package proto

import "google.golang.org/protobuf/types/known/timestamppb"

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

func (x *PingResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserId string `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is returned by Login and RefreshToken so a client can rebuild the
// signed-in identity from a persisted refresh token alone.
type Session struct {
	UserId       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (x *Session) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

func (x *Session) GetRefreshToken() string {
	if x != nil {
		return x.RefreshToken
	}
	return ""
}

type LoginResponse struct {
	Session *Session `json:"session"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshTokenResponse struct {
	Session *Session `json:"session"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct{}

type Task struct {
	Id        string                 `json:"id"`
	OwnerId   string                 `json:"owner_id"`
	Text      string                 `json:"text"`
	Completed bool                   `json:"completed"`
	CreatedAt *timestamppb.Timestamp `json:"created_at,omitempty"`
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type ListTasksRequest struct{}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type CreateTaskRequest struct {
	Text string `json:"text"`
}

type CreateTaskResponse struct {
	Task *Task `json:"task"`
}

type DeleteTaskRequest struct {
	Id string `json:"id"`
}

type DeleteTaskResponse struct{}

type SetTaskCompletedRequest struct {
	Id        string `json:"id"`
	Completed bool   `json:"completed"`
}

type SetTaskCompletedResponse struct{}

type GetBackgroundImageRequest struct{}

type GetBackgroundImageResponse struct {
	Url    string `json:"url"`
	Source string `json:"source"`
}

type GetWeatherRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GetWeatherResponse struct {
	Description  string  `json:"description"`
	TemperatureC float64 `json:"temperature_c"`
}
