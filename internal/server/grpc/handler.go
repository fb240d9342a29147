package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qwik2do/internal/common"
	pb "github.com/dmitrijs2005/qwik2do/internal/proto"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
	"github.com/dmitrijs2005/qwik2do/internal/server/services"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// toStatus maps service errors onto gRPC codes. Details of internal
// failures are logged, never sent to the client.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUpstream):
		return status.Error(codes.Unavailable, "upstream unavailable")
	default:
		s.logger.Error(ctx, err.Error(), "request_id", requestIDFromContext(ctx))
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) currentUser(ctx context.Context) (string, error) {
	userID, ok := userIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return userID, nil
}

func validTaskID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return status.Error(codes.InvalidArgument, "invalid task id")
	}
	return nil
}

func toPBSession(sess *services.Session) *pb.Session {
	return &pb.Session{
		UserId:       sess.UserID,
		Email:        sess.Email,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}
}

func toPBTask(t *models.Task) *pb.Task {
	return &pb.Task{
		Id:        t.ID,
		OwnerId:   t.OwnerID,
		Text:      t.Text,
		Completed: t.Completed,
		CreatedAt: timestamppb.New(t.CreatedAt),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &pb.RegisterResponse{UserId: u.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	sess, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginResponse{Session: toPBSession(sess)}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {
	sess, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.Unauthenticated, "invalid refresh token")
		}
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RefreshTokenResponse{Session: toPBSession(sess)}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.users.Logout(ctx, userID, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, req *pb.ListTasksRequest) (*pb.ListTasksResponse, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	out := make([]*pb.Task, 0, len(items))
	for _, t := range items {
		out = append(out, toPBTask(t))
	}
	return &pb.ListTasksResponse{Tasks: out}, nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.CreateTaskResponse, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	t, err := s.tasks.Create(ctx, userID, req.Text)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateTaskResponse{Task: toPBTask(t)}, nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *pb.DeleteTaskRequest) (*pb.DeleteTaskResponse, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validTaskID(req.Id); err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, userID, req.Id); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteTaskResponse{}, nil
}

func (s *GRPCServer) SetTaskCompleted(ctx context.Context, req *pb.SetTaskCompletedRequest) (*pb.SetTaskCompletedResponse, error) {
	userID, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := validTaskID(req.Id); err != nil {
		return nil, err
	}

	if err := s.tasks.SetCompleted(ctx, userID, req.Id, req.Completed); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SetTaskCompletedResponse{}, nil
}

func (s *GRPCServer) GetBackgroundImage(ctx context.Context, req *pb.GetBackgroundImageRequest) (*pb.GetBackgroundImageResponse, error) {
	img, err := s.ambient.BackgroundImage(ctx)
	if err != nil {
		s.logger.Warn(ctx, "background image unavailable", "error", err.Error())
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetBackgroundImageResponse{Url: img.URL, Source: img.Source}, nil
}

func (s *GRPCServer) GetWeather(ctx context.Context, req *pb.GetWeatherRequest) (*pb.GetWeatherResponse, error) {
	w, err := s.ambient.Weather(ctx, req.Latitude, req.Longitude)
	if err != nil {
		s.logger.Warn(ctx, "weather unavailable", "error", err.Error())
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetWeatherResponse{Description: w.Description, TemperatureC: w.TemperatureC}, nil
}
