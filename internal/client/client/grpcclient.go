package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
	"github.com/dmitrijs2005/qwik2do/internal/common"
	pb "github.com/dmitrijs2005/qwik2do/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// public calls never carry tokens and are never retried after a refresh.
var publicMethods = map[string]bool{
	pb.Qwik2DoService_Ping_FullMethodName:         true,
	pb.Qwik2DoService_Register_FullMethodName:     true,
	pb.Qwik2DoService_Login_FullMethodName:        true,
	pb.Qwik2DoService_RefreshToken_FullMethodName: true,
}

type GRPCClient struct {
	endpointURL string
	callTimeout time.Duration
	conn        *grpc.ClientConn
	client      pb.Qwik2DoServiceClient

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	observer     TokenObserver
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) setTokens(access, refresh string) {
	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()
}

func (s *GRPCClient) currentObserver() TokenObserver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.observer
}

func (s *GRPCClient) SetObserver(o TokenObserver) {
	s.mu.Lock()
	s.observer = o
	s.mu.Unlock()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.callTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.callTimeout)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unauthenticated && st.Message() == common.ErrTokenExpired.Error()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if publicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)

	if err == nil || !isTokenExpired(err) || refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		if st, ok := status.FromError(rerr); ok && st.Code() == codes.Unauthenticated {
			s.setTokens("", "")
			if o := s.currentObserver(); o != nil {
				o.SessionExpired()
			}
		}
		return rerr
	}

	sess := resp.Session
	s.setTokens(sess.GetAccessToken(), sess.GetRefreshToken())
	if o := s.currentObserver(); o != nil {
		o.TokensRotated(sess.GetRefreshToken())
	}

	return invoker(withAccessToken(ctx, sess.GetAccessToken()), method, req, reply, cc, opts...)
}

func NewQwik2DoClient(endpointURL string, callTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, callTimeout: callTimeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewQwik2DoServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, email, password string) (string, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.UserId, nil
}

func (s *GRPCClient) acceptSession(sess *pb.Session) (*Session, error) {
	if sess == nil || sess.AccessToken == "" {
		return nil, fmt.Errorf("rpc error: empty session")
	}
	s.setTokens(sess.AccessToken, sess.RefreshToken)
	return &Session{
		Identity:     models.Identity{ID: sess.UserId, Email: sess.Email},
		RefreshToken: sess.RefreshToken,
	}, nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Session, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.acceptSession(resp.Session)
}

// Resume trades a persisted refresh token for a fresh token pair.
func (s *GRPCClient) Resume(ctx context.Context, refreshToken string) (*Session, error) {

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.acceptSession(resp.Session)
}

// Logout revokes the current refresh token. Local tokens are dropped even
// when the server call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	s.setTokens("", "")

	if refresh == "" {
		return nil
	}

	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func toTask(t *pb.Task) *models.Task {
	task := &models.Task{
		ID:        t.Id,
		OwnerID:   t.OwnerId,
		Text:      t.Text,
		Completed: t.Completed,
	}
	if t.CreatedAt != nil {
		task.CreatedAt = t.CreatedAt.AsTime()
	}
	return task
}

func (s *GRPCClient) ListTasks(ctx context.Context) ([]*models.Task, error) {

	resp, err := s.client.ListTasks(ctx, &pb.ListTasksRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	tasks := make([]*models.Task, 0, len(resp.Tasks))
	for _, t := range resp.Tasks {
		if t == nil {
			continue
		}
		tasks = append(tasks, toTask(t))
	}
	return tasks, nil
}

func (s *GRPCClient) CreateTask(ctx context.Context, text string) (*models.Task, error) {

	resp, err := s.client.CreateTask(ctx, &pb.CreateTaskRequest{Text: text})
	if err != nil {
		return nil, s.mapError(err)
	}
	if resp.Task == nil {
		return nil, fmt.Errorf("rpc error: empty task")
	}

	return toTask(resp.Task), nil
}

func (s *GRPCClient) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.client.DeleteTask(ctx, &pb.DeleteTaskRequest{Id: id}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) SetTaskCompleted(ctx context.Context, id string, completed bool) error {
	if _, err := s.client.SetTaskCompleted(ctx, &pb.SetTaskCompletedRequest{Id: id, Completed: completed}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) BackgroundImage(ctx context.Context) (string, error) {

	resp, err := s.client.GetBackgroundImage(ctx, &pb.GetBackgroundImageRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	if resp.Url == "" {
		return "", ErrNotFound
	}

	return resp.Url, nil
}

func (s *GRPCClient) Weather(ctx context.Context, loc models.Location) (*models.Weather, error) {

	req := &pb.GetWeatherRequest{Latitude: loc.Latitude, Longitude: loc.Longitude}

	resp, err := s.client.GetWeather(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Weather{Description: resp.Description, TemperatureC: resp.TemperatureC}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return ErrInvalidArgument
	case codes.AlreadyExists:
		return ErrAlreadyExists
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
