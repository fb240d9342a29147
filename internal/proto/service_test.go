package proto

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeServer struct {
	UnimplementedQwik2DoServiceServer
	createdAt time.Time
	seenText  string
}

func (f *fakeServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}

func (f *fakeServer) CreateTask(_ context.Context, req *CreateTaskRequest) (*CreateTaskResponse, error) {
	f.seenText = req.Text
	return &CreateTaskResponse{Task: &Task{
		Id:        "t1",
		OwnerId:   "u1",
		Text:      req.Text,
		CreatedAt: timestamppb.New(f.createdAt),
	}}, nil
}

func dial(t *testing.T, srv Qwik2DoServiceServer, interceptors ...grpc.UnaryServerInterceptor) Qwik2DoServiceClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	RegisterQwik2DoServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewQwik2DoServiceClient(conn)
}

func TestService_RoundTripOverJSONCodec(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	srv := &fakeServer{createdAt: created}
	c := dial(t, srv)
	ctx := context.Background()

	ping, err := c.Ping(ctx, &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	resp, err := c.CreateTask(ctx, &CreateTaskRequest{Text: "buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", srv.seenText)
	assert.Equal(t, "t1", resp.Task.GetId())
	assert.True(t, resp.Task.CreatedAt.AsTime().Equal(created))
}

func TestService_UnimplementedMethod(t *testing.T) {
	c := dial(t, &fakeServer{})

	_, err := c.GetWeather(context.Background(), &GetWeatherRequest{Latitude: 1, Longitude: 2})
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestService_InterceptorSeesFullMethod(t *testing.T) {
	var seen string
	ic := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		seen = info.FullMethod
		return h(ctx, req)
	}
	c := dial(t, &fakeServer{}, ic)

	_, err := c.Ping(context.Background(), &PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, Qwik2DoService_Ping_FullMethodName, seen)
}

func TestGetters_NilSafe(t *testing.T) {
	var p *PingResponse
	var s *Session
	var task *Task
	assert.Empty(t, p.GetStatus())
	assert.Empty(t, s.GetAccessToken())
	assert.Empty(t, s.GetRefreshToken())
	assert.Empty(t, task.GetId())
	assert.Empty(t, task.GetText())
}
