package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "qwik2do.service.Qwik2DoService"

const (
	Qwik2DoService_Ping_FullMethodName               = "/" + ServiceName + "/Ping"
	Qwik2DoService_Register_FullMethodName           = "/" + ServiceName + "/Register"
	Qwik2DoService_Login_FullMethodName              = "/" + ServiceName + "/Login"
	Qwik2DoService_RefreshToken_FullMethodName       = "/" + ServiceName + "/RefreshToken"
	Qwik2DoService_Logout_FullMethodName             = "/" + ServiceName + "/Logout"
	Qwik2DoService_ListTasks_FullMethodName          = "/" + ServiceName + "/ListTasks"
	Qwik2DoService_CreateTask_FullMethodName         = "/" + ServiceName + "/CreateTask"
	Qwik2DoService_DeleteTask_FullMethodName         = "/" + ServiceName + "/DeleteTask"
	Qwik2DoService_SetTaskCompleted_FullMethodName   = "/" + ServiceName + "/SetTaskCompleted"
	Qwik2DoService_GetBackgroundImage_FullMethodName = "/" + ServiceName + "/GetBackgroundImage"
	Qwik2DoService_GetWeather_FullMethodName         = "/" + ServiceName + "/GetWeather"
)

// Qwik2DoServiceServer is implemented by the gRPC server.
// Embed UnimplementedQwik2DoServiceServer for forward compatibility.
type Qwik2DoServiceServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
	ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error)
	DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error)
	SetTaskCompleted(context.Context, *SetTaskCompletedRequest) (*SetTaskCompletedResponse, error)
	GetBackgroundImage(context.Context, *GetBackgroundImageRequest) (*GetBackgroundImageResponse, error)
	GetWeather(context.Context, *GetWeatherRequest) (*GetWeatherResponse, error)
}

type UnimplementedQwik2DoServiceServer struct{}

func (UnimplementedQwik2DoServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}
func (UnimplementedQwik2DoServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedQwik2DoServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedQwik2DoServiceServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RefreshToken not implemented")
}
func (UnimplementedQwik2DoServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedQwik2DoServiceServer) ListTasks(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTasks not implemented")
}
func (UnimplementedQwik2DoServiceServer) CreateTask(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateTask not implemented")
}
func (UnimplementedQwik2DoServiceServer) DeleteTask(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteTask not implemented")
}
func (UnimplementedQwik2DoServiceServer) SetTaskCompleted(context.Context, *SetTaskCompletedRequest) (*SetTaskCompletedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetTaskCompleted not implemented")
}
func (UnimplementedQwik2DoServiceServer) GetBackgroundImage(context.Context, *GetBackgroundImageRequest) (*GetBackgroundImageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBackgroundImage not implemented")
}
func (UnimplementedQwik2DoServiceServer) GetWeather(context.Context, *GetWeatherRequest) (*GetWeatherResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetWeather not implemented")
}

// unary adapts a typed server method to grpc.MethodHandler, running it
// through the interceptor chain when one is installed.
func unary[Req, Resp any](fullMethod string, call func(Qwik2DoServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(Qwik2DoServiceServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(s, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var Qwik2DoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Qwik2DoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unary(Qwik2DoService_Ping_FullMethodName, Qwik2DoServiceServer.Ping)},
		{MethodName: "Register", Handler: unary(Qwik2DoService_Register_FullMethodName, Qwik2DoServiceServer.Register)},
		{MethodName: "Login", Handler: unary(Qwik2DoService_Login_FullMethodName, Qwik2DoServiceServer.Login)},
		{MethodName: "RefreshToken", Handler: unary(Qwik2DoService_RefreshToken_FullMethodName, Qwik2DoServiceServer.RefreshToken)},
		{MethodName: "Logout", Handler: unary(Qwik2DoService_Logout_FullMethodName, Qwik2DoServiceServer.Logout)},
		{MethodName: "ListTasks", Handler: unary(Qwik2DoService_ListTasks_FullMethodName, Qwik2DoServiceServer.ListTasks)},
		{MethodName: "CreateTask", Handler: unary(Qwik2DoService_CreateTask_FullMethodName, Qwik2DoServiceServer.CreateTask)},
		{MethodName: "DeleteTask", Handler: unary(Qwik2DoService_DeleteTask_FullMethodName, Qwik2DoServiceServer.DeleteTask)},
		{MethodName: "SetTaskCompleted", Handler: unary(Qwik2DoService_SetTaskCompleted_FullMethodName, Qwik2DoServiceServer.SetTaskCompleted)},
		{MethodName: "GetBackgroundImage", Handler: unary(Qwik2DoService_GetBackgroundImage_FullMethodName, Qwik2DoServiceServer.GetBackgroundImage)},
		{MethodName: "GetWeather", Handler: unary(Qwik2DoService_GetWeather_FullMethodName, Qwik2DoServiceServer.GetWeather)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qwik2do.proto",
}

func RegisterQwik2DoServiceServer(s grpc.ServiceRegistrar, srv Qwik2DoServiceServer) {
	s.RegisterService(&Qwik2DoService_ServiceDesc, srv)
}

// Qwik2DoServiceClient is the client API for Qwik2DoService.
type Qwik2DoServiceClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
	ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error)
	DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)
	SetTaskCompleted(ctx context.Context, in *SetTaskCompletedRequest, opts ...grpc.CallOption) (*SetTaskCompletedResponse, error)
	GetBackgroundImage(ctx context.Context, in *GetBackgroundImageRequest, opts ...grpc.CallOption) (*GetBackgroundImageResponse, error)
	GetWeather(ctx context.Context, in *GetWeatherRequest, opts ...grpc.CallOption) (*GetWeatherResponse, error)
}

type qwik2DoServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQwik2DoServiceClient(cc grpc.ClientConnInterface) Qwik2DoServiceClient {
	return &qwik2DoServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *qwik2DoServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, Qwik2DoService_Ping_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, Qwik2DoService_Register_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, Qwik2DoService_Login_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, Qwik2DoService_RefreshToken_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, Qwik2DoService_Logout_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) ListTasks(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, Qwik2DoService_ListTasks_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) CreateTask(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error) {
	return invoke[CreateTaskResponse](ctx, c.cc, Qwik2DoService_CreateTask_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) DeleteTask(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	return invoke[DeleteTaskResponse](ctx, c.cc, Qwik2DoService_DeleteTask_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) SetTaskCompleted(ctx context.Context, in *SetTaskCompletedRequest, opts ...grpc.CallOption) (*SetTaskCompletedResponse, error) {
	return invoke[SetTaskCompletedResponse](ctx, c.cc, Qwik2DoService_SetTaskCompleted_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) GetBackgroundImage(ctx context.Context, in *GetBackgroundImageRequest, opts ...grpc.CallOption) (*GetBackgroundImageResponse, error) {
	return invoke[GetBackgroundImageResponse](ctx, c.cc, Qwik2DoService_GetBackgroundImage_FullMethodName, in, opts)
}

func (c *qwik2DoServiceClient) GetWeather(ctx context.Context, in *GetWeatherRequest, opts ...grpc.CallOption) (*GetWeatherResponse, error) {
	return invoke[GetWeatherResponse](ctx, c.cc, Qwik2DoService_GetWeather_FullMethodName, in, opts)
}
