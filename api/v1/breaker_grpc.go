// Package apiv1 defines the BreakerService gRPC API.
//
// The service is described by hand rather than generated from a .proto file.
// Every request and response is a protobuf well-known type, so the default
// proto codec carries them and no generated message code is needed. The
// session an RPC applies to travels in the SessionMetadataKey header.
package apiv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const _ = grpc.SupportPackageIsVersion9

const ServiceName = "padbreaker.v1.BreakerService"

const (
	BreakerService_CreateSession_FullMethodName = "/padbreaker.v1.BreakerService/CreateSession"
	BreakerService_CloseSession_FullMethodName  = "/padbreaker.v1.BreakerService/CloseSession"
	BreakerService_Submit_FullMethodName        = "/padbreaker.v1.BreakerService/Submit"
	BreakerService_Decode_FullMethodName        = "/padbreaker.v1.BreakerService/Decode"
	BreakerService_GetPad_FullMethodName        = "/padbreaker.v1.BreakerService/GetPad"
	BreakerService_GetStats_FullMethodName      = "/padbreaker.v1.BreakerService/GetStats"
)

// BreakerServiceClient is the client API for BreakerService.
type BreakerServiceClient interface {
	// CreateSession starts a new breaking session and returns its id.
	CreateSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	// CloseSession discards the session named in the request metadata.
	CloseSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Submit adds a ciphertext to the session.
	Submit(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	// Decode applies the session's inferred pad to a ciphertext.
	Decode(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	// GetPad returns the session's inferred pad.
	GetPad(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	// GetStats summarises the session's vote table.
	GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type breakerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBreakerServiceClient(cc grpc.ClientConnInterface) BreakerServiceClient {
	return &breakerServiceClient{cc}
}

func (c *breakerServiceClient) CreateSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, BreakerService_CreateSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *breakerServiceClient) CloseSession(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, BreakerService_CloseSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *breakerServiceClient) Submit(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(emptypb.Empty)
	err := c.cc.Invoke(ctx, BreakerService_Submit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *breakerServiceClient) Decode(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, BreakerService_Decode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *breakerServiceClient) GetPad(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, BreakerService_GetPad_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *breakerServiceClient) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, BreakerService_GetStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BreakerServiceServer is the server API for BreakerService.
// All implementations must embed UnimplementedBreakerServiceServer
// for forward compatibility.
type BreakerServiceServer interface {
	CreateSession(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	CloseSession(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
	Submit(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error)
	Decode(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
	GetPad(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	mustEmbedUnimplementedBreakerServiceServer()
}

// UnimplementedBreakerServiceServer must be embedded to have
// forward compatible implementations.
type UnimplementedBreakerServiceServer struct{}

func (UnimplementedBreakerServiceServer) CreateSession(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedBreakerServiceServer) CloseSession(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseSession not implemented")
}
func (UnimplementedBreakerServiceServer) Submit(context.Context, *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Submit not implemented")
}
func (UnimplementedBreakerServiceServer) Decode(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Decode not implemented")
}
func (UnimplementedBreakerServiceServer) GetPad(context.Context, *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPad not implemented")
}
func (UnimplementedBreakerServiceServer) GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedBreakerServiceServer) mustEmbedUnimplementedBreakerServiceServer() {}

func RegisterBreakerServiceServer(s grpc.ServiceRegistrar, srv BreakerServiceServer) {
	s.RegisterService(&BreakerService_ServiceDesc, srv)
}

func _BreakerService_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_CreateSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).CreateSession(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BreakerService_CloseSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).CloseSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_CloseSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).CloseSession(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BreakerService_Submit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).Submit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_Submit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).Submit(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BreakerService_Decode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_Decode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).Decode(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _BreakerService_GetPad_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).GetPad(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_GetPad_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).GetPad(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _BreakerService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BreakerServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BreakerService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BreakerServiceServer).GetStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// BreakerService_ServiceDesc is the grpc.ServiceDesc for BreakerService.
var BreakerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BreakerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateSession", Handler: _BreakerService_CreateSession_Handler},
		{MethodName: "CloseSession", Handler: _BreakerService_CloseSession_Handler},
		{MethodName: "Submit", Handler: _BreakerService_Submit_Handler},
		{MethodName: "Decode", Handler: _BreakerService_Decode_Handler},
		{MethodName: "GetPad", Handler: _BreakerService_GetPad_Handler},
		{MethodName: "GetStats", Handler: _BreakerService_GetStats_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "padbreaker/v1/breaker.proto",
}
