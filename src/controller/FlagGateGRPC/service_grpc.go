package FlagGateGRPC

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

//go:generate protoc --go-grpc_out=. --go-grpc_opt=paths=source_relative flaggate.proto

// The contract is flaggate.proto. All messages are well-known types, so this
// file is the whole of the generated code; build requests with FlagRequest
// and SubjectRequest.

const (
	FlagGate_IsEnabled_FullMethodName   = "/flaggate.FlagGate/IsEnabled"
	FlagGate_GetVariant_FullMethodName  = "/flaggate.FlagGate/GetVariant"
	FlagGate_Evaluate_FullMethodName    = "/flaggate.FlagGate/Evaluate"
	FlagGate_EvaluateAll_FullMethodName = "/flaggate.FlagGate/EvaluateAll"
)

type FlagGateClient interface {
	IsEnabled(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	// GetVariant returns a string value, or a null value when no variant applies.
	GetVariant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Value, error)
	Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EvaluateAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

type flagGateClient struct {
	cc grpc.ClientConnInterface
}

func NewFlagGateClient(cc grpc.ClientConnInterface) FlagGateClient {
	return &flagGateClient{cc}
}

func (c *flagGateClient) IsEnabled(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, FlagGate_IsEnabled_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flagGateClient) GetVariant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Value, error) {
	out := new(structpb.Value)
	if err := c.cc.Invoke(ctx, FlagGate_GetVariant_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flagGateClient) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FlagGate_Evaluate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flagGateClient) EvaluateAll(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FlagGate_EvaluateAll_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type FlagGateServer interface {
	IsEnabled(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error)
	GetVariant(context.Context, *structpb.Struct) (*structpb.Value, error)
	Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateAll(context.Context, *structpb.Struct) (*structpb.ListValue, error)
}

// UnimplementedFlagGateServer can be embedded to have forward compatible implementations.
type UnimplementedFlagGateServer struct{}

func (UnimplementedFlagGateServer) IsEnabled(context.Context, *structpb.Struct) (*wrapperspb.BoolValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsEnabled not implemented")
}
func (UnimplementedFlagGateServer) GetVariant(context.Context, *structpb.Struct) (*structpb.Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVariant not implemented")
}
func (UnimplementedFlagGateServer) Evaluate(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedFlagGateServer) EvaluateAll(context.Context, *structpb.Struct) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateAll not implemented")
}

func _FlagGate_IsEnabled_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagGateServer).IsEnabled(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FlagGate_IsEnabled_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagGateServer).IsEnabled(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlagGate_GetVariant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagGateServer).GetVariant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FlagGate_GetVariant_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagGateServer).GetVariant(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlagGate_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagGateServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FlagGate_Evaluate_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagGateServer).Evaluate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlagGate_EvaluateAll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagGateServer).EvaluateAll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FlagGate_EvaluateAll_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagGateServer).EvaluateAll(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var FlagGate_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "flaggate.FlagGate",
	HandlerType: (*FlagGateServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "IsEnabled", Handler: _FlagGate_IsEnabled_Handler},
		{MethodName: "GetVariant", Handler: _FlagGate_GetVariant_Handler},
		{MethodName: "Evaluate", Handler: _FlagGate_Evaluate_Handler},
		{MethodName: "EvaluateAll", Handler: _FlagGate_EvaluateAll_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "flaggate.proto",
}
