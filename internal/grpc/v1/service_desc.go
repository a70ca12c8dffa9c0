package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName       = "faleproxy.v1.FetchService"
	FetchFullMethod   = "/" + serviceName + "/Fetch"
	serviceDescSource = "faleproxy/v1/fetch.proto"
)

// FetchServiceServer — серверная часть faleproxy.v1.FetchService.
//
//	service FetchService {
//	  rpc Fetch(google.protobuf.StringValue) returns (google.protobuf.StringValue);
//	}
type FetchServiceServer interface {
	Fetch(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// FetchServiceDesc описывает сервис для grpc.Server.RegisterService.
var FetchServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*FetchServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Fetch", Handler: fetchHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: serviceDescSource,
}

// RegisterFetchServiceServer регистрирует реализацию на сервере.
func RegisterFetchServiceServer(s grpc.ServiceRegistrar, srv FetchServiceServer) {
	s.RegisterService(&FetchServiceDesc, srv)
}

func fetchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FetchServiceServer).Fetch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FetchFullMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FetchServiceServer).Fetch(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// FetchServiceClient вызывает faleproxy.v1.FetchService.
type FetchServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFetchServiceClient(cc grpc.ClientConnInterface) *FetchServiceClient {
	return &FetchServiceClient{cc: cc}
}

func (c *FetchServiceClient) Fetch(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, FetchFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
