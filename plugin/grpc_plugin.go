// Package plugin provides gRPC-based plugin communication for lintrc.
//
// This file implements the go-plugin GRPCPlugin interface, which bridges
// the native lint.PresetProvider interface with gRPC. Messages are
// protobuf well-known types, so no generated code is needed.

package plugin

import (
	"context"
	"errors"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/jokarl/lintrc/lint"
)

// Ensure PresetProviderPlugin implements plugin.GRPCPlugin.
var _ plugin.GRPCPlugin = (*PresetProviderPlugin)(nil)

// PresetProviderPlugin is the implementation of plugin.GRPCPlugin for the
// PresetProvider service. This is used by both the host (to create a
// client) and the plugin (to create a server).
type PresetProviderPlugin struct {
	plugin.Plugin
	// Impl is the concrete implementation of the PresetProvider interface.
	// Only used when serving (plugin side).
	Impl lint.PresetProvider
}

// GRPCServer is called by the plugin to register the gRPC server.
func (p *PresetProviderPlugin) GRPCServer(_ *plugin.GRPCBroker, s *grpc.Server) error {
	if p.Impl == nil {
		return errors.New("no preset provider to serve")
	}
	s.RegisterService(&presetProviderServiceDesc, &GRPCPresetProviderServer{impl: p.Impl})
	return nil
}

// GRPCClient is called by the host to create a gRPC client.
func (p *PresetProviderPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCPresetProviderClient{conn: c}, nil
}

// =============================================================================
// Service description
// =============================================================================

const serviceName = "lintrc.PresetProvider"

const (
	methodGetProviderName    = "/" + serviceName + "/GetProviderName"
	methodGetProviderVersion = "/" + serviceName + "/GetProviderVersion"
	methodGetPresetNames     = "/" + serviceName + "/GetPresetNames"
	methodGetPreset          = "/" + serviceName + "/GetPreset"
)

// PresetProviderServer is the server API for the lintrc.PresetProvider
// service.
type PresetProviderServer interface {
	GetProviderName(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GetProviderVersion(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	GetPresetNames(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetPreset(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

var presetProviderServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PresetProviderServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProviderName",
			Handler: unaryHandler(methodGetProviderName, func(srv PresetProviderServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return srv.GetProviderName(ctx, in)
			}),
		},
		{
			MethodName: "GetProviderVersion",
			Handler: unaryHandler(methodGetProviderVersion, func(srv PresetProviderServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return srv.GetProviderVersion(ctx, in)
			}),
		},
		{
			MethodName: "GetPresetNames",
			Handler: unaryHandler(methodGetPresetNames, func(srv PresetProviderServer, ctx context.Context, in *emptypb.Empty) (any, error) {
				return srv.GetPresetNames(ctx, in)
			}),
		},
		{
			MethodName: "GetPreset",
			Handler: unaryHandler(methodGetPreset, func(srv PresetProviderServer, ctx context.Context, in *wrapperspb.StringValue) (any, error) {
				return srv.GetPreset(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lintrc/preset_provider",
}

// unaryHandler builds a grpc.MethodHandler the way protoc-gen-go-grpc
// generates them.
func unaryHandler[Req any, PReq interface {
	*Req
}](fullMethod string, call func(PresetProviderServer, context.Context, PReq) (any, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PresetProviderServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PresetProviderServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// =============================================================================
// GRPCPresetProviderServer - Plugin side
// =============================================================================

// Ensure GRPCPresetProviderServer implements PresetProviderServer.
var _ PresetProviderServer = (*GRPCPresetProviderServer)(nil)

// GRPCPresetProviderServer wraps a lint.PresetProvider to implement the
// gRPC server. This runs in the plugin process and handles requests from
// the host.
type GRPCPresetProviderServer struct {
	impl lint.PresetProvider
}

// GetProviderName returns the name of the provider.
func (s *GRPCPresetProviderServer) GetProviderName(_ context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.impl.ProviderName()), nil
}

// GetProviderVersion returns the version of the provider.
func (s *GRPCPresetProviderServer) GetProviderVersion(_ context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return wrapperspb.String(s.impl.ProviderVersion()), nil
}

// GetPresetNames returns the identifiers of all presets in the provider.
func (s *GRPCPresetProviderServer) GetPresetNames(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	names := s.impl.PresetNames()
	values := make([]*structpb.Value, len(names))
	for i, name := range names {
		values[i] = structpb.NewStringValue(name)
	}
	return &structpb.ListValue{Values: values}, nil
}

// GetPreset returns a preset by identifier. Unknown identifiers are
// reported as codes.NotFound.
func (s *GRPCPresetProviderServer) GetPreset(_ context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	id := req.GetValue()
	preset, err := s.impl.Preset(id)
	if err != nil {
		var unknown *lint.UnknownPresetError
		if errors.As(err, &unknown) {
			return nil, status.Error(codes.NotFound, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}
	if preset == nil {
		return nil, status.Errorf(codes.Internal, "provider returned no preset for %q", id)
	}
	out, err := toProtoPreset(preset)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

// =============================================================================
// GRPCPresetProviderClient - Host side (implements lint.PresetProvider)
// =============================================================================

// Ensure GRPCPresetProviderClient implements lint.PresetProvider.
var _ lint.PresetProvider = (*GRPCPresetProviderClient)(nil)

// GRPCPresetProviderClient wraps the gRPC connection to implement
// lint.PresetProvider. This runs in the host process and calls the plugin.
type GRPCPresetProviderClient struct {
	conn grpc.ClientConnInterface
}

// ProviderName returns the name of the provider.
func (c *GRPCPresetProviderClient) ProviderName() string {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(context.Background(), methodGetProviderName, &emptypb.Empty{}, out); err != nil {
		return ""
	}
	return out.GetValue()
}

// ProviderVersion returns the version of the provider.
func (c *GRPCPresetProviderClient) ProviderVersion() string {
	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(context.Background(), methodGetProviderVersion, &emptypb.Empty{}, out); err != nil {
		return ""
	}
	return out.GetValue()
}

// PresetNames returns the identifiers of all presets in the provider.
func (c *GRPCPresetProviderClient) PresetNames() []string {
	out := new(structpb.ListValue)
	if err := c.conn.Invoke(context.Background(), methodGetPresetNames, &emptypb.Empty{}, out); err != nil {
		return nil
	}
	return listToStrings(out)
}

// Preset fetches a preset from the plugin. A codes.NotFound reply becomes
// a *lint.UnknownPresetError so that a lint.Registry moves on to its next
// source.
func (c *GRPCPresetProviderClient) Preset(id string) (*lint.Preset, error) {
	out := new(structpb.Struct)
	if err := c.conn.Invoke(context.Background(), methodGetPreset, wrapperspb.String(id), out); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, &lint.UnknownPresetError{ID: id}
		}
		return nil, err
	}
	preset, err := fromProtoPreset(out)
	if err != nil {
		return nil, err
	}
	preset.ID = id
	return preset, nil
}
