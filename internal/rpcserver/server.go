// Package rpcserver exposes compile.Compile over gRPC using a schema
// parsed at runtime with jhump/protoreflect - no protoc-generated code,
// so the wire contract is whatever schema.proto says and nothing else.
package rpcserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/styleexpr/exprlang/internal/compile"
)

// Server wraps a *grpc.Server registered with the dynamic ExprService
// handler built from schema.proto.
type Server struct {
	grpcServer *grpc.Server
}

// NewServer builds a Server whose Evaluate RPC compiles expressions
// using opts as the external collaborators.
func NewServer(opts compile.Options) *Server {
	handler := &exprHandler{opts: opts, method: serviceDescriptor.FindMethodByName("Evaluate")}

	svcDesc := &grpc.ServiceDesc{
		ServiceName: "exprlang.ExprService",
		HandlerType: (*interface{})(nil),
		Metadata:    schemaFile,
		Methods: []grpc.MethodDesc{
			{
				MethodName: "Evaluate",
				Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					h := srv.(*exprHandler)
					return h.evaluate(ctx, dec)
				},
			},
		},
	}

	grpcServer := grpc.NewServer()
	grpcServer.RegisterService(svcDesc, handler)
	return &Server{grpcServer: grpcServer}
}

// Serve blocks, accepting connections on addr until Stop is called.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.grpcServer.Serve(lis)
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

type exprHandler struct {
	opts   compile.Options
	method *desc.MethodDescriptor
}

func (h *exprHandler) evaluate(_ context.Context, dec func(interface{}) error) (interface{}, error) {
	in := dynamic.NewMessage(h.method.GetInputType())
	if err := dec(in); err != nil {
		return nil, err
	}

	expressionJSON, _ := in.GetFieldByName("expression_json").(string)
	expectedTypeName, _ := in.GetFieldByName("expected_type").(string)
	zoom, _ := in.GetFieldByName("zoom").(float64)
	propertiesJSON, _ := in.GetFieldByName("properties_json").(string)
	geometryType, _ := in.GetFieldByName("geometry_type").(string)

	out := dynamic.NewMessage(h.method.GetOutputType())

	var raw any
	if err := json.Unmarshal([]byte(expressionJSON), &raw); err != nil {
		h.fail(out, "", fmt.Sprintf("invalid expression_json: %v", err))
		return out, nil
	}

	expected, err := parseExpectedType(expectedTypeName)
	if err != nil {
		h.fail(out, "", err.Error())
		return out, nil
	}

	res := compile.Compile(raw, expected, h.opts)
	if !res.Ok {
		for _, e := range res.Errors {
			h.fail(out, e.Key, e.Error)
		}
		return out, nil
	}

	properties := map[string]any{}
	if propertiesJSON != "" {
		if err := json.Unmarshal([]byte(propertiesJSON), &properties); err != nil {
			h.fail(out, "", fmt.Sprintf("invalid properties_json: %v", err))
			return out, nil
		}
	}

	value, err := res.Value(zoom, compile.Feature{Properties: properties, GeometryType: geometryType})
	if err != nil {
		h.fail(out, "", err.Error())
		return out, nil
	}

	resultJSON, err := json.Marshal(value)
	if err != nil {
		h.fail(out, "", err.Error())
		return out, nil
	}

	out.SetFieldByName("ok", true)
	out.SetFieldByName("result_json", string(resultJSON))
	out.SetFieldByName("is_feature_constant", res.IsFeatureConstant)
	out.SetFieldByName("is_zoom_constant", res.IsZoomConstant)
	return out, nil
}

// fail marks out as a failed response and appends one EvalError.
func (h *exprHandler) fail(out *dynamic.Message, key, message string) {
	out.SetFieldByName("ok", false)
	errField := h.method.GetOutputType().FindFieldByName("errors")
	errMsg := dynamic.NewMessage(errField.GetMessageType())
	errMsg.SetFieldByName("key", key)
	errMsg.SetFieldByName("error", message)
	out.AddRepeatedFieldByName("errors", errMsg)
}
