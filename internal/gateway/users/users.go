package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"service-dispatch/internal/domain"
)

// GetUserMethod is the full gRPC method name of the user lookup.
const GetUserMethod = "/users.v1.UserService/GetUser"

// invoker is satisfied by *grpc.ClientConn.
type invoker interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
}

// GRPCGateway resolves users through the users service.
type GRPCGateway struct {
	conn invoker
}

// NewGRPCGateway creates a users gateway backed by gRPC.
func NewGRPCGateway(conn invoker) *GRPCGateway {
	if conn == nil {
		return nil
	}
	return &GRPCGateway{conn: conn}
}

// Resolve fetches a user by id. An unknown user yields nil, nil.
func (g *GRPCGateway) Resolve(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	req, err := structpb.NewStruct(map[string]any{"id": id.String()})
	if err != nil {
		return nil, fmt.Errorf("users gateway: GetUser: %w", err)
	}
	resp := &structpb.Struct{}
	if err := g.conn.Invoke(ctx, GetUserMethod, req, resp); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("users gateway: GetUser: %w", err)
	}
	return mapUser(id, resp)
}

func mapUser(id uuid.UUID, s *structpb.Struct) (*domain.User, error) {
	f := s.GetFields()
	if len(f) == 0 {
		return nil, nil
	}

	u := &domain.User{
		ID:     id,
		Role:   domain.Role(f["role"].GetStringValue()),
		Active: f["active"].GetBoolValue(),
		Rating: f["rating"].GetNumberValue(),
	}
	if raw := f["id"].GetStringValue(); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("users gateway: bad id %q: %w", raw, err)
		}
		u.ID = parsed
	}
	switch u.Role {
	case domain.RoleCustomer, domain.RoleDriver, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("users gateway: unknown role %q for %s", u.Role, u.ID)
	}
	return u, nil
}
