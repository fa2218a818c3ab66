package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	apiv1 "github.com/mundrapranay/padbreaker/api/v1"
	"github.com/mundrapranay/padbreaker/internal/pad"
)

// DefaultMaxSessions bounds the number of open sessions when Config leaves
// it unset.
const DefaultMaxSessions = 1024

// Config holds server limits.
type Config struct {
	// MaxSessions is the number of sessions that may be open at once.
	MaxSessions int
}

// Server implements the BreakerService gRPC server.
type Server struct {
	apiv1.UnimplementedBreakerServiceServer

	logger      hclog.Logger
	maxSessions int

	sessionsMu sync.RWMutex
	sessions   map[string]*session
}

// session owns one engine. The engine has no locking of its own, so every
// access goes through mu.
type session struct {
	mu      sync.Mutex
	engine  *pad.Engine
	created time.Time
}

// NewServer creates a new gRPC server instance.
func NewServer(config Config, logger hclog.Logger) *Server {
	if config.MaxSessions <= 0 {
		config.MaxSessions = DefaultMaxSessions
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Server{
		logger:      logger,
		maxSessions: config.MaxSessions,
		sessions:    make(map[string]*session),
	}
}

// CreateSession opens a session with an empty engine.
func (s *Server) CreateSession(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	if len(s.sessions) >= s.maxSessions {
		return nil, status.Errorf(codes.ResourceExhausted, "session limit of %d reached", s.maxSessions)
	}

	id := uuid.NewString()
	s.sessions[id] = &session{
		engine:  pad.NewEngine(),
		created: time.Now(),
	}
	s.logger.Info("session created", "session", id, "open", len(s.sessions))

	return wrapperspb.String(id), nil
}

// CloseSession discards a session and its engine.
func (s *Server) CloseSession(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, err
	}

	s.sessionsMu.Lock()
	sess, exists := s.sessions[id]
	delete(s.sessions, id)
	open := len(s.sessions)
	s.sessionsMu.Unlock()

	if !exists {
		return nil, status.Errorf(codes.NotFound, "session %s not found", id)
	}
	s.logger.Info("session closed", "session", id, "age", time.Since(sess.created), "open", open)

	return &emptypb.Empty{}, nil
}

// Submit adds a ciphertext to the session's engine.
func (s *Server) Submit(ctx context.Context, req *wrapperspb.BytesValue) (*emptypb.Empty, error) {
	sess, id, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	sess.engine.Submit(req.GetValue())
	count := sess.engine.Count()
	sess.mu.Unlock()

	s.logger.Debug("ciphertext submitted", "session", id, "length", len(req.GetValue()), "ciphertexts", count)
	return &emptypb.Empty{}, nil
}

// Decode applies the session's inferred pad to the request bytes.
func (s *Server) Decode(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error) {
	sess, _, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	out := sess.engine.Decode(req.GetValue())
	sess.mu.Unlock()

	return wrapperspb.Bytes(out), nil
}

// GetPad returns the session's inferred pad.
func (s *Server) GetPad(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.BytesValue, error) {
	sess, _, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	p := sess.engine.Pad()
	sess.mu.Unlock()

	return wrapperspb.Bytes(p), nil
}

// GetStats summarises the session's vote table.
func (s *Server) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	sess, _, err := s.lookup(ctx)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	st := sess.engine.Stats()
	sess.mu.Unlock()

	out, err := structpb.NewStruct(map[string]interface{}{
		"ciphertexts": st.Ciphertexts,
		"positions":   st.Positions,
		"covered":     st.Covered,
		"tied":        st.Tied,
		"total_mass":  float64(st.TotalMass),
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode stats: %v", err)
	}
	return out, nil
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

func (s *Server) lookup(ctx context.Context) (*session, string, error) {
	id, err := sessionID(ctx)
	if err != nil {
		return nil, "", err
	}

	s.sessionsMu.RLock()
	sess, exists := s.sessions[id]
	s.sessionsMu.RUnlock()

	if !exists {
		return nil, id, status.Errorf(codes.NotFound, "session %s not found", id)
	}
	return sess, id, nil
}

func sessionID(ctx context.Context) (string, error) {
	id, ok := apiv1.SessionFromContext(ctx)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing %s metadata", apiv1.SessionMetadataKey)
	}
	return id, nil
}

// LoggingInterceptor logs every unary RPC with its duration and status code.
func LoggingInterceptor(logger hclog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		if err != nil && code != codes.NotFound && code != codes.InvalidArgument {
			logger.Error("rpc failed", "method", info.FullMethod, "code", code, "duration", time.Since(start), "error", err)
		} else {
			logger.Trace("rpc", "method", info.FullMethod, "code", code, "duration", time.Since(start))
		}
		return resp, err
	}
}
