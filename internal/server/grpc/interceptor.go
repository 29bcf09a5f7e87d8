package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// SessionTokenHeader is the metadata key carrying the session token.
const SessionTokenHeader = "session_token"

type ctxKey string

const validationKey ctxKey = "validation"

func firstValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func sessionMetadata(ctx context.Context) sessions.Metadata {
	return sessions.Metadata{UserAgent: firstValue(ctx, "user-agent"), Origin: firstValue(ctx, "origin")}
}

// validationFrom returns the session the interceptor validated.
func validationFrom(ctx context.Context) (sessions.Validation, bool) {
	v, ok := ctx.Value(validationKey).(sessions.Validation)
	return v, ok
}

// sessionInterceptor validates the session token for signed-in and admin
// methods and stores the result in the context. Unknown methods are refused.
func (s *Server) sessionInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	lvl, ok := accessOf[info.FullMethod]
	if !ok {
		return nil, status.Error(codes.Unimplemented, "unknown method")
	}
	if lvl == anonymous {
		return handler(ctx, req)
	}

	token := firstValue(ctx, SessionTokenHeader)
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "missing session token")
	}
	v, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if lvl == adminOnly {
		p, err := s.svc.Account.Me(ctx, v.UserID)
		if err != nil {
			return nil, s.toStatus(ctx, err)
		}
		if !p.IsAdmin {
			return nil, status.Error(codes.PermissionDenied, "admin only")
		}
	}

	return handler(context.WithValue(ctx, validationKey, v), req)
}

func (s *Server) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "took", time.Since(start))
	return resp, err
}

// toStatus maps engine errors to status codes. Anonymous callers learn only
// "invalid or expired" for token, challenge and verifier failures.
func (s *Server) toStatus(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case isContextErr(err):
		return status.FromContextError(err).Err()
	case errors.Is(err, common.ErrHandleInvalid), errors.Is(err, common.ErrContactInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrHandleTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	}

	if errors.Is(common.Public(err), common.ErrInvalidOrExpired) {
		return status.Error(codes.Unauthenticated, common.ErrInvalidOrExpired.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	if errors.Is(err, common.ErrorInternal) {
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	return status.Error(codes.Unavailable, common.ErrUnavailable.Error())
}

// adminStatus reports granular reasons, which administrators may see.
func (s *Server) adminStatus(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case isContextErr(err):
		return status.FromContextError(err).Err()
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "no such user")
	case errors.Is(err, common.ErrHandleInvalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrHandleTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return s.toStatus(ctx, err)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
