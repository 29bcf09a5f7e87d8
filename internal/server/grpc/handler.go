package grpc

import (
	"context"
	"time"

	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/models"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// recoveryNotice is returned whether or not a link was sent.
const recoveryNotice = "If the account has a recovery contact, a sign-in link is on its way."

func (s *Server) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *Server) StartRegistration(ctx context.Context, req *pb.StartRegistrationRequest) (*pb.Empty, error) {
	if err := s.svc.Registration.Start(ctx, req.GetHandle(), req.GetContact()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) VerifyContact(ctx context.Context, req *pb.TokenRequest) (*pb.ContinuationResponse, error) {
	cont, err := s.svc.Registration.Verify(ctx, req.GetToken())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ContinuationResponse{Continuation: cont}, nil
}

func (s *Server) ChooseMethod(ctx context.Context, req *pb.ChooseMethodRequest) (*pb.MethodChoiceResponse, error) {
	choice, err := s.svc.Registration.ChooseMethod(ctx, req.GetContinuation(), models.AuthMethod(req.GetMethod()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MethodChoiceResponse{Continuation: choice.Continuation, Method: string(choice.Method), Options: choice.Options}, nil
}

func (s *Server) CompleteRegistration(ctx context.Context, req *pb.CompleteRegistrationRequest) (*pb.EnrollmentResponse, error) {
	enr, err := s.svc.Registration.Complete(ctx, req.GetContinuation(), req.GetResponse(),
		services.RecoveryPreference{Contact: req.GetRecoveryContact()}, sessionMetadata(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.EnrollmentResponse{UserId: enr.UserID, SessionToken: enr.SessionToken, BackupCodes: enr.BackupCodes}, nil
}

func (s *Server) BeginLogin(ctx context.Context, req *pb.HandleRequest) (*pb.LoginChallengeResponse, error) {
	ch, err := s.svc.Login.Challenge(ctx, req.GetHandle())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.LoginChallengeResponse{ChallengeId: ch.ChallengeID, Method: string(ch.Method), Options: ch.Options}, nil
}

func (s *Server) CompleteLogin(ctx context.Context, req *pb.CompleteLoginRequest) (*pb.SessionResponse, error) {
	res, err := s.svc.Login.Complete(ctx, req.GetChallengeId(), req.GetResponse(), sessionMetadata(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SessionResponse{UserId: res.UserID, SessionToken: res.SessionToken}, nil
}

// Logout is idempotent, so it reads the token directly instead of requiring
// a live session.
func (s *Server) Logout(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	if err := s.sessions.Terminate(ctx, firstValue(ctx, SessionTokenHeader)); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) RequestRecovery(ctx context.Context, req *pb.HandleRequest) (*pb.MessageResponse, error) {
	if err := s.svc.Recovery.Request(ctx, req.GetHandle()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.MessageResponse{Message: recoveryNotice}, nil
}

func (s *Server) RedeemRecoveryLink(ctx context.Context, req *pb.TokenRequest) (*pb.RecoveryResponse, error) {
	res, err := s.svc.Recovery.RedeemLink(ctx, req.GetToken(), sessionMetadata(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return recoveryResponse(res), nil
}

func (s *Server) RedeemBackupCode(ctx context.Context, req *pb.BackupCodeRequest) (*pb.RecoveryResponse, error) {
	res, err := s.svc.Recovery.RedeemBackupCode(ctx, req.GetHandle(), req.GetCode())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return recoveryResponse(res), nil
}

func recoveryResponse(r services.RecoveryResult) *pb.RecoveryResponse {
	return &pb.RecoveryResponse{
		UserId:       r.UserID,
		SessionToken: r.SessionToken,
		Continuation: r.Continuation,
		BackupCodes:  r.BackupCodes,
	}
}

func (s *Server) Validate(ctx context.Context, req *pb.Empty) (*pb.ValidateResponse, error) {
	v, ok := validationFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	return &pb.ValidateResponse{UserId: v.UserID, State: v.State.String(), LastActivityAt: timestamppb.New(v.LastActivityAt)}, nil
}

func (s *Server) Me(ctx context.Context, req *pb.Empty) (*pb.Profile, error) {
	v, _ := validationFrom(ctx)
	p, err := s.svc.Account.Me(ctx, v.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return profile(p), nil
}

func (s *Server) RegenerateBackupCodes(ctx context.Context, req *pb.Empty) (*pb.CodesResponse, error) {
	v, _ := validationFrom(ctx)
	batch, err := s.svc.Account.RegenerateBackupCodes(ctx, v.UserID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CodesResponse{BackupCodes: batch}, nil
}

func (s *Server) UpdateRecoveryContact(ctx context.Context, req *pb.ContactRequest) (*pb.Empty, error) {
	v, _ := validationFrom(ctx)
	if err := s.svc.Account.UpdateRecoveryContact(ctx, v.UserID, req.GetContact()); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// timestamp leaves unset times nil on the wire.
func timestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	return timestamppb.New(*t)
}

func profile(p services.Profile) *pb.Profile {
	return &pb.Profile{
		UserId:               p.UserID,
		Handle:               p.Handle,
		Method:               string(p.Method),
		CanDownload:          p.CanDownload,
		IsAdmin:              p.IsAdmin,
		RecoveryEnabled:      p.RecoveryEnabled,
		RemainingBackupCodes: int32(p.RemainingBackupCodes),
		CreatedAt:            timestamppb.New(p.CreatedAt),
		LastLoginAt:          timestamp(p.LastLoginAt),
	}
}
