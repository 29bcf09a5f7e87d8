package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
)

func userInfo(u services.UserInfo) *pb.UserInfo {
	out := &pb.UserInfo{
		Profile:       profile(u.Profile),
		Disabled:      u.Disabled,
		HasCredential: u.HasCredential,
		Status:        u.Status,
	}
	if u.LiveSession != nil {
		out.SessionSince = timestamp(&u.LiveSession.CreatedAt)
	}
	return out
}

func (s *Server) ListUsers(ctx context.Context, req *pb.Empty) (*pb.UsersResponse, error) {
	users, err := s.svc.Admin.ListUsers(ctx)
	if err != nil {
		return nil, s.adminStatus(ctx, err)
	}
	out := &pb.UsersResponse{Users: make([]*pb.UserInfo, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, userInfo(u))
	}
	return out, nil
}

func (s *Server) UserInfo(ctx context.Context, req *pb.HandleRequest) (*pb.UserInfo, error) {
	u, err := s.svc.Admin.UserInfo(ctx, req.GetHandle())
	if err != nil {
		return nil, s.adminStatus(ctx, err)
	}
	return userInfo(u), nil
}

func (s *Server) RevokeSessions(ctx context.Context, req *pb.HandleRequest) (*pb.CountResponse, error) {
	n, err := s.svc.Admin.RevokeAll(ctx, req.GetHandle())
	if err != nil {
		return nil, s.adminStatus(ctx, err)
	}
	return &pb.CountResponse{Count: n}, nil
}

func (s *Server) DisableUser(ctx context.Context, req *pb.HandleRequest) (*pb.Empty, error) {
	return s.adminDo(ctx, s.svc.Admin.Disable(ctx, req.GetHandle()))
}

func (s *Server) EnableUser(ctx context.Context, req *pb.HandleRequest) (*pb.Empty, error) {
	return s.adminDo(ctx, s.svc.Admin.Enable(ctx, req.GetHandle()))
}

func (s *Server) SetDownload(ctx context.Context, req *pb.FlagRequest) (*pb.Empty, error) {
	return s.adminDo(ctx, s.svc.Admin.SetDownload(ctx, req.GetHandle(), req.GetValue()))
}

func (s *Server) SetAdmin(ctx context.Context, req *pb.FlagRequest) (*pb.Empty, error) {
	return s.adminDo(ctx, s.svc.Admin.SetAdmin(ctx, req.GetHandle(), req.GetValue()))
}

func (s *Server) DeleteUser(ctx context.Context, req *pb.HandleRequest) (*pb.Empty, error) {
	return s.adminDo(ctx, s.svc.Admin.DeleteUser(ctx, req.GetHandle()))
}

func (s *Server) ResetBackupCodes(ctx context.Context, req *pb.HandleRequest) (*pb.CodesResponse, error) {
	batch, err := s.svc.Admin.RegenerateBackupCodes(ctx, req.GetHandle())
	if err != nil {
		return nil, s.adminStatus(ctx, err)
	}
	return &pb.CodesResponse{BackupCodes: batch}, nil
}

func (s *Server) adminDo(ctx context.Context, err error) (*pb.Empty, error) {
	if err != nil {
		return nil, s.adminStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}
