package grpc

import (
	pb "github.com/dmitrijs2005/gatekeeper/internal/proto"
)

// access levels enforced by the session interceptor.
type access int

const (
	anonymous access = iota
	signedIn
	adminOnly
)

// accessOf maps full method names to their access level. Methods missing
// here are refused by the session interceptor.
var accessOf = map[string]access{
	pb.Auth_Ping_FullMethodName: anonymous,

	pb.Auth_StartRegistration_FullMethodName:    anonymous,
	pb.Auth_VerifyContact_FullMethodName:        anonymous,
	pb.Auth_ChooseMethod_FullMethodName:         anonymous,
	pb.Auth_CompleteRegistration_FullMethodName: anonymous,

	pb.Auth_BeginLogin_FullMethodName:    anonymous,
	pb.Auth_CompleteLogin_FullMethodName: anonymous,
	pb.Auth_Logout_FullMethodName:        anonymous,

	pb.Auth_RequestRecovery_FullMethodName:    anonymous,
	pb.Auth_RedeemRecoveryLink_FullMethodName: anonymous,
	pb.Auth_RedeemBackupCode_FullMethodName:   anonymous,

	pb.Auth_Validate_FullMethodName:              signedIn,
	pb.Auth_Me_FullMethodName:                    signedIn,
	pb.Auth_RegenerateBackupCodes_FullMethodName: signedIn,
	pb.Auth_UpdateRecoveryContact_FullMethodName: signedIn,

	pb.Auth_ListUsers_FullMethodName:        adminOnly,
	pb.Auth_UserInfo_FullMethodName:         adminOnly,
	pb.Auth_RevokeSessions_FullMethodName:   adminOnly,
	pb.Auth_DisableUser_FullMethodName:      adminOnly,
	pb.Auth_EnableUser_FullMethodName:       adminOnly,
	pb.Auth_SetDownload_FullMethodName:      adminOnly,
	pb.Auth_SetAdmin_FullMethodName:         adminOnly,
	pb.Auth_DeleteUser_FullMethodName:       adminOnly,
	pb.Auth_ResetBackupCodes_FullMethodName: adminOnly,
}
