package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrMemberNotFound       = errors.New("member not found")
	ErrRoleNotFound         = errors.New("role not found")
	ErrRoleInUse            = errors.New("role is assigned to members")
	ErrRemoveSelf           = errors.New("cannot remove yourself")
	ErrAlreadyInvited       = errors.New("already invited or a member")
)
