package domain

type MemberRole string

const (
	MemberRoleMember  MemberRole = "MEMBER"
	MemberRoleManager MemberRole = "MANAGER"
)

// Valid reports whether r is one of the known roles.
func (r MemberRole) Valid() bool {
	return r == MemberRoleMember || r == MemberRoleManager
}

type Member struct {
	ID       int32      `json:"id"`
	UserID   int32      `json:"user_id"`
	ClubID   int32      `json:"club_id"`
	Role     MemberRole `json:"role"`
	JoinedOn string     `json:"joined_on"`

	// Populated by listing queries that join users.
	Nickname      string `json:"nickname,omitempty"`
	Email         string `json:"email,omitempty"`
	Department    string `json:"department,omitempty"`
	StudentNumber string `json:"student_number,omitempty"`
}

// ClubMembership pairs a club with the caller's role in it.
type ClubMembership struct {
	Club Club       `json:"club"`
	Role MemberRole `json:"role"`
}

// HasRole reports whether the membership record grants the required role.
// A nil record (not a member) never does. MANAGER must match exactly,
// MEMBER is satisfied by any membership.
func HasRole(m *Member, required MemberRole) bool {
	if m == nil || !m.Role.Valid() {
		return false
	}
	switch required {
	case MemberRoleManager:
		return m.Role == MemberRoleManager
	case MemberRoleMember:
		return true
	default:
		return false
	}
}
