package domain

// DefaultMaxTeamMembers is the team size cap used when none is configured.
const DefaultMaxTeamMembers = 150

// Claimable is implemented by participants that may be unclaimed stubs.
type Claimable interface {
	Claimed() bool
}

// ValidateNewMember checks whether a participant may join a team that currently
// has currentMembers members. A limit <= 0 disables the size check.
func ValidateNewMember(member Claimable, currentMembers, limit int) error {
	if err := ValidateTeamSize(currentMembers, limit); err != nil {
		return err
	}
	if !member.Claimed() {
		return ErrStubParticipantAdded
	}
	return nil
}

// ValidateTeamSize checks whether a team with currentMembers members has room
// for one more. A limit <= 0 disables the check.
func ValidateTeamSize(currentMembers, limit int) error {
	if limit > 0 && currentMembers >= limit-1 {
		return ErrMemberLimitReached
	}
	return nil
}
