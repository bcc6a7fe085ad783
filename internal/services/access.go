package services

// AccessPolicy decides whether an authenticated identity may act on a
// resource. The rule set is closed: everything not explicitly allowed
// is denied. Decisions are pure, the policy holds no state.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanReadProfile allows reading a user's full profile only for the user itself.
func (p *AccessPolicy) CanReadProfile(identity, username string) bool {
	return identity == username
}

// CanReadMessage allows reading a message only for its sender or recipient.
func (p *AccessPolicy) CanReadMessage(identity, fromUsername, toUsername string) bool {
	return identity == fromUsername || identity == toUsername
}

// CanMarkRead allows the unread-to-read transition only for the recipient.
func (p *AccessPolicy) CanMarkRead(identity, toUsername string) bool {
	return identity == toUsername
}
