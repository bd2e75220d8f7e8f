package models

import "strconv"

// Initiator is the authorization identity attached to a downstream call:
// either the superadmin or a concrete user. The zero value is not meaningful;
// use Superadmin or ForUser. A nil *Initiator means the call goes out
// unauthenticated.
type Initiator struct {
	superadmin bool
	userID     UserID
}

// Superadmin returns the superadmin initiator.
func Superadmin() Initiator {
	return Initiator{superadmin: true}
}

// ForUser returns an initiator acting as the given user.
func ForUser(id UserID) Initiator {
	return Initiator{userID: id}
}

// IsSuperadmin reports whether the initiator is the superadmin.
func (i Initiator) IsSuperadmin() bool {
	return i.superadmin
}

// User returns the user id and true when the initiator is a plain user.
func (i Initiator) User() (UserID, bool) {
	if i.superadmin {
		return 0, false
	}
	return i.userID, true
}

// HeaderValue renders the initiator for the Authorization header:
// "1" for superadmin, the decimal user id otherwise.
func (i Initiator) HeaderValue() string {
	if i.superadmin {
		return "1"
	}
	return i.userID.String()
}

func (i Initiator) String() string {
	if i.superadmin {
		return "superadmin"
	}
	return "user " + i.userID.String()
}

// ParseInitiator decodes an Authorization header value. "1" is the
// superadmin, any other decimal value is a user id. An empty or
// malformed value means no initiator.
func ParseInitiator(header string) *Initiator {
	if header == "" {
		return nil
	}
	n, err := strconv.ParseInt(header, 10, 64)
	if err != nil || n <= 0 {
		return nil
	}
	if n == 1 {
		ini := Superadmin()
		return &ini
	}
	ini := ForUser(UserID(n))
	return &ini
}
