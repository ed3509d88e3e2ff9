package domain

import "time"

// SessionClaims represents the payload of a signed session token
type SessionClaims struct {
	UserID string `json:"user_id"`
	Exp    int64  `json:"exp"`
	Iat    int64  `json:"iat"`
}

// IsExpired checks if the session is past its expiry
func (sc SessionClaims) IsExpired() bool {
	return time.Now().Unix() > sc.Exp
}
