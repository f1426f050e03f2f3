package session

import (
	"context"

	"mezbaan/models"
	"mezbaan/services/booking"
	"mezbaan/utils"
)

// Provider exposes one session's credentials through the narrow port the
// booking core consumes. It satisfies booking.CredentialProvider.
type Provider struct {
	Store     *Store
	SessionID string
}

func NewProvider(store *Store, sessionID string) *Provider {
	return &Provider{Store: store, SessionID: sessionID}
}

// Token returns the session's bearer token. A missing session, an empty
// token, or an expired token all surface as MissingCredential so the caller
// can prompt for login.
func (p *Provider) Token(ctx context.Context) (string, error) {
	creds, err := p.Store.Get(ctx, p.SessionID)
	if err != nil {
		if IsMissing(err) {
			return "", booking.NewMissingCredentialError("No token found in session storage")
		}
		return "", err
	}
	if creds.Token == "" {
		return "", booking.NewMissingCredentialError("No token found in session storage")
	}
	if utils.TokenExpired(creds.Token) {
		return "", booking.NewMissingCredentialError("Session token has expired")
	}
	return creds.Token, nil
}

// Profile returns the user profile stored with the session.
func (p *Provider) Profile(ctx context.Context) (*models.UserProfile, error) {
	creds, err := p.Store.Get(ctx, p.SessionID)
	if err != nil {
		if IsMissing(err) {
			return nil, booking.NewMissingCredentialError("No profile found in session storage")
		}
		return nil, err
	}
	return &creds.User, nil
}
