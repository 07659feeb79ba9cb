package session

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
)

// ErrUnableToDecodeToken is returned when an ID token cannot be parsed.
var ErrUnableToDecodeToken = errors.New("unable to decode id token", errors.CategoryAuth).
	WithTextCode("session_token_decode_error").
	WithCode(errors.CodeUnauthorized)

// ErrUnableToMapClaims is returned when token claims are missing or have
// an unexpected shape.
var ErrUnableToMapClaims = errors.New("unable to map claims", errors.CategoryAuth).
	WithTextCode("session_claims_mapping_error").
	WithCode(errors.CodeUnauthorized)

// SessionFromIDToken maps a provider-issued ID token into a Session:
// sub becomes the user id, the standard name and email claims fill the
// optional fields, and every remaining claim rides along as opaque
// metadata. The signature is NOT verified here; verification is the
// provider's job and happens before the token ever reaches this package.
func SessionFromIDToken(tokenString string) (*Session, error) {
	parser := jwt.NewParser()

	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, ErrUnableToDecodeToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnableToMapClaims
	}

	return sessionFromClaims(claims)
}

func sessionFromClaims(claims jwt.MapClaims) (*Session, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, ErrUnableToMapClaims
	}

	sess := &Session{
		UserID:   sub,
		Metadata: make(map[string]any, len(claims)),
	}

	for key, val := range claims {
		switch key {
		case "sub":
		case "name":
			if name, ok := val.(string); ok {
				sess.DisplayName = name
			}
		case "email":
			if email, ok := val.(string); ok {
				sess.Email = email
			}
		default:
			sess.Metadata[key] = val
		}
	}

	return sess, nil
}
