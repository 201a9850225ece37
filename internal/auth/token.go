package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token failure taxonomy. The middleware collapses all of these into an
// anonymous request; only tests and logs ever distinguish them.
var (
	ErrTokenMalformed   = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrSubjectMismatch  = errors.New("token subject mismatch")
)

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Codec signs claims into compact HS256 tokens and verifies them back.
// The secret is fixed for the process lifetime.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("signing secret is required")
	}
	return &Codec{secret: []byte(secret)}, nil
}

// Encode serializes claims and signs them. Extra claims are merged in first,
// so they can never shadow sub/iat/exp.
func (c *Codec) Encode(claims Claims, extra map[string]any) (string, error) {
	payload := jwt.MapClaims{}
	for k, v := range extra {
		payload[k] = v
	}
	payload["sub"] = claims.Subject
	payload["iat"] = claims.IssuedAt.Unix()
	payload["exp"] = claims.ExpiresAt.Unix()

	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(c.secret)
}

// Decode verifies the signature and parses the claims back out. Expiry is
// deliberately not checked here; that is the Validator's decision, made with
// a strict comparison. Claims from a token whose signature does not verify
// are never returned.
func (c *Codec) Decode(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrSignatureInvalid
		default:
			return Claims{}, ErrTokenMalformed
		}
	}

	payload, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenMalformed
	}

	sub, err := payload.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, ErrTokenMalformed
	}
	iat, err := payload.GetIssuedAt()
	if err != nil || iat == nil {
		return Claims{}, ErrTokenMalformed
	}
	exp, err := payload.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrTokenMalformed
	}

	return Claims{Subject: sub, IssuedAt: iat.Time, ExpiresAt: exp.Time}, nil
}

// Issuer mints tokens for authenticated identities with a fixed TTL.
type Issuer struct {
	codec *Codec
	ttl   time.Duration
	now   func() time.Time
}

func NewIssuer(codec *Codec, ttl time.Duration) *Issuer {
	return &Issuer{codec: codec, ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue builds Claims{subject, now, now+ttl} and signs them.
func (i *Issuer) Issue(login string) (string, error) {
	return i.IssueWithClaims(login, nil)
}

// IssueWithClaims merges extra claims before signing. Nothing in this
// codebase uses extras beyond the subject, but the hook is part of the
// issuing contract.
func (i *Issuer) IssueWithClaims(login string, extra map[string]any) (string, error) {
	now := i.now().UTC()
	return i.codec.Encode(Claims{
		Subject:   login,
		IssuedAt:  now,
		ExpiresAt: now.Add(i.ttl),
	}, extra)
}

// Validator decides whether a token proves a given identity.
type Validator struct {
	codec *Codec
	now   func() time.Time
}

func NewValidator(codec *Codec) *Validator {
	return &Validator{codec: codec, now: time.Now}
}

// Validate returns nil only when the signature verified, the subject equals
// expectedLogin, and the token is not yet expired. Expiry is strict: a token
// is already invalid at the exact instant exp == now.
func (v *Validator) Validate(tokenString string, expectedLogin string) error {
	claims, err := v.codec.Decode(tokenString)
	if err != nil {
		return err
	}
	if claims.Subject != expectedLogin {
		return ErrSubjectMismatch
	}
	if !claims.ExpiresAt.After(v.now()) {
		return ErrTokenExpired
	}
	return nil
}

func (v *Validator) IsValid(tokenString string, expectedLogin string) bool {
	return v.Validate(tokenString, expectedLogin) == nil
}
