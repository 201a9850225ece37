package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T) *Codec {
	t.Helper()
	codec, err := NewCodec("test-secret")
	require.NoError(t, err)
	return codec
}

func TestNewCodec_RequiresSecret(t *testing.T) {
	_, err := NewCodec("")
	assert.Error(t, err)

	codec, err := NewCodec("s")
	assert.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	token, err := codec.Encode(Claims{
		Subject:   "speedy",
		IssuedAt:  issued,
		ExpiresAt: issued.Add(6 * time.Hour),
	}, nil)
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "speedy", claims.Subject)
	assert.True(t, claims.IssuedAt.Equal(issued))
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(6*time.Hour)))
}

func TestCodec_ExtraClaimsCannotShadowReserved(t *testing.T) {
	codec := newTestCodec(t)

	issued := time.Now().UTC().Truncate(time.Second)
	token, err := codec.Encode(Claims{
		Subject:   "speedy",
		IssuedAt:  issued,
		ExpiresAt: issued.Add(time.Hour),
	}, map[string]any{"sub": "impostor", "exp": 0})
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "speedy", claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(issued.Add(time.Hour)))
}

func TestCodec_Decode_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := codec.Decode(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}

func TestCodec_Decode_MissingRequiredClaims(t *testing.T) {
	codec := newTestCodec(t)

	// Signed correctly but without sub/iat/exp.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"foo": "bar"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode(raw)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestCodec_Decode_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t)
	issuer := NewIssuer(codec, time.Hour)

	token, err := issuer.Issue("speedy")
	require.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodec_Decode_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)
	other, err := NewCodec("different-secret")
	require.NoError(t, err)

	token, err := NewIssuer(other, time.Hour).Issue("speedy")
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestCodec_Decode_RejectsUnsignedToken(t *testing.T) {
	codec := newTestCodec(t)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "speedy",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Decode(raw)
	assert.Error(t, err)
}

func TestIssuer_ExpiryIsIssuedAtPlusTTL(t *testing.T) {
	codec := newTestCodec(t)
	issuer := NewIssuer(codec, 6*time.Hour)
	frozen := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return frozen }

	token, err := issuer.Issue("speedy")
	require.NoError(t, err)

	claims, err := codec.Decode(token)
	require.NoError(t, err)
	assert.True(t, claims.IssuedAt.Equal(frozen))
	assert.True(t, claims.ExpiresAt.Equal(frozen.Add(6*time.Hour)))
}

func TestValidator_FreshTokenIsValid(t *testing.T) {
	codec := newTestCodec(t)
	issuer := NewIssuer(codec, time.Hour)
	validator := NewValidator(codec)

	token, err := issuer.Issue("speedy")
	require.NoError(t, err)

	assert.NoError(t, validator.Validate(token, "speedy"))
	assert.True(t, validator.IsValid(token, "speedy"))
}

func TestValidator_SubjectMismatch(t *testing.T) {
	codec := newTestCodec(t)
	issuer := NewIssuer(codec, time.Hour)
	validator := NewValidator(codec)

	token, err := issuer.Issue("speedy")
	require.NoError(t, err)

	assert.ErrorIs(t, validator.Validate(token, "someone-else"), ErrSubjectMismatch)
	assert.False(t, validator.IsValid(token, "someone-else"))
}

func TestValidator_ExpiryBoundary(t *testing.T) {
	codec := newTestCodec(t)
	issuer := NewIssuer(codec, time.Hour)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue("speedy")
	require.NoError(t, err)

	validator := NewValidator(codec)

	// One second before expiry the token still verifies.
	validator.now = func() time.Time { return issued.Add(time.Hour - time.Second) }
	assert.NoError(t, validator.Validate(token, "speedy"))

	// At the exact expiry instant it is already invalid.
	validator.now = func() time.Time { return issued.Add(time.Hour) }
	assert.ErrorIs(t, validator.Validate(token, "speedy"), ErrTokenExpired)

	validator.now = func() time.Time { return issued.Add(time.Hour + time.Second) }
	assert.ErrorIs(t, validator.Validate(token, "speedy"), ErrTokenExpired)
}

func TestIssuer_TokenHasThreeSegments(t *testing.T) {
	codec := newTestCodec(t)

	token, err := NewIssuer(codec, time.Hour).Issue("speedy")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}
