// Package otp implements the one-time-password codec: a small JSON payload
// symmetrically encrypted with a shared secret, checked against a fixed
// validity window at verification time.
package otp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

// ValidityWindow is how long an issued OTP stays verifiable. The window is
// evaluated lazily at verification time; nothing expires OTPs in the
// background.
const ValidityWindow = 15 * time.Minute

// ErrMalformed signals that a stored ciphertext could not be decrypted or its
// payload could not be parsed. Callers surface it as an internal fault, not a
// user error.
var ErrMalformed = errors.New("otp payload malformed")

// Result is the outcome of verifying a supplied code against a payload
type Result int

const (
	ResultInvalid Result = iota
	ResultExpired
	ResultValid
)

// Payload is the ephemeral value stored per identity. IssuedAt is unix
// seconds rendered as a decimal string.
type Payload struct {
	Code     string `json:"code"`
	IssuedAt string `json:"issued_at"`
}

// Codec encrypts and verifies OTP payloads with a key derived from the
// shared secret
type Codec struct {
	key []byte
}

// NewCodec derives the AES key from the configured secret
func NewCodec(secret string) *Codec {
	key := sha256.Sum256([]byte(secret))
	return &Codec{key: key[:]}
}

// GenerateCode returns a uniformly random 4-digit code in [1000, 9999]
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp code: %w", err)
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}

// NewPayload builds a payload for the given code issued now
func NewPayload(code string, now time.Time) Payload {
	return Payload{
		Code:     code,
		IssuedAt: strconv.FormatInt(now.Unix(), 10),
	}
}

// Encrypt serializes the payload to JSON and seals it with AES-GCM. The
// random nonce is prepended to the ciphertext and the whole value is base64
// encoded for storage.
func (c *Codec) Encrypt(payload Payload) (string, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal otp payload: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("failed to create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a stored ciphertext and parses the payload. Any decode,
// decrypt, or parse failure maps to ErrMalformed.
func (c *Codec) Decrypt(ciphertext string) (Payload, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create gcm: %w", err)
	}

	if len(raw) < gcm.NonceSize() {
		return Payload{}, fmt.Errorf("%w: ciphertext too short", ErrMalformed)
	}
	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var payload Payload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return payload, nil
}

// Verify compares the supplied code against the payload and checks the
// validity window. A missing or unparseable issue timestamp is ErrMalformed.
// The full timestamp value is parsed; no prefix slicing.
func (c *Codec) Verify(payload Payload, suppliedCode string, now time.Time) (Result, error) {
	if payload.Code != suppliedCode {
		return ResultInvalid, nil
	}

	if payload.IssuedAt == "" {
		return ResultInvalid, fmt.Errorf("%w: issue timestamp missing", ErrMalformed)
	}
	issuedAt, err := strconv.ParseInt(payload.IssuedAt, 10, 64)
	if err != nil {
		return ResultInvalid, fmt.Errorf("%w: bad issue timestamp: %v", ErrMalformed, err)
	}

	age := now.Unix() - issuedAt
	if age < 0 {
		age = -age
	}
	if time.Duration(age)*time.Second >= ValidityWindow {
		return ResultExpired, nil
	}

	return ResultValid, nil
}
