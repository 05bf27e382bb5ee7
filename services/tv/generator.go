package tv

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

// payloadKind marks the QR payload so scanners can tell pairing codes apart
// from any other QR content.
const payloadKind = "tv_auth"

// qrPayload is the JSON document embedded in the scannable code.
type qrPayload struct {
	Kind     string `json:"kind"`
	Token    string `json:"token"`
	IssuedAt int64  `json:"issuedAt"` // unix millis
}

// CodeGenerator produces pairing tokens and their scannable representation.
// Size is the PNG edge length in pixels; it is presentation, not protocol.
type CodeGenerator struct {
	Size int
}

// NewCodeGenerator creates a generator rendering codes at the given pixel size.
func NewCodeGenerator(size int) *CodeGenerator {
	if size <= 0 {
		size = 300
	}
	return &CodeGenerator{Size: size}
}

// buildPayload marshals the JSON document embedded in the scannable code.
func buildPayload(token string, issuedAt time.Time) ([]byte, error) {
	return json.Marshal(qrPayload{
		Kind:     payloadKind,
		Token:    token,
		IssuedAt: issuedAt.UnixMilli(),
	})
}

// Generate produces a fresh token and its QR rendering as a PNG data URL.
// Tokens come from a v4 UUID, so they are not guessable from sequence.
func (g *CodeGenerator) Generate() (string, string, error) {
	token := uuid.NewString()

	payload, err := buildPayload(token, time.Now())
	if err != nil {
		return "", "", EncodingError{Err: err}
	}

	png, err := qrcode.Encode(string(payload), qrcode.Medium, g.Size)
	if err != nil {
		return "", "", EncodingError{Err: err}
	}

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return token, dataURL, nil
}
