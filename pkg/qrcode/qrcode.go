// Package qrcode encodes and parses the payload printed on book copy labels.
package qrcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPayload = errors.New("invalid qr payload")

	payloadRe  = regexp.MustCompile(`^BookID:(\d+)-No:(\d+)$`)
	researchRe = regexp.MustCompile(`^ResearchID:(\d+)$`)
)

type Payload struct {
	BookID     int64 `json:"book_id"`
	CopyNumber int   `json:"copy_number"`
}

func (p Payload) String() string {
	return Encode(p.BookID, p.CopyNumber)
}

func Encode(bookID int64, copyNumber int) string {
	return fmt.Sprintf("BookID:%d-No:%d", bookID, copyNumber)
}

// Decode accepts surrounding whitespace but nothing else around the payload.
func Decode(raw string) (Payload, error) {
	m := payloadRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Payload{}, ErrInvalidPayload
	}
	bookID, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return Payload{}, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	copyNumber, err := strconv.Atoi(m[2])
	if err != nil {
		return Payload{}, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	return Payload{BookID: bookID, CopyNumber: copyNumber}, nil
}

// EncodeResearch builds the single label printed on a research paper.
func EncodeResearch(paperID int64) string {
	return fmt.Sprintf("ResearchID:%d", paperID)
}

func DecodeResearch(raw string) (int64, error) {
	m := researchRe.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0, ErrInvalidPayload
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	return id, nil
}
