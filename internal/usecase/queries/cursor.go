package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bookloop/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
	titleCursorV1    = "t1"
)

var ErrInvalidCursor = errs.NewKind(errs.ErrValidation, "invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the (created_at, id) position of the last row of a page.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

// TitleKeyset is the (title, id) position used by the catalog listing.
type TitleKeyset struct {
	Title string
	ID    uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid cursor format: expected '<micros>-<uuid>'")
	}

	timestamp, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}

	return time.UnixMicro(timestamp), id, nil
}

// EncodeTitleCursor puts the fixed-width id first so titles may contain any character.
func EncodeTitleCursor(title string, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s:%s", titleCursorV1, id.String(), title)
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeTitleCursor(cursor string) (string, uuid.UUID, error) {
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}
	payload, ok := strings.CutPrefix(string(decoded), titleCursorV1+":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("unsupported cursor version")
	}
	idPart, title, ok := strings.Cut(payload, ":")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("invalid cursor format: expected '<uuid>:<title>'")
	}
	id, err := uuid.Parse(idPart)
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}
	return title, id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func decodeKeyset(cursor *Cursor) (*Keyset, error) {
	if cursor == nil || cursor.After == "" {
		return nil, nil
	}
	t, id, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return nil, errs.Wrap(ErrInvalidCursor, err.Error())
	}
	return &Keyset{CreatedAt: t, ID: id}, nil
}
