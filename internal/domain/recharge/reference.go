package recharge

import (
	"strconv"
	"strings"

	"minutes-recharge/internal/pkg/clock"
	"minutes-recharge/internal/pkg/errs"
)

const (
	ReferenceType = "RECARGA_MINUTOS"

	fieldSeparator = "-"
	pairSeparator  = "="

	KeyWorkspaceID = "workspace_id"
	KeyMinutes     = "minutes"
	KeyTimestamp   = "timestamp"
	KeyType        = "type"
)

// Reference is the transaction reference handed to the checkout provider.
// Format: workspace_id=<id>-minutes=<n>-timestamp=<unix millis>-type=RECARGA_MINUTOS
type Reference struct {
	workspaceID string
	minutes     int64
	timestamp   int64
}

func NewReference(workspaceID string, minutes int64, clk clock.Clock) (Reference, error) {
	workspaceID = strings.TrimSpace(workspaceID)
	if workspaceID == "" {
		return Reference{}, errs.Wrap(ErrInvalidArgument, "workspace id is required")
	}
	if strings.ContainsAny(workspaceID, fieldSeparator+pairSeparator) {
		return Reference{}, errs.Wrap(ErrInvalidArgument, "workspace id must not contain '-' or '='")
	}
	if minutes <= 0 {
		return Reference{}, errs.Wrap(ErrInvalidArgument, "minutes must be a positive integer")
	}

	return Reference{
		workspaceID: workspaceID,
		minutes:     minutes,
		timestamp:   clk.Now().UnixMilli(),
	}, nil
}

func (r Reference) WorkspaceID() string { return r.workspaceID }
func (r Reference) Minutes() int64      { return r.minutes }
func (r Reference) Timestamp() int64    { return r.timestamp }

func (r Reference) String() string {
	var b strings.Builder
	b.WriteString(KeyWorkspaceID + pairSeparator + r.workspaceID)
	b.WriteString(fieldSeparator + KeyMinutes + pairSeparator + strconv.FormatInt(r.minutes, 10))
	b.WriteString(fieldSeparator + KeyTimestamp + pairSeparator + strconv.FormatInt(r.timestamp, 10))
	b.WriteString(fieldSeparator + KeyType + pairSeparator + ReferenceType)
	return b.String()
}

type Completeness int

const (
	Empty Completeness = iota
	Partial
	Full
)

func (c Completeness) String() string {
	switch c {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "empty"
	}
}

// ParsedReference keeps every recognised segment. Numeric fields that fail to
// coerce stay in Fields as their raw string.
type ParsedReference struct {
	Fields map[string]any
}

// ParseReference never fails; unreadable input yields an empty result.
func ParseReference(raw string) ParsedReference {
	parsed := ParsedReference{Fields: map[string]any{}}

	for _, segment := range strings.Split(raw, fieldSeparator) {
		parts := strings.Split(segment, pairSeparator)
		if len(parts) < 2 {
			continue
		}
		key, value := parts[0], parts[1]
		if key == "" || value == "" {
			continue
		}

		switch key {
		case KeyMinutes, KeyTimestamp:
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				parsed.Fields[key] = n
				continue
			}
			parsed.Fields[key] = value
		default:
			parsed.Fields[key] = value
		}
	}

	return parsed
}

func (p ParsedReference) Completeness() Completeness {
	if len(p.Fields) == 0 {
		return Empty
	}
	_, hasWorkspace := p.WorkspaceID()
	_, hasMinutes := p.Minutes()
	_, hasTimestamp := p.Timestamp()
	_, hasType := p.Type()
	if hasWorkspace && hasMinutes && hasTimestamp && hasType {
		return Full
	}
	return Partial
}

func (p ParsedReference) WorkspaceID() (string, bool) {
	return p.stringField(KeyWorkspaceID)
}

func (p ParsedReference) Type() (string, bool) {
	return p.stringField(KeyType)
}

func (p ParsedReference) Minutes() (int64, bool) {
	return p.intField(KeyMinutes)
}

func (p ParsedReference) Timestamp() (int64, bool) {
	return p.intField(KeyTimestamp)
}

func (p ParsedReference) stringField(key string) (string, bool) {
	v, ok := p.Fields[key].(string)
	return v, ok
}

func (p ParsedReference) intField(key string) (int64, bool) {
	v, ok := p.Fields[key].(int64)
	return v, ok
}
