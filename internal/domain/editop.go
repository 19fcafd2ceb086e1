package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// EditOp is one edit operation applied to document content. The concrete
// types form a closed set; Apply matches them exhaustively.
type EditOp interface {
	apply(content string) (string, error)
}

// ReplaceOnce replaces the first textual occurrence of OldText. It is an
// error if OldText does not occur.
type ReplaceOnce struct {
	OldText string
	NewText string
}

// ReplaceAll replaces every occurrence of OldText.
type ReplaceAll struct {
	OldText string
	NewText string
}

// ReplaceRegex replaces every match of Pattern with Replacement. Flags
// accepts any combination of i, m, s.
type ReplaceRegex struct {
	Pattern     string
	Flags       string
	Replacement string
}

// ReplaceAllContent replaces the document content wholesale.
type ReplaceAllContent struct {
	Content string
}

func (op ReplaceOnce) apply(content string) (string, error) {
	if !strings.Contains(content, op.OldText) {
		return "", fmt.Errorf("replaceOnce: text not found: %q", op.OldText)
	}
	return strings.Replace(content, op.OldText, op.NewText, 1), nil
}

func (op ReplaceAll) apply(content string) (string, error) {
	return strings.ReplaceAll(content, op.OldText, op.NewText), nil
}

func (op ReplaceRegex) apply(content string) (string, error) {
	re, err := op.compile()
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(content, op.Replacement), nil
}

func (op ReplaceRegex) compile() (*regexp.Regexp, error) {
	var inline strings.Builder
	for _, f := range op.Flags {
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'g':
			// Replacement is already global; accepted for callers used to
			// JS-style regex flags.
		default:
			return nil, fmt.Errorf("replaceRegex: unsupported flag %q", string(f))
		}
	}
	pattern := op.Pattern
	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("replaceRegex: invalid pattern: %w", err)
	}
	return re, nil
}

func (op ReplaceAllContent) apply(string) (string, error) {
	return op.Content, nil
}

// ApplyEdits runs the operations in order against the content and returns
// the result. The first failing operation aborts the sequence.
func ApplyEdits(content string, ops []EditOp) (string, error) {
	if len(ops) == 0 {
		return "", fmt.Errorf("no edit operations supplied")
	}
	for i, op := range ops {
		next, err := op.apply(content)
		if err != nil {
			return "", fmt.Errorf("operation %d: %w", i+1, err)
		}
		content = next
	}
	return content, nil
}

// editOpEnvelope is the wire form of an edit operation:
//
//	{op:"replaceOnce", oldText, newText}
//	{op:"replaceAll", oldText, newText}
//	{op:"replaceRegex", pattern, flags?, replacement}
//	{op:"replaceAllContent", content}
type editOpEnvelope struct {
	Op          string `json:"op"`
	OldText     string `json:"oldText,omitempty"`
	NewText     string `json:"newText,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Flags       string `json:"flags,omitempty"`
	Replacement string `json:"replacement,omitempty"`
	Content     string `json:"content,omitempty"`
}

// DecodeEditOps parses a JSON array of edit operations.
func DecodeEditOps(data []byte) ([]EditOp, error) {
	var envelopes []editOpEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return nil, fmt.Errorf("invalid edit operations: %w", err)
	}
	ops := make([]EditOp, 0, len(envelopes))
	for _, env := range envelopes {
		switch env.Op {
		case "replaceOnce":
			ops = append(ops, ReplaceOnce{OldText: env.OldText, NewText: env.NewText})
		case "replaceAll":
			ops = append(ops, ReplaceAll{OldText: env.OldText, NewText: env.NewText})
		case "replaceRegex":
			ops = append(ops, ReplaceRegex{Pattern: env.Pattern, Flags: env.Flags, Replacement: env.Replacement})
		case "replaceAllContent":
			ops = append(ops, ReplaceAllContent{Content: env.Content})
		default:
			return nil, fmt.Errorf("unknown edit operation: %q", env.Op)
		}
	}
	return ops, nil
}

// EncodeEditOps serializes operations into the wire form.
func EncodeEditOps(ops []EditOp) ([]byte, error) {
	envelopes := make([]editOpEnvelope, 0, len(ops))
	for _, op := range ops {
		switch op := op.(type) {
		case ReplaceOnce:
			envelopes = append(envelopes, editOpEnvelope{Op: "replaceOnce", OldText: op.OldText, NewText: op.NewText})
		case ReplaceAll:
			envelopes = append(envelopes, editOpEnvelope{Op: "replaceAll", OldText: op.OldText, NewText: op.NewText})
		case ReplaceRegex:
			envelopes = append(envelopes, editOpEnvelope{Op: "replaceRegex", Pattern: op.Pattern, Flags: op.Flags, Replacement: op.Replacement})
		case ReplaceAllContent:
			envelopes = append(envelopes, editOpEnvelope{Op: "replaceAllContent", Content: op.Content})
		default:
			return nil, fmt.Errorf("unknown edit operation type: %T", op)
		}
	}
	return json.Marshal(envelopes)
}
