package vision

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stripCodeFence returns the content of the first markdown code fence in the
// reply, preferring a fence labeled "json" over a bare one. Text outside the
// fence is discarded, and only the first fenced block is considered even when
// several are present. A reply without a fence passes through trimmed.
func stripCodeFence(reply string) string {
	if _, after, found := strings.Cut(reply, "```json"); found {
		if content, _, closed := strings.Cut(after, "```"); closed {
			return strings.TrimSpace(content)
		}
		return strings.TrimSpace(after)
	}
	if _, after, found := strings.Cut(reply, "```"); found {
		if content, _, closed := strings.Cut(after, "```"); closed {
			return strings.TrimSpace(content)
		}
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(reply)
}

// parseReply unwraps the markdown fence and validates that what remains is
// JSON. The content is returned verbatim, not re-marshaled, so the model's
// field order and any extra fields survive.
func parseReply(reply string) (json.RawMessage, error) {
	content := stripCodeFence(reply)
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("%w: %q", ErrBadReply, content)
	}
	return json.RawMessage(content), nil
}
