package ai

import "strings"

// cleanJSONBlock strips a markdown code fence the model sometimes wraps JSON
// in despite instructions.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// firstJSONObject returns the outermost {...} substring of free-form model
// text, or "" if no balanced object is present. String contents are scanned
// so braces inside values do not miscount.
func firstJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}

// extractJSON pulls the JSON payload out of a free-text model reply.
func extractJSON(text string) string {
	return firstJSONObject(cleanJSONBlock(text))
}
