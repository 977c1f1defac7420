package project

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// stripJSONC removes // and /* */ comments and trailing commas so the
// tsconfig files emitted by project generators decode as plain JSON.
// String literals are copied untouched.
func stripJSONC(src []byte) []byte {
	out := make([]byte, 0, len(src))
	inString := false

	for i := 0; i < len(src); i++ {
		c := src[i]

		if inString {
			out = append(out, c)
			switch c {
			case '\\':
				if i+1 < len(src) {
					i++
					out = append(out, src[i])
				}
			case '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			out = append(out, c)
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out = append(out, '\n')
			}
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i += 2
			for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
				i++
			}
			i++ // land on the closing '/'
		case c == ',':
			j := i + 1
			for j < len(src) && isJSONSpace(src[j]) {
				j++
			}
			if j < len(src) && (src[j] == '}' || src[j] == ']') {
				continue
			}
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// mergeTSConfigPaths adds the "@/*" import alias to compilerOptions.
// Existing options are preserved; keys come back sorted.
func mergeTSConfigPaths(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(stripJSONC(data), &doc); err != nil {
		return nil, fmt.Errorf("parse tsconfig: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	opts, _ := doc["compilerOptions"].(map[string]any)
	if opts == nil {
		opts = map[string]any{}
	}
	opts["baseUrl"] = "."

	paths, _ := opts["paths"].(map[string]any)
	if paths == nil {
		paths = map[string]any{}
	}
	paths["@/*"] = []string{"./src/*"}
	opts["paths"] = paths
	doc["compilerOptions"] = opts

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode tsconfig: %w", err)
	}
	return buf.Bytes(), nil
}
