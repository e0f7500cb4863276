package utils

import "strings"

// ContentSeparator delimits questions in a form and answers in an application.
const ContentSeparator = ","

// SplitContent breaks delimited content into trimmed, non-empty items.
func SplitContent(content string) []string {
	items := []string{}
	for _, part := range strings.Split(content, ContentSeparator) {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// JoinContent is the inverse of SplitContent for items without separators.
func JoinContent(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ContentSeparator)
}

// NormalizeContent trims each item and drops empty ones.
func NormalizeContent(content string) string {
	return JoinContent(SplitContent(content))
}
