// Package postprocess trims model output down to the commented source.
//
// It is applied only when the caller asks for bare code (the CLI's
// --extract flag). The HTTP endpoint relays model text untouched.
package postprocess

import (
	"regexp"
	"strings"
)

// ExtractCode returns the code carried by a model reply:
//  1. Reasoning blocks such as <think>…</think> are dropped
//  2. The body of the first fenced code block is returned, if any
//  3. Otherwise the remaining text is returned trimmed
func ExtractCode(text string) string {
	text = removeThinkingBlocks(text)
	if body, ok := firstFence(text); ok {
		return body
	}
	return strings.TrimSpace(text)
}

// thinkingBlockRe matches complete <thinking>…</thinking> style blocks.
// RE2 has no backreferences, so each tag pair is spelled out.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>`,
)

// truncatedThinkingRe matches an opened tag whose closing tag never came.
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// fenceRe matches a ``` or ~~~ fence with an optional info string. The
// closing fence is optional so a reply cut off mid-block still yields code.
var fenceRe = regexp.MustCompile("(?s)(?:^|\n)[ \t]*(```|~~~)[^\n]*\n(.*?)(?:\n[ \t]*(?:```|~~~)[ \t]*(?:\n|$)|$)")

func firstFence(text string) (string, bool) {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimRight(m[2], " \t\n"), true
}
