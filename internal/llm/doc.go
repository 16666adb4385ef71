// Package llm provides an optional remote intent classifier backed by a
// text-completion API. It supports OpenAI and Anthropic, with retry logic,
// rate limiting and response caching. Every failure is reported through
// Result so callers can fall back to the deterministic keyword classifier.
package llm
