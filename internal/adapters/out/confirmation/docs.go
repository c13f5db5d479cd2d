// Package confirmation implements ports.ConfirmationGenerator.
//
// GeminiGenerator asks the Gemini text generation API for a Markdown confirmation.
// OfflineGenerator renders a fixed template and is used when no API key is configured.
package confirmation
