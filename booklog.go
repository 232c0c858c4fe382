// Package booklog provides a small book catalog with a rule-based chat
// assistant. Chat lines are classified into intents, turned into catalog
// operations, and answered with a single reply; anything the rules do not
// recognize is handed to a generative model.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, elastic/, gemini/).
package booklog
