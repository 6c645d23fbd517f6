// Package router selects a hosted LLM endpoint for a research topic.
//
// Selection is driven entirely by static configuration: an explicit
// operator directive wins unconditionally, otherwise the topic is
// scanned against an ordered list of sensitive-topic keywords, then
// against a technical keyword set, and finally falls back to the
// configured default model. The router never contacts a provider; it
// only returns a Decision describing which endpoint to use and why.
package router
