// Package generation defines the boundary between the HTTP front door and the
// text-generation backends. It abstracts the details of each backend (a plain
// HTTP relay, Ollama, Gemini) behind the Generator interface, and the Service
// type applies the relay's failure policy on top of whichever backend is
// configured.
package generation
