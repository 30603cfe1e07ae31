package catmux

// Error taxonomy (§7). The engine itself has no fatal errors: every
// failure mode here either resolves silently (malformed input,
// unknown handle, amplifier query with no cached state) or is
// surfaced as an EventError for an external supervisor to act on.
// Peer I/O failures are detected and logged by internal/peerio, not
// by this package; no EventError is emitted for them.
const (
	errSourceTranslator = "translator"
	errSourceRadio       = "radio"
	errSourceAmp         = "amp"
)
