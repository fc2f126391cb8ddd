package api

// An Explainer collects information about a path calculation and can present it in the form of a fairly
// verbose human readable explanation.
type Explainer interface {
	// PushStage pushes a node for a calculation stage such as "stdlib" or "extensions"
	PushStage(name string)

	// AcceptProbe accepts information about a probe of the given kind, e.g. "file" or "dir", on a path
	AcceptProbe(kind, path string, ok bool)

	// AcceptResult accepts the value that a stage resolved together with its provenance
	AcceptResult(name, value string, p Provenance)

	// AcceptText accepts arbitrary text to be injected into the explanation
	AcceptText(text string)

	// Pop pops an explainer node from the stack of explanations
	Pop()

	// String returns the explanation as indented text
	String() string
}
