// Package explain contains the path calculation explainer logic
package explain

import (
	"strings"

	"github.com/lyraproj/getpath/api"
)

type explainNode interface {
	appendBranch(branch explainNode)
	appendTo(w *indenter)
	parent() explainNode
	setParent(explainNode)
}

type explainTreeNode struct {
	p  explainNode
	bs []explainNode
}

func (en *explainTreeNode) appendBranch(branch explainNode) {
	en.bs = append(en.bs, branch)
}

func (en *explainTreeNode) appendTo(w *indenter) {
	en.dumpBranches(w)
}

func (en *explainTreeNode) dumpBranches(w *indenter) {
	for _, b := range en.bs {
		b.appendTo(w)
	}
}

func (en *explainTreeNode) parent() explainNode {
	return en.p
}

func (en *explainTreeNode) setParent(p explainNode) {
	en.p = p
}

type explainStage struct {
	explainTreeNode
	name string
}

func (en *explainStage) appendTo(w *indenter) {
	w.newLine()
	w.append(`Stage "`)
	w.append(en.name)
	w.appendRune('"')
	en.dumpBranches(w.indent())
}

type explainProbe struct {
	explainTreeNode
	kind string
	path string
	ok   bool
}

func (en *explainProbe) appendTo(w *indenter) {
	w.newLine()
	w.append(`Probe `)
	w.append(en.kind)
	w.append(` "`)
	w.append(en.path)
	w.append(`" `)
	if en.ok {
		w.append(`found`)
	} else {
		w.append(`not found`)
	}
}

type explainResult struct {
	explainTreeNode
	name       string
	value      string
	provenance api.Provenance
}

func (en *explainResult) appendTo(w *indenter) {
	w.newLine()
	w.append(`Resolved `)
	w.append(en.name)
	w.append(`: "`)
	w.append(en.value)
	w.appendRune('"')
	if !en.provenance.IsUnknown() {
		w.append(` (`)
		w.append(en.provenance.String())
		w.appendRune(')')
	}
}

type explainText struct {
	explainTreeNode
	text string
}

func (en *explainText) appendTo(w *indenter) {
	w.newLine()
	w.append(en.text)
}

type explainer struct {
	explainTreeNode
	current explainNode
}

// NewExplainer creates a new Explainer instance.
func NewExplainer() api.Explainer {
	ex := &explainer{}
	ex.current = ex
	return ex
}

func (ex *explainer) add(en explainNode) {
	en.setParent(ex.current)
	ex.current.appendBranch(en)
}

func (ex *explainer) push(en explainNode) {
	ex.add(en)
	ex.current = en
}

func (ex *explainer) PushStage(name string) {
	ex.push(&explainStage{name: name})
}

func (ex *explainer) AcceptProbe(kind, path string, ok bool) {
	ex.add(&explainProbe{kind: kind, path: path, ok: ok})
}

func (ex *explainer) AcceptResult(name, value string, p api.Provenance) {
	ex.add(&explainResult{name: name, value: value, provenance: p})
}

func (ex *explainer) AcceptText(text string) {
	ex.add(&explainText{text: text})
}

func (ex *explainer) Pop() {
	if p := ex.current.parent(); p != nil {
		ex.current = p
	}
}

func (ex *explainer) String() string {
	w := &indenter{b: &strings.Builder{}}
	ex.dumpBranches(w)
	return strings.TrimPrefix(w.b.String(), "\n")
}

// indenter appends text to a shared builder using a fixed indentation level
type indenter struct {
	b     *strings.Builder
	level int
}

func (w *indenter) indent() *indenter {
	return &indenter{b: w.b, level: w.level + 1}
}

func (w *indenter) newLine() {
	w.b.WriteByte('\n')
	for i := 0; i < w.level; i++ {
		w.b.WriteString(`  `)
	}
}

func (w *indenter) append(s string) {
	w.b.WriteString(s)
}

func (w *indenter) appendRune(r rune) {
	w.b.WriteRune(r)
}
