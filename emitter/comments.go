package emitter

import "github.com/viant/jsemit/ast"

// CommentRouter filters, classifies, and writes a
// node's leading/trailing/detached comment ranges through a Writer, using
// the original source text to slice each range's bytes.
type CommentRouter struct {
	text           string
	removeComments bool

	// detachedEmitted tracks node ids whose detached header comment has
	// already been written once, per  "written once, then suppressed
	// from that node's leading set".
	detachedEmitted map[int]bool
}

// NewCommentRouter creates a router over sourceText. removeComments mirrors
// the CompilerOptions flag: when true, only pinned/triple-slash comments
// survive.
func NewCommentRouter(sourceText string, removeComments bool) *CommentRouter {
	return &CommentRouter{text: sourceText, removeComments: removeComments, detachedEmitted: map[int]bool{}}
}

func (r *CommentRouter) survives(c ast.CommentRange) bool {
	if !r.removeComments {
		return true
	}
	return c.IsPinned()
}

func (r *CommentRouter) slice(c ast.CommentRange) string {
	if c.Text != "" {
		return c.Text
	}
	if c.Pos < 0 || c.End > len(r.text) || c.Pos > c.End {
		return ""
	}
	return r.text[c.Pos:c.End]
}

// EmitDetached writes node's detached header comment (if any and not
// already emitted for this node) to w, once.
func (r *CommentRouter) EmitDetached(w *Writer, node *ast.Node) {
	if node == nil || len(node.DetachedComments) == 0 {
		return
	}
	if r.detachedEmitted[node.NodeID] {
		return
	}
	for _, c := range node.DetachedComments {
		if !r.survives(c) {
			continue
		}
		w.WriteLiteral(r.slice(c))
		w.WriteLine()
	}
	w.WriteLine()
	r.detachedEmitted[node.NodeID] = true
}

// EmitLeading writes node's leading comments (excluding anything already
// surfaced as a detached header) to w: a blank line precedes a leading
// comment when the source had one (HasLeadingNewLine), and a single space
// separates each leading comment from what follows .
func (r *CommentRouter) EmitLeading(w *Writer, node *ast.Node) {
	if node == nil {
		return
	}
	for _, c := range node.LeadingComments {
		if !r.survives(c) {
			continue
		}
		if r.detachedEmitted[node.NodeID] {
			alreadyDetached := false
			for _, d := range node.DetachedComments {
				if d.Pos == c.Pos && d.End == c.End {
					alreadyDetached = true
					break
				}
			}
			if alreadyDetached {
				continue
			}
		}
		if c.HasLeadingNewLine {
			w.WriteLine()
		}
		w.WriteLiteral(r.slice(c))
		if c.Kind == ast.CommentLine || c.HasTrailingNewLine {
			w.WriteLine()
		} else {
			w.Write(" ")
		}
	}
}

// EmitTrailing writes node's trailing comments to w, each preceded by a
// single space and followed by nothing (the caller decides whether a
// newline is needed next).
func (r *CommentRouter) EmitTrailing(w *Writer, node *ast.Node) {
	if node == nil {
		return
	}
	for _, c := range node.TrailingComments {
		if !r.survives(c) {
			continue
		}
		w.Write(" ")
		w.WriteLiteral(r.slice(c))
	}
}
