// Package parser locates fenced code blocks in the input using the
// goldmark markdown parser, reporting byte-accurate source ranges that
// cover the fences themselves.
package parser

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Block is one fenced code block found in the source.
type Block struct {
	Start    int    // byte offset of the opening fence line
	End      int    // byte offset just past the closing fence line
	Language string // info-string language tag, lowercased ("" if none)
	Code     string // interior of the block, fences excluded
}

// IsDiagram reports whether the block is a diagram description rather
// than code.
func (b Block) IsDiagram() bool {
	return b.Language == "mermaid"
}

// Blocks parses source and returns every fenced code block in order of
// appearance.
func Blocks(source []byte) []Block {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := strings.ToLower(string(fcb.Language(source)))

		lines := fcb.Lines()
		var contentStart, contentStop, start int
		switch {
		case lines.Len() > 0:
			contentStart = lines.At(0).Start
			contentStop = lines.At(lines.Len() - 1).Stop
			// The opening fence is the line before the first content
			// line.
			start = prevLineStart(source, lineStart(source, contentStart))
		case fcb.Info != nil:
			// Empty block: the info string sits on the fence line
			// itself.
			contentStart = fcb.Info.Segment.Stop
			contentStop = contentStart
			start = lineStart(source, contentStart)
		default:
			// Empty block with no info string: nothing to anchor on.
			return ast.WalkSkipChildren, nil
		}

		end := fenceLineEnd(source, contentStop)

		blocks = append(blocks, Block{
			Start:    start,
			End:      end,
			Language: lang,
			Code:     string(source[contentStart:contentStop]),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// lineStart returns the offset of the first byte of the line holding
// pos.
func lineStart(source []byte, pos int) int {
	if pos > len(source) {
		pos = len(source)
	}
	i := bytes.LastIndexByte(source[:pos], '\n')
	return i + 1
}

// prevLineStart returns the start of the line before the line starting
// at pos.
func prevLineStart(source []byte, pos int) int {
	if pos == 0 {
		return 0
	}
	return lineStart(source, pos-1)
}

// fenceLineEnd walks forward from the last content byte to the end of
// the closing fence line, excluding its newline so the line break
// survives the replacement. An unterminated block runs to the end of
// input.
func fenceLineEnd(source []byte, contentStop int) int {
	rest := source[contentStop:]
	fence := bytes.Index(rest, []byte("```"))
	if fence < 0 {
		return len(source)
	}
	nl := bytes.IndexByte(rest[fence:], '\n')
	if nl < 0 {
		return len(source)
	}
	return contentStop + fence + nl
}
