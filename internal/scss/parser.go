package scss

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/scsslint/internal/colors"
)

// At-rules whose prelude is a SassScript expression worth linting.
// Mixin and function signatures and media or supports queries have their
// own prelude handling.
var expressionAtRules = map[string]bool{
	"include": true,
	"if":      true,
	"else":    true,
	"each":    true,
	"for":     true,
	"while":   true,
	"return":  true,
	"warn":    true,
	"debug":   true,
	"error":   true,
}

// Loop at-rules bind their variables before this keyword.
var loopBindingEnd = map[string]string{
	"each": "in",
	"for":  "from",
}

// token is a lexer token with its byte span in the original source.
type token struct {
	tt    css.TokenType
	text  string
	start int
	end   int
}

// parser folds the css lexer's token stream into a Node tree. It never
// fails on unexpected input: tokens it has no use for are skipped.
type parser struct {
	src   string
	input string // src with "//" comments blanked, fed to the lexer
	toks  []token
	pos   int
	lines []int // byte offset of each line start
}

// Parse builds a syntax tree for SCSS source. The returned error is only
// set when the underlying reader fails.
func Parse(src []byte) (*Node, error) {
	p := &parser{src: string(src)}
	p.input = blankLineComments(p.src)
	p.lines = lineStarts(p.src)
	toks, err := p.lex(0, len(p.src))
	if err != nil {
		return nil, err
	}
	p.toks = toks

	root := &Node{Kind: KindStylesheet, Range: p.span(0, len(p.src))}
	root.Append(p.parseStatements(false)...)
	return root, nil
}

// ParseString is Parse for string input.
func ParseString(src string) (*Node, error) {
	return Parse([]byte(src))
}

// lex tokenizes src[start:end] without whitespace and comments. Token
// offsets are absolute.
func (p *parser) lex(start, end int) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(p.input[start:end]))
	var toks []token
	offset := start
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return toks, fmt.Errorf("tokenize stylesheet: %w", err)
			}
			return toks, nil
		}
		from := offset
		offset += len(data)
		if tt == css.WhitespaceToken || tt == css.CommentToken {
			continue
		}
		toks = append(toks, token{tt: tt, text: p.src[from:offset], start: from, end: offset})
	}
}

// parseStatements reads statements up to EOF or, when nested, up to and
// including the closing brace of the current block.
func (p *parser) parseStatements(nested bool) []*Node {
	var out []*Node
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		switch {
		case t.tt == css.SemicolonToken || t.tt == css.CDOToken || t.tt == css.CDCToken:
			p.pos++
		case t.tt == css.RightBraceToken:
			p.pos++
			if nested {
				return out
			}
		case t.tt == css.AtKeywordToken:
			out = append(out, p.parseAtRule())
		case p.isVariableAt(p.pos, len(p.toks)) && p.pos+2 < len(p.toks) && p.toks[p.pos+2].tt == css.ColonToken:
			out = append(out, p.parseVariableDeclaration())
		default:
			if n := p.parseRuleOrDeclaration(); n != nil {
				out = append(out, n)
			}
		}
	}
	return out
}

func (p *parser) parseVariableDeclaration() *Node {
	start := p.pos
	n := &Node{Kind: KindVariableDeclaration, Name: p.toks[start+1].text}

	valueStart := start + 3
	end := p.statementEnd(valueStart)
	valueEnd := end
	for valueEnd-2 >= valueStart && p.isFlagAt(valueEnd-2) {
		valueEnd -= 2
	}
	n.Append(p.parseList(valueStart, valueEnd))

	last := p.toks[start+2].end
	if end > valueStart {
		last = p.toks[end-1].end
	}
	n.Range = p.span(p.toks[start].start, last)

	p.pos = end
	if end < len(p.toks) && p.toks[end].tt == css.SemicolonToken {
		p.pos++
	}
	return n
}

func (p *parser) parseAtRule() *Node {
	start := p.pos
	kw := p.toks[start]
	n := &Node{Kind: KindAtRule, Name: strings.ToLower(strings.TrimPrefix(kw.text, "@"))}

	lo := start + 1
	end := p.statementEnd(lo)
	if end > lo {
		n.Value = strings.TrimSpace(p.src[p.toks[lo].start:p.toks[end-1].end])
	}

	switch {
	case n.Name == "mixin" || n.Name == "function":
		n.Append(p.parseParameters(lo, end)...)
	case n.Name == "media" || n.Name == "supports":
		n.Append(p.parseQuery(lo, end)...)
	case expressionAtRules[n.Name]:
		// Skip the bare mixin name of "@include foo;" and the "if" of "@else if".
		if lo < end && p.toks[lo].tt == css.IdentToken &&
			(n.Name == "include" || (n.Name == "else" && strings.EqualFold(p.toks[lo].text, "if"))) {
			lo++
		}
		if word, ok := loopBindingEnd[n.Name]; ok {
			if i := p.findIdent(lo, end, word); i >= 0 {
				lo = i + 1
			}
		}
		n.Append(p.parseList(lo, end))
	case end > lo:
		n.Append(p.interpolations(p.toks[lo].start, p.toks[end-1].end)...)
	}

	p.pos = end
	if end < len(p.toks) {
		switch p.toks[end].tt {
		case css.LeftBraceToken:
			p.pos = end + 1
			n.Append(p.parseStatements(true)...)
		case css.SemicolonToken:
			p.pos = end + 1
		}
	}
	n.Range = p.span(kw.start, p.toks[p.pos-1].end)
	return n
}

func (p *parser) parseRuleOrDeclaration() *Node {
	start := p.pos
	end := p.statementEnd(start)

	if end < len(p.toks) && p.toks[end].tt == css.LeftBraceToken {
		n := &Node{Kind: KindRuleSet}
		if end > start {
			n.Name = strings.TrimSpace(p.src[p.toks[start].start:p.toks[end].start])
			n.Append(p.interpolations(p.toks[start].start, p.toks[end].start)...)
		}
		p.pos = end + 1
		n.Append(p.parseStatements(true)...)
		n.Range = p.span(p.toks[start].start, p.toks[p.pos-1].end)
		return n
	}

	p.pos = end
	if end < len(p.toks) && p.toks[end].tt == css.SemicolonToken {
		p.pos++
	}
	if p.pos == start {
		// Unreachable in practice; guarantees progress.
		p.pos++
	}

	colon := -1
	for i := start; i < end; i++ {
		if p.toks[i].tt == css.ColonToken {
			colon = i
			break
		}
	}
	if colon <= start {
		return nil
	}

	n := &Node{Kind: KindDeclaration, Name: strings.TrimSpace(p.src[p.toks[start].start:p.toks[colon].start])}
	last := p.toks[colon].end
	if end > colon+1 {
		last = p.toks[end-1].end
	}
	n.Range = p.span(p.toks[start].start, last)
	n.Append(p.interpolations(p.toks[start].start, p.toks[colon].start)...)

	// Custom property values are kept as unparsed text.
	if strings.HasPrefix(n.Name, "--") {
		n.Append(p.rawValue(colon+1, end))
	} else {
		n.Append(p.parseList(colon+1, end))
	}
	return n
}

// parseList parses a comma separated expression in toks[lo:hi].
func (p *parser) parseList(lo, hi int) *Node {
	var items []*Node
	for _, part := range p.splitCommas(lo, hi) {
		if n := p.parseSpaceList(part[0], part[1]); n != nil {
			items = append(items, n)
		}
	}
	switch len(items) {
	case 0:
		return nil
	case 1:
		return items[0]
	}
	l := &Node{Kind: KindListExpression, Separator: ",", Range: p.span(p.toks[lo].start, p.toks[hi-1].end)}
	return l.Append(items...)
}

func (p *parser) parseSpaceList(lo, hi int) *Node {
	terms := p.parseTerms(lo, hi)
	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms[0]
	}
	l := &Node{Kind: KindListExpression, Separator: " ", Range: p.span(p.toks[lo].start, p.toks[hi-1].end)}
	return l.Append(terms...)
}

func (p *parser) parseTerms(lo, hi int) []*Node {
	var out []*Node
	for i := lo; i < hi; {
		t := p.toks[i]
		switch {
		case p.isVariableAt(i, hi):
			if i+2 < hi && p.toks[i+2].tt == css.ColonToken {
				// keyword argument: "$alpha: 0.5"
				i += 3
				continue
			}
			name := p.toks[i+1]
			out = append(out, &Node{
				Kind:  KindVariableReference,
				Name:  name.text,
				Raw:   p.src[t.start:name.end],
				Range: p.span(t.start, name.end),
			})
			i += 2

		case p.isInterpolationAt(i, hi):
			closeAt := min(p.closing(i+1), hi)
			n := &Node{Kind: KindInterpolation}
			n.Append(p.parseList(i+2, closeAt))
			n.Range = p.span(t.start, p.endOf(closeAt, hi))
			out = append(out, n)
			i = closeAt + 1

		case t.tt == css.FunctionToken:
			closeAt := min(p.closing(i), hi)
			n := &Node{Kind: KindFunctionCall, Name: strings.TrimSuffix(t.text, "(")}
			for _, arg := range p.splitCommas(i+1, closeAt) {
				n.Append(p.parseSpaceList(arg[0], arg[1]))
			}
			n.Range = p.span(t.start, p.endOf(closeAt, hi))
			out = append(out, n)
			i = closeAt + 1

		case t.tt == css.LeftParenthesisToken || t.tt == css.LeftBracketToken:
			closeAt := min(p.closing(i), hi)
			if inner := p.parseList(i+1, closeAt); inner != nil {
				out = append(out, inner)
			}
			i = closeAt + 1

		case t.tt == css.DelimToken && t.text == "!" && i+1 < hi && p.toks[i+1].tt == css.IdentToken:
			// !important, !default, !global
			i += 2

		default:
			if leaf := p.leaf(t); leaf != nil {
				out = append(out, leaf)
			}
			i++
		}
	}
	return out
}

// parseParameters returns the default values of a "name($a, $b: default)"
// signature in toks[lo:hi]. Parameter names are bindings, not references.
func (p *parser) parseParameters(lo, hi int) []*Node {
	open := lo
	if open < hi && p.toks[open].tt == css.IdentToken {
		open++ // "@mixin name ($a)"
	}
	if open >= hi || (p.toks[open].tt != css.FunctionToken && p.toks[open].tt != css.LeftParenthesisToken) {
		return nil
	}
	closeAt := min(p.closing(open), hi)
	var out []*Node
	for _, param := range p.splitCommas(open+1, closeAt) {
		from, to := param[0], param[1]
		if p.isVariableAt(from, to) && from+2 < to && p.toks[from+2].tt == css.ColonToken {
			if v := p.parseList(from+3, to); v != nil {
				out = append(out, v)
			}
		}
	}
	return out
}

// parseQuery collects the expressions of a media or supports query in
// toks[lo:hi]: the value of every "(feature: value)" and any variable or
// interpolation outside parentheses. Keywords like "screen" or "and" are
// not values.
func (p *parser) parseQuery(lo, hi int) []*Node {
	var out []*Node
	for i := lo; i < hi; {
		t := p.toks[i]
		switch {
		case t.tt == css.LeftParenthesisToken:
			closeAt := min(p.closing(i), hi)
			if colon := p.topLevel(css.ColonToken, i+1, closeAt); colon >= 0 {
				if v := p.parseList(colon+1, closeAt); v != nil {
					out = append(out, v)
				}
			} else {
				out = append(out, p.parseQuery(i+1, closeAt)...)
			}
			i = closeAt + 1
		case p.isVariableAt(i, hi):
			out = append(out, p.parseTerms(i, i+2)...)
			i += 2
		case p.isInterpolationAt(i, hi):
			closeAt := min(p.closing(i+1), hi)
			out = append(out, p.parseTerms(i, min(closeAt+1, hi))...)
			i = closeAt + 1
		case t.tt == css.FunctionToken:
			i = min(p.closing(i), hi) + 1
		default:
			i++
		}
	}
	return out
}

// leaf returns the token as a value wrapped in a Literal, or nil for
// operators and punctuation.
func (p *parser) leaf(t token) *Node {
	v := &Node{Raw: t.text, Value: t.text, Range: p.span(t.start, t.end)}
	switch t.tt {
	case css.IdentToken:
		v.Kind = KindStringValue
		if colors.IsKeyword(t.text) {
			v.Kind = KindColorValue
		}
	case css.HashToken:
		v.Kind = KindStringValue
		if colors.IsHex(t.text) {
			v.Kind = KindColorValue
		}
	case css.StringToken, css.BadStringToken:
		v.Kind = KindStringValue
		v.Quoted = true
		v.Value = unquote(t.text)
		v.Append(p.interpolations(t.start, t.end)...)
	case css.NumberToken, css.PercentageToken, css.DimensionToken:
		v.Kind = KindNumberValue
	case css.URLToken, css.BadURLToken:
		v.Kind = KindStringValue
		v.Append(p.interpolations(t.start, t.end)...)
	case css.CustomPropertyNameToken, css.UnicodeRangeToken:
		v.Kind = KindStringValue
	default:
		return nil
	}
	lit := &Node{Kind: KindLiteral, Raw: t.text, Range: v.Range}
	return lit.Append(v)
}

// rawValue returns toks[lo:hi] as a single unparsed string. Interpolations
// become children and are blanked out of Value, so text scans only see the
// literal parts.
func (p *parser) rawValue(lo, hi int) *Node {
	if lo >= hi {
		return nil
	}
	start, end := p.toks[lo].start, p.toks[hi-1].end
	text := p.src[start:end]
	spans := p.interpolationSpans(start, end)
	v := &Node{
		Kind:   KindStringValue,
		Raw:    text,
		Value:  blankSpans(text, start, spans),
		Quoted: text[0] == '"' || text[0] == '\'',
		Range:  p.span(start, end),
	}
	for _, sp := range spans {
		v.Append(p.interpolation(sp[0], sp[1]))
	}
	lit := &Node{Kind: KindLiteral, Raw: text, Range: v.Range}
	return lit.Append(v)
}

// interpolations parses every "#{...}" inside src[start:end], text the
// lexer did not split into tokens: strings, selectors, property names and
// raw values.
func (p *parser) interpolations(start, end int) []*Node {
	var out []*Node
	for _, sp := range p.interpolationSpans(start, end) {
		out = append(out, p.interpolation(sp[0], sp[1]))
	}
	return out
}

// interpolation re-lexes the expression inside the "#{...}" spanning
// src[start:end].
func (p *parser) interpolation(start, end int) *Node {
	n := &Node{Kind: KindInterpolation, Range: p.span(start, end)}
	toks, _ := p.lex(start+2, end-1)
	if len(toks) == 0 {
		return n
	}
	sub := &parser{src: p.src, input: p.input, lines: p.lines, toks: toks}
	return n.Append(sub.parseList(0, len(toks)))
}

// interpolationSpans returns the [start, end) offsets of each outermost
// "#{...}" in src[start:end]. An unclosed one is ignored, as is anything
// inside a "//" comment.
func (p *parser) interpolationSpans(start, end int) [][2]int {
	var spans [][2]int
	for i := start; i+1 < end; i++ {
		if p.input[i] != '#' || p.input[i+1] != '{' {
			continue
		}
		closeAt := matchBrace(p.input[:end], i+1)
		if closeAt < 0 {
			break
		}
		spans = append(spans, [2]int{i, closeAt + 1})
		i = closeAt
	}
	return spans
}

// matchBrace returns the index of the "}" closing the "{" at open, or -1.
func matchBrace(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		case '"', '\'':
			i = skipString(s, i)
		}
	}
	return -1
}

// blankSpans replaces the bytes of each span, given as absolute offsets,
// with spaces. base is the offset of text in the source.
func blankSpans(text string, base int, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, sp := range spans {
		for i := sp[0]; i < sp[1]; i++ {
			b[i-base] = ' '
		}
	}
	return string(b)
}

// statementEnd returns the index of the first ";" outside brackets, or of
// the first "{" or "}" that is not part of an interpolation. It returns
// len(toks) when the statement runs to EOF.
func (p *parser) statementEnd(from int) int {
	depth := 0
	for i := from; i < len(p.toks); i++ {
		switch p.toks[i].tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken:
			if depth > 0 {
				depth--
			}
		case css.DelimToken:
			if p.isInterpolationAt(i, len(p.toks)) {
				i = p.closing(i + 1)
			}
		case css.SemicolonToken:
			if depth == 0 {
				return i
			}
		case css.LeftBraceToken, css.RightBraceToken:
			return i
		}
	}
	return len(p.toks)
}

// splitCommas splits toks[lo:hi] on top-level commas.
func (p *parser) splitCommas(lo, hi int) [][2]int {
	if lo >= hi {
		return nil
	}
	var parts [][2]int
	depth, from := 0, lo
	for i := lo; i < hi; i++ {
		switch p.toks[i].tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case css.CommaToken:
			if depth == 0 {
				parts = append(parts, [2]int{from, i})
				from = i + 1
			}
		}
	}
	return append(parts, [2]int{from, hi})
}

// closing returns the index of the bracket closing the one at open, or
// len(toks) when it is never closed.
func (p *parser) closing(open int) int {
	depth := 0
	for i := open; i < len(p.toks); i++ {
		switch p.toks[i].tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(p.toks)
}

// endOf is the end offset of a construct closed at closeAt, falling back to
// the last token before hi when the bracket was never closed.
func (p *parser) endOf(closeAt, hi int) int {
	if closeAt < hi {
		return p.toks[closeAt].end
	}
	return p.toks[hi-1].end
}

// topLevel returns the index of the first token of type tt in toks[lo:hi]
// outside nested brackets, or -1.
func (p *parser) topLevel(tt css.TokenType, lo, hi int) int {
	depth := 0
	for i := lo; i < hi; i++ {
		switch p.toks[i].tt {
		case css.LeftParenthesisToken, css.FunctionToken, css.LeftBracketToken, css.LeftBraceToken:
			depth++
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		case tt:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// findIdent returns the index of the identifier word in toks[lo:hi], or -1.
// Variable names never match.
func (p *parser) findIdent(lo, hi int, word string) int {
	for i := lo; i < hi; i++ {
		if p.isVariableAt(i, hi) {
			i++
			continue
		}
		if p.toks[i].tt == css.IdentToken && strings.EqualFold(p.toks[i].text, word) {
			return i
		}
	}
	return -1
}

// isVariableAt reports a "$name" pair at i, both tokens before hi.
func (p *parser) isVariableAt(i, hi int) bool {
	if i+1 >= hi || i+1 >= len(p.toks) {
		return false
	}
	t, next := p.toks[i], p.toks[i+1]
	return t.tt == css.DelimToken && t.text == "$" && next.tt == css.IdentToken && t.end == next.start
}

// isInterpolationAt reports a "#{" pair at i.
func (p *parser) isInterpolationAt(i, hi int) bool {
	if i+1 >= hi || i+1 >= len(p.toks) {
		return false
	}
	t, next := p.toks[i], p.toks[i+1]
	return t.tt == css.DelimToken && t.text == "#" && next.tt == css.LeftBraceToken && t.end == next.start
}

// isFlagAt reports a "!default" style flag at i.
func (p *parser) isFlagAt(i int) bool {
	if i < 0 || i+1 >= len(p.toks) {
		return false
	}
	return p.toks[i].tt == css.DelimToken && p.toks[i].text == "!" && p.toks[i+1].tt == css.IdentToken
}

func (p *parser) span(start, end int) Range {
	return Range{Start: p.position(start), End: p.position(end)}
}

func (p *parser) position(offset int) Position {
	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > offset })
	return Position{Offset: offset, Line: line, Column: offset - p.lines[line-1] + 1}
}

func lineStarts(src string) []int {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func unquote(s string) string {
	if s == "" {
		return s
	}
	q := s[0]
	s = strings.TrimRight(s[1:], "\r\n\f")
	return strings.TrimSuffix(s, string(q))
}

// blankLineComments replaces "//" comments with spaces so the CSS lexer
// never sees them. Offsets are preserved. Strings, block comments and
// url(...) are left alone.
func blankLineComments(src string) string {
	b := []byte(src)
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == '"' || c == '\'':
			i = skipString(src, i)
		case c == '/' && i+1 < len(b) && b[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				return string(b)
			}
			i += end + 3
		case c == '/' && i+1 < len(b) && b[i+1] == '/':
			for ; i < len(b) && b[i] != '\n'; i++ {
				b[i] = ' '
			}
		case (c == 'u' || c == 'U') && isURLStart(src, i):
			if end := strings.IndexByte(src[i:], ')'); end >= 0 {
				i += end
			}
		}
	}
	return string(b)
}

// skipString returns the index of the quote closing the string opened at
// i, stopping at a newline like the CSS lexer does.
func skipString(s string, i int) int {
	q := s[i]
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case q, '\n':
			return j
		}
	}
	return len(s)
}

func isURLStart(src string, i int) bool {
	if i+4 > len(src) || !strings.EqualFold(src[i:i+4], "url(") {
		return false
	}
	return i == 0 || !isNameByte(src[i-1])
}

func isNameByte(c byte) bool {
	return c == '-' || c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
