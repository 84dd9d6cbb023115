package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/scsslint/internal/colors"
	"github.com/yacobolo/scsslint/internal/lint"
	"github.com/yacobolo/scsslint/internal/scss"
)

func run(rule lint.Rule, root *scss.Node) []string {
	findings := lint.New(nil, rule).Run(root)
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

func runSource(t *testing.T, rule lint.Rule, src string) []string {
	t.Helper()
	root, err := scss.ParseString(src)
	require.NoError(t, err)
	return run(rule, root)
}

func keywordMessage(word, hex string) string {
	return fmt.Sprintf("Color `%s` should be written in hexadecimal form as `%s`", word, hex)
}

func literalMessage(color string) string {
	return fmt.Sprintf("Color literals like `%s` should only be used in variable declarations; "+
		"they should be referred to via variable everywhere else.", color)
}

func deprecatedMessage(name, function string) string {
	return fmt.Sprintf("The variable `%s` is deprecated. Use the `%s` function instead.", name, function)
}

func TestColorKeywords_EveryKeyword(t *testing.T) {
	rule := NewColorKeywordsRule()

	for _, word := range colors.Keywords() {
		hex, ok := colors.Lookup(word)
		require.True(t, ok)

		bare := scss.Sheet(scss.Decl("color", scss.Color(word)))
		assert.Equal(t, []string{keywordMessage(word, hex)}, run(rule, bare), word)

		wrapped := scss.Sheet(scss.Decl("color", scss.Call("color", scss.Color(word))))
		assert.Empty(t, run(rule, wrapped), word)
	}
}

func TestColorKeywords_Source(t *testing.T) {
	rule := NewColorKeywordsRule()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"property value", "a { color: red; }", []string{keywordMessage("red", "#f00")}},
		{"case preserved in message", "a { color: RED; }", []string{keywordMessage("RED", "#f00")}},
		{"color() argument", "a { color: color(red); }", nil},
		{"other function argument", "a { color: rgba(red, 0.5); }", []string{keywordMessage("red", "#f00")}},
		{"shorthand", "a { border: 1px solid navy; }", []string{keywordMessage("navy", "#000080")}},
		{"hex is not a keyword", "a { color: #ff0000; }", nil},
		{"variable declaration", "$accent: teal;", []string{keywordMessage("teal", "#008080")}},
		{"quoted string", `a { content: "red car"; }`, nil},
		{"unquoted custom property", ":root { --x: red car; }", []string{keywordMessage("red", "#f00")}},
		{"quoted part of custom property", `:root { --x: blue "red"; }`, []string{keywordMessage("blue", "#00f")}},
		{"whole words only", ":root { --x: orangered reddish; }", []string{keywordMessage("orangered", "#ff4500")}},
		{"mixin argument", "@include button(white);", []string{keywordMessage("white", "#fff")}},
		{"comments ignored", "// red\na { /* blue */ color: #000; }", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runSource(t, rule, tt.src)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorKeywords_TrailingPunctuationInRaw(t *testing.T) {
	red := &scss.Node{Kind: scss.KindColorValue, Raw: "red)", Value: "red"}
	root := scss.Sheet(scss.Decl("color", scss.New(scss.KindLiteral).Append(red)))

	assert.Equal(t, []string{keywordMessage("red", "#f00")}, run(NewColorKeywordsRule(), root))
}

func TestColorKeywords_FixedDepthContext(t *testing.T) {
	// A keyword nested below the first level of color() is still flagged.
	root := scss.Sheet(scss.Decl("color",
		scss.Call("color", scss.List(" ", scss.Color("red"), scss.Number("1")))))

	assert.Equal(t, []string{keywordMessage("red", "#f00")}, run(NewColorKeywordsRule(), root))
}

func TestColorLiterals_Hex(t *testing.T) {
	rule := NewColorLiteralsRule()

	for _, hex := range []string{"#fff", "#123456", "#ABCDEF"} {
		t.Run(hex, func(t *testing.T) {
			outside := fmt.Sprintf("a { color: %s; }", hex)
			assert.Equal(t, []string{literalMessage(hex)}, runSource(t, rule, outside))

			declared := fmt.Sprintf("$token: %s;", hex)
			assert.Empty(t, runSource(t, rule, declared))

			wrapped := fmt.Sprintf("a { color: color(%s); }", hex)
			assert.Empty(t, runSource(t, rule, wrapped))
		})
	}
}

func TestColorLiterals_Source(t *testing.T) {
	rule := NewColorLiteralsRule()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"keyword outside declaration", "a { color: red; }", []string{literalMessage("red")}},
		{"keyword in declaration", "$brand: red;", nil},
		{"list inside declaration", "$pair: #fff #000;", []string{literalMessage("#fff"), literalMessage("#000")}},
		{"variable reference", "a { color: $brand; }", nil},
		{"function argument", "a { background: darken(#333, 10%); }", []string{literalMessage("#333")}},
		{"quoted string", `a { content: "red car"; }`, nil},
		{"unquoted custom property", ":root { --accent: #fff red solid; }", []string{literalMessage("#fff"), literalMessage("red")}},
		{"four digit hex run", "a { color: #abcd; }", []string{literalMessage("#abcd")}},
		{"hex run too short", "a { color: #ab; }", nil},
		{"hex run too long", "a { color: #abcdef01; }", nil},
		{"not a color", "a { border-style: solid; }", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runSource(t, rule, tt.src)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorLiterals_StringInsideColorCall(t *testing.T) {
	root := scss.Sheet(scss.Decl("color", scss.Call("color", scss.Ident("red blue"))))
	assert.Empty(t, run(NewColorLiteralsRule(), root))

	root = scss.Sheet(scss.Decl("color", scss.Call("mix", scss.Ident("red blue"))))
	assert.Equal(t, []string{literalMessage("red"), literalMessage("blue")}, run(NewColorLiteralsRule(), root))
}

func TestColorLiterals_ExtractsFromRaw(t *testing.T) {
	hex := &scss.Node{Kind: scss.KindColorValue, Raw: "#fff)", Value: "#fff"}
	root := scss.Sheet(scss.Decl("color", scss.New(scss.KindLiteral).Append(hex)))

	assert.Equal(t, []string{literalMessage("#fff")}, run(NewColorLiteralsRule(), root))
}

func TestDeprecatedVariables(t *testing.T) {
	rule := NewDeprecatedVariablesRule()

	tests := []struct {
		name     string
		variable string
		want     []string
	}{
		{"brand color", "next-blue", []string{deprecatedMessage("next-blue", "color()")}},
		{"another brand color", "next-slate", []string{deprecatedMessage("next-slate", "color()")}},
		{"legacy shadow", "default_box_shadow", []string{deprecatedMessage("default_box_shadow", "shadow()")}},
		{"next shadow", "next-box-shadow-default", []string{deprecatedMessage("next-box-shadow-default", "shadow()")}},
		{"radius before border", "next-border-radius-default", []string{deprecatedMessage("next-border-radius-default", "border-radius()")}},
		{"border family", "next-border-top", []string{deprecatedMessage("next-border-top", "border()")}},
		{"unanchored match", "theme-next-red-dark", []string{deprecatedMessage("theme-next-red-dark", "color()")}},
		{"non-matching", "brand-blue", nil},
		{"unknown brand color", "next-magenta", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := run(rule, scss.Sheet(scss.Decl("color", scss.Variable(tt.variable))))
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeprecatedVariables_DeclarationAndValue(t *testing.T) {
	rule := NewDeprecatedVariablesRule()

	got := runSource(t, rule, "$next-blue-legacy: $next-red;")
	assert.Equal(t, []string{
		deprecatedMessage("next-blue-legacy", "color()"),
		deprecatedMessage("next-red", "color()"),
	}, got)

	got = runSource(t, rule, "$legacy: $next-red;")
	assert.Equal(t, []string{deprecatedMessage("next-red", "color()")}, got)
}

func TestDeprecatedVariables_Source(t *testing.T) {
	src := `.card {
  box-shadow: $default_box_shadow;
  border: $next-border;
  color: darken($next-green, 10%);
  padding: $spacing;
}
@include panel($next-border-radius-default);
`
	got := runSource(t, NewDeprecatedVariablesRule(), src)
	assert.Equal(t, []string{
		deprecatedMessage("default_box_shadow", "shadow()"),
		deprecatedMessage("next-border", "border()"),
		deprecatedMessage("next-green", "color()"),
		deprecatedMessage("next-border-radius-default", "border-radius()"),
	}, got)
}

func TestAllRulesTogether(t *testing.T) {
	root, err := scss.ParseString("$next-blue: navy;\na { color: $next-blue; background: white; }\n")
	require.NoError(t, err)

	findings := lint.New(nil, All()...).Run(root)
	var got []string
	for _, f := range findings {
		got = append(got, fmt.Sprintf("%d:%d %s", f.Pos().Line, f.Pos().Column, f.Rule))
	}
	assert.Equal(t, []string{
		"1:1 deprecated-variables",
		"1:13 color-keywords-in-function-call",
		"2:12 deprecated-variables",
		"2:36 color-keywords-in-function-call",
		"2:36 color-literals-in-variable",
	}, got)
}

func positions(t *testing.T, src string) []string {
	t.Helper()
	root, err := scss.ParseString(src)
	require.NoError(t, err)

	var got []string
	for _, f := range lint.New(nil, All()...).Run(root) {
		got = append(got, fmt.Sprintf("%d:%d %s", f.Pos().Line, f.Pos().Column, f.Rule))
	}
	return got
}

func TestAllRules_Interpolation(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"value position", "a { width: calc(100% - #{$next-border}); }", []string{"1:26 deprecated-variables"}},
		{"quoted string", `a { content: "#{$next-red}"; }`, []string{"1:17 deprecated-variables"}},
		{"custom property", ":root { --accent: #{$next-red}; }", []string{"1:21 deprecated-variables"}},
		{"selector", ".btn-#{$next-red} { x: y; }", []string{"1:8 deprecated-variables"}},
		{"property name", "a { #{$next-red}-prop: 1px; }", []string{"1:7 deprecated-variables"}},
		{"keyword in quoted string", `a { content: "x #{red} y"; }`, []string{
			"1:19 color-keywords-in-function-call",
			"1:19 color-literals-in-variable",
		}},
		{"color call in custom property", ":root { --accent: #{color(red)}; }", nil},
		{"quoted text around interpolation", `a { content: "red #{$ok} blue"; }`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(t, tt.src))
		})
	}
}

func TestAllRules_AtRulePreludes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"mixin default", "@mixin m($c: $next-red) { x: y; }", []string{"1:14 deprecated-variables"}},
		{"function default", "@function f($c: red) { @return $c; }", []string{
			"1:17 color-keywords-in-function-call",
			"1:17 color-literals-in-variable",
		}},
		{"media feature", "@media (min-width: $next-border) { }", []string{"1:20 deprecated-variables"}},
		{"bare parameter is a binding", "@mixin m($next-red) { x: y; }", nil},
		{"each binding", "@each $next-red in a, b { x: y; }", nil},
		{"for binding", "@for $next-red from 1 through 3 { }", nil},
		{"each list is still checked", "@each $c in $next-red, b { }", []string{"1:13 deprecated-variables"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, positions(t, tt.src))
		})
	}
}

func TestSelect(t *testing.T) {
	all, err := Select(nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, []string{
		"color-keywords-in-function-call",
		"color-literals-in-variable",
		"deprecated-variables",
	}, Names())

	only, err := Select([]string{"deprecated-variables"}, nil)
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "deprecated-variables", only[0].Name())

	rest, err := Select(nil, []string{"color-keywords-in-function-call"})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, "color-literals-in-variable", rest[0].Name())

	none, err := Select([]string{"deprecated-variables"}, []string{"deprecated-variables"})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = Select([]string{"bogus"}, []string{"also-bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown rule(s) bogus, also-bogus")
	assert.Contains(t, err.Error(), "available: color-keywords-in-function-call")
}

func TestRuleDescriptions(t *testing.T) {
	for _, r := range All() {
		assert.NotEmpty(t, r.Description(), r.Name())
	}
}
