package asm

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"slices"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/shyasm/isa"
)

// DefineMap maps macro names to their replacement text.
type DefineMap map[string]string

// ParseDefines reads alternating name and value words. A trailing name
// without a value is dropped; later names overwrite earlier ones.
func ParseDefines(body string) (defines DefineMap) {
	defines = DefineMap{}

	words := strings.Fields(body)
	for n := 0; n+1 < len(words); n += 2 {
		defines[words[n]] = words[n+1]
	}

	return
}

// isIdent matches the characters that may adjoin an identifier.
func isIdent(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// replaceWord replaces whole-identifier occurrences of name by value.
// Scanning resumes after each inserted value. An empty name matches nothing.
func replaceWord(text, name, value string) string {
	if len(name) == 0 {
		return text
	}

	var sb strings.Builder

	pos := 0
	for {
		n := strings.Index(text[pos:], name)
		if n < 0 {
			break
		}
		n += pos
		end := n + len(name)

		if (n == 0 || !isIdent(text[n-1])) && (end >= len(text) || !isIdent(text[end])) {
			sb.WriteString(text[pos:n])
			sb.WriteString(value)
			pos = end
		} else {
			sb.WriteString(text[pos : n+1])
			pos = n + 1
		}
	}
	sb.WriteString(text[pos:])

	return sb.String()
}

// Substitute applies every define to text, in name order. Empty names are
// skipped.
func (defines DefineMap) Substitute(text string) string {
	for _, name := range slices.Sorted(maps.Keys(defines)) {
		if len(name) == 0 {
			continue
		}
		text = replaceWord(text, name, defines[name])
	}
	return text
}

// Source is assembly text moving through the preprocessing passes. Each
// pass rewrites the text in place and returns the Source for chaining.
type Source struct {
	text    string
	defines DefineMap
}

// NewSource wraps assembly text.
func NewSource(text string) (src *Source) {
	src = &Source{text: text}
	return
}

func (src *Source) String() string {
	return src.text
}

// Defines returns the defines applied by ExpandDefines.
func (src *Source) Defines() DefineMap {
	return src.defines
}

// StripComments removes '//' comments up to the end of the line, and
// '/* */' comments inclusive. An unterminated comment runs to the end of
// the text.
func (src *Source) StripComments() *Source {
	text := src.text

	var sb strings.Builder
	sb.Grow(len(text))

	for n := 0; n < len(text); {
		switch {
		case strings.HasPrefix(text[n:], "//"):
			end := strings.IndexByte(text[n:], '\n')
			if end < 0 {
				n = len(text)
			} else {
				n += end
			}
		case strings.HasPrefix(text[n:], "/*"):
			end := strings.Index(text[n+2:], "*/")
			if end < 0 {
				n = len(text)
			} else {
				n += 2 + end + 2
			}
		default:
			sb.WriteByte(text[n])
			n++
		}
	}

	src.text = sb.String()
	return src
}

// rewrite applies fn to the DATA and CODE sections. The DEFINE section is
// never rewritten.
func (src *Source) rewrite(fn func(section string) string) {
	spans := sections(src.text)

	// Last section first, so earlier spans stay valid.
	for _, sp := range slices.Backward(spans) {
		if sp.id == SECTION_DEFINE {
			continue
		}
		section := fn(src.text[sp.start:sp.end])
		src.text = src.text[:sp.start] + section + src.text[sp.end:]
	}
}

// ExpandDefines builds the define map from the DEFINE section, layered over
// predefined, and substitutes it into the DATA and CODE sections.
func (src *Source) ExpandDefines(predefined DefineMap) *Source {
	defines := maps.Clone(predefined)
	if defines == nil {
		defines = DefineMap{}
	}

	body, ok := Section(src.text, SECTION_DEFINE)
	if ok {
		maps.Copy(defines, ParseDefines(body))
	}

	src.defines = defines
	if len(defines) == 0 {
		return src
	}

	src.rewrite(defines.Substitute)

	return src
}

// An expression never spans lines.
var reExpression = regexp.MustCompile(`\$\([^\$\n]*\)`)

// evaluate runs a Starlark integer expression. Numeric defines are
// predeclared.
func (src *Source) evaluate(expr string) (value uint32, err error) {
	thread := starlark.Thread{Name: "shyasm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for name, text := range src.defines {
		v, verr := lexElement(text).Uint32()
		if verr != nil {
			// Not every define is a number.
			continue
		}
		pred[name] = starlark.MakeUint(uint(v))
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrParseExpression{Expr: expr, Err: err}
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression{Expr: expr}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 > math.MaxUint32 || st_int64 < math.MinInt32 {
		err = ErrParseExpression{Expr: expr, Err: isa.ErrOverflow{
			Message: f("%v does not fit in 32 bits", expr),
		}}
		return
	}

	value = uint32(st_int64)
	return
}

// Evaluate replaces each $(expr) in the DATA and CODE sections with the
// hex value of the expression. On error the text is left unchanged.
func (src *Source) Evaluate() (_ *Source, err error) {
	saved := src.text

	src.rewrite(func(section string) string {
		return reExpression.ReplaceAllStringFunc(section, func(str string) string {
			if err != nil {
				return str
			}
			value, eerr := src.evaluate(str[2 : len(str)-1])
			if eerr != nil {
				err = eerr
				return str
			}
			return fmt.Sprintf("%#x", value)
		})
	})
	if err != nil {
		src.text = saved
		return
	}

	return src, nil
}
