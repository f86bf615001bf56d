// Package michelson builds the Michelson literals passed to tezos-client's
// --init and --arg flags.
package michelson

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/parthshah1/tzc/config"
)

// Node is a Michelson data literal.
type Node interface {
	render(b *strings.Builder, inSeq bool)
}

// String is a quoted string literal.
type String string

// Int is a natural or integer literal.
type Int int64

// Bytes is a 0x-prefixed bytes literal.
type Bytes []byte

// Bool renders True or False.
type Bool bool

// Pair is the binary Pair constructor.
type Pair struct {
	Left, Right Node
}

// Elt is a single map binding.
type Elt struct {
	Key, Value Node
}

// Seq is a list, set or map literal.
type Seq []Node

// Unit renders Unit.
type Unit struct{}

func (s String) render(b *strings.Builder, _ bool) {
	b.WriteByte('"')
	for _, r := range string(s) {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
}

func (i Int) render(b *strings.Builder, _ bool) {
	b.WriteString(strconv.FormatInt(int64(i), 10))
}

func (x Bytes) render(b *strings.Builder, _ bool) {
	b.WriteString(hexutil.Encode(x))
}

func (v Bool) render(b *strings.Builder, _ bool) {
	if v {
		b.WriteString("True")
	} else {
		b.WriteString("False")
	}
}

func (Unit) render(b *strings.Builder, _ bool) {
	b.WriteString("Unit")
}

// A Pair directly inside a sequence is written without parentheses.
func (p Pair) render(b *strings.Builder, inSeq bool) {
	if !inSeq {
		b.WriteByte('(')
	}
	b.WriteString("Pair ")
	p.Left.render(b, false)
	b.WriteByte(' ')
	p.Right.render(b, false)
	if !inSeq {
		b.WriteByte(')')
	}
}

func (e Elt) render(b *strings.Builder, _ bool) {
	b.WriteString("Elt ")
	e.Key.render(b, false)
	b.WriteByte(' ')
	e.Value.render(b, false)
}

func (s Seq) render(b *strings.Builder, _ bool) {
	b.WriteByte('{')
	for i, n := range s {
		if i > 0 {
			b.WriteString("; ")
		}
		n.render(b, true)
	}
	b.WriteByte('}')
}

// Render serializes n.
func Render(n Node) string {
	var b strings.Builder
	n.render(&b, false)
	out := b.String()

	config.AssertAlways(balanced(out), "rendered michelson literal has balanced brackets", map[string]any{
		"literal": out,
	})
	return out
}

// balanced reports whether every ( and { outside string literals is closed
// by its matching bracket.
func balanced(s string) bool {
	var stack []byte
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '(', '{':
			stack = append(stack, c)
		case ')', '}':
			open := byte('(')
			if c == '}' {
				open = '{'
			}
			if len(stack) == 0 || stack[len(stack)-1] != open {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0 && !inString
}

// P nests values into right-combed pairs: P(a, b, c) is (Pair a (Pair b c)).
func P(first Node, rest ...Node) Node {
	if len(rest) == 0 {
		return first
	}
	return Pair{Left: first, Right: P(rest[0], rest[1:]...)}
}

// HexEncode returns 0x followed by the lowercase hex of the UTF-8 bytes of s.
func HexEncode(s string) string {
	return hexutil.Encode([]byte(s))
}
