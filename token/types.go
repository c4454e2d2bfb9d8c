package token

import (
	"fmt"
	"strings"
)

type TokenType int

const (
	THeader TokenType = iota
	TWS
	TNewline
	TNum
	TText
	TObject
	TNumber
	TBoolean
	TString
	TEnum
	TArray
	TFixed
	TFixedType
	TMembers
	TProperties
	TDataStructures
	TLParen
	TRParen
	TLBracket
	TRBracket
	TComma
	TDash
	TPlus
	TIndent
	TDedent
	TEndMarker
)

func (t TokenType) String() string {
	return map[TokenType]string{
		THeader:         "THeader",
		TWS:             "TWS",
		TNewline:        "TNewline",
		TNum:            "TNum",
		TText:           "TText",
		TObject:         "TObject",
		TNumber:         "TNumber",
		TBoolean:        "TBoolean",
		TString:         "TString",
		TEnum:           "TEnum",
		TArray:          "TArray",
		TFixed:          "TFixed",
		TFixedType:      "TFixedType",
		TMembers:        "TMembers",
		TProperties:     "TProperties",
		TDataStructures: "TDataStructures",
		TLParen:         "TLParen",
		TRParen:         "TRParen",
		TLBracket:       "TLBracket",
		TRBracket:       "TRBracket",
		TComma:          "TComma",
		TDash:           "TDash",
		TPlus:           "TPlus",
		TIndent:         "TIndent",
		TDedent:         "TDedent",
		TEndMarker:      "TEndMarker",
	}[t]
}

// IsTypeKeyword reports whether t names one of the reserved base types
// that may appear in a type annotation.
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case TObject, TNumber, TBoolean, TString, TEnum, TArray:
		return true
	default:
		return false
	}
}

// A Token is one lexical unit of a schema document. LineStart records
// whether the token is the first thing on its logical line; the
// indentation normalizer keys off it.
type Token struct {
	Type      TokenType
	Pos       *Pos
	Bytes     []byte
	LineStart bool
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TNewline:
		return "\\n"
	case TIndent, TDedent, TEndMarker:
		return strings.TrimPrefix(t.Type.String(), "T")
	default:
		return string(t.Bytes)
	}
}
