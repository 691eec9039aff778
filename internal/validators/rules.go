package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule valida um valor de campo; retorna mensagem vazia quando passa.
type Rule func(value string) string

// FieldError aponta o primeiro erro de um campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Field struct {
	Name  string
	Value string
	Rules []Rule
}

// Validate avalia os campos na ordem dada e devolve, por campo, apenas a
// primeira regra que falhou.
func Validate(fields ...Field) []FieldError {
	var errs []FieldError
	for _, f := range fields {
		for _, rule := range f.Rules {
			if msg := rule(strings.TrimSpace(f.Value)); msg != "" {
				errs = append(errs, FieldError{Field: f.Name, Message: msg})
				break
			}
		}
	}
	return errs
}

func Required() Rule {
	return func(v string) string {
		if v == "" {
			return "campo obrigatório"
		}
		return ""
	}
}

func MinLen(n int) Rule {
	return func(v string) string {
		if v != "" && utf8.RuneCountInString(v) < n {
			return fmt.Sprintf("mínimo de %d caracteres", n)
		}
		return ""
	}
}

func MaxLen(n int) Rule {
	return func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return fmt.Sprintf("máximo de %d caracteres", n)
		}
		return ""
	}
}

func Pattern(re *regexp.Regexp, msg string) Rule {
	return func(v string) string {
		if v != "" && !re.MatchString(v) {
			return msg
		}
		return ""
	}
}

func CPF() Rule {
	return func(v string) string {
		if v != "" && !IsCPFValid(v) {
			return "CPF inválido"
		}
		return ""
	}
}

func Phone() Rule {
	return func(v string) string {
		if v != "" && !IsPhoneValid(v) {
			return "telefone inválido"
		}
		return ""
	}
}

func Email() Rule {
	return func(v string) string {
		if v != "" && !IsEmailValid(v) {
			return "e-mail inválido"
		}
		return ""
	}
}
