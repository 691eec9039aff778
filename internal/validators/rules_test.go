package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("1133334444"))        // fixo com DDD
	assert.True(t, IsPhoneValid("11987654321"))       // celular com DDD
	assert.True(t, IsPhoneValid("(11) 98765-4321"))   // formatado
	assert.False(t, IsPhoneValid("987654321"))        // 9 dígitos
	assert.False(t, IsPhoneValid("119876543210"))     // 12 dígitos
	assert.False(t, IsPhoneValid(""))
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("ana@clinica.com.br"))
	assert.True(t, IsEmailValid("a@b.co"))
	assert.False(t, IsEmailValid("sem-arroba.com"))
	assert.False(t, IsEmailValid("a@b"))
	assert.False(t, IsEmailValid("a b@c.com"))
	assert.False(t, IsEmailValid(""))
}

func TestValidate_FirstFailurePerField(t *testing.T) {
	errs := Validate(
		Field{Name: "name", Value: "", Rules: []Rule{Required(), MinLen(3)}},
		Field{Name: "cpf", Value: "123", Rules: []Rule{Required(), CPF()}},
		Field{Name: "phone", Value: "11987654321", Rules: []Rule{Phone()}},
	)

	assert.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "campo obrigatório", errs[0].Message)
	assert.Equal(t, "cpf", errs[1].Field)
	assert.Equal(t, "CPF inválido", errs[1].Message)
}

func TestValidate_AllPass(t *testing.T) {
	errs := Validate(
		Field{Name: "name", Value: "Ana Clara", Rules: []Rule{Required(), MinLen(3), MaxLen(100)}},
		Field{Name: "cpf", Value: "529.982.247-25", Rules: []Rule{Required(), CPF()}},
	)

	assert.Empty(t, errs)
}

func TestValidate_OptionalFieldsSkipWhenEmpty(t *testing.T) {
	// regras além de Required não reclamam de valor vazio
	errs := Validate(
		Field{Name: "phone", Value: "", Rules: []Rule{Phone()}},
		Field{Name: "email", Value: "  ", Rules: []Rule{Email()}},
	)

	assert.Empty(t, errs)
}
