package validators

import "strings"

// OnlyDigits descarta tudo que não for dígito.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCPFValid aplica o algoritmo padrão dos dois dígitos verificadores.
// Sequências com todos os dígitos iguais são sempre rejeitadas.
func IsCPFValid(cpf string) bool {
	cpf = OnlyDigits(cpf)
	if len(cpf) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if cpfCheckDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	if cpfCheckDigit(cpf, 10) != int(cpf[10]-'0') {
		return false
	}

	return true
}

// cpfCheckDigit calcula o dígito verificador sobre os primeiros n dígitos
// com pesos n+1..2.
func cpfCheckDigit(cpf string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(cpf[i]-'0') * (n + 1 - i)
	}

	d := (sum * 10) % 11
	if d == 10 {
		d = 0
	}
	return d
}
