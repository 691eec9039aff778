package validators

// IsPhoneValid aceita exatamente 10 ou 11 dígitos após remover a
// formatação (DDD + fixo ou celular).
func IsPhoneValid(phone string) bool {
	n := len(OnlyDigits(phone))
	return n == 10 || n == 11
}
