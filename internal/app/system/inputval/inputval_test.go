package inputval

import "testing"

func TestIsValidEmail_Accepts(t *testing.T) {
	for _, email := range []string{
		"suporte@empresa.com.br",
		"ti.redes@empresa.com.br",
		"noc+alertas@example.com",
		"admin@sub.dominio.example.org",
		"a@b.co",
		" ti@empresa.com.br ",
		"operador@intranet", // single-label hosts are common on internal networks
	} {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
}

func TestIsValidEmail_Rejects(t *testing.T) {
	for _, email := range []string{
		"",
		" \t ",
		"suporte",
		"suporte@",
		"@empresa.com.br",
		".suporte@empresa.com",
		"suporte.@empresa.com",
		"su..porte@empresa.com",
		"suporte@.empresa.com",
		"suporte@empresa..com",
		"Suporte TI <suporte@empresa.com>",
		"suporte @empresa.com",
		"suporte@empresa .com",
	} {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}
