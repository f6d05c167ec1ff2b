package validators

import "testing"

func TestIsEmailSyntaxValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"budi@example.com", true},
		{"budi.santoso@mail.co.id", true},
		{"", false},
		{"budi", false},
		{"budi@localhost", false},
		{"Budi <budi@example.com>", false},
		{"budi@", false},
	}
	for _, tt := range tests {
		if got := IsEmailSyntaxValid(tt.email); got != tt.want {
			t.Errorf("IsEmailSyntaxValid(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, email := range []string{"", "budi", "budi@"} {
		if IsEmailDomainValid(email) {
			t.Errorf("IsEmailDomainValid(%q) = true", email)
		}
	}
}
