package locale

import (
	"context"
	"testing"
)

func TestParseLang(t *testing.T) {
	tests := map[string]string{
		"":                    EN,
		"en":                  EN,
		"SW":                  SW,
		"sw-KE,sw;q=0.9":      SW,
		"kiswahili":           SW,
		"fr":                  EN,
		" en-US ":             EN,
		"fr-FR, sw;q=0.8":     SW,
		"sw;q=0.2, en;q=0.9":  EN,
		"en;q=0, sw-KE;q=0.5": SW,
		"de, fr;q=0.7":        EN,
	}
	for in, want := range tests {
		if got := ParseLang(in); got != want {
			t.Errorf("ParseLang(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTranslate(t *testing.T) {
	ctx := SetLocaleToContext(context.Background(), SW)
	if got := T(ctx, MsgAccessDenied); got != "Ufikiaji umekataliwa" {
		t.Errorf("unexpected sw text %q", got)
	}
	if got := Translate("xx", MsgAccessDenied); got != "Access denied" {
		t.Errorf("expected english fallback, got %q", got)
	}
	if got := Translate(EN, "unknown_key"); got != "unknown_key" {
		t.Errorf("expected key fallback, got %q", got)
	}
}
