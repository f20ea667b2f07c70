package language

import "testing"

func TestFromCode(t *testing.T) {
	tests := []struct {
		code     string
		wantName string
		wantOK   bool
	}{
		{"en", "English", true},
		{"es", "Spanish", true},
		{"zh", "Chinese", true},
		{"auto", "Auto-detect", true},
		{"xx", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			lang, ok := FromCode(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("FromCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && lang.Name != tt.wantName {
				t.Errorf("FromCode(%q).Name = %q, want %q", tt.code, lang.Name, tt.wantName)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("auto"); got != "Auto-detect" {
		t.Errorf("DisplayName(auto) = %q, want Auto-detect", got)
	}
	if got := DisplayName("fr"); got != "French" {
		t.Errorf("DisplayName(fr) = %q, want French", got)
	}
	// unknown codes fall through unchanged
	if got := DisplayName("klingon"); got != "klingon" {
		t.Errorf("DisplayName(klingon) = %q, want klingon", got)
	}
}

func TestList(t *testing.T) {
	list := List()
	if len(list) == 0 {
		t.Fatal("List() should not be empty")
	}

	for _, lang := range list {
		if lang.Code == "" || lang.Name == "" {
			t.Errorf("language with empty code or name: %+v", lang)
		}
		if lang.Code == AutoCode {
			t.Error("List() must not include the auto sentinel")
		}
	}

	// mutating the returned slice must not affect the master list
	list[0].Name = "mutated"
	if fresh := List(); fresh[0].Name == "mutated" {
		t.Error("List() should return a copy")
	}
}
