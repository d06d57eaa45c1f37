package cover

import "testing"

func TestStyler_URL(t *testing.T) {
	s := NewStyler("https://bib.example.org/sites/default/files/", "https://bib.example.org/no-cover.png")

	for _, tc := range []struct {
		name, path, style, want string
	}{
		{"thumbnail", "covers/54871910.jpg", "65_x", "https://bib.example.org/sites/default/files/styles/65_x/public/covers/54871910.jpg"},
		{"leading slash", "/covers/54871910.jpg", "100_x", "https://bib.example.org/sites/default/files/styles/100_x/public/covers/54871910.jpg"},
		{"unknown style", "covers/54871910.jpg", "huge", "https://bib.example.org/sites/default/files/covers/54871910.jpg"},
		{"absolute", "https://cdn.example.org/c/1.jpg", "65_x", "https://cdn.example.org/c/1.jpg"},
		{"missing", "", "65_x", "https://bib.example.org/no-cover.png"},
		{"blank", "   ", "65_x", "https://bib.example.org/no-cover.png"},
	} {
		if got := s.URL(tc.path, tc.style); got != tc.want {
			t.Errorf("%s: URL = %q, want %q", tc.name, got, tc.want)
		}
	}
}
