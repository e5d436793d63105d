package language

import "testing"

func TestAll(t *testing.T) {
	langs := All()
	if len(langs) != 8 {
		t.Fatalf("expected 8 languages, got %d", len(langs))
	}
	if langs[0].Tag != Default {
		t.Errorf("expected first language %q, got %q", Default, langs[0].Tag)
	}

	// Mutating the copy must not leak into the package table.
	langs[0].Tag = "cobol"
	if All()[0].Tag != Default {
		t.Error("All returned a shared slice")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "tag", input: "python", want: "python", wantOK: true},
		{name: "label", input: "JavaScript", want: "javascript", wantOK: true},
		{name: "upper case tag", input: "GO", want: "go", wantOK: true},
		{name: "symbols", input: "c++", want: "c++", wantOK: true},
		{name: "label with symbol", input: "C#", want: "c#", wantOK: true},
		{name: "surrounding space", input: "  ruby ", want: "ruby", wantOK: true},
		{name: "unknown", input: "cobol", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got.Tag != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.input, got.Tag, tt.want)
			}
		})
	}
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "main.go", want: "go", wantOK: true},
		{path: "/src/app/Main.java", want: "java", wantOK: true},
		{path: "lib.CPP", want: "c++", wantOK: true},
		{path: "Program.cs", want: "c#", wantOK: true},
		{path: "index.ts", want: "typescript", wantOK: true},
		{path: "notes.txt", wantOK: false},
		{path: "Makefile", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := FromExtension(tt.path)
		if ok != tt.wantOK {
			t.Errorf("FromExtension(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			continue
		}
		if ok && got.Tag != tt.want {
			t.Errorf("FromExtension(%q) = %q, want %q", tt.path, got.Tag, tt.want)
		}
	}
}

func TestAcceptList(t *testing.T) {
	want := ".py,.js,.ts,.java,.cpp,.cs,.go,.rb,.txt"
	if got := AcceptList(); got != want {
		t.Errorf("AcceptList() = %q, want %q", got, want)
	}
}
