package envblock

import (
	"testing"
	"unicode/utf16"

	"github.com/google/go-cmp/cmp"
)

// units encodes s verbatim, including any embedded NULs.
func units(s string) Block {
	return Block(utf16.Encode([]rune(s)))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  []Entry
	}{
		{
			name:  "two entries",
			block: units("A=1\x00B=two\x00\x00"),
			want:  []Entry{{"A", "1"}, {"B", "two"}},
		},
		{
			name:  "empty name passes through",
			block: units("=orphan\x00NAME=val\x00\x00"),
			want:  []Entry{{"", "orphan"}, {"NAME", "val"}},
		},
		{
			name:  "single null",
			block: units("\x00"),
			want:  nil,
		},
		{
			name:  "double null",
			block: units("\x00\x00"),
			want:  nil,
		},
		{
			name:  "empty view",
			block: Block{},
			want:  nil,
		},
		{
			name:  "entry without equals is dropped",
			block: units("A=1\x00RESERVED\x00B=2\x00\x00"),
			want:  []Entry{{"A", "1"}, {"B", "2"}},
		},
		{
			name:  "only first equals splits",
			block: units("=C:=C:\\Windows\x00OPTS=a=b=c\x00\x00"),
			want:  []Entry{{"", "C:=C:\\Windows"}, {"OPTS", "a=b=c"}},
		},
		{
			name:  "empty value",
			block: units("EMPTY=\x00\x00"),
			want:  []Entry{{"EMPTY", ""}},
		},
		{
			name:  "non-ascii text",
			block: units("GRÜSSE=こんにちは\x00EMOJI=🚀\x00\x00"),
			want:  []Entry{{"GRÜSSE", "こんにちは"}, {"EMOJI", "🚀"}},
		},
		{
			name:  "stops at first double null",
			block: units("A=1\x00\x00B=2\x00\x00"),
			want:  []Entry{{"A", "1"}},
		},
		{
			name:  "leading empty entry does not end the block",
			block: units("\x00X=1\x00\x00"),
			want:  []Entry{{"X", "1"}},
		},
		{
			name:  "missing final terminator",
			block: units("A=1\x00B=2\x00"),
			want:  []Entry{{"A", "1"}, {"B", "2"}},
		},
		{
			name:  "unterminated trailing entry is dropped",
			block: units("A=1\x00B=2"),
			want:  []Entry{{"A", "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.block)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	vars := []string{
		"ALLUSERSPROFILE=C:\\ProgramData",
		"Path=C:\\Windows\\system32;C:\\Windows",
		"PATHEXT=.COM;.EXE;.BAT;.CMD",
		"USERNAME=builder",
		"EQ=x=y",
	}

	got := Encode(vars...).Entries()
	if len(got) != len(vars) {
		t.Fatalf("got %d entries, want %d", len(got), len(vars))
	}
	for i, e := range got {
		if e.String() != vars[i] {
			t.Errorf("entry %d = %q, want %q", i, e.String(), vars[i])
		}
	}
}

func TestParse_DoesNotAliasBlock(t *testing.T) {
	b := Encode("KEY=value")
	entries := Parse(b)

	for i := range b {
		b[i] = 'x'
	}

	if entries[0].Name != "KEY" || entries[0].Value != "value" {
		t.Errorf("entry changed after block was overwritten: %+v", entries[0])
	}
}

func TestEncode(t *testing.T) {
	if diff := cmp.Diff(units("\x00"), Encode()); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(units("A=1\x00B=two\x00\x00"), Encode("A=1", "B=two")); diff != "" {
		t.Errorf("Encode(A, B) mismatch (-want +got):\n%s", diff)
	}
}
