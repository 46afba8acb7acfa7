package models

import "testing"

func TestModelOutput_Text(t *testing.T) {
	tests := []struct {
		name   string
		output *ModelOutput
		want   string
	}{
		{
			name:   "present text",
			output: &ModelOutput{GeneratedText: "Once upon a time...", Present: true},
			want:   "Once upon a time...",
		},
		{
			name:   "empty but present",
			output: &ModelOutput{GeneratedText: "", Present: true},
			want:   "",
		},
		{
			name:   "absent text falls back to placeholder",
			output: &ModelOutput{},
			want:   NoResponseText,
		},
		{
			name:   "nil output",
			output: nil,
			want:   NoResponseText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.output.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestModelOutput_HasText(t *testing.T) {
	if (&ModelOutput{GeneratedText: "hi", Present: true}).HasText() == false {
		t.Error("Expected HasText true for present text")
	}
	if (&ModelOutput{}).HasText() {
		t.Error("Expected HasText false for absent text")
	}
	var nilOutput *ModelOutput
	if nilOutput.HasText() {
		t.Error("Expected HasText false for nil output")
	}
}
