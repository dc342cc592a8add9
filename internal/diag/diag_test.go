package diag

import "testing"

func TestRecorderCapturesFormattedMessage(t *testing.T) {
	r := &Recorder{}
	r.Report("PPU", "index %#02x out of range", 0x7F)
	if len(r.Messages) != 1 {
		t.Fatalf("len(Messages) = %d, want 1", len(r.Messages))
	}
	if r.Messages[0].Tag != "PPU" {
		t.Fatalf("Tag = %q, want PPU", r.Messages[0].Tag)
	}
	if r.Messages[0].Text != "index 0x7f out of range" {
		t.Fatalf("Text = %q", r.Messages[0].Text)
	}
}

func TestDiscardIgnoresMessages(t *testing.T) {
	Discard.Report("ANY", "whatever %d", 1)
}
