package engine

import "testing"

func TestBufferPushComposedText(t *testing.T) {
	b := NewBuffer()
	b.Push(Char{Key: 'd'}, 'd')
	b.Push(Char{Key: 'a'}, 'a')
	b.Push(Char{Key: 'u'}, 'u')

	if got := b.ComposedText(); got != "dau" {
		t.Fatalf("ComposedText() = %q, want %q", got, "dau")
	}
	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
}

func TestBufferSetAtMutatesInPlace(t *testing.T) {
	b := NewBuffer()
	b.Push(Char{Key: 'd'}, 'd')
	b.Push(Char{Key: 'a'}, 'a')

	cell := b.At(0)
	cell.Stroke = true
	b.SetAt(0, cell, transformStroke)

	if got := b.ComposedText(); got != "đa" {
		t.Fatalf("ComposedText() = %q, want %q", got, "đa")
	}
	if b.LastTransform() != transformNone {
		t.Fatalf("LastTransform() = %v, want transformNone: it reflects the last cell (index 1), not index 0", b.LastTransform())
	}
}

func TestBufferOverflowShifts(t *testing.T) {
	b := NewBuffer()
	for i := 0; i < BufferCapacity+3; i++ {
		b.Push(Char{Key: 'a'}, 'a')
	}
	if b.Len() != BufferCapacity {
		t.Fatalf("Len() = %d, want capacity %d after overflow", b.Len(), BufferCapacity)
	}
}

func TestBufferClearResetsRawLog(t *testing.T) {
	b := NewBuffer()
	b.RecordRawKey('h')
	b.RecordRawKey('i')
	b.Push(Char{Key: 'h'}, 'h')
	b.Push(Char{Key: 'i'}, 'i')

	b.Clear()

	if b.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", b.Len())
	}
	if len(b.RawLog()) != 0 {
		t.Fatalf("RawLog() after Clear() = %v, want empty", b.RawLog())
	}
}

func TestBufferPopEmpty(t *testing.T) {
	b := NewBuffer()
	if _, ok := b.Pop(); ok {
		t.Fatalf("Pop() on empty buffer should report ok=false")
	}
}

func TestBufferRawLogRoundTrip(t *testing.T) {
	b := NewBuffer()
	for _, r := range "hoas" {
		b.RecordRawKey(r)
	}
	if got := string(b.RawLog()); got != "hoas" {
		t.Fatalf("RawLog() = %q, want %q", got, "hoas")
	}
}
