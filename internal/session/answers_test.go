package session

import "testing"

func TestAnswerStore_LastWriteWins(t *testing.T) {
	s := NewAnswerStore()

	s.Set("q1", 2)
	s.Set("q1", 0)

	v, ok := s.Get("q1")
	if !ok {
		t.Fatal("expected answer for q1")
	}
	if v != 0 {
		t.Errorf("answer = %d, want 0 (last write)", v)
	}
}

func TestAnswerStore_GetMissing(t *testing.T) {
	s := NewAnswerStore()
	if _, ok := s.Get("nope"); ok {
		t.Error("expected no answer for unknown question")
	}
}

func TestAnswerStore_SnapshotIsIndependent(t *testing.T) {
	s := NewAnswerStore()
	s.Set("q1", 1)
	s.Set("q2", 3)

	snap := s.Snapshot()
	s.Set("q1", 0)
	s.Set("q3", 2)

	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(snap))
	}
	if snap["q1"] != 1 {
		t.Errorf("snapshot q1 = %d, want 1 (pre-mutation value)", snap["q1"])
	}
	if _, ok := snap["q3"]; ok {
		t.Error("snapshot gained an entry written after it was taken")
	}
}

func TestAnswerStore_Clear(t *testing.T) {
	s := NewAnswerStore()
	s.Set("q1", 1)
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("length after clear = %d, want 0", s.Len())
	}
	if _, ok := s.Get("q1"); ok {
		t.Error("expected q1 gone after clear")
	}
}
