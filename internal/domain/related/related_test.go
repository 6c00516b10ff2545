package related

import (
	"reflect"
	"testing"
	"time"

	"github.com/eunyuson/graceroom/internal/domain/item"
)

func mustItem(t *testing.T, source item.Source, id, question string) item.Item {
	t.Helper()
	it, err := item.New(source, id, "", question, "", time.Time{})
	if err != nil {
		t.Fatalf("item.New: %v", err)
	}
	return it
}

func matchID(m Match) string {
	it := m.Item()
	return it.ID()
}

func TestAggregate_GroupsBySource(t *testing.T) {
	candidates := []item.Item{
		mustItem(t, item.Concept, "c1", "기도의 의미는 무엇인가?"),
		mustItem(t, item.News, "n1", "기도의 의미"),
		mustItem(t, item.Reflection, "r1", "전혀 다른 내용의 나눔글"),
	}

	groups := Aggregate("기도의 의미는?", candidates, 0.2, Exclude{})

	if len(groups[item.Concept]) != 1 {
		t.Fatalf("concept group = %d matches, want 1", len(groups[item.Concept]))
	}
	if got := matchID(groups[item.Concept][0]); got != "c1" {
		t.Errorf("concept match = %q, want c1", got)
	}
	if len(groups[item.News]) != 1 {
		t.Errorf("news group = %d matches, want 1", len(groups[item.News]))
	}
	if len(groups[item.Reflection]) != 0 {
		t.Errorf("reflection group = %d matches, want 0", len(groups[item.Reflection]))
	}
}

func TestAggregate_ThresholdFilter(t *testing.T) {
	candidates := []item.Item{
		mustItem(t, item.Concept, "close", "기도의 의미는 무엇인가요"),
		mustItem(t, item.Concept, "far", "완전히 무관한 질문입니다"),
	}

	groups := Aggregate("기도의 의미는 무엇인가요", candidates, 0.5, Exclude{})

	for _, m := range groups[item.Concept] {
		if m.Score() < 0.5 {
			t.Errorf("match %q scored %v, below threshold", matchID(m), m.Score())
		}
	}
	if len(groups[item.Concept]) != 1 {
		t.Fatalf("got %d matches, want 1", len(groups[item.Concept]))
	}
}

func TestAggregate_ExcludesOriginatingItem(t *testing.T) {
	self := mustItem(t, item.Concept, "self", "기도의 의미는 무엇인가")
	twin := mustItem(t, item.News, "self", "기도의 의미는 무엇인가")

	groups := Aggregate(
		"기도의 의미는 무엇인가",
		[]item.Item{self, twin},
		0.2,
		Exclude{Source: item.Concept, ID: "self"},
	)

	if len(groups[item.Concept]) != 0 {
		t.Error("excluded item appeared in output")
	}
	// same ID in a different source is a different item and stays
	if len(groups[item.News]) != 1 {
		t.Errorf("news twin filtered out, want kept (got %d)", len(groups[item.News]))
	}
}

func TestAggregate_DescendingScoresStableTies(t *testing.T) {
	candidates := []item.Item{
		mustItem(t, item.Concept, "tie-first", "말씀과 기도"),
		mustItem(t, item.Concept, "exact", "말씀과 기도 묵상"),
		mustItem(t, item.Concept, "tie-second", "말씀과 기도"),
	}

	groups := Aggregate("말씀과 기도 묵상", candidates, 0.2, Exclude{})
	matches := groups[item.Concept]
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}

	for i := 1; i < len(matches); i++ {
		if matches[i].Score() > matches[i-1].Score() {
			t.Fatalf("scores not descending: %v after %v", matches[i].Score(), matches[i-1].Score())
		}
	}
	if matchID(matches[0]) != "exact" {
		t.Errorf("best match = %q, want exact", matchID(matches[0]))
	}
	// equal scores keep candidate order
	if matchID(matches[1]) != "tie-first" || matchID(matches[2]) != "tie-second" {
		t.Errorf("tie order = %q, %q; want tie-first, tie-second",
			matchID(matches[1]), matchID(matches[2]))
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	candidates := []item.Item{
		mustItem(t, item.Concept, "a", "감사의 제목은 무엇인가요"),
		mustItem(t, item.Concept, "b", "감사의 제목은 무엇인가요"),
		mustItem(t, item.News, "c", "오늘의 감사 제목"),
	}

	first := Aggregate("감사의 제목", candidates, 0.1, Exclude{})
	second := Aggregate("감사의 제목", candidates, 0.1, Exclude{})

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different output")
	}
}

func TestAggregate_EmptyCandidates(t *testing.T) {
	groups := Aggregate("기도의 의미는?", nil, 0.2, Exclude{})
	if len(groups) != 0 {
		t.Errorf("empty candidates yielded %d groups, want 0", len(groups))
	}
}

func TestAggregate_EmptyQueryYieldsNothing(t *testing.T) {
	candidates := []item.Item{
		mustItem(t, item.Concept, "c1", "기도의 의미는 무엇인가?"),
	}
	groups := Aggregate("", candidates, 0.2, Exclude{})
	if len(groups[item.Concept]) != 0 {
		t.Error("empty query produced matches")
	}
}

func TestAggregate_SkipsCandidatesWithoutQuestion(t *testing.T) {
	partial := item.Reconstruct(item.News, "broken", "title only", "", "", time.Time{})
	whole := mustItem(t, item.News, "whole", "감사한 일은 무엇인가요")

	groups := Aggregate("감사한 일은 무엇인가요", []item.Item{partial, whole}, 0.2, Exclude{})

	if len(groups[item.News]) != 1 {
		t.Fatalf("got %d news matches, want 1", len(groups[item.News]))
	}
	if got := matchID(groups[item.News][0]); got != "whole" {
		t.Errorf("match = %q, want whole", got)
	}
}
