package games

import (
	"reflect"
	"testing"
)

func TestGameJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	gameType := reflect.TypeOf(Game{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Provider", "provider"},
		{"HomeTeam", "homeTeam"},
		{"VisitorTeam", "visitorTeam"},
		{"Score", "score"},
	}

	for _, fc := range fields {
		field, ok := gameType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestVisitorWon(t *testing.T) {
	cases := []struct {
		name  string
		score Score
		want  bool
	}{
		{"visitor ahead", Score{Home: 95, Visitor: 100}, true},
		{"home ahead", Score{Home: 100, Visitor: 95}, false},
		{"tie", Score{Home: 100, Visitor: 100}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (Game{Score: tc.score}).VisitorWon(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestIDsPreservesOrder(t *testing.T) {
	ids := IDs([]Game{{ID: 3}, {ID: 1}, {ID: 2}})
	if !reflect.DeepEqual(ids, []int{3, 1, 2}) {
		t.Fatalf("unexpected ids %v", ids)
	}
	if got := IDs(nil); len(got) != 0 {
		t.Fatalf("expected empty ids, got %v", got)
	}
}
