package chat

import "testing"

func TestSelectWindow(t *testing.T) {
	cases := []struct {
		query string
		want  WindowKind
	}{
		{"이번주 어땠어?", WindowWeekly},
		{"이번 주 기분은?", WindowWeekly},
		{"일주일 동안 우울했어?", WindowWeekly},
		{"주간 리포트 줘", WindowWeekly},
		{"how was this week?", WindowWeekly},
		{"WEEKLY summary please", WindowWeekly},
		{"How about this Week?", WindowWeekly}, // case-insensitive
		{"오늘 기분 어때?", WindowDaily},
		{"is he happy right now?", WindowDaily},
		{"", WindowDaily},
		{"weekday", WindowWeekly}, // substring match, aceptado a propósito
	}

	for _, c := range cases {
		if got := SelectWindow(c.query); got != c.want {
			t.Errorf("SelectWindow(%q) = %s, want %s", c.query, got, c.want)
		}
	}
}
