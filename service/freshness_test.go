package service

import (
	"testing"
	"time"

	"github.com/raylin-wellness/feed-sdk/models"
)

func TestIsFresh(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		age  time.Duration
		want bool
	}{
		{"just posted", 0, true},
		{"almost a day", 24*time.Hour - time.Minute, true},
		{"exactly a day", 24 * time.Hour, false},
		{"stale", 25 * time.Hour, false},
	}
	for _, tc := range cases {
		item := models.FeedItem{CreatedAt: now.Add(-tc.age)}
		if got := IsFresh(item, now); got != tc.want {
			t.Errorf("%s: IsFresh = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsFresh_ReevaluatesOverTime(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	item := models.FeedItem{CreatedAt: created}

	// 同一条目，随 now 推移真值翻转，说明不能缓存
	if !IsFresh(item, created.Add(23*time.Hour)) {
		t.Fatalf("expected fresh at 23h")
	}
	if IsFresh(item, created.Add(25*time.Hour)) {
		t.Fatalf("expected stale at 25h")
	}
}
