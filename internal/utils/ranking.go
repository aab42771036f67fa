package utils

import (
	"math"
	"sort"
	"time"
)

// Gravity 时间重力，沿用 Hacker News 的 1.8
const Gravity = 1.8

// Rank Hacker News 排名算法: (P-1) / (T+2)^G
// P = points of an item (and -1 is to negate submitters vote)
// T = time since submission (in hours)
func Rank(points int, created, now time.Time) float64 {
	p := float64(points)
	t := now.Sub(created).Hours()
	if t < 0 {
		t = 0
	}
	return (p - 1.0) / math.Pow(t+2.0, Gravity)
}

// Ranked is the minimal view of an item needed to rank it.
type Ranked struct {
	ID          int64
	Score       int
	Descendants int
	Time        time.Time
}

// Points 积分 = score + descendants
func (r Ranked) Points() int {
	return r.Score + r.Descendants
}

// SortByRank orders items by descending rank, newer id first on ties.
func SortByRank(items []Ranked, now time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		ri := Rank(items[i].Points(), items[i].Time, now)
		rj := Rank(items[j].Points(), items[j].Time, now)
		if ri != rj {
			return ri > rj
		}
		return items[i].ID > items[j].ID
	})
}
