package dashboard

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"
)

const savedAtLayout = "2006-01-02 15:04:05"

type (
	Selection struct {
		Food    CatalogFood
		SavedAt time.Time
	}

	Totals struct {
		Calories float64
		Carbs    float64
		Protein  float64
		Fat      float64
	}

	// Session holds the foods staged for the next meal.
	Session struct {
		mu    sync.Mutex
		items []Selection
		now   func() time.Time
	}
)

func NewSession() *Session {
	return &Session{now: time.Now}
}

func (s *Session) Add(food CatalogFood) Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := Selection{Food: food, SavedAt: s.now()}
	s.items = append(s.items, sel)
	return sel
}

// Remove drops the selection at index. Out of range indexes are ignored.
func (s *Session) Remove(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

func (s *Session) Items() []Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Selection(nil), s.items...)
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t Totals
	for _, sel := range s.items {
		t.Calories += sel.Food.Calories
		t.Carbs += sel.Food.Carbs
		t.Protein += sel.Food.Protein
		t.Fat += sel.Food.Fat
	}
	return t
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Counts groups the staged foods by name, keeping first-seen order.
func (s *Session) Counts() ([]CatalogFood, map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	var order []CatalogFood
	for _, sel := range s.items {
		if counts[sel.Food.Name] == 0 {
			order = append(order, sel.Food)
		}
		counts[sel.Food.Name]++
	}
	return order, counts
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCSV exports the staged foods with the catalog column names plus the
// time each one was saved.
func (s *Session) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{ColumnName, ColumnCalories, ColumnCarbs, ColumnProtein, ColumnFat, "저장시간"}); err != nil {
		return err
	}
	for _, sel := range s.Items() {
		if err := writer.Write([]string{
			sel.Food.Name,
			formatNumber(sel.Food.Calories),
			formatNumber(sel.Food.Carbs),
			formatNumber(sel.Food.Protein),
			formatNumber(sel.Food.Fat),
			sel.SavedAt.Format(savedAtLayout),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
