package aggregating

import "github.com/somework/landing-api/internal/domain"

// Tally é um contador que preserva a ordem em que cada chave foi vista
type Tally struct {
	index map[string]int
	items []domain.RankedItem
}

func NewTally() *Tally {
	return &Tally{index: make(map[string]int)}
}

func (t *Tally) Add(name string, n float64) {
	i, ok := t.index[name]
	if !ok {
		i = len(t.items)
		t.index[name] = i
		t.items = append(t.items, domain.RankedItem{Name: name})
	}
	t.items[i].Count += n
}

func (t *Tally) Inc(name string) {
	t.Add(name, 1)
}

func (t *Tally) Len() int {
	return len(t.items)
}

// Items retorna uma cópia na ordem de inserção
func (t *Tally) Items() []domain.RankedItem {
	out := make([]domain.RankedItem, len(t.items))
	copy(out, t.items)
	return out
}
